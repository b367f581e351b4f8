package view

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// LoadDir reads every *.md file at the root of fsys into a definition.
// The file stem becomes the view identifier and the first level-one
// heading becomes the title, falling back to the identifier when the
// page has none.
func LoadDir(fsys fs.FS) ([]Definition, error) {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", name, err)
		}
		content := string(raw)
		id := strings.TrimSuffix(path.Base(name), ".md")

		def, err := NewDefinition(id, pageTitle(content), content)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", name, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// pageTitle returns the text of the first "# " heading, or "".
func pageTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(after)
		}
	}
	return ""
}
