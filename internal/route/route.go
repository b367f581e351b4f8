// Package route maps navigation paths to view identifiers.
//
// The table is a fixed, exact-match lookup: it is populated once during
// startup and read for the rest of the session. Matching never inspects
// segments, parameters, or query strings; a path either is in the table
// or it is not.
package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrDuplicatePath is returned when a path is registered twice.
	ErrDuplicatePath = errors.New("duplicate route path")

	// ErrBadPath is returned for empty paths or paths without a leading slash.
	ErrBadPath = errors.New("malformed route path")
)

// Entry binds a navigation path to a view identifier plus display metadata.
type Entry struct {
	Path  string
	View  string
	Title string
}

// Table is the session's routing table. Populate it with Add during
// startup; Resolve and Nearest are the only operations used afterwards.
type Table struct {
	entries map[string]Entry
	paths   []string // insertion order, for deterministic iteration
}

// New returns an empty routing table.
func New() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Add registers a path. The path must start with "/" and be unique;
// the view identifier must be non-empty.
func (t *Table) Add(e Entry) error {
	e.Path = strings.TrimSpace(e.Path)
	e.View = strings.TrimSpace(e.View)
	e.Title = strings.TrimSpace(e.Title)

	if e.Path == "" || !strings.HasPrefix(e.Path, "/") {
		return fmt.Errorf("%w: %q", ErrBadPath, e.Path)
	}
	if e.View == "" {
		return fmt.Errorf("%w: %q has no view", ErrBadPath, e.Path)
	}
	if _, exists := t.entries[e.Path]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePath, e.Path)
	}

	t.entries[e.Path] = e
	t.paths = append(t.paths, e.Path)
	return nil
}

// Resolve looks up a path. The second return value reports whether the
// path is routed; a miss is an expected outcome, not an error.
func (t *Table) Resolve(path string) (Entry, bool) {
	e, ok := t.entries[path]
	return e, ok
}

// Nearest returns the registered entry whose path is closest to the given
// one, for use in diagnostics when a lookup misses. It reports false when
// the table is empty or nothing is within a reasonable editing distance.
// Nearest never influences resolution itself.
func (t *Table) Nearest(path string) (Entry, bool) {
	best := Entry{}
	bestDist := -1
	for _, p := range t.paths {
		dist := levenshtein.ComputeDistance(path, p)
		if bestDist == -1 || dist < bestDist {
			bestDist = dist
			best = t.entries[p]
		}
	}
	if bestDist == -1 {
		return Entry{}, false
	}
	maxLen := len(path)
	if len(best.Path) > maxLen {
		maxLen = len(best.Path)
	}
	if maxLen == 0 || float64(bestDist)/float64(maxLen) >= 0.5 {
		return Entry{}, false
	}
	return best, true
}

// Paths returns the registered paths in insertion order.
func (t *Table) Paths() []string {
	out := make([]string, len(t.paths))
	copy(out, t.paths)
	return out
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.paths)
}
