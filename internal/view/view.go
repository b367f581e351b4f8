// Package view holds the page blueprints and the surface they render on.
// Definitions are inert, named templates registered once at startup; the
// registry hands out fresh instances of them; the renderer owns the single
// mount point and swaps instances into it whole. Nothing here knows about
// paths — routing is the caller's concern.
package view

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a view identifier has no registered
	// definition. Hitting it through a routed path means the route table
	// and the registry disagree, which is a configuration defect.
	ErrNotFound = errors.New("view not found")

	// ErrDuplicateView is returned when a view identifier is registered twice.
	ErrDuplicateView = errors.New("duplicate view id")

	// ErrBadDefinition is returned for definitions without an identifier.
	ErrBadDefinition = errors.New("malformed view definition")
)

// Link is a navigation affordance declared by a page: a label and the
// internal path it leads to. Links are extracted once, when the
// definition is created, and never re-parsed afterwards.
type Link struct {
	Label  string
	Target string
}

// Definition is an inert, named page blueprint. It is declared during
// startup and never mutated or destroyed; rendering works exclusively on
// instances created from it.
type Definition struct {
	ID      string
	Title   string
	Content string
	Links   []Link
}

// Instance is a live copy of a definition. Instances own their mutable
// presentation state (currently the focused link) and are discarded
// wholesale when another instance takes their place.
type Instance struct {
	ID      string // unique per instantiation
	View    string // definition identifier this instance was created from
	Title   string
	Content string
	Links   []Link

	focus int
}

// FocusedLink returns the link focus currently rests on, or false when
// the instance has no links.
func (in *Instance) FocusedLink() (Link, bool) {
	if len(in.Links) == 0 {
		return Link{}, false
	}
	return in.Links[in.focus], true
}

// Focus returns the index of the focused link.
func (in *Instance) Focus() int {
	return in.focus
}

// CycleFocus moves link focus by delta, wrapping at both ends. It is a
// no-op for instances without links.
func (in *Instance) CycleFocus(delta int) {
	n := len(in.Links)
	if n == 0 {
		return
	}
	in.focus = ((in.focus+delta)%n + n) % n
}

// SetFocus moves focus to the i-th link and reports whether i was valid.
func (in *Instance) SetFocus(i int) bool {
	if i < 0 || i >= len(in.Links) {
		return false
	}
	in.focus = i
	return true
}

// internalLinkRe matches markdown links whose target is an internal
// path, e.g. [Dashboard](/dashboard). External targets are left alone.
var internalLinkRe = regexp.MustCompile(`\[([^\]]+)\]\((/[^)\s]*)\)`)

// ParseLinks extracts internal navigation links from markdown content in
// document order.
func ParseLinks(content string) []Link {
	matches := internalLinkRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{Label: m[1], Target: m[2]})
	}
	return links
}

// NewDefinition builds a definition from markdown content, parsing its
// navigation links in the same pass.
func NewDefinition(id, title, content string) (Definition, error) {
	if id == "" {
		return Definition{}, fmt.Errorf("%w: empty id", ErrBadDefinition)
	}
	if title == "" {
		title = titleCase(id)
	}
	return Definition{
		ID:      id,
		Title:   title,
		Content: content,
		Links:   ParseLinks(content),
	}, nil
}

// titleCase converts an underscore- or hyphen-separated identifier to
// title case, for pages that declare no heading of their own.
func titleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, part := range parts {
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}

// instantiate returns a fresh, fully independent copy of the definition.
func (d Definition) instantiate() *Instance {
	links := make([]Link, len(d.Links))
	copy(links, d.Links)
	return &Instance{
		ID:      uuid.NewString(),
		View:    d.ID,
		Title:   d.Title,
		Content: d.Content,
		Links:   links,
	}
}
