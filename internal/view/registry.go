package view

import (
	"fmt"
	"sort"
)

// Registry holds the session's view definitions. It is populated during
// startup and is read-only afterwards; Instantiate is the only operation
// the rest of the program uses.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Add registers a definition under its identifier.
func (r *Registry) Add(d Definition) error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty id", ErrBadDefinition)
	}
	if _, exists := r.defs[d.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateView, d.ID)
	}
	r.defs[d.ID] = d
	return nil
}

// Instantiate creates a fresh instance of the named view. Each call
// returns an independent copy; mutating one instance never affects the
// definition or any other instance.
func (r *Registry) Instantiate(id string) (*Instance, error) {
	d, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return d.instantiate(), nil
}

// Has reports whether a definition is registered under id.
func (r *Registry) Has(id string) bool {
	_, ok := r.defs[id]
	return ok
}

// IDs returns the registered identifiers, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}
