package view

import (
	"fmt"
	"log/slog"

	"github.com/davren/signpost/internal/logging"
)

// Renderer owns the mount point: the single slot the current page
// instance occupies. Render is the only way the slot changes hands, so
// at any moment exactly one instance is mounted and no state from its
// predecessor survives the swap.
type Renderer struct {
	reg     *Registry
	log     *slog.Logger
	mounted *Instance
}

// NewRenderer returns a renderer backed by the given registry.
func NewRenderer(reg *Registry, log *slog.Logger) *Renderer {
	if log == nil {
		log = logging.NewNop()
	}
	return &Renderer{reg: reg, log: log}
}

// Render instantiates the named view and swaps it into the mount point,
// replacing whatever was mounted before. When the view is unknown the
// mount is left untouched and ErrNotFound propagates to the caller.
func (r *Renderer) Render(id string) error {
	in, err := r.reg.Instantiate(id)
	if err != nil {
		return fmt.Errorf("render %q: %w", id, err)
	}

	prev := ""
	if r.mounted != nil {
		prev = r.mounted.ID
	}
	r.mounted = in
	r.log.Debug("mounted view", "view", id, "instance", in.ID, "replaced", prev)
	return nil
}

// Mounted returns the instance currently occupying the mount point, or
// nil before the first Render.
func (r *Renderer) Mounted() *Instance {
	return r.mounted
}
