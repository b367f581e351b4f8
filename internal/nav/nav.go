// Package nav decides what renders. The controller resolves the current
// path against the route table and drives the view renderer; the
// synchronizer feeds user-driven history movement back into the same
// resolution path.
package nav

import (
	"fmt"
	"log/slog"

	"github.com/davren/signpost/internal/history"
	"github.com/davren/signpost/internal/logging"
	"github.com/davren/signpost/internal/route"
	"github.com/davren/signpost/internal/view"
)

// Options configure the navigation controller. Table, Renderer, History
// and DefaultPath are required.
type Options struct {
	Table       *route.Table
	Renderer    *view.Renderer
	History     *history.Stack
	DefaultPath string

	// NotFoundView, when set, is rendered for unknown paths instead of
	// redirecting to DefaultPath. The requested path stays current.
	NotFoundView string

	// OnFallback runs whenever an unknown path triggers either recovery,
	// with the path that missed. Useful for surfacing a notice.
	OnFallback func(requested string)

	Logger *slog.Logger
}

// Controller owns every path change in the program. All navigation goes
// through Navigate, and everything that needs re-rendering goes through
// Resolve; no other component touches the renderer.
type Controller struct {
	table       *route.Table
	renderer    *view.Renderer
	hist        *history.Stack
	defaultPath string
	notFound    string
	onFallback  func(string)
	log         *slog.Logger
}

// New validates the wiring and returns a controller.
func New(opts Options) (*Controller, error) {
	if opts.Table == nil {
		return nil, fmt.Errorf("nav: route table is required")
	}
	if opts.Renderer == nil {
		return nil, fmt.Errorf("nav: view renderer is required")
	}
	if opts.History == nil {
		return nil, fmt.Errorf("nav: history is required")
	}
	if opts.DefaultPath == "" {
		return nil, fmt.Errorf("nav: default path is required")
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	return &Controller{
		table:       opts.Table,
		renderer:    opts.Renderer,
		hist:        opts.History,
		defaultPath: opts.DefaultPath,
		notFound:    opts.NotFoundView,
		onFallback:  opts.OnFallback,
		log:         log,
	}, nil
}

// Resolve reads the current path from history and renders the view
// routed to it. The path is read fresh on every call.
//
// An unroutable path is recovered, not failed: either the dedicated
// not-found view renders with the path left in place, or the controller
// navigates to the default path so the visible path and the rendered
// view stay in agreement. A render failure for a routed view is a
// configuration defect and propagates loudly.
func (c *Controller) Resolve() error {
	path := c.hist.Current()

	if entry, ok := c.table.Resolve(path); ok {
		if err := c.renderer.Render(entry.View); err != nil {
			return err
		}
		c.log.Debug("resolved", "path", path, "view", entry.View)
		return nil
	}

	if near, ok := c.table.Nearest(path); ok {
		c.log.Info("no route", "path", path, "nearest", near.Path)
	} else {
		c.log.Info("no route", "path", path)
	}
	if c.onFallback != nil {
		c.onFallback(path)
	}

	if c.notFound != "" {
		return c.renderer.Render(c.notFound)
	}
	if path == c.defaultPath {
		return fmt.Errorf("default route %q is not registered", c.defaultPath)
	}
	return c.Navigate(c.defaultPath)
}

// Navigate records path as a new history entry and resolves it. It is
// unconditional: navigating to the current path pushes again, exactly
// like re-submitting a location in a browser.
func (c *Controller) Navigate(path string) error {
	c.hist.Push(path)
	c.log.Debug("navigate", "path", path)
	return c.Resolve()
}

// DefaultPath returns the configured fallback destination.
func (c *Controller) DefaultPath() string {
	return c.defaultPath
}

// Validate checks that the routing configuration is self-consistent:
// every routed view must be registered, the default path must be routed,
// and the not-found view, when configured, must be registered. Run it
// during assembly so a broken table fails the program before anything
// renders.
func Validate(table *route.Table, reg *view.Registry, defaultPath, notFoundView string) error {
	for _, p := range table.Paths() {
		entry, _ := table.Resolve(p)
		if !reg.Has(entry.View) {
			return fmt.Errorf("route %s: %w: %q", p, view.ErrNotFound, entry.View)
		}
	}
	if _, ok := table.Resolve(defaultPath); !ok {
		return fmt.Errorf("default route %q is not registered", defaultPath)
	}
	if notFoundView != "" && !reg.Has(notFoundView) {
		return fmt.Errorf("not-found view: %w: %q", view.ErrNotFound, notFoundView)
	}
	return nil
}
