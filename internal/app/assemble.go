package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/davren/signpost/internal/config"
	"github.com/davren/signpost/internal/route"
	"github.com/davren/signpost/internal/site"
	"github.com/davren/signpost/internal/view"
)

// assembly is everything the navigation layer needs to start.
type assembly struct {
	registry     *view.Registry
	table        *route.Table
	defaultPath  string
	startPath    string
	notFoundView string
}

// assemble builds the view registry and route table: from the config when
// it declares a site, from the embedded demo site otherwise.
func assemble(cfg config.Config, log *slog.Logger) (assembly, error) {
	if !cfg.HasSite() {
		log.Info("no site configured, serving built-in demo site")
		return demoSite()
	}
	return configSite(cfg)
}

func demoSite() (assembly, error) {
	reg := view.NewRegistry()
	defs, err := view.LoadDir(site.Pages())
	if err != nil {
		return assembly{}, fmt.Errorf("load demo pages: %w", err)
	}
	for _, def := range defs {
		if err := reg.Add(def); err != nil {
			return assembly{}, fmt.Errorf("register demo page: %w", err)
		}
	}

	table := route.New()
	for _, e := range site.Routes() {
		if err := table.Add(e); err != nil {
			return assembly{}, fmt.Errorf("add demo route: %w", err)
		}
	}

	return assembly{
		registry:    reg,
		table:       table,
		defaultPath: site.DefaultPath,
		startPath:   site.StartPath,
	}, nil
}

func configSite(cfg config.Config) (assembly, error) {
	if cfg.DefaultRoute == "" {
		return assembly{}, fmt.Errorf("config declares routes but no default_route")
	}

	reg := view.NewRegistry()

	// Inline pages first, then the pages directory
	for _, p := range cfg.Pages {
		def, err := view.NewDefinition(p.ID, p.Title, p.Content)
		if err != nil {
			return assembly{}, fmt.Errorf("page %q: %w", p.ID, err)
		}
		if err := reg.Add(def); err != nil {
			return assembly{}, fmt.Errorf("page %q: %w", p.ID, err)
		}
	}

	if cfg.PagesDir != "" {
		defs, err := view.LoadDir(os.DirFS(cfg.PagesDir))
		if err != nil {
			return assembly{}, fmt.Errorf("pages dir %s: %w", cfg.PagesDir, err)
		}
		for _, def := range defs {
			if err := reg.Add(def); err != nil {
				return assembly{}, fmt.Errorf("pages dir %s: %w", cfg.PagesDir, err)
			}
		}
	}

	table := route.New()
	for _, r := range cfg.Routes {
		if err := table.Add(route.Entry{Path: r.Path, View: r.View, Title: r.Title}); err != nil {
			return assembly{}, fmt.Errorf("route %q: %w", r.Path, err)
		}
	}

	return assembly{
		registry:     reg,
		table:        table,
		defaultPath:  cfg.DefaultRoute,
		startPath:    cfg.StartPath,
		notFoundView: cfg.NotFoundView,
	}, nil
}
