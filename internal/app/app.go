package app

import (
	"context"
	"fmt"

	"github.com/davren/signpost/internal/config"
	"github.com/davren/signpost/internal/history"
	"github.com/davren/signpost/internal/logging"
	"github.com/davren/signpost/internal/nav"
	"github.com/davren/signpost/internal/prefs"
	"github.com/davren/signpost/internal/ui"
	"github.com/davren/signpost/internal/view"
)

// Options configure the signpost application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/signpost/prefs.toml
	StartPath  string // empty uses the configured start path
	Theme      string // empty uses config, then saved preference
}

// Run boots the signpost TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The UI owns the terminal, so logs go to a file. A bad log path
	// should not keep the browser from starting.
	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log = logging.NewNop()
	} else {
		defer closer.Close()
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		userPrefs = prefs.Prefs{}
	}

	parts, err := assemble(cfg, log)
	if err != nil {
		return err
	}

	if err := nav.Validate(parts.table, parts.registry, parts.defaultPath, parts.notFoundView); err != nil {
		return fmt.Errorf("validate site: %w", err)
	}

	startPath := opts.StartPath
	if startPath == "" {
		startPath = parts.startPath
	}
	if startPath == "" {
		startPath = parts.defaultPath
	}

	hist := history.New(startPath)
	renderer := view.NewRenderer(parts.registry, log)
	notices := ui.NewNotices()

	ctrl, err := nav.New(nav.Options{
		Table:        parts.table,
		Renderer:     renderer,
		History:      hist,
		DefaultPath:  parts.defaultPath,
		NotFoundView: parts.notFoundView,
		OnFallback: func(requested string) {
			notices.Push(ui.NoticeWarn, fmt.Sprintf("no route for %s", requested))
		},
		Logger: log,
	})
	if err != nil {
		return err
	}

	nav.NewSynchronizer(ctrl, log).Bind(hist)

	// Mount the starting view before the first frame so the UI never
	// shows an empty surface.
	if err := ctrl.Resolve(); err != nil {
		return fmt.Errorf("resolve %s: %w", startPath, err)
	}

	theme := opts.Theme
	if theme == "" {
		theme = cfg.Theme
	}
	if theme == "" {
		theme = userPrefs.Theme
	}

	log.Info("starting",
		"path", startPath,
		"routes", parts.table.Len(),
		"views", parts.registry.Len(),
		"theme", theme)

	uiOpts := ui.Options{
		Context:    ctx,
		Controller: ctrl,
		History:    hist,
		Renderer:   renderer,
		Notices:    notices,
		Logger:     log,
		ThemeName:  theme,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
