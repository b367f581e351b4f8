// Package app provides the orchestration layer for the signpost application.
//
// # Overview
//
// This package wires together configuration, site assembly, navigation, and
// the UI to create the complete signpost TUI experience. It serves as the
// composition root where all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load signpost configuration from ~/.config/signpost/config.toml
//  2. Open the log file (the UI owns the terminal, so logs never go to it)
//  3. Assemble the view registry and route table, from the config when it
//     declares a site and from the embedded demo site otherwise
//  4. Validate that every route points at a registered view
//  5. Seed the history stack with the starting path
//  6. Build the navigation controller and bind the history synchronizer
//  7. Resolve the starting path so a view is mounted before the first frame
//  8. Start the TUI and block until the user exits or the context cancels
//
// # Components
//
//   - app.go: Main Run function and the startup sequence above
//   - assemble.go: Builds the registry and route table from config or the demo site
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read signpost config
//	       ├─────> assemble()          Registry + route table
//	       ├─────> nav.Validate()      Every route has a view
//	       ├─────> history.New()       Seed with start path
//	       ├─────> nav.New()           Navigation controller
//	       ├─────> Synchronizer.Bind() History moves trigger resolution
//	       ├─────> ctrl.Resolve()      Mount the starting view
//	       └─────> ui.Run()            Start TUI (blocks)
//
//	Navigation Loop (single goroutine, driven by key events):
//	┌─────────────────────────────────────────┐
//	│ key press                               │
//	│  ├─> navigate: ctrl.Navigate(path)      │
//	│  │    └─> history.Push() + Resolve()    │
//	│  └─> back/forward: history.Back()       │
//	│       └─> synchronizer ──> Resolve()    │
//	│           └─> renderer mounts instance  │
//	│               └─> UI reads Mounted()    │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Site assembly failure (bad page, duplicate route, missing default)
//   - A route pointing at a view nobody registered
//   - The starting path failing to resolve even through the fallback
//
// Recoverable errors (handled in place, browsing continues):
//   - An unregistered path at runtime falls back to the default route and
//     surfaces a notice in the status line
//   - A markdown rendering failure falls back to the raw page text
//   - A bad log path downgrades logging to a no-op handler
//
// Registered routes whose views vanish are treated as fatal at startup
// precisely so they cannot surface later as confusing runtime failures.
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - ConfigPath: Path to config.toml (default: ~/.config/signpost/config.toml)
//   - PrefsPath: Path to prefs.toml (default: ~/.config/signpost/prefs.toml)
//   - StartPath: Path to open first (default: the configured start path)
//   - Theme: Theme name (default: config value, then saved preference)
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	opts := app.Options{
//		ConfigPath: "", // Use default
//		StartPath:  "/dashboard",
//	}
//
//	if err := app.Run(ctx, opts); err != nil {
//		log.Fatalf("signpost failed: %v", err)
//	}
//
// # Dependencies
//
//   - config: Loads and parses signpost configuration files
//   - site: Embedded demo pages and routes
//   - view: View definitions, registry, renderer
//   - route: Exact-match path table
//   - history: Back/forward stack with subscriber notification
//   - nav: Navigation controller and history synchronizer
//   - ui: Terminal user interface (TUI) implementation
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal and focused.
// Business logic lives in domain packages (route, view, history, nav, ui).
// The app package simply connects these pieces with sensible defaults for
// the single-user, local browsing use case.
package app
