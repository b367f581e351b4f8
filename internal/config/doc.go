// Package config handles loading and parsing signpost configuration files.
//
// # Overview
//
// This package reads signpost's TOML configuration to discover the site a
// user authored: routes, pages, the default route, and presentation
// settings. A config file is entirely optional — signpost carries an
// embedded demo site and works out of the box without one.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/signpost/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/signpost/config.toml
//   - Log file: ~/.local/share/signpost/signpost.log
//   - Start path: the default route
//
// # Configuration Fields
//
//   - DefaultRoute: path rendered when a navigation target has no route
//   - StartPath: path opened first (defaults to DefaultRoute)
//   - NotFoundView: optional view id rendered for unknown paths instead of
//     redirecting to the default route
//   - Theme: theme name ("auto" picks by terminal background)
//   - LogFile, LogLevel: structured log destination and level
//   - PagesDir: directory of *.md page files (file stem = view id)
//   - Routes: [[routes]] entries mapping a path to a view id
//   - Pages: [[pages]] entries declaring views inline
//
// # TOML Format
//
// Example config.toml:
//
//	default_route = "/home"
//	theme = "auto"
//	pages_dir = "~/notes/site"
//
//	[[routes]]
//	path = "/home"
//	view = "home"
//	title = "Home"
//
//	[[pages]]
//	id = "home"
//	content = """
//	# Home
//
//	[Notes](/notes)
//	"""
//
// All fields are optional except that declared routes require a
// default_route. Tilde expansion is performed automatically.
//
// # Path Expansion
//
// The package handles several path formats:
//
//   - Absolute paths: Used as-is ("/var/log/signpost")
//   - Tilde paths: Expanded to home directory ("~/.config/signpost")
//   - Relative paths: Converted to absolute based on current directory
//
// Path expansion is performed for the config file location, log_file, and
// pages_dir.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
// Whether the declared site is coherent (routes pointing at registered
// views, default route present) is checked during assembly, not here.
//
// # Usage Example
//
//	// Use default config path
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//
//	if cfg.HasSite() {
//		// build the site from cfg.Routes / cfg.Pages / cfg.PagesDir
//	}
//
// # Design Philosophy
//
// This package follows the principle of sensible defaults. signpost should
// work immediately with no configuration file, serving its embedded demo
// site, and grow into a user's own site one field at a time.
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct. No global state
// or singleton patterns are used.
package config
