// Package site embeds the built-in demo site used when no configuration
// file exists, so a bare binary still demonstrates the full navigation
// loop: a couple of routed pages, links between them, and one dead link
// that exercises the unknown-route fallback.
package site

import (
	"embed"
	"io/fs"

	"github.com/davren/signpost/internal/route"
)

//go:embed pages/*.md
var pagesFS embed.FS

// DefaultPath is where unknown paths land on the demo site.
const DefaultPath = "/login"

// StartPath is the demo session's initial location.
const StartPath = "/dashboard"

// Pages returns the embedded page files, rooted at the page directory.
func Pages() fs.FS {
	sub, err := fs.Sub(pagesFS, "pages")
	if err != nil {
		// The directory is embedded at compile time.
		panic(err)
	}
	return sub
}

// Routes returns the demo routing table entries.
func Routes() []route.Entry {
	return []route.Entry{
		{Path: "/login", View: "login", Title: "Login"},
		{Path: "/dashboard", View: "dashboard", Title: "Dashboard"},
		{Path: "/settings", View: "settings", Title: "Settings"},
		{Path: "/about", View: "about", Title: "About"},
	}
}
