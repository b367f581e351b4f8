// Package ui provides the terminal user interface for signpost.
//
// # Architecture Overview
//
// The UI package implements a TUI (Terminal User Interface) using Bubble
// Tea. It is the program shell around the navigation core: it owns the
// screen, translates key events into controller calls, and draws whatever
// instance the renderer currently has mounted. It holds no navigation
// state of its own — the current path, the mounted view, and the history
// position are read live from the stack and the renderer on every frame.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Model, Update/View, key dispatch, and the main Run function
//   - navigation.go: Controller calls for navigate, reload, and post-move refresh
//   - page.go: Page viewport, markdown rendering, link bar, page key handling
//   - address.go: Path prompt (the address bar)
//   - header.go: Header and command bars
//   - status.go: Status line, notice display, and expiry
//   - help.go: Help overlay content
//   - modal.go: Centered overlay composition
//   - theme.go: Themes and style construction
//   - keys.go: Key map and help groupings
//
// # Main Components
//
// The Model struct is the root Bubble Tea model:
//
//   - Header section: wordmark, back/forward arrows, current path, page title
//   - Page surface: bordered viewport holding the rendered markdown
//   - Link bar: numbered link affordances of the mounted page with focus
//   - Status line: transient notices, link count, scroll position
//
// # Link Activation
//
// One delegated handler serves every page: on enter (or a number key) it
// reads the focused link off the currently mounted instance and calls
// Controller.Navigate with the link's target. Pages never register their
// own handlers, so swapping pages cannot leak or orphan a binding.
//
// # Event Flow
//
//  1. Run() builds the Model and starts the alt-screen program
//  2. Key events dispatch to the address prompt, the shell keys, or the page
//  3. Navigation keys call the controller (navigate) or the stack (back/forward)
//  4. History movement reaches the controller through its synchronizer
//  5. After any move the model re-reads renderer.Mounted() and redraws
//  6. Context cancellation cleanly shuts down the UI
//
// # External Dependencies
//
//   - nav.Controller: navigation decisions (resolve, navigate, fallback)
//   - history.Stack: current path, traversal, movement signal
//   - view.Renderer: the mount point the page surface draws from
//   - Notices: fallback and boot messages surfaced on the status line
//
// # Usage Example
//
//	opts := ui.Options{
//		Context:    ctx,
//		Controller: ctrl,
//		History:    hist,
//		Renderer:   renderer,
//		Notices:    notices,
//		Logger:     log,
//	}
//	if err := ui.Run(opts); err != nil {
//		log.Fatal(err)
//	}
//
// # Key Bindings
//
//   - tab / shift+tab: Cycle link focus on the mounted page
//   - enter: Open the focused link
//   - 1-9: Open a link by number
//   - b / backspace / alt+left: Back
//   - f / alt+right: Forward
//   - H: Home (default route)
//   - r: Re-render the current page
//   - :: Open the path prompt
//   - j/k, g/G, pgup/pgdn, ctrl+d/u: Scroll
//   - T: Cycle theme
//   - h or ?: Help overlay
//   - q or Ctrl+C: Exit
//
// # Design Principles
//
//   - Derived state: navigation truth lives in the stack and renderer
//   - Single writer: only the renderer mutates the mount point
//   - One goroutine: every update runs on the Bubble Tea loop
package ui
