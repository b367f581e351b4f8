package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davren/signpost/internal/history"
	"github.com/davren/signpost/internal/logging"
	"github.com/davren/signpost/internal/nav"
	"github.com/davren/signpost/internal/prefs"
	"github.com/davren/signpost/internal/view"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *nav.Controller
	History    *history.Stack
	Renderer   *view.Renderer
	Notices    *Notices
	Logger     *slog.Logger
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea. Navigation state
// lives in the controller, stack, and renderer the model points at; the
// model itself holds only presentation state and reads the rest live.
type Model struct {
	// Wiring
	ctrl     *nav.Controller
	hist     *history.Stack
	renderer *view.Renderer
	notices  *Notices
	log      *slog.Logger

	prefsPath string

	// UI state
	keys   keyMap
	theme  Theme
	width  int
	height int
	ready  bool

	// Page surface
	pageViewport viewport.Model
	cache        pageCache

	// Address prompt
	addressActive bool
	addressInput  textinput.Model

	// Status line
	status    *Notice
	statusSeq int

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}

	notices := opts.Notices
	if notices == nil {
		notices = NewNotices()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctrl:      opts.Controller,
		hist:      opts.History,
		renderer:  opts.Renderer,
		notices:   notices,
		log:       log,
		prefsPath: prefsPath,
		keys:      DefaultKeyMap(),
		theme:     ResolveTheme(opts.ThemeName),
	}
	m.initAddressInput()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		first := !m.ready
		m.ready = true
		m.updatePageViewport()
		if first {
			// Surface anything raised during boot resolution
			cmd := m.drainNotices()
			return m, cmd
		}
		return m, nil

	case statusExpireMsg:
		if msg.seq == m.statusSeq {
			m.status = nil
		}
		return m, nil
	}

	// Cursor blink and other component messages for the open prompt
	if m.addressActive {
		var cmd tea.Cmd
		m.addressInput, cmd = m.addressInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// The path prompt owns the keyboard while open
	if m.addressActive {
		return m.handleAddressKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		m.updatePageViewport()
		return m, nil

	case key.Matches(msg, m.keys.Address):
		cmd := m.openAddress()
		return m, cmd

	case key.Matches(msg, m.keys.Back):
		// The history synchronizer re-resolves on movement; the model
		// only refreshes what it shows.
		if m.hist.Back() {
			cmd := m.afterNav()
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		if m.hist.Forward() {
			cmd := m.afterNav()
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Home):
		cmd := m.navigateTo(m.ctrl.DefaultPath())
		return m, cmd

	case key.Matches(msg, m.keys.Reload):
		cmd := m.reload()
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		if m.status != nil {
			m.status = nil
			m.statusSeq++
		}
		return m, nil
	}

	return m.handlePageKey(msg)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderPage())
	b.WriteString("\n")
	b.WriteString(m.renderLinkBar())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	return b.String()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Controller == nil || opts.History == nil || opts.Renderer == nil {
		return fmt.Errorf("ui: controller, history, and renderer are required")
	}
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	return err
}
