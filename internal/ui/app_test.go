package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davren/signpost/internal/history"
	"github.com/davren/signpost/internal/nav"
	"github.com/davren/signpost/internal/route"
	"github.com/davren/signpost/internal/view"
)

// newTestModel wires a two-page site, resolves the starting path, and
// sizes the model so it is ready for input.
func newTestModel(t *testing.T) Model {
	t.Helper()

	reg := view.NewRegistry()
	pages := []struct{ id, title, content string }{
		{"login", "Sign in", "# Sign in\n\nWelcome back.\n\n[Dashboard](/dashboard)\n"},
		{"dashboard", "Dashboard", "# Dashboard\n\n[Sign out](/login)\n[Reports](/reports)\n"},
	}
	for _, p := range pages {
		def, err := view.NewDefinition(p.id, p.title, p.content)
		if err != nil {
			t.Fatalf("NewDefinition(%s): %v", p.id, err)
		}
		if err := reg.Add(def); err != nil {
			t.Fatalf("Add(%s): %v", p.id, err)
		}
	}

	table := route.New()
	for _, e := range []route.Entry{
		{Path: "/login", View: "login"},
		{Path: "/dashboard", View: "dashboard"},
	} {
		if err := table.Add(e); err != nil {
			t.Fatalf("table.Add(%s): %v", e.Path, err)
		}
	}

	hist := history.New("/login")
	renderer := view.NewRenderer(reg, nil)
	notices := NewNotices()

	ctrl, err := nav.New(nav.Options{
		Table:       table,
		Renderer:    renderer,
		History:     hist,
		DefaultPath: "/login",
		OnFallback: func(requested string) {
			notices.Push(NoticeWarn, fmt.Sprintf("no route for %s", requested))
		},
	})
	if err != nil {
		t.Fatalf("nav.New: %v", err)
	}

	sync := nav.NewSynchronizer(ctrl, nil)
	sync.Bind(hist)

	if err := ctrl.Resolve(); err != nil {
		t.Fatalf("initial resolve: %v", err)
	}

	m := New(Options{
		Controller: ctrl,
		History:    hist,
		Renderer:   renderer,
		Notices:    notices,
		ThemeName:  "Nightfox",
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
	})

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	return sized.(Model)
}

// keyMsg helper for tests
func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestView_LoadingUntilSized(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before sizing = %q, want Loading...", got)
	}
}

func TestView_RendersMountedPage(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	if !strings.Contains(out, "signpost") {
		t.Fatalf("View missing logo:\n%s", out)
	}
	if !strings.Contains(out, "/login") {
		t.Fatalf("View missing current path:\n%s", out)
	}
}

func TestTabCyclesLinkFocus(t *testing.T) {
	m := newTestModel(t)
	cmd := m.navigateTo("/dashboard")
	_ = cmd

	m2, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m3 := m2.(Model)
	if got := m3.renderer.Mounted().Focus(); got != 1 {
		t.Fatalf("after tab: focus = %d, want 1", got)
	}

	m4, _ := m3.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m5 := m4.(Model)
	if got := m5.renderer.Mounted().Focus(); got != 0 {
		t.Fatalf("after shift+tab: focus = %d, want 0", got)
	}

	// Wrap around backwards
	m6, _ := m5.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m7 := m6.(Model)
	if got := m7.renderer.Mounted().Focus(); got != 1 {
		t.Fatalf("after shift+tab from 0: focus = %d, want 1 (wrap)", got)
	}
}

func TestEnterOpensFocusedLink(t *testing.T) {
	m := newTestModel(t)

	// Focused link on /login is its only link, /dashboard
	m2, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m3 := m2.(Model)
	if got := m3.hist.Current(); got != "/dashboard" {
		t.Fatalf("after enter: current = %q, want /dashboard", got)
	}
	if got := m3.renderer.Mounted().View; got != "dashboard" {
		t.Fatalf("after enter: mounted = %q, want dashboard", got)
	}
}

func TestJumpKeyOpensNumberedLink(t *testing.T) {
	m := newTestModel(t)
	_ = m.navigateTo("/dashboard")

	// Link 2 on the dashboard is the dead /reports path: the controller
	// falls back to the default route and raises a notice.
	m2, _ := m.Update(keyMsg("2"))
	m3 := m2.(Model)

	if got := m3.hist.Current(); got != "/login" {
		t.Fatalf("after dead link: current = %q, want /login", got)
	}
	if got := m3.renderer.Mounted().View; got != "login" {
		t.Fatalf("after dead link: mounted = %q, want login", got)
	}
	if m3.status == nil || m3.status.Kind != NoticeWarn {
		t.Fatalf("after dead link: status = %+v, want warn notice", m3.status)
	}
	if !strings.Contains(m3.status.Text, "/reports") {
		t.Fatalf("status text = %q, want it to name /reports", m3.status.Text)
	}
	// start + /dashboard + /reports + redirect
	if got := m3.hist.Len(); got != 4 {
		t.Fatalf("history len = %d, want 4", got)
	}
}

func TestJumpKeyOutOfRangeIsNoop(t *testing.T) {
	m := newTestModel(t)
	_ = m.navigateTo("/dashboard")

	m2, _ := m.Update(keyMsg("9"))
	m3 := m2.(Model)
	if got := m3.hist.Current(); got != "/dashboard" {
		t.Fatalf("after out-of-range jump: current = %q, want /dashboard", got)
	}
	if got := m3.hist.Len(); got != 2 {
		t.Fatalf("history len = %d, want 2", got)
	}
}

func TestBackForwardKeys(t *testing.T) {
	m := newTestModel(t)
	_ = m.navigateTo("/dashboard")

	m2, _ := m.Update(keyMsg("b"))
	m3 := m2.(Model)
	if got := m3.hist.Current(); got != "/login" {
		t.Fatalf("after back: current = %q, want /login", got)
	}
	if got := m3.renderer.Mounted().View; got != "login" {
		t.Fatalf("after back: mounted = %q, want login", got)
	}

	m4, _ := m3.Update(keyMsg("f"))
	m5 := m4.(Model)
	if got := m5.hist.Current(); got != "/dashboard" {
		t.Fatalf("after forward: current = %q, want /dashboard", got)
	}
	if got := m5.renderer.Mounted().View; got != "dashboard" {
		t.Fatalf("after forward: mounted = %q, want dashboard", got)
	}
	if got := m5.hist.Len(); got != 2 {
		t.Fatalf("traversal changed history len = %d, want 2", got)
	}
}

func TestBackAtOldestEntryKeepsPage(t *testing.T) {
	m := newTestModel(t)

	m2, _ := m.Update(keyMsg("b"))
	m3 := m2.(Model)
	if got := m3.hist.Current(); got != "/login" {
		t.Fatalf("after no-op back: current = %q, want /login", got)
	}
	if got := m3.renderer.Mounted().View; got != "login" {
		t.Fatalf("after no-op back: mounted = %q, want login", got)
	}
}

func TestAddressPromptNavigates(t *testing.T) {
	m := newTestModel(t)

	m2, _ := m.Update(keyMsg(":"))
	m3 := m2.(Model)
	if !m3.addressActive {
		t.Fatalf("after ':': prompt not active")
	}

	// Without a leading slash; the prompt adds it
	m4, _ := m3.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("dashboard")})
	m5 := m4.(Model)

	m6, _ := m5.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m7 := m6.(Model)
	if m7.addressActive {
		t.Fatalf("after enter: prompt still active")
	}
	if got := m7.hist.Current(); got != "/dashboard" {
		t.Fatalf("after prompt: current = %q, want /dashboard", got)
	}
}

func TestAddressPromptEscCancels(t *testing.T) {
	m := newTestModel(t)

	m2, _ := m.Update(keyMsg(":"))
	m3 := m2.(Model)
	m4, _ := m3.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/dashboard")})
	m5 := m4.(Model)
	m6, _ := m5.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m7 := m6.(Model)

	if m7.addressActive {
		t.Fatalf("after esc: prompt still active")
	}
	if got := m7.hist.Current(); got != "/login" {
		t.Fatalf("after cancel: current = %q, want /login unchanged", got)
	}
	if got := m7.hist.Len(); got != 1 {
		t.Fatalf("after cancel: history len = %d, want 1", got)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("quit key returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit key cmd = %T, want tea.QuitMsg", cmd())
	}
}

func TestThemeCycleKeyPersistsPref(t *testing.T) {
	m := newTestModel(t)

	m2, _ := m.Update(keyMsg("T"))
	m3 := m2.(Model)
	if got := m3.theme.Name; got != "Kanagawa" {
		t.Fatalf("after T: theme = %q, want Kanagawa", got)
	}

	if _, err := os.Stat(m3.prefsPath); err != nil {
		t.Fatalf("prefs file not written: %v", err)
	}
}

func TestHelpOverlayOpensAndCloses(t *testing.T) {
	m := newTestModel(t)

	m2, _ := m.Update(keyMsg("?"))
	m3 := m2.(Model)
	if !m3.showHelp {
		t.Fatalf("after ?: help not shown")
	}
	if out := m3.View(); !strings.Contains(out, "Keyboard Shortcuts") {
		t.Fatalf("help view missing title:\n%s", out)
	}

	// Any key closes help
	m4, _ := m3.Update(keyMsg("x"))
	m5 := m4.(Model)
	if m5.showHelp {
		t.Fatalf("after any key: help still shown")
	}
}

func TestReloadMountsFreshInstance(t *testing.T) {
	m := newTestModel(t)
	before := m.renderer.Mounted().ID

	m2, _ := m.Update(keyMsg("r"))
	m3 := m2.(Model)
	after := m3.renderer.Mounted()
	if after.ID == before {
		t.Fatalf("reload kept instance %s, want a fresh one", before)
	}
	if after.View != "login" {
		t.Fatalf("reload mounted %q, want login", after.View)
	}
	if got := m3.hist.Len(); got != 1 {
		t.Fatalf("reload changed history len = %d, want 1", got)
	}
}

func TestStatusExpiry(t *testing.T) {
	m := newTestModel(t)
	_ = m.navigateTo("/nowhere") // dead path raises a warn notice

	if m.status == nil {
		t.Fatalf("no status after fallback")
	}

	// A stale expiry must not clear a newer notice
	m2, _ := m.Update(statusExpireMsg{seq: m.statusSeq - 1})
	m3 := m2.(Model)
	if m3.status == nil {
		t.Fatalf("stale expiry cleared status")
	}

	m4, _ := m3.Update(statusExpireMsg{seq: m3.statusSeq})
	m5 := m4.(Model)
	if m5.status != nil {
		t.Fatalf("matching expiry left status = %+v", m5.status)
	}
}

func TestEscDismissesStatus(t *testing.T) {
	m := newTestModel(t)
	_ = m.navigateTo("/nowhere")
	if m.status == nil {
		t.Fatalf("no status after fallback")
	}

	m2, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m3 := m2.(Model)
	if m3.status != nil {
		t.Fatalf("esc left status = %+v", m3.status)
	}
}
