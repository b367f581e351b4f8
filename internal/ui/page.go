package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// pageCache remembers what the viewport currently holds, so markdown is
// re-rendered only when the mounted instance, the width, or the theme
// changes, not on every frame.
type pageCache struct {
	instanceID string
	width      int
	theme      string
}

// initPageViewport initializes the page viewport.
func (m *Model) initPageViewport() {
	m.pageViewport = viewport.New(m.pageInnerWidth(), m.pageInnerHeight())
	m.pageViewport.Style = lipgloss.NewStyle()
}

// pageBoxHeight returns the total height of the page box, borders included.
// Header and command bar sit above it, link bar and status line below.
func (m Model) pageBoxHeight() int {
	return m.height - chromeRows
}

func (m Model) pageInnerWidth() int {
	return m.width - pageBorderCells
}

func (m Model) pageInnerHeight() int {
	return m.pageBoxHeight() - pageBorderCells
}

// updatePageViewport refreshes viewport dimensions and re-renders the
// mounted page when the cache is stale. A freshly mounted instance always
// starts scrolled to the top.
func (m *Model) updatePageViewport() {
	if !m.ready {
		return
	}
	if m.pageViewport.Width == 0 {
		m.initPageViewport()
	}
	m.pageViewport.Width = m.pageInnerWidth()
	m.pageViewport.Height = m.pageInnerHeight()

	in := m.renderer.Mounted()
	if in == nil {
		m.pageViewport.SetContent(m.theme.Styles().FaintText.Render("nothing mounted"))
		m.cache = pageCache{}
		return
	}

	if m.cache.instanceID == in.ID && m.cache.width == m.width && m.cache.theme == m.theme.Name {
		return
	}

	fresh := m.cache.instanceID != in.ID
	m.pageViewport.SetContent(m.renderMarkdown(in.Content))
	m.cache = pageCache{instanceID: in.ID, width: m.width, theme: m.theme.Name}
	if fresh {
		m.pageViewport.GotoTop()
	}
}

// renderMarkdown renders page markdown through glamour, falling back to
// the raw text if rendering fails.
func (m *Model) renderMarkdown(content string) string {
	style := "dark"
	if !m.theme.Dark {
		style = "light"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(m.pageInnerWidth()-markdownGutter),
	)
	if err != nil {
		m.log.Warn("markdown renderer unavailable", "err", err)
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		m.log.Warn("render markdown", "err", err)
		return content
	}
	return out
}

// renderPage renders the bordered page box around the viewport.
func (m Model) renderPage() string {
	borderColor := m.theme.BorderFocus
	if m.addressActive {
		borderColor = m.theme.Border
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(m.pageInnerWidth()).
		Height(m.pageInnerHeight())

	return box.Render(m.pageViewport.View())
}

// renderLinkBar renders the numbered links of the mounted page. Focus is
// read off the instance itself; the bar has no state of its own.
func (m Model) renderLinkBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	in := m.renderer.Mounted()
	if in == nil || len(in.Links) == 0 {
		return bg.FillLine(bg.Space()+bg.Render("no links", styles.FaintText), m.width)
	}

	segments := make([]string, 0, len(in.Links))
	for i, l := range in.Links {
		label := fmt.Sprintf("%d %s", i+1, l.Label)
		if i == in.Focus() {
			segments = append(segments, styles.Selected.Padding(0, 1).Render(label))
		} else {
			segments = append(segments, bg.Render(label, styles.AccentText))
		}
	}

	return bg.FillLine(bg.Space()+bg.Join(segments, "   "), m.width)
}

// handlePageKey processes keyboard input for the page surface. Link keys
// are handled here once, for whatever page happens to be mounted; pages
// never carry their own key handling.
func (m Model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextLink):
		if in := m.renderer.Mounted(); in != nil {
			in.CycleFocus(1)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevLink):
		if in := m.renderer.Mounted(); in != nil {
			in.CycleFocus(-1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		in := m.renderer.Mounted()
		if in == nil {
			return m, nil
		}
		if link, ok := in.FocusedLink(); ok {
			cmd := m.navigateTo(link.Target)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Jump):
		in := m.renderer.Mounted()
		if in == nil {
			return m, nil
		}
		idx := int(msg.String()[0] - '1')
		if in.SetFocus(idx) {
			link, _ := in.FocusedLink()
			cmd := m.navigateTo(link.Target)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.pageViewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.pageViewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.pageViewport.ScrollDown(1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.pageViewport.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.pageViewport.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.pageViewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.pageViewport.PageDown()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.pageViewport.PageUp()
		return m, nil
	}

	return m, nil
}
