package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// renderStatusLine renders the bottom line: the address prompt while it is
// open, the latest notice when one is pending, otherwise a quiet summary.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.addressActive {
		return styles.Footer.Width(m.width).Render(
			bg.Render("go to", styles.AccentText) + bg.Space() + m.addressInput.View())
	}

	if m.status != nil {
		badge := m.theme.Styles().NoticeStyle(m.status.Kind).Render(noticeLabel(m.status.Kind))
		text := truncate(m.status.Text, m.width-12)
		return styles.Footer.Width(m.width).Render(
			badge + bg.Space() + bg.Render(text, styles.Text))
	}

	linkCount := 0
	if in := m.renderer.Mounted(); in != nil {
		linkCount = len(in.Links)
	}
	percent := int(m.pageViewport.ScrollPercent() * 100)

	parts := []string{
		bg.Render(fmt.Sprintf("%d links", linkCount), styles.MutedText),
		bg.Render(fmt.Sprintf("%d%%", percent), styles.FaintText),
		bg.Render("? help", styles.FaintText),
	}
	return styles.Footer.Width(m.width).Render(bg.Join(parts, "  "))
}

func noticeLabel(kind NoticeKind) string {
	switch kind {
	case NoticeWarn:
		return "WARN"
	case NoticeError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// drainNotices empties the shared notice box onto the status line. Only
// the newest notice is shown; older ones were already logged at source.
func (m *Model) drainNotices() tea.Cmd {
	notices := m.notices.Drain()
	if len(notices) == 0 {
		return nil
	}
	return m.setStatus(notices[len(notices)-1])
}

// setStatus replaces the status line notice. Errors stick until dismissed
// or replaced; info and warnings expire on their own.
func (m *Model) setStatus(n Notice) tea.Cmd {
	m.status = &n
	m.statusSeq++
	if n.Kind == NoticeError {
		return nil
	}
	return statusExpireCmd(m.statusSeq)
}

// Messages

type statusExpireMsg struct{ seq int }

// Commands

func statusExpireCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpireMsg{seq: seq}
	})
}
