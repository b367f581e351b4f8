package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the top bar: logo, history arrows, current path,
// mounted view title. Everything is read live from the stack and renderer
// so the bar can never drift from the real navigation state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var parts []string

	// Logo
	parts = append(parts, renderLogo(styles, bg))

	// Back/forward availability
	backStyle := styles.FaintText
	if m.hist.CanBack() {
		backStyle = styles.Text
	}
	forwardStyle := styles.FaintText
	if m.hist.CanForward() {
		forwardStyle = styles.Text
	}
	parts = append(parts, bg.Render("‹", backStyle)+bg.Space()+bg.Render("›", forwardStyle))

	// Current path
	parts = append(parts, bg.Render(truncateMiddle(m.hist.Current(), headerPathWidth), styles.AccentText))

	// Mounted view title
	if in := m.renderer.Mounted(); in != nil {
		parts = append(parts, bg.Render(truncate(in.Title, headerTitleWidth), styles.Text))
	} else {
		parts = append(parts, bg.Render("nothing mounted", styles.WarningText))
	}

	// History position
	parts = append(parts, bg.Render(fmt.Sprintf("%d/%d", m.hist.Position(), m.hist.Len()), styles.MutedText))

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	if m.addressActive {
		commands = []cmd{
			{"enter", "Go"},
			{"esc", "Cancel"},
		}
	} else {
		commands = []cmd{
			{":", "Go to path"},
			{"tab", "Links"},
			{"enter", "Open"},
			{"b/f", "Back/Fwd"},
			{"H", "Home"},
			{"r", "Reload"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
