package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderModal draws content inside a bordered box centered over the full
// screen, dimming nothing: the whitespace fill takes the theme background
// so the overlay reads as a layer above the page.
func (m Model) renderModal(content string, width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(width)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
