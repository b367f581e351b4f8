package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// initAddressInput builds the path prompt input.
func (m *Model) initAddressInput() {
	ti := textinput.New()
	ti.Placeholder = "/path"
	ti.CharLimit = addressCharLimit
	m.addressInput = ti
}

// openAddress activates the path prompt.
func (m *Model) openAddress() tea.Cmd {
	m.addressActive = true
	m.addressInput.SetValue("")
	m.addressInput.Focus()
	return textinput.Blink
}

// closeAddress deactivates the path prompt.
func (m *Model) closeAddress() {
	m.addressActive = false
	m.addressInput.Blur()
	m.addressInput.SetValue("")
}

// handleAddressKey handles keyboard input while the path prompt is open.
func (m Model) handleAddressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		raw := strings.TrimSpace(m.addressInput.Value())
		m.closeAddress()
		if raw == "" {
			return m, nil
		}
		if !strings.HasPrefix(raw, "/") {
			raw = "/" + raw
		}
		cmd := m.navigateTo(raw)
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		m.closeAddress()
		return m, nil
	}

	// Let the text input handle the key
	var cmd tea.Cmd
	m.addressInput, cmd = m.addressInput.Update(msg)
	return m, cmd
}
