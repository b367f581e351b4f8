package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// navigateTo pushes path through the controller. Failures are loud: they
// go to the log and stay on the status line until the next navigation.
func (m *Model) navigateTo(path string) tea.Cmd {
	if err := m.ctrl.Navigate(path); err != nil {
		m.log.Error("navigate failed", "path", path, "err", err)
		cmd := m.setStatus(Notice{Kind: NoticeError, Text: err.Error()})
		m.updatePageViewport()
		return cmd
	}
	return m.afterNav()
}

// reload re-resolves the current path, mounting a fresh instance of the
// same view.
func (m *Model) reload() tea.Cmd {
	if err := m.ctrl.Resolve(); err != nil {
		m.log.Error("resolve failed", "path", m.hist.Current(), "err", err)
		cmd := m.setStatus(Notice{Kind: NoticeError, Text: err.Error()})
		m.updatePageViewport()
		return cmd
	}
	return m.afterNav()
}

// afterNav refreshes the page surface and surfaces queued notices after
// any operation that may have moved navigation state.
func (m *Model) afterNav() tea.Cmd {
	cmd := m.drainNotices()
	m.updatePageViewport()
	return cmd
}
