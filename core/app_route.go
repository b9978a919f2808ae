package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case NavigateMsg:
		return m, m.navigate(msg.Route)
	case tea.KeyMsg:
		scope := m.ActiveScope()
		if m.keys.IsAction(msg, ActionQuit, scope) || m.keys.IsAction(msg, ActionMenuQuit, scope) {
			m.closeScreen()
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.screen == nil {
		return m, nil
	}
	next, cmd := m.screen.Update(msg)
	if next != nil {
		m.screen = next
	}
	return m, cmd
}
