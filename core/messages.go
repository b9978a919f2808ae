package core

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg asks the root model to replace the current screen.
type NavigateMsg struct {
	Route Route
}

func Navigate(route Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route} }
}
