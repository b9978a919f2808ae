package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerTitleStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)

// Styles shared by screens.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	LabelStyle = lipgloss.NewStyle().Foreground(colorText).Width(10)
	MutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	ErrorStyle = lipgloss.NewStyle().Foreground(colorError)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 2)
	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorAccent).
				Bold(true).
				Padding(0, 2)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorBorder)
	FocusedInputStyle = InputStyle.BorderForeground(colorAccent)
)
