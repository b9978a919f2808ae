package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func RenderFooter(m Model) string {
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	help := m.keys.Help(m.ActiveScope())
	parts := make([]string, 0, len(help))
	for _, kb := range help {
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, bg)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
