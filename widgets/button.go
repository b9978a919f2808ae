package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Button struct {
	Label   string
	Focused bool
}

// ButtonRow renders buttons side by side, styling the focused one with focus.
func ButtonRow(buttons []Button, normal, focus lipgloss.Style) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		label := "[ " + b.Label + " ]"
		if b.Focused {
			parts = append(parts, focus.Render(label))
			continue
		}
		parts = append(parts, normal.Render(label))
	}
	return strings.Join(parts, " ")
}
