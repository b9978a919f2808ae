package widgets

import "github.com/charmbracelet/lipgloss"

// Box draws a rounded border around Content with Title on the first line.
type Box struct {
	Title   string
	Content string
	Width   int
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	w := width - 2
	if b.Width > 0 && b.Width < w {
		w = b.Width
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(max(1, w))
	body := b.Content
	if b.Title != "" {
		body = b.Title + "\n\n" + body
	}
	return style.Render(body)
}

// Center places content in the middle of a width x height canvas.
func Center(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
