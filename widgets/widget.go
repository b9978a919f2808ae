package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Widget interface {
	Render(width, height int) string
}

// Text renders its content truncated to the given width.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(string(t), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}

// VStack renders widgets top to bottom, each given the full width.
type VStack struct {
	Widgets []Widget
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	parts := make([]string, 0, len(v.Widgets))
	for _, w := range v.Widgets {
		parts = append(parts, w.Render(width, height))
	}
	out := strings.Join(parts, strings.Repeat("\n", v.Spacing+1))
	lines := strings.Split(out, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
