package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTextTruncatesToBounds(t *testing.T) {
	out := Text("abcdef\nsecond\nthird").Render(3, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if lines[0] != "abc" {
		t.Fatalf("first line = %q, want %q", lines[0], "abc")
	}
}

func TestVStackSpacing(t *testing.T) {
	out := VStack{Widgets: []Widget{Text("a"), Text("b")}, Spacing: 1}.Render(10, 10)
	if out != "a\n\nb" {
		t.Fatalf("got %q", out)
	}
}

func TestBoxIncludesTitleAndContent(t *testing.T) {
	out := Box{Title: "Sign Up", Content: "hello"}.Render(30, 10)
	if !strings.Contains(out, "Sign Up") || !strings.Contains(out, "hello") {
		t.Fatalf("box output missing parts:\n%s", out)
	}
	if out := (Box{}).Render(0, 5); out != "" {
		t.Fatalf("zero width should render nothing")
	}
}

func TestButtonRowMarksFocus(t *testing.T) {
	out := ButtonRow([]Button{{Label: "Sign Up"}, {Label: "Login", Focused: true}}, lipgloss.NewStyle(), lipgloss.NewStyle())
	if out != "[ Sign Up ] [ Login ]" {
		t.Fatalf("got %q", out)
	}
}

func TestCenterFillsCanvas(t *testing.T) {
	out := Center("x", 5, 3)
	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
}
