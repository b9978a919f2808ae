package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/signup/core"
	"github.com/jask/signup/widgets"
)

// WelcomeScreen is the home view that Cancel returns to.
type WelcomeScreen struct {
	keys *core.KeyRegistry
}

func NewWelcomeScreen(keys *core.KeyRegistry) *WelcomeScreen {
	return &WelcomeScreen{keys: keys}
}

func (s *WelcomeScreen) Title() string { return "Welcome" }
func (s *WelcomeScreen) Scope() string { return core.ScopeWelcome }

func (s *WelcomeScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch s.keys.Action(km, s.Scope()) {
	case "signup":
		return s, core.Navigate(core.RouteRegister)
	case "login":
		return s, core.Navigate(core.RouteLogin)
	}
	return s, nil
}

func (s *WelcomeScreen) View(width, height int) string {
	content := widgets.VStack{Spacing: 1, Widgets: []widgets.Widget{
		widgets.Text("Create an account or sign in to continue."),
		widgets.Text(core.MutedStyle.Render(keyHints(s.keys, s.Scope()))),
	}}.Render(48, 6)
	box := widgets.Box{Title: core.TitleStyle.Render("Welcome"), Content: content, Width: 52}
	return widgets.Center(box.Render(width, height), width, height)
}

// keyHints renders the help entries of scope as a single line.
func keyHints(keys *core.KeyRegistry, scope string) string {
	help := keys.Help(scope)
	parts := make([]string, 0, len(help))
	for _, b := range help {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, "   ")
}
