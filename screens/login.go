package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/signup/core"
	"github.com/jask/signup/widgets"
)

// LoginScreen is where successful registrations land. Signing in is handled
// elsewhere; this view only routes onward.
type LoginScreen struct {
	keys *core.KeyRegistry
}

func NewLoginScreen(keys *core.KeyRegistry) *LoginScreen {
	return &LoginScreen{keys: keys}
}

func (s *LoginScreen) Title() string { return "Login" }
func (s *LoginScreen) Scope() string { return core.ScopeLogin }

func (s *LoginScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch s.keys.Action(km, s.Scope()) {
	case "signup":
		return s, core.Navigate(core.RouteRegister)
	case "back":
		return s, core.Navigate(core.RouteWelcome)
	}
	return s, nil
}

func (s *LoginScreen) View(width, height int) string {
	content := widgets.VStack{Spacing: 1, Widgets: []widgets.Widget{
		widgets.Text("Sign in with your username and password."),
		widgets.Text(core.MutedStyle.Render(keyHints(s.keys, s.Scope()))),
	}}.Render(48, 6)
	box := widgets.Box{Title: core.TitleStyle.Render("Login"), Content: content, Width: 52}
	return widgets.Center(box.Render(width, height), width, height)
}
