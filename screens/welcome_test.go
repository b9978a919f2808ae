package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/signup/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestWelcomeRoutes(t *testing.T) {
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	s := NewWelcomeScreen(keys)

	_, cmd := s.Update(runeKey('s'))
	requireNavigate(t, cmd, core.RouteRegister)

	_, cmd = s.Update(runeKey('l'))
	requireNavigate(t, cmd, core.RouteLogin)

	_, cmd = s.Update(runeKey('x'))
	require.Nil(t, cmd)

	_, cmd = s.Update(registerResultMsg{formID: "gone"})
	require.Nil(t, cmd)

	require.Contains(t, s.View(80, 20), "Welcome")
}

func TestLoginRoutes(t *testing.T) {
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	s := NewLoginScreen(keys)

	_, cmd := s.Update(runeKey('s'))
	requireNavigate(t, cmd, core.RouteRegister)

	_, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	requireNavigate(t, cmd, core.RouteWelcome)

	_, cmd = s.Update(runeKey('l'))
	require.Nil(t, cmd)

	require.Contains(t, s.View(80, 20), "Login")
}

func TestHintsFollowKeyOverrides(t *testing.T) {
	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), map[string][]string{
		"signup":    {"n"},
		"menu-quit": {"x"},
	}))

	welcome := NewWelcomeScreen(keys).View(80, 20)
	require.Contains(t, welcome, "n: sign up")
	require.Contains(t, welcome, "x: quit")
	require.NotContains(t, welcome, "s: sign up")

	login := NewLoginScreen(keys).View(80, 20)
	require.Contains(t, login, "n: sign up")
	require.Contains(t, login, "esc: back")
}
