package core

import "strings"

// Screen scopes used by key bindings.
const (
	ScopeWelcome  = "screen:welcome"
	ScopeLogin    = "screen:login"
	ScopeRegister = "screen:register"
)

// Quit actions handled by the root model. Every other action belongs to a screen.
const (
	ActionQuit     = "quit"
	ActionMenuQuit = "menu-quit"
)

// DefaultKeyBindings lists one binding per action, so a keys.<action>
// override in config changes exactly one binding.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: ActionMenuQuit, Description: "quit", Scopes: []string{ScopeWelcome, ScopeLogin}},
		{Keys: []string{"ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"s"}, Action: "signup", Description: "sign up", Scopes: []string{ScopeWelcome, ScopeLogin}},
		{Keys: []string{"l"}, Action: "login", Description: "login", Scopes: []string{ScopeWelcome}},
		{Keys: []string{"esc", "b"}, Action: "back", Description: "back", Scopes: []string{ScopeLogin}},
		{Keys: []string{"tab", "down"}, Action: "next-field", Description: "next", Scopes: []string{ScopeRegister}},
		{Keys: []string{"shift+tab", "up"}, Action: "prev-field", Description: "prev", Scopes: []string{ScopeRegister}},
		{Keys: []string{"enter"}, Action: "activate", Description: "select", Scopes: []string{ScopeRegister}},
		{Keys: []string{"ctrl+s"}, Action: "submit", Description: "sign up", Scopes: []string{ScopeRegister}},
		{Keys: []string{"ctrl+l"}, Action: "goto-login", Description: "login", Scopes: []string{ScopeRegister}},
		{Keys: []string{"esc"}, Action: "cancel", Description: "cancel", Scopes: []string{ScopeRegister}},
	}
}

// DefaultKeybindingsByAction flattens bindings into the keys.<action> table
// written to config.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
