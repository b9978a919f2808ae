package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	if r == nil {
		return nil
	}
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Help returns help entries for scope, one per description; the first
// binding listed for a description wins.
func (r *KeyRegistry) Help(scope string) []key.Binding {
	seen := map[string]bool{}
	var out []key.Binding
	for _, b := range r.BindingsForScope(scope) {
		if len(b.Keys) == 0 || b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)))
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	if r == nil {
		return false
	}
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// Action returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	if r == nil {
		return ""
	}
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
