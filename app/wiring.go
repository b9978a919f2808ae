package app

import (
	"fmt"

	"github.com/jask/signup/core"
	"github.com/jask/signup/internal/config"
	"github.com/jask/signup/screens"
)

// KeyRegistry builds the default bindings with per-action overrides from config.
func KeyRegistry(cfg config.Config) *core.KeyRegistry {
	return core.NewKeyRegistry(keyBindings(cfg))
}

// KeyTable returns the effective keys.<action> table: every known action
// with its default keys unless config overrides them. Unknown actions are dropped.
func KeyTable(cfg config.Config) map[string][]string {
	return core.DefaultKeybindingsByAction(keyBindings(cfg))
}

func keyBindings(cfg config.Config) []core.KeyBinding {
	return core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys)
}

// Router registers every screen the app can show.
func Router(api screens.Registrar, keys *core.KeyRegistry) *core.Router {
	r := core.NewRouter()
	r.Handle(core.RouteWelcome, func() core.Screen { return screens.NewWelcomeScreen(keys) })
	r.Handle(core.RouteLogin, func() core.Screen { return screens.NewLoginScreen(keys) })
	r.Handle(core.RouteRegister, func() core.Screen { return screens.NewRegisterScreen(api, keys) })
	return r
}

// New assembles the root model, starting on the configured route.
func New(cfg config.Config, api screens.Registrar) (core.Model, error) {
	keys := KeyRegistry(cfg)
	router := Router(api, keys)
	start := core.RouteRegister
	if cfg.UI.StartRoute != "" {
		route, err := router.ParseRoute(cfg.UI.StartRoute)
		if err != nil {
			return core.Model{}, fmt.Errorf("ui.start_route: %w", err)
		}
		start = route
	}
	return core.NewModel(router, start, keys), nil
}
