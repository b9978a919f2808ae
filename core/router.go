package core

import (
	"fmt"
	"sort"
	"strings"
)

// Route names a screen the app can navigate to.
type Route string

const (
	RouteWelcome  Route = "welcome"
	RouteLogin    Route = "login"
	RouteRegister Route = "register"
)

// ScreenFactory builds a fresh screen instance for a route.
type ScreenFactory func() Screen

// Router maps routes to screen factories. Every navigation builds a new
// screen, so screen-local state never survives leaving a route.
type Router struct {
	routes map[Route]ScreenFactory
}

func NewRouter() *Router {
	return &Router{routes: map[Route]ScreenFactory{}}
}

func (r *Router) Handle(route Route, factory ScreenFactory) {
	if factory == nil {
		return
	}
	r.routes[route] = factory
}

// Build returns a new screen for route.
func (r *Router) Build(route Route) (Screen, error) {
	factory, ok := r.routes[route]
	if !ok {
		return nil, fmt.Errorf("unknown route %q (known: %s)", route, strings.Join(r.names(), ", "))
	}
	screen := factory()
	if screen == nil {
		return nil, fmt.Errorf("route %q built no screen", route)
	}
	return screen, nil
}

// ParseRoute resolves a configured route name.
func (r *Router) ParseRoute(name string) (Route, error) {
	route := Route(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := r.routes[route]; !ok {
		return "", fmt.Errorf("unknown route %q (known: %s)", name, strings.Join(r.names(), ", "))
	}
	return route, nil
}

func (r *Router) names() []string {
	out := make([]string, 0, len(r.routes))
	for name := range r.routes {
		out = append(out, string(name))
	}
	sort.Strings(out)
	return out
}
