package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/signup/internal/logger"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Scope() string
	Title() string
}

// ScreenInitializer is implemented by screens that need a command when mounted.
type ScreenInitializer interface {
	InitScreen() tea.Cmd
}

// Closer is implemented by screens that own resources (in-flight requests)
// which must be released when the screen is navigated away from.
type Closer interface {
	Close()
}

type Model struct {
	width     int
	height    int
	router    *Router
	route     Route
	screen    Screen
	keys      *KeyRegistry
	status    string
	statusErr bool
	quitting  bool
}

func NewModel(router *Router, start Route, keys *KeyRegistry) Model {
	m := Model{
		router: router,
		keys:   keys,
		status: "Ready",
		width:  80,
		height: 24,
	}
	if err := m.mount(start); err != nil {
		m.SetError(err)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if initScreen, ok := m.screen.(ScreenInitializer); ok {
		return initScreen.InitScreen()
	}
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if m.screen == nil {
		return "app"
	}
	return m.screen.Scope()
}

func (m Model) Route() Route {
	return m.route
}

func (m Model) Screen() Screen {
	return m.screen
}

func (m Model) Quitting() bool {
	return m.quitting
}

// navigate closes the current screen and mounts a fresh one for route.
func (m *Model) navigate(route Route) tea.Cmd {
	if err := m.mount(route); err != nil {
		m.SetError(err)
		return nil
	}
	m.SetStatus("")
	if initScreen, ok := m.screen.(ScreenInitializer); ok {
		return initScreen.InitScreen()
	}
	return nil
}

func (m *Model) mount(route Route) error {
	next, err := m.router.Build(route)
	if err != nil {
		return err
	}
	m.closeScreen()
	logger.Log.Debugw("navigate", "from", string(m.route), "to", string(route))
	m.route = route
	m.screen = next
	return nil
}

func (m *Model) closeScreen() {
	if c, ok := m.screen.(Closer); ok {
		c.Close()
	}
}
