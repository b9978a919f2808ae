package screens

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jask/signup/core"
	"github.com/jask/signup/internal/authapi"
	"github.com/jask/signup/internal/logger"
	"github.com/jask/signup/internal/signup"
	"github.com/jask/signup/widgets"
)

// Registrar creates accounts.
type Registrar interface {
	Register(ctx context.Context, req authapi.RegisterRequest) (authapi.Result, error)
}

// focus ring positions after the three inputs
const (
	focusSubmit = len(signup.Fields) + iota
	focusLogin
	focusCancel
	focusCount
)

// registerResultMsg reports one finished submission back to the form that sent it.
type registerResultMsg struct {
	formID    string
	attemptID string
	result    authapi.Result
	err       error
}

// RegisterScreen is the registration form. Each instance owns a context
// that is cancelled when the screen is closed; results addressed to another
// or a closed instance are dropped.
type RegisterScreen struct {
	id       string
	ctx      context.Context
	cancel   context.CancelFunc
	api      Registrar
	keys     *core.KeyRegistry
	form     signup.Form
	inputs   [len(signup.Fields)]textinput.Model
	focus    int
	inflight int
	closed   bool
}

func NewRegisterScreen(api Registrar, keys *core.KeyRegistry) *RegisterScreen {
	ctx, cancel := context.WithCancel(context.Background())
	s := &RegisterScreen{
		id:     uuid.NewString(),
		ctx:    ctx,
		cancel: cancel,
		api:    api,
		keys:   keys,
	}
	for i, f := range signup.Fields {
		inp := textinput.New()
		inp.Prompt = ""
		inp.Width = 32
		if f == signup.FieldPassword {
			inp.EchoMode = textinput.EchoPassword
			inp.EchoCharacter = '•'
		}
		s.inputs[i] = inp
	}
	s.inputs[0].Focus()
	return s
}

func (s *RegisterScreen) Title() string { return "Sign Up" }
func (s *RegisterScreen) Scope() string { return core.ScopeRegister }

func (s *RegisterScreen) InitScreen() tea.Cmd {
	return textinput.Blink
}

// Close cancels in-flight submissions; their results will be ignored.
func (s *RegisterScreen) Close() {
	s.closed = true
	s.cancel()
}

// Form returns a copy of the current form state.
func (s *RegisterScreen) Form() signup.Form { return s.form }

// Focus returns the focus ring position.
func (s *RegisterScreen) Focus() int { return s.focus }

// Inflight returns how many submissions are awaiting a response.
func (s *RegisterScreen) Inflight() int { return s.inflight }

func (s *RegisterScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		return s, s.finish(msg)
	case tea.KeyMsg:
		// printable input always belongs to the focused field
		if msg.Type == tea.KeyRunes {
			break
		}
		switch s.keys.Action(msg, s.Scope()) {
		case "submit":
			return s, s.submit()
		case "goto-login":
			return s, core.Navigate(core.RouteLogin)
		case "cancel":
			return s, core.Navigate(core.RouteWelcome)
		case "next-field":
			return s, s.moveFocus(1)
		case "prev-field":
			return s, s.moveFocus(-1)
		case "activate":
			return s, s.activate()
		}
	}
	if s.focus >= len(s.inputs) {
		return s, nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	s.form.Set(signup.Fields[s.focus], s.inputs[s.focus].Value())
	return s, cmd
}

// activate performs the action of the focused element. Enter inside an
// input submits, like a browser form.
func (s *RegisterScreen) activate() tea.Cmd {
	switch s.focus {
	case focusLogin:
		return core.Navigate(core.RouteLogin)
	case focusCancel:
		return core.Navigate(core.RouteWelcome)
	default:
		return s.submit()
	}
}

// submit validates and, if the form is complete, starts one request.
// Nothing prevents a second submit while the first is still pending.
func (s *RegisterScreen) submit() tea.Cmd {
	req, err := s.form.Prepare()
	if err != nil {
		logger.Log.Debugw("registration rejected locally", "form", s.id, "err", err)
		return nil
	}
	attemptID := uuid.NewString()
	s.inflight++
	logger.Log.Infow("registration submitted", "form", s.id, "attempt", attemptID, "username", req.Username)

	formID, ctx, api := s.id, s.ctx, s.api
	return func() tea.Msg {
		res, err := api.Register(authapi.WithRequestID(ctx, attemptID), req)
		return registerResultMsg{formID: formID, attemptID: attemptID, result: res, err: err}
	}
}

func (s *RegisterScreen) finish(msg registerResultMsg) tea.Cmd {
	if msg.formID != s.id || s.closed {
		logger.Log.Debugw("dropping stale registration result", "form", msg.formID, "attempt", msg.attemptID)
		return nil
	}
	if s.inflight > 0 {
		s.inflight--
	}
	outcome := s.form.Apply(msg.result, msg.err)
	logger.Log.Infow("registration finished",
		"form", s.id,
		"attempt", msg.attemptID,
		"status", msg.result.StatusCode,
		"outcome", outcome.String(),
		"err", msg.err,
	)
	if outcome == signup.OutcomeCreated {
		return core.Navigate(core.RouteLogin)
	}
	return nil
}

func (s *RegisterScreen) moveFocus(dir int) tea.Cmd {
	if s.focus < len(s.inputs) {
		s.inputs[s.focus].Blur()
	}
	s.focus = (s.focus + dir + focusCount) % focusCount
	if s.focus < len(s.inputs) {
		return s.inputs[s.focus].Focus()
	}
	return nil
}

func (s *RegisterScreen) View(width, height int) string {
	lines := make([]string, 0, 12)
	for i, f := range signup.Fields {
		style := core.InputStyle
		if i == s.focus {
			style = core.FocusedInputStyle
		}
		row := lipgloss.JoinHorizontal(lipgloss.Bottom, core.LabelStyle.Render(f.Label()), style.Render(s.inputs[i].View()))
		lines = append(lines, row)
	}
	if s.form.Error != "" {
		lines = append(lines, "", core.ErrorStyle.Render(s.form.Error))
	}
	lines = append(lines, "", widgets.ButtonRow([]widgets.Button{
		{Label: "Sign Up", Focused: s.focus == focusSubmit},
		{Label: "Login", Focused: s.focus == focusLogin},
		{Label: "Cancel", Focused: s.focus == focusCancel},
	}, core.ButtonStyle, core.FocusedButtonStyle))
	if s.inflight > 0 {
		lines = append(lines, "", core.MutedStyle.Render("submitting…"))
	}
	box := widgets.Box{Title: core.TitleStyle.Render("Sign Up"), Content: strings.Join(lines, "\n"), Width: 52}
	return widgets.Center(box.Render(width, height), width, height)
}
