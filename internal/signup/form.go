// Package signup holds registration form state and maps submission
// outcomes onto the messages shown to the user.
package signup

import (
	"errors"

	"github.com/jask/signup/internal/authapi"
)

const (
	MsgMissingFields = "Please fill in all fields."
	MsgUnexpected    = "An unexpected error occurred."
	MsgUnreachable   = "Unable to connect to the server."
)

// ErrMissingFields is returned when any field is empty.
var ErrMissingFields = errors.New(MsgMissingFields)

// Field identifies one of the three inputs.
type Field int

const (
	FieldUsername Field = iota
	FieldEmail
	FieldPassword
)

// Fields lists the inputs in display order.
var Fields = [...]Field{FieldUsername, FieldEmail, FieldPassword}

func (f Field) String() string {
	switch f {
	case FieldUsername:
		return "username"
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	default:
		return "unknown"
	}
}

// Label is the text shown next to the input.
func (f Field) Label() string {
	switch f {
	case FieldUsername:
		return "Username:"
	case FieldEmail:
		return "Email:"
	case FieldPassword:
		return "Password:"
	default:
		return ""
	}
}

// Outcome classifies a finished submission.
type Outcome int

const (
	// OutcomeNone is a 2xx answer other than 201: nothing changes.
	OutcomeNone Outcome = iota
	OutcomeCreated
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeFailed:
		return "failed"
	default:
		return "none"
	}
}

// Form is the local state of one registration form.
// Error is only ever changed by a submission, never by edits.
type Form struct {
	Username string
	Email    string
	Password string
	Error    string
}

// Set updates one field and leaves everything else alone.
func (f *Form) Set(field Field, value string) {
	switch field {
	case FieldUsername:
		f.Username = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	}
}

// Value returns the current text of field.
func (f Form) Value(field Field) string {
	switch field {
	case FieldUsername:
		return f.Username
	case FieldEmail:
		return f.Email
	case FieldPassword:
		return f.Password
	default:
		return ""
	}
}

// Prepare checks that every field is non-empty and builds the request.
// On failure it sets Error and returns ErrMissingFields. Whitespace counts
// as content.
func (f *Form) Prepare() (authapi.RegisterRequest, error) {
	if f.Username == "" || f.Email == "" || f.Password == "" {
		f.Error = MsgMissingFields
		return authapi.RegisterRequest{}, ErrMissingFields
	}
	return authapi.RegisterRequest{
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
	}, nil
}

// Apply folds a finished submission into the form and reports what happened.
func (f *Form) Apply(res authapi.Result, err error) Outcome {
	outcome, msg := Resolve(res, err)
	if outcome == OutcomeFailed {
		f.Error = msg
	}
	return outcome
}

// Resolve classifies a submission result. For failures it also returns the
// message to display: the server's own message, a generic one when the
// server gave none, or the connectivity message when nothing answered.
func Resolve(res authapi.Result, err error) (Outcome, string) {
	if err == nil {
		if res.Created() {
			return OutcomeCreated, ""
		}
		return OutcomeNone, ""
	}
	var re *authapi.ResponseError
	if errors.As(err, &re) {
		if re.Message != "" {
			return OutcomeFailed, re.Message
		}
		return OutcomeFailed, MsgUnexpected
	}
	return OutcomeFailed, MsgUnreachable
}
