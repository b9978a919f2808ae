package authapi

import (
	"errors"
	"fmt"
)

// ResponseError is a non-2xx answer from the registration endpoint.
type ResponseError struct {
	StatusCode int
	// Message is the body's "error" field, empty when absent.
	Message string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("register: status %d", e.StatusCode)
	}
	return fmt.Sprintf("register: status %d: %s", e.StatusCode, e.Message)
}

// TransportError means no response was received at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "register: no response: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err carries a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
