// Package authapi talks to the account registration endpoint.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RegisterPath is the fixed path of the registration endpoint.
const RegisterPath = "/api/auth/register"

// RequestIDHeader carries the attempt ID of a submission.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 1 << 20

// RegisterRequest is the JSON body sent to the registration endpoint.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Result describes a 2xx response.
type Result struct {
	StatusCode int
	RequestID  string
}

// Created reports whether the endpoint answered 201.
func (r Result) Created() bool {
	return r.StatusCode == http.StatusCreated
}

// Client posts registrations to a single base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets an overall request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 {
			return
		}
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the absolute registration URL.
func (c *Client) Endpoint() string {
	return c.baseURL + RegisterPath
}

// Register posts req once. A 2xx answer returns a Result and no error; any
// other status returns *ResponseError; no answer at all returns *TransportError.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (Result, error) {
	id := RequestIDFromContext(ctx)
	if id == "" {
		id = uuid.NewString()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Result{RequestID: id}, fmt.Errorf("encode register request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return Result{RequestID: id}, &TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, id)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Result{RequestID: id}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	res := Result{StatusCode: resp.StatusCode, RequestID: id}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return res, nil
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	// Only a non-empty string "error" counts as a server message; numbers,
	// objects and empty strings fall through to the generic message.
	return res, &ResponseError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
}

type errorBody struct {
	Error json.RawMessage `json:"error"`
}

// errorMessage extracts a non-empty string "error" field; anything else yields "".
func errorMessage(data []byte) string {
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err != nil || len(eb.Error) == 0 {
		return ""
	}
	var msg string
	if err := json.Unmarshal(eb.Error, &msg); err != nil {
		return ""
	}
	return msg
}

type requestIDKey struct{}

// WithRequestID attaches the attempt ID used for the X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the attempt ID stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
