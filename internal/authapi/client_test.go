package authapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	status int
	body   string
	delay  time.Duration

	hits     atomic.Int32
	lastReq  RegisterRequest
	lastID   string
	lastType string
}

func (f *fakeAuth) server(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Post(RegisterPath, func(w http.ResponseWriter, req *http.Request) {
		f.hits.Add(1)
		f.lastID = req.Header.Get(RequestIDHeader)
		f.lastType = req.Header.Get("Content-Type")
		_ = json.NewDecoder(req.Body).Decode(&f.lastReq)
		if f.delay > 0 {
			select {
			case <-time.After(f.delay):
			case <-req.Context().Done():
				return
			}
		}
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestRegisterCreated(t *testing.T) {
	fa := &fakeAuth{status: http.StatusCreated, body: `{"message":"User registered successfully"}`}
	srv := fa.server(t)
	c := NewClient(srv.URL + "/")

	ctx := WithRequestID(context.Background(), "attempt-1")
	res, err := c.Register(ctx, RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)
	require.True(t, res.Created())
	require.Equal(t, "attempt-1", res.RequestID)

	require.EqualValues(t, 1, fa.hits.Load())
	require.Equal(t, RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "s3cret"}, fa.lastReq)
	require.Equal(t, "attempt-1", fa.lastID)
	require.Equal(t, "application/json", fa.lastType)
}

func TestRegisterGeneratesRequestID(t *testing.T) {
	fa := &fakeAuth{status: http.StatusCreated}
	srv := fa.server(t)

	res, err := NewClient(srv.URL).Register(context.Background(), RegisterRequest{Username: "a", Email: "b", Password: "c"})
	require.NoError(t, err)
	require.NotEmpty(t, res.RequestID)
	require.Equal(t, res.RequestID, fa.lastID)
}

func TestRegisterOtherSuccessIsNotCreated(t *testing.T) {
	fa := &fakeAuth{status: http.StatusOK, body: `{}`}
	srv := fa.server(t)

	res, err := NewClient(srv.URL).Register(context.Background(), RegisterRequest{Username: "a", Email: "b", Password: "c"})
	require.NoError(t, err)
	require.False(t, res.Created())
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRegisterErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "message", status: http.StatusBadRequest, body: `{"error":"Username taken"}`, message: "Username taken"},
		{name: "no error field", status: http.StatusBadRequest, body: `{"detail":"nope"}`, message: ""},
		{name: "empty error", status: http.StatusConflict, body: `{"error":""}`, message: ""},
		{name: "non-string error", status: http.StatusBadRequest, body: `{"error":{"code":7}}`, message: ""},
		{name: "numeric error", status: http.StatusBadRequest, body: `{"error":42}`, message: ""},
		{name: "plain text", status: http.StatusInternalServerError, body: "Internal Server Error", message: ""},
		{name: "empty body", status: http.StatusBadGateway, body: "", message: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := &fakeAuth{status: tt.status, body: tt.body}
			srv := fa.server(t)

			_, err := NewClient(srv.URL).Register(context.Background(), RegisterRequest{Username: "a", Email: "b", Password: "c"})
			var re *ResponseError
			require.True(t, errors.As(err, &re), "want ResponseError, got %v", err)
			require.Equal(t, tt.status, re.StatusCode)
			require.Equal(t, tt.message, re.Message)
			require.False(t, IsTransport(err))
		})
	}
}

func TestRegisterUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Register(context.Background(), RegisterRequest{Username: "a", Email: "b", Password: "c"})
	require.Error(t, err)
	require.True(t, IsTransport(err))
}

func TestRegisterCancelledContext(t *testing.T) {
	fa := &fakeAuth{status: http.StatusCreated, delay: time.Second}
	srv := fa.server(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL).Register(ctx, RegisterRequest{Username: "a", Email: "b", Password: "c"})
	require.True(t, IsTransport(err))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRegisterTimeoutOption(t *testing.T) {
	fa := &fakeAuth{status: http.StatusCreated, delay: 2 * time.Second}
	srv := fa.server(t)

	c := NewClient(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := c.Register(context.Background(), RegisterRequest{Username: "a", Email: "b", Password: "c"})
	require.True(t, IsTransport(err))
}

func TestNewClientKeepsTransportDefault(t *testing.T) {
	c := NewClient("http://example.test", WithTimeout(0))
	require.Zero(t, c.http.Timeout)
	require.Equal(t, "http://example.test/api/auth/register", c.Endpoint())
}
