package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// staticToken is a TokenSource returning a fixed credential.
type staticToken string

func (s staticToken) AccessToken(ctx context.Context) (string, error) {
	return string(s), nil
}

// failingToken is a TokenSource whose storage read fails.
type failingToken struct{ err error }

func (f failingToken) AccessToken(ctx context.Context) (string, error) {
	return "", f.err
}

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, tokens)
}

func TestClient_AttachesBearerTokenAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"id":1,"email":"a@x.com","first_name":"A","last_name":"X","account_status":"ACTIVE","created_at":"2026-01-01T00:00:00Z"}`))
	})

	c := newTestClient(t, handler, staticToken("tok1"))
	_, err := c.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok1", gotAuth)
	require.NotEmpty(t, gotReqID)
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
		w.Write([]byte(`{"access_token":"t","token_type":"bearer"}`))
	})

	c := newTestClient(t, handler, staticToken(""))
	_, err := c.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	require.Empty(t, gotAuth)
	require.False(t, hadHeader)
}

func TestClient_TokenSourceErrorFailsRequest(t *testing.T) {
	boom := errors.New("storage broken")
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be dispatched")
	})

	c := newTestClient(t, handler, failingToken{err: boom})
	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestClient_RequestsGoUnderAPIPrefix(t *testing.T) {
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	})

	c := newTestClient(t, handler, staticToken("tok1"))
	_, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/api/v1/categories", gotPath)
}

func TestClient_TransportFailureRetriedThenUnavailable(t *testing.T) {
	attempts := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		// Panicking makes net/http abort the connection, so the client
		// sees a transport error rather than a status code.
		panic(http.ErrAbortHandler)
	})

	c := newTestClient(t, handler, staticToken("tok1"))
	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	require.Equal(t, 1+transportRetries, attempts)
}

func TestClient_401NotRetried(t *testing.T) {
	attempts := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	})

	c := newTestClient(t, handler, staticToken("expired"))
	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, 1, attempts)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Could not validate credentials", apiErr.Detail)
}

func TestClient_404MapsToErrNotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Resource not found"}`))
	})

	c := newTestClient(t, handler, staticToken("tok1"))
	_, err := c.GetResource(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestClient_ErrorDetailKeptVerbatimWhenStructured(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address"}]}`))
	})

	c := newTestClient(t, handler, staticToken(""))
	_, err := c.Login(context.Background(), "nope", "secret")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	require.Contains(t, apiErr.Detail, "not a valid email address")
}

func TestClient_ContextCancellationPropagates(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	})
	c := newTestClient(t, handler, staticToken("tok1"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Me(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
