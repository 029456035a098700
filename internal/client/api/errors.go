package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: no response was
	// received at all (connection refused, timeout, DNS).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks a 401 response: the session credential is
	// missing, invalid, or expired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks a 404 response.
	ErrNotFound = errors.New("not found")
)

// APIError is a non-2xx response with its status code and the backend's
// structured detail message, when one was present.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// Unwrap maps well-known statuses to sentinel errors so callers can use
// errors.Is without inspecting the status themselves.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// newAPIError drains the response body and extracts the backend's
// {"detail": ...} payload. Detail can be a plain string or, for validation
// failures, a structured value; the latter is kept as raw JSON text.
func newAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	detail := ""
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(body, &payload) == nil && len(payload.Detail) > 0 {
		var s string
		if json.Unmarshal(payload.Detail, &s) == nil {
			detail = s
		} else {
			detail = string(payload.Detail)
		}
	}

	return &APIError{Status: resp.StatusCode, Detail: detail}
}
