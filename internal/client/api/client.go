package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

const (
	apiPrefix = "/api/v1"

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"

	// Transport failures are retried up to transportRetries additional
	// times with exponential backoff. Responses with a status code are
	// never retried, a 401 in particular.
	transportRetries = 2
	retryBase        = 200 * time.Millisecond
)

// TokenSource yields the current session credential, or "" when no session
// exists. Implementations must be read-only: only the session manager
// mutates the credential.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client talks to the UniResource Hub REST backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New returns a Client for the backend at baseURL (scheme + host, without
// the /api/v1 prefix). A zero timeout disables the client-side deadline.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) (*http.Request, error) {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("read access token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

// send dispatches the request, retrying only when no response was received.
// The request is rebuilt per attempt so the body can be re-sent.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) (*http.Response, error) {
	var resp *http.Response
	transportFailed := false

	backoff := retry.WithMaxRetries(transportRetries, retry.NewExponential(retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := c.newRequest(ctx, method, path, query, body, contentType)
		if err != nil {
			return err
		}
		r, err := c.http.Do(req)
		if err != nil {
			transportFailed = true
			return retry.RetryableError(err)
		}
		resp = r
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if transportFailed {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, err
	}

	return resp, nil
}

// doJSON performs one round-trip with an optional JSON body, decoding a
// 2xx response into out (skipped when out is nil).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	contentType := ""
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = b
		contentType = contentTypeJSON
	}

	resp, err := c.send(ctx, method, path, query, payload, contentType)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return newAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
