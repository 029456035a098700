package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
)

// Login exchanges credentials for a session credential. The backend speaks
// the OAuth2 password flow on this one endpoint, so credentials go out as
// URL-encoded form fields (username carries the email) instead of JSON.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	resp, err := c.send(ctx, http.MethodPost, "/auth/token", nil, []byte(form.Encode()), contentTypeForm)
	if err != nil {
		return nil, err
	}

	var token models.Token
	if err := decode(resp, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Register creates a new account and returns the created profile. It does
// not log the user in.
func (c *Client) Register(ctx context.Context, reg models.Registration) (*models.Identity, error) {
	var identity models.Identity
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, reg, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Me fetches the profile of the authenticated user. A 401 here means the
// held credential is no longer valid.
func (c *Client) Me(ctx context.Context) (*models.Identity, error) {
	var identity models.Identity
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// RefreshToken obtains a fresh session credential for the current one.
func (c *Client) RefreshToken(ctx context.Context) (*models.Token, error) {
	var token models.Token
	if err := c.doJSON(ctx, http.MethodPost, "/auth/refresh", nil, nil, &token); err != nil {
		return nil, err
	}
	return &token, nil
}
