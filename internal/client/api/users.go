package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
)

// pageValues serializes limit/offset pagination, omitting zero values.
func pageValues(limit, offset int) url.Values {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		v.Set("offset", strconv.Itoa(offset))
	}
	return v
}

func (c *Client) ListUsers(ctx context.Context, limit, offset int) ([]models.Identity, error) {
	var users []models.Identity
	if err := c.doJSON(ctx, http.MethodGet, "/users", pageValues(limit, offset), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*models.Identity, error) {
	var user models.Identity
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.Identity, error) {
	var user models.Identity
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}

// UpdateProfile updates the authenticated user's own profile and returns
// the fresh copy.
func (c *Client) UpdateProfile(ctx context.Context, upd models.UserUpdate) (*models.Identity, error) {
	var user models.Identity
	if err := c.doJSON(ctx, http.MethodPut, "/users/me", nil, upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword verifies the current password server-side and replaces it.
// The backend takes both values as query parameters.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	q := url.Values{}
	q.Set("current_password", currentPassword)
	q.Set("new_password", newPassword)
	return c.doJSON(ctx, http.MethodPost, "/users/me/change-password", q, nil, nil)
}

// MyStats fetches the authenticated user's contribution counters.
func (c *Client) MyStats(ctx context.Context) (*models.UserStats, error) {
	var stats models.UserStats
	if err := c.doJSON(ctx, http.MethodGet, "/users/me/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// MyResources lists the resources the authenticated user uploaded.
func (c *Client) MyResources(ctx context.Context, limit, offset int) (*models.ResourcePage, error) {
	var page models.ResourcePage
	if err := c.doJSON(ctx, http.MethodGet, "/users/me/resources", pageValues(limit, offset), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// RecentActivity fetches the authenticated user's latest uploads and
// bookmarks, newest first.
func (c *Client) RecentActivity(ctx context.Context, limit int) ([]models.ActivityItem, error) {
	var feed models.ActivityFeed
	if err := c.doJSON(ctx, http.MethodGet, "/users/me/recent-activity", pageValues(limit, 0), nil, &feed); err != nil {
		return nil, err
	}
	return feed.Activities, nil
}
