package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
)

// ListBookmarks returns the user's bookmarks, newest first.
func (c *Client) ListBookmarks(ctx context.Context, limit, offset int) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	if err := c.doJSON(ctx, http.MethodGet, "/bookmarks", pageValues(limit, offset), nil, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// AddBookmark bookmarks a resource. The backend rejects duplicates for the
// same (user, resource) pair.
func (c *Client) AddBookmark(ctx context.Context, resourceID int64) (*models.Bookmark, error) {
	in := struct {
		ResourceID int64 `json:"resource_id"`
	}{ResourceID: resourceID}

	var bookmark models.Bookmark
	if err := c.doJSON(ctx, http.MethodPost, "/bookmarks", nil, in, &bookmark); err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (c *Client) RemoveBookmark(ctx context.Context, bookmarkID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/bookmarks/%d", bookmarkID), nil, nil, nil)
}

// RemoveBookmarkByResource removes the user's bookmark of a resource
// without needing the bookmark id.
func (c *Client) RemoveBookmarkByResource(ctx context.Context, resourceID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/bookmarks/resource/%d", resourceID), nil, nil, nil)
}

// CheckBookmark reports whether the user has bookmarked a resource.
func (c *Client) CheckBookmark(ctx context.Context, resourceID int64) (*models.BookmarkStatus, error) {
	var status models.BookmarkStatus
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/bookmarks/check/%d", resourceID), nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ToggleBookmark flips the bookmark state of a resource server-side. The
// direction the toggle went is only known from the returned payload.
func (c *Client) ToggleBookmark(ctx context.Context, resourceID int64) (*models.BookmarkToggle, error) {
	var toggle models.BookmarkToggle
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/bookmarks/toggle/%d", resourceID), nil, nil, &toggle); err != nil {
		return nil, err
	}
	return &toggle, nil
}

// BookmarkStats summarizes the user's bookmarks by resource type.
func (c *Client) BookmarkStats(ctx context.Context) (*models.BookmarkStats, error) {
	var stats models.BookmarkStats
	if err := c.doJSON(ctx, http.MethodGet, "/bookmarks/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
