package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
)

// ListTags returns tags ordered by name, optionally narrowed by a substring
// search.
func (c *Client) ListTags(ctx context.Context, search string, limit int) ([]models.Tag, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}

	var tags []models.Tag
	if err := c.doJSON(ctx, http.MethodGet, "/tags", q, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) GetTag(ctx context.Context, id int64) (*models.Tag, error) {
	var tag models.Tag
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/tags/%d", id), nil, nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// CreateTag creates one tag. The backend takes the name as a query
// parameter, not a body.
func (c *Client) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	q := url.Values{}
	q.Set("tag_name", name)

	var tag models.Tag
	if err := c.doJSON(ctx, http.MethodPost, "/tags", q, nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag renames a tag. Like CreateTag, the new name travels as a query
// parameter.
func (c *Client) UpdateTag(ctx context.Context, id int64, name string) (*models.Tag, error) {
	q := url.Values{}
	q.Set("tag_name", name)

	var tag models.Tag
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/tags/%d", id), q, nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *Client) DeleteTag(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/tags/%d", id), nil, nil, nil)
}

// TagResources lists the resources carrying a tag.
func (c *Client) TagResources(ctx context.Context, id int64, limit, offset int) (*models.ResourcePage, error) {
	var page models.ResourcePage
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/tags/%d/resources", id), pageValues(limit, offset), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateTagsBulk creates several tags in one call, skipping names that
// already exist, and returns the full set. The backend expects a bare JSON
// string array as the body.
func (c *Client) CreateTagsBulk(ctx context.Context, names []string) ([]models.Tag, error) {
	if names == nil {
		names = []string{}
	}

	var tags []models.Tag
	if err := c.doJSON(ctx, http.MethodPost, "/tags/bulk", nil, names, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
