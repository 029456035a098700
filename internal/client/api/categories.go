package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) CreateCategory(ctx context.Context, in models.CategoryCreate) (*models.Category, error) {
	var category models.Category
	if err := c.doJSON(ctx, http.MethodPost, "/categories", nil, in, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, in models.CategoryUpdate) (*models.Category, error) {
	var category models.Category
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), nil, in, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil, nil)
}

// CategoryResources lists the resources filed under a category.
func (c *Client) CategoryResources(ctx context.Context, id int64, limit, offset int) (*models.ResourcePage, error) {
	var page models.ResourcePage
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/categories/%d/resources", id), pageValues(limit, offset), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
