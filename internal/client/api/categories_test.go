package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
)

const categoryJSON = `{"id":4,"name":"Algebra","description":"Linear algebra","parent_id":1,"created_at":"2026-01-01T00:00:00Z"}`

func TestCreateCategory_SendsJSONBody(t *testing.T) {
	var got map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/categories", r.URL.Path)
		assert.Equal(t, contentTypeJSON, r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(categoryJSON))
	})

	c := newTestClient(t, handler, staticToken("tok1"))
	description := "Linear algebra"
	parentID := int64(1)
	cat, err := c.CreateCategory(context.Background(), models.CategoryCreate{
		Name:        "Algebra",
		Description: &description,
		ParentID:    &parentID,
	})
	require.NoError(t, err)

	require.Equal(t, map[string]any{
		"name":        "Algebra",
		"description": "Linear algebra",
		"parent_id":   float64(1),
	}, got)
	require.Equal(t, int64(4), cat.ID)
	require.NotNil(t, cat.ParentID)
	require.Equal(t, int64(1), *cat.ParentID)
}

func TestUpdateCategory_SendsOnlyChangedFields(t *testing.T) {
	var got map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/categories/4", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(categoryJSON))
	})

	c := newTestClient(t, handler, staticToken("tok1"))
	name := "Algebra"
	_, err := c.UpdateCategory(context.Background(), 4, models.CategoryUpdate{Name: &name})
	require.NoError(t, err)

	require.Equal(t, map[string]any{"name": "Algebra"}, got)
}

func TestListCategories(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/categories", r.URL.Path)
		w.Write([]byte(`[` + categoryJSON + `]`))
	})

	c := newTestClient(t, handler, staticToken("tok1"))
	categories, err := c.ListCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 1)
	require.Equal(t, "Algebra", categories[0].Name)
}

func TestDeleteCategory(t *testing.T) {
	var gotMethod, gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"message":"Category deleted successfully"}`))
	})

	c := newTestClient(t, handler, staticToken("tok1"))
	require.NoError(t, c.DeleteCategory(context.Background(), 4))

	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/api/v1/categories/4", gotPath)
}

func TestCategoryResources_Paginates(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/categories/4/resources", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"resources":[],"total":0,"limit":5,"offset":10,"has_more":false}`))
	})

	c := newTestClient(t, handler, staticToken("tok1"))
	page, err := c.CategoryResources(context.Background(), 4, 5, 10)
	require.NoError(t, err)

	require.Equal(t, []string{"5"}, gotQuery["limit"])
	require.Equal(t, []string{"10"}, gotQuery["offset"])
	require.False(t, page.HasMore)
}
