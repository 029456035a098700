package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
)

// ListResources returns a page of resources matching the filter. Absent
// filter fields are omitted from the query string.
func (c *Client) ListResources(ctx context.Context, filter models.ResourceFilter) (*models.ResourcePage, error) {
	var page models.ResourcePage
	if err := c.doJSON(ctx, http.MethodGet, "/resources", filter.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetResource(ctx context.Context, id int64) (*models.Resource, error) {
	var res models.Resource
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/resources/%d", id), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateResource registers a link resource. File resources go through
// Upload instead.
func (c *Client) CreateResource(ctx context.Context, in models.ResourceCreate) (*models.Resource, error) {
	var res models.Resource
	if err := c.doJSON(ctx, http.MethodPost, "/resources", nil, in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateResource(ctx context.Context, id int64, in models.ResourceUpdate) (*models.Resource, error) {
	var res models.Resource
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/resources/%d", id), nil, in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteResource(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/resources/%d", id), nil, nil, nil)
}

// UploadRequest describes a file to publish as a resource.
type UploadRequest struct {
	Title       string
	Description string
	CategoryIDs []int64
	TagNames    []string
	FileName    string
	File        io.Reader
}

// Upload posts a multipart payload combining the binary file part with
// JSON-stringified category and tag form fields, which is the shape the
// backend's upload endpoint expects.
func (c *Client) Upload(ctx context.Context, in UploadRequest) (*models.Resource, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", in.FileName)
	if err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(fw, in.File); err != nil {
		return nil, fmt.Errorf("read upload file: %w", err)
	}

	if err := mw.WriteField("title", in.Title); err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if in.Description != "" {
		if err := mw.WriteField("description", in.Description); err != nil {
			return nil, fmt.Errorf("build multipart: %w", err)
		}
	}

	categoryIDs := in.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []int64{}
	}
	tagNames := in.TagNames
	if tagNames == nil {
		tagNames = []string{}
	}
	ids, _ := json.Marshal(categoryIDs)
	names, _ := json.Marshal(tagNames)
	if err := mw.WriteField("category_ids", string(ids)); err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if err := mw.WriteField("tag_names", string(names)); err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}

	resp, err := c.send(ctx, http.MethodPost, "/resources/upload", nil, buf.Bytes(), mw.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var res models.Resource
	if err := decode(resp, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Download streams the binary body of a file resource into w. It returns
// the server-suggested file name (from Content-Disposition, "" when the
// header is absent) and the number of bytes written.
func (c *Client) Download(ctx context.Context, id int64, w io.Writer) (string, int64, error) {
	resp, err := c.send(ctx, http.MethodGet, fmt.Sprintf("/resources/%d/download", id), nil, nil, "")
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", 0, newAPIError(resp)
	}

	name := ""
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			name = params["filename"]
		}
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return name, n, fmt.Errorf("read download body: %w", err)
	}
	return name, n, nil
}
