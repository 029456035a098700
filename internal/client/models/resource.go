package models

import (
	"net/url"
	"strconv"
	"time"
)

// ResourceType enumerates the two kinds of resources.
type ResourceType string

const (
	ResourceFile ResourceType = "FILE"
	ResourceLink ResourceType = "LINK"
)

// Resource is an uploaded file or an external link, together with its
// categorization.
type Resource struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Description  *string      `json:"description,omitempty"`
	ResourceType ResourceType `json:"resource_type"`
	UploadDate   time.Time    `json:"upload_date"`
	FilePath     *string      `json:"file_path,omitempty"`
	URL          *string      `json:"url,omitempty"`
	FileSize     *int64       `json:"file_size,omitempty"`
	MimeType     *string      `json:"mime_type,omitempty"`
	UploaderID   int64        `json:"uploader_id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    *time.Time   `json:"updated_at,omitempty"`
	Uploader     *Identity    `json:"uploader,omitempty"`
	Categories   []Category   `json:"categories"`
	Tags         []Tag        `json:"tags"`
}

// ResourceCreate is the payload for registering a link resource. File
// resources go through the multipart upload endpoint instead.
type ResourceCreate struct {
	Title        string       `json:"title"`
	Description  *string      `json:"description,omitempty"`
	ResourceType ResourceType `json:"resource_type"`
	URL          *string      `json:"url,omitempty"`
	CategoryIDs  []int64      `json:"category_ids,omitempty"`
	TagNames     []string     `json:"tag_names,omitempty"`
}

// ResourceUpdate carries a partial resource update; nil fields keep their
// current values.
type ResourceUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	CategoryIDs []int64  `json:"category_ids,omitempty"`
	TagNames    []string `json:"tag_names,omitempty"`
}

// ResourceFilter narrows a resource listing. Zero-valued fields are omitted
// from the query string rather than sent empty.
type ResourceFilter struct {
	Query       string
	CategoryIDs []int64
	TagIDs      []int64
	Type        ResourceType
	Limit       int
	Offset      int
}

// Values serializes the filter into query-string parameters.
func (f ResourceFilter) Values() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("query", f.Query)
	}
	for _, id := range f.CategoryIDs {
		v.Add("category_ids", strconv.FormatInt(id, 10))
	}
	for _, id := range f.TagIDs {
		v.Add("tag_ids", strconv.FormatInt(id, 10))
	}
	if f.Type != "" {
		v.Set("resource_type", string(f.Type))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		v.Set("offset", strconv.Itoa(f.Offset))
	}
	return v
}

// ResourcePage is the paginated envelope of a resource listing.
type ResourcePage struct {
	Resources []Resource `json:"resources"`
	Total     int64      `json:"total"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
	HasMore   bool       `json:"has_more"`
}
