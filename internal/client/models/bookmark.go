package models

import "time"

// Bookmark links the current user to a resource. Unique per
// (user, resource) pair, enforced server-side.
type Bookmark struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	ResourceID   int64     `json:"resource_id"`
	BookmarkDate time.Time `json:"bookmark_date"`
	Resource     *Resource `json:"resource,omitempty"`
}

// BookmarkStatus reports whether a resource is bookmarked by the user.
type BookmarkStatus struct {
	Bookmarked bool   `json:"bookmarked"`
	BookmarkID *int64 `json:"bookmark_id,omitempty"`
}

// BookmarkToggle is the result of a toggle call. The caller learns which
// direction the toggle went only from Action ("added" or "removed").
type BookmarkToggle struct {
	Bookmarked bool   `json:"bookmarked"`
	Action     string `json:"action"`
	BookmarkID *int64 `json:"bookmark_id,omitempty"`
	Message    string `json:"message"`
}

// BookmarkStats summarizes the user's bookmarks by resource type.
type BookmarkStats struct {
	TotalBookmarks int64 `json:"total_bookmarks"`
	FileBookmarks  int64 `json:"file_bookmarks"`
	LinkBookmarks  int64 `json:"link_bookmarks"`
}
