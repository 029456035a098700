package models

import "time"

// AccountStatus enumerates the backend's user account states.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountInactive  AccountStatus = "INACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
)

// Identity is the profile of an authenticated user. A fresh copy replaces
// the cached one on every successful profile fetch or update.
type Identity struct {
	ID            int64         `json:"id"`
	Email         string        `json:"email"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	AccountStatus AccountStatus `json:"account_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty"`
}

// FullName joins first and last name for display.
func (i *Identity) FullName() string {
	if i.FirstName == "" {
		return i.LastName
	}
	if i.LastName == "" {
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}

// Token is the session credential returned by the token endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Registration is the payload for creating a new account.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserUpdate carries a partial profile update; nil fields are left untouched
// by the backend.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// UserStats summarizes the current user's contribution counters.
type UserStats struct {
	UploadedResources int64     `json:"uploaded_resources"`
	Bookmarks         int64     `json:"bookmarks"`
	FileResources     int64     `json:"file_resources"`
	LinkResources     int64     `json:"link_resources"`
	AccountCreated    time.Time `json:"account_created"`
}

// ActivityItem is one entry of the recent-activity feed.
type ActivityItem struct {
	Type       string    `json:"type"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
	ResourceID int64     `json:"resource_id"`
}

// ActivityFeed wraps the recent-activity response.
type ActivityFeed struct {
	Activities []ActivityItem `json:"activities"`
}
