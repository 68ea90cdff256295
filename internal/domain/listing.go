package domain

import "time"

// DirectoryListing controls whether a profile is discoverable in the public
// directory. One row per (user, passion type); it may exist only after the
// eligibility gate has certified the underlying profile as complete.
type DirectoryListing struct {
	ID             int         `json:"id" db:"id"`
	UserID         string      `json:"user_id" db:"user_id"`
	PassionType    PassionType `json:"passion_type" db:"passion_type"`
	IsVisible      bool        `json:"is_visible" db:"is_visible"`
	IsFeatured     bool        `json:"is_featured" db:"is_featured"`
	Priority       int         `json:"priority" db:"priority"`
	SearchKeywords []string    `json:"search_keywords" db:"search_keywords"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
}
