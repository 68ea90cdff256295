package domain

import "time"

// Visibility field names accepted by SetFieldVisibility.
const (
	FieldContactInfo = "contact_info"
	FieldPricing     = "pricing"
	FieldLocation    = "location"
	FieldReviews     = "reviews"
)

// VisibilityPreferences holds a user's per-field disclosure toggles. A row is
// written only when the user first saves preferences; until then reads
// synthesize DefaultPreferences.
type VisibilityPreferences struct {
	UserID          string    `json:"user_id" db:"user_id"`
	ShowContactInfo bool      `json:"show_contact_info" db:"show_contact_info"`
	ShowPricing     bool      `json:"show_pricing" db:"show_pricing"`
	ShowLocation    bool      `json:"show_location" db:"show_location"`
	ShowReviews     bool      `json:"show_reviews" db:"show_reviews"`
	CustomBio       *string   `json:"custom_bio" db:"custom_bio"`
	FeaturedImages  []string  `json:"featured_images" db:"featured_images"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultPreferences is the read-time default for users who never saved a
// preference row: everything disclosed, no overrides.
func DefaultPreferences(userID string) *VisibilityPreferences {
	return &VisibilityPreferences{
		UserID:          userID,
		ShowContactInfo: true,
		ShowPricing:     true,
		ShowLocation:    true,
		ShowReviews:     true,
	}
}

// PreferencesUpdate is a partial update; nil fields are left untouched.
type PreferencesUpdate struct {
	ShowContactInfo *bool     `json:"show_contact_info"`
	ShowPricing     *bool     `json:"show_pricing"`
	ShowLocation    *bool     `json:"show_location"`
	ShowReviews     *bool     `json:"show_reviews"`
	CustomBio       *string   `json:"custom_bio"`
	FeaturedImages  *[]string `json:"featured_images"`
}

// FieldVisibilityChange toggles one symbolic field category.
type FieldVisibilityChange struct {
	Field   string `json:"field" binding:"required"`
	Visible bool   `json:"visible"`
}
