package domain

// PublicProfile is the redacted, preference-governed view of a profile that
// leaves the service. Sub-objects are omitted entirely when the owning flag
// is off.
type PublicProfile struct {
	UserID         string       `json:"user_id"`
	PassionType    PassionType  `json:"passion_type"`
	DisplayName    string       `json:"display_name"`
	Bio            *string      `json:"bio,omitempty"`
	IsVerified     bool         `json:"is_verified"`
	Location       *Location    `json:"location,omitempty"`
	ContactInfo    *ContactInfo `json:"contact_info,omitempty"`
	Pricing        *Pricing     `json:"pricing,omitempty"`
	Reviews        *Reviews     `json:"reviews,omitempty"`
	FeaturedImages []string     `json:"featured_images,omitempty"`
}

type Location struct {
	Address string  `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
}

type ContactInfo struct {
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Website *string `json:"website,omitempty"`
}

// Pricing carries the role-specific price fields; exactly one side is set.
type Pricing struct {
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	PriceMin   *float64 `json:"price_min,omitempty"`
	PriceMax   *float64 `json:"price_max,omitempty"`
}

// Reviews is a placeholder shape: rating and review_count stay 0 until a
// review-aggregation collaborator exists.
type Reviews struct {
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
}
