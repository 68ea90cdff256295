package domain

import "time"

type SortOption string

const (
	SortRelevance  SortOption = "" // default
	SortRating     SortOption = "rating"
	SortDistance   SortOption = "distance"
	SortPriceLow   SortOption = "price-low"
	SortPriceHigh  SortOption = "price-high"
	SortNewest     SortOption = "newest"
	SortExperience SortOption = "experience"
	SortPopularity SortOption = "popularity"
)

// SearchQuery is the structured input accepted by the search engine.
type SearchQuery struct {
	Text       string         `json:"text"`
	Location   *LocationQuery `json:"location"`
	Filters    SearchFilters  `json:"filters"`
	Sort       SortOption     `json:"sort"`
	Pagination Pagination     `json:"pagination"`
}

type LocationQuery struct {
	City     string   `json:"city"`
	State    string   `json:"state"`
	RadiusKm *float64 `json:"radius_km"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
}

// SearchFilters are applied conjunctively; array filters match on any
// overlap. Guide-only and hotel-only filters are ignored by the other path.
type SearchFilters struct {
	MinRating     *float64 `json:"min_rating"`
	MaxDistanceKm *float64 `json:"max_distance_km"`
	IsVerified    *bool    `json:"is_verified"`

	// guide-only
	Languages     []string `json:"languages"`
	Specialties   []string `json:"specialties"`
	MaxHourlyRate *float64 `json:"max_hourly_rate"`
	MinExperience *int     `json:"min_experience"`

	// hotel-only
	HotelTypes []string    `json:"hotel_types"`
	Amenities  []string    `json:"amenities"`
	PriceRange *PriceRange `json:"price_range"`
}

type PriceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type Pagination struct {
	Page  int `json:"page" binding:"omitempty,min=1"`
	Limit int `json:"limit" binding:"omitempty,min=1,max=100"`
}

// Normalized returns the pagination with defaults applied (page 1, limit 20).
func (p Pagination) Normalized() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	return p
}

// GuideResult is the transient, public shape of a guide search hit. The
// relevance score is query-dependent and never persisted. Distance is
// externally supplied; this engine never computes it.
type GuideResult struct {
	UserID          string    `json:"user_id"`
	FullName        string    `json:"full_name"`
	Bio             *string   `json:"bio,omitempty"`
	City            *string   `json:"city,omitempty"`
	State           *string   `json:"state,omitempty"`
	Specialties     []string  `json:"specialties"`
	LanguagesSpoken []string  `json:"languages_spoken"`
	ExperienceYears int       `json:"experience_years"`
	HourlyRate      *float64  `json:"hourly_rate,omitempty"`
	Certifications  []string  `json:"certifications"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"review_count"`
	IsVerified      bool      `json:"is_verified"`
	RelevanceScore  int       `json:"relevance_score"`
	Distance        *float64  `json:"distance,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// HotelResult is the transient, public shape of a hotel search hit.
type HotelResult struct {
	UserID         string      `json:"user_id"`
	CompanyName    string      `json:"company_name"`
	Bio            *string     `json:"bio,omitempty"`
	City           *string     `json:"city,omitempty"`
	State          *string     `json:"state,omitempty"`
	HotelType      string      `json:"hotel_type"`
	Amenities      []string    `json:"amenities"`
	RoomTypes      []string    `json:"room_types"`
	PriceRange     *PriceRange `json:"price_range,omitempty"`
	Images         []string    `json:"images"`
	Rating         float64     `json:"rating"`
	ReviewCount    int         `json:"review_count"`
	IsVerified     bool        `json:"is_verified"`
	RelevanceScore int         `json:"relevance_score"`
	Distance       *float64    `json:"distance,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

type GuideSearchResponse struct {
	Results []*GuideResult `json:"results"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	HasMore bool           `json:"has_more"`
}

type HotelSearchResponse struct {
	Results []*HotelResult `json:"results"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	HasMore bool           `json:"has_more"`
}
