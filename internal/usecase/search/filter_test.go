package search

import (
	"testing"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

func TestMatchGuide(t *testing.T) {
	guide := &domain.TourGuide{
		UserID:          "guide-1",
		FullName:        "John Doe",
		Bio:             strPtr("Walking tours of the old quarter"),
		City:            strPtr("Savannah"),
		State:           strPtr("Georgia"),
		Specialties:     []string{"Historical Tours", "Architecture"},
		Languages:       []string{"English", "Spanish"},
		HourlyRate:      floatPtr(45),
		ExperienceYears: intPtr(6),
		IsVerified:      true,
	}

	tests := []struct {
		name  string
		query domain.SearchQuery
		want  bool
	}{
		{"empty query matches", domain.SearchQuery{}, true},
		{"text matches name case-insensitively", domain.SearchQuery{Text: "john"}, true},
		{"text matches bio", domain.SearchQuery{Text: "old quarter"}, true},
		{"text matches specialty", domain.SearchQuery{Text: "architec"}, true},
		{"text misses everywhere", domain.SearchQuery{Text: "scuba"}, false},
		{"whitespace-only text matches", domain.SearchQuery{Text: "   "}, true},
		{
			"city substring matches",
			domain.SearchQuery{Location: &domain.LocationQuery{City: "savan"}},
			true,
		},
		{
			"wrong city fails",
			domain.SearchQuery{Location: &domain.LocationQuery{City: "Atlanta"}},
			false,
		},
		{
			"city and state both required",
			domain.SearchQuery{Location: &domain.LocationQuery{City: "Savannah", State: "Florida"}},
			false,
		},
		{
			"specialty overlap matches",
			domain.SearchQuery{Filters: domain.SearchFilters{Specialties: []string{"architecture", "Food"}}},
			true,
		},
		{
			"no specialty overlap fails",
			domain.SearchQuery{Filters: domain.SearchFilters{Specialties: []string{"Food"}}},
			false,
		},
		{
			"language overlap matches",
			domain.SearchQuery{Filters: domain.SearchFilters{Languages: []string{"SPANISH"}}},
			true,
		},
		{
			"max rate above hourly rate matches",
			domain.SearchQuery{Filters: domain.SearchFilters{MaxHourlyRate: floatPtr(50)}},
			true,
		},
		{
			"max rate below hourly rate fails",
			domain.SearchQuery{Filters: domain.SearchFilters{MaxHourlyRate: floatPtr(40)}},
			false,
		},
		{
			"min experience satisfied",
			domain.SearchQuery{Filters: domain.SearchFilters{MinExperience: intPtr(5)}},
			true,
		},
		{
			"min experience unmet fails",
			domain.SearchQuery{Filters: domain.SearchFilters{MinExperience: intPtr(10)}},
			false,
		},
		{
			"verified filter matches",
			domain.SearchQuery{Filters: domain.SearchFilters{IsVerified: boolPtr(true)}},
			true,
		},
		{
			"unverified filter fails",
			domain.SearchQuery{Filters: domain.SearchFilters{IsVerified: boolPtr(false)}},
			false,
		},
		{
			"positive rating floor excludes unrated candidates",
			domain.SearchQuery{Filters: domain.SearchFilters{MinRating: floatPtr(3)}},
			false,
		},
		{
			"zero rating floor is a no-op",
			domain.SearchQuery{Filters: domain.SearchFilters{MinRating: floatPtr(0)}},
			true,
		},
		{
			"filters are conjunctive",
			domain.SearchQuery{
				Text:    "john",
				Filters: domain.SearchFilters{Specialties: []string{"Food"}},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchGuide(guide, &tt.query); got != tt.want {
				t.Errorf("matchGuide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchGuideMissingOptionalFields(t *testing.T) {
	bare := &domain.TourGuide{UserID: "guide-1", FullName: "John Doe"}

	if matchGuide(bare, &domain.SearchQuery{Filters: domain.SearchFilters{MaxHourlyRate: floatPtr(100)}}) {
		t.Error("missing hourly rate must fail a rate cap")
	}
	if matchGuide(bare, &domain.SearchQuery{Filters: domain.SearchFilters{MinExperience: intPtr(1)}}) {
		t.Error("missing experience must fail an experience floor")
	}
	if matchGuide(bare, &domain.SearchQuery{Location: &domain.LocationQuery{City: "Savannah"}}) {
		t.Error("missing city must fail a city query")
	}
	if !matchGuide(bare, &domain.SearchQuery{Text: "doe"}) {
		t.Error("nil bio must not break text matching")
	}
}

func TestMatchHotel(t *testing.T) {
	hotel := &domain.HotelPartner{
		UserID:      "hotel-1",
		CompanyName: "Seaside Resort",
		Bio:         strPtr("Family-friendly beachfront stay"),
		City:        strPtr("Tybee Island"),
		State:       strPtr("Georgia"),
		HotelType:   "resort",
		Amenities:   []string{"Pool", "WiFi", "Spa"},
		PriceMin:    floatPtr(120),
		PriceMax:    floatPtr(380),
		IsVerified:  true,
	}

	tests := []struct {
		name  string
		query domain.SearchQuery
		want  bool
	}{
		{"empty query matches", domain.SearchQuery{}, true},
		{"text matches company name", domain.SearchQuery{Text: "seaside"}, true},
		{"text matches amenity", domain.SearchQuery{Text: "spa"}, true},
		{"text misses", domain.SearchQuery{Text: "casino"}, false},
		{
			"hotel type equal-fold matches",
			domain.SearchQuery{Filters: domain.SearchFilters{HotelTypes: []string{"RESORT", "hostel"}}},
			true,
		},
		{
			"wrong hotel type fails",
			domain.SearchQuery{Filters: domain.SearchFilters{HotelTypes: []string{"hostel"}}},
			false,
		},
		{
			"amenity overlap matches",
			domain.SearchQuery{Filters: domain.SearchFilters{Amenities: []string{"wifi"}}},
			true,
		},
		{
			"no amenity overlap fails",
			domain.SearchQuery{Filters: domain.SearchFilters{Amenities: []string{"gym"}}},
			false,
		},
		{
			"price ranges intersect",
			domain.SearchQuery{Filters: domain.SearchFilters{PriceRange: &domain.PriceRange{Min: floatPtr(100), Max: floatPtr(150)}}},
			true,
		},
		{
			"requested range below hotel's fails",
			domain.SearchQuery{Filters: domain.SearchFilters{PriceRange: &domain.PriceRange{Max: floatPtr(100)}}},
			false,
		},
		{
			"requested range above hotel's fails",
			domain.SearchQuery{Filters: domain.SearchFilters{PriceRange: &domain.PriceRange{Min: floatPtr(400)}}},
			false,
		},
		{
			"open-ended range intersects",
			domain.SearchQuery{Filters: domain.SearchFilters{PriceRange: &domain.PriceRange{Min: floatPtr(300)}}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchHotel(hotel, &tt.query); got != tt.want {
				t.Errorf("matchHotel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchHotelMissingPricesFailRangeFilter(t *testing.T) {
	bare := &domain.HotelPartner{UserID: "hotel-1", CompanyName: "Seaside Resort", HotelType: "resort"}
	query := &domain.SearchQuery{Filters: domain.SearchFilters{PriceRange: &domain.PriceRange{Min: floatPtr(50), Max: floatPtr(500)}}}
	if matchHotel(bare, query) {
		t.Error("hotel without prices must fail a price-range filter")
	}
}
