package search

import (
	"strings"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

// Filters are conjunctive: every supplied predicate must pass. The free-text
// predicate alone is an OR across fields.

func matchGuide(guide *domain.TourGuide, query *domain.SearchQuery) bool {
	if text := normalize(query.Text); text != "" {
		if !containsFold(guide.FullName, text) &&
			!containsFoldPtr(guide.Bio, text) &&
			!anyContainsFold(guide.Specialties, text) {
			return false
		}
	}

	if !matchLocation(guide.City, guide.State, query.Location) {
		return false
	}

	f := query.Filters
	if len(f.Specialties) > 0 && !anyOverlapFold(guide.Specialties, f.Specialties) {
		return false
	}
	if len(f.Languages) > 0 && !anyOverlapFold(guide.Languages, f.Languages) {
		return false
	}
	if f.MaxHourlyRate != nil {
		if guide.HourlyRate == nil || *guide.HourlyRate > *f.MaxHourlyRate {
			return false
		}
	}
	if f.MinExperience != nil {
		if guide.ExperienceYears == nil || *guide.ExperienceYears < *f.MinExperience {
			return false
		}
	}
	if f.IsVerified != nil && guide.IsVerified != *f.IsVerified {
		return false
	}
	if f.MinRating != nil && *f.MinRating > 0 {
		// Ratings are stubbed to 0 pending review aggregation, so any
		// positive floor currently excludes the candidate.
		return false
	}
	return true
}

func matchHotel(hotel *domain.HotelPartner, query *domain.SearchQuery) bool {
	if text := normalize(query.Text); text != "" {
		if !containsFold(hotel.CompanyName, text) &&
			!containsFoldPtr(hotel.Bio, text) &&
			!anyContainsFold(hotel.Amenities, text) {
			return false
		}
	}

	if !matchLocation(hotel.City, hotel.State, query.Location) {
		return false
	}

	f := query.Filters
	if len(f.HotelTypes) > 0 && !anyEqualFold(hotel.HotelType, f.HotelTypes) {
		return false
	}
	if len(f.Amenities) > 0 && !anyOverlapFold(hotel.Amenities, f.Amenities) {
		return false
	}
	if f.PriceRange != nil && !matchPriceRange(hotel.PriceMin, hotel.PriceMax, f.PriceRange) {
		return false
	}
	if f.IsVerified != nil && hotel.IsVerified != *f.IsVerified {
		return false
	}
	if f.MinRating != nil && *f.MinRating > 0 {
		return false
	}
	return true
}

// matchLocation applies independent case-insensitive substring matches on
// city and state.
func matchLocation(city, state *string, loc *domain.LocationQuery) bool {
	if loc == nil {
		return true
	}
	if q := normalize(loc.City); q != "" {
		if city == nil || !containsFold(*city, q) {
			return false
		}
	}
	if q := normalize(loc.State); q != "" {
		if state == nil || !containsFold(*state, q) {
			return false
		}
	}
	return true
}

// matchPriceRange requires the hotel's price span to intersect the requested
// one. Missing bounds on the hotel side fail the comparison.
func matchPriceRange(priceMin, priceMax *float64, want *domain.PriceRange) bool {
	if want.Max != nil {
		if priceMin == nil || *priceMin > *want.Max {
			return false
		}
	}
	if want.Min != nil {
		if priceMax == nil || *priceMax < *want.Min {
			return false
		}
	}
	return true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsFold reports whether haystack contains the already-normalized
// needle, case-insensitively.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func containsFoldPtr(haystack *string, needle string) bool {
	return haystack != nil && containsFold(*haystack, needle)
}

func anyContainsFold(values []string, needle string) bool {
	for _, v := range values {
		if containsFold(v, needle) {
			return true
		}
	}
	return false
}

func anyEqualFold(value string, wanted []string) bool {
	for _, w := range wanted {
		if strings.EqualFold(value, w) {
			return true
		}
	}
	return false
}

// anyOverlapFold reports whether any requested value equals any candidate
// value, case-insensitively.
func anyOverlapFold(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
