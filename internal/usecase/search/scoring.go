package search

import (
	"time"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

// Relevance is a deterministic additive point system. Components are
// independent; the only cap is the 10-year experience ceiling.
const (
	pointsVerified     = 10
	pointsNameMatch    = 20
	pointsBioMatch     = 10
	pointsArrayMatch   = 15
	pointsCityMatch    = 15
	pointsStateMatch   = 10
	pointsRecent30Days = 5
	pointsRecent90Days = 2
	experienceScoreCap = 10
)

func scoreGuide(guide *domain.TourGuide, query *domain.SearchQuery) int {
	score := 0
	if guide.IsVerified {
		score += pointsVerified
	}

	if text := normalize(query.Text); text != "" {
		if containsFold(guide.FullName, text) {
			score += pointsNameMatch
		}
		if containsFoldPtr(guide.Bio, text) {
			score += pointsBioMatch
		}
		if anyContainsFold(guide.Specialties, text) || anyContainsFold(guide.Languages, text) {
			score += pointsArrayMatch
		}
	}

	score += locationScore(guide.City, guide.State, query.Location)

	if guide.ExperienceYears != nil {
		experience := *guide.ExperienceYears
		if experience > experienceScoreCap {
			experience = experienceScoreCap
		}
		if experience > 0 {
			score += experience
		}
	}

	score += recencyScore(guide.CreatedAt)
	return score
}

func scoreHotel(hotel *domain.HotelPartner, query *domain.SearchQuery) int {
	score := 0
	if hotel.IsVerified {
		score += pointsVerified
	}

	if text := normalize(query.Text); text != "" {
		if containsFold(hotel.CompanyName, text) {
			score += pointsNameMatch
		}
		if containsFoldPtr(hotel.Bio, text) {
			score += pointsBioMatch
		}
		if anyContainsFold(hotel.Amenities, text) {
			score += pointsArrayMatch
		}
	}

	score += locationScore(hotel.City, hotel.State, query.Location)
	score += recencyScore(hotel.CreatedAt)
	return score
}

func locationScore(city, state *string, loc *domain.LocationQuery) int {
	if loc == nil {
		return 0
	}
	score := 0
	if q := normalize(loc.City); q != "" && city != nil && containsFold(*city, q) {
		score += pointsCityMatch
	}
	if q := normalize(loc.State); q != "" && state != nil && containsFold(*state, q) {
		score += pointsStateMatch
	}
	return score
}

func recencyScore(createdAt time.Time) int {
	age := time.Since(createdAt)
	switch {
	case age <= 30*24*time.Hour:
		return pointsRecent30Days
	case age <= 90*24*time.Hour:
		return pointsRecent90Days
	}
	return 0
}
