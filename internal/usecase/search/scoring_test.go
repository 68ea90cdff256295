package search

import (
	"testing"
	"time"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

func TestScoreGuide(t *testing.T) {
	old := time.Now().AddDate(-2, 0, 0)

	base := func() *domain.TourGuide {
		return &domain.TourGuide{
			FullName:    "John Doe",
			Bio:         strPtr("Walking tours of the old quarter"),
			City:        strPtr("Savannah"),
			State:       strPtr("Georgia"),
			Specialties: []string{"Historical Tours"},
			Languages:   []string{"English"},
			CreatedAt:   old,
		}
	}

	tests := []struct {
		name   string
		mutate func(*domain.TourGuide)
		query  domain.SearchQuery
		want   int
	}{
		{
			"no signals",
			nil,
			domain.SearchQuery{},
			0,
		},
		{
			"verified only",
			func(g *domain.TourGuide) { g.IsVerified = true },
			domain.SearchQuery{},
			pointsVerified,
		},
		{
			"name match",
			nil,
			domain.SearchQuery{Text: "doe"},
			pointsNameMatch,
		},
		{
			"bio match",
			nil,
			domain.SearchQuery{Text: "quarter"},
			pointsBioMatch,
		},
		{
			"specialty match",
			nil,
			domain.SearchQuery{Text: "historical"},
			pointsArrayMatch,
		},
		{
			"language counts as array match",
			nil,
			domain.SearchQuery{Text: "english"},
			pointsArrayMatch,
		},
		{
			"array bonus awarded once",
			func(g *domain.TourGuide) { g.Languages = []string{"Historical Reenactment"} },
			domain.SearchQuery{Text: "historical"},
			pointsArrayMatch,
		},
		{
			"city match",
			nil,
			domain.SearchQuery{Location: &domain.LocationQuery{City: "Savannah"}},
			pointsCityMatch,
		},
		{
			"city and state match",
			nil,
			domain.SearchQuery{Location: &domain.LocationQuery{City: "Savannah", State: "Georgia"}},
			pointsCityMatch + pointsStateMatch,
		},
		{
			"experience adds up to its cap",
			func(g *domain.TourGuide) { g.ExperienceYears = intPtr(7) },
			domain.SearchQuery{},
			7,
		},
		{
			"experience capped at ten",
			func(g *domain.TourGuide) { g.ExperienceYears = intPtr(25) },
			domain.SearchQuery{},
			experienceScoreCap,
		},
		{
			"recent profile within 30 days",
			func(g *domain.TourGuide) { g.CreatedAt = time.Now().AddDate(0, 0, -10) },
			domain.SearchQuery{},
			pointsRecent30Days,
		},
		{
			"recent profile within 90 days",
			func(g *domain.TourGuide) { g.CreatedAt = time.Now().AddDate(0, 0, -60) },
			domain.SearchQuery{},
			pointsRecent90Days,
		},
		{
			"components are additive",
			func(g *domain.TourGuide) {
				g.IsVerified = true
				g.ExperienceYears = intPtr(3)
			},
			domain.SearchQuery{
				Text:     "john",
				Location: &domain.LocationQuery{City: "Savannah"},
			},
			pointsVerified + pointsNameMatch + pointsCityMatch + 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guide := base()
			if tt.mutate != nil {
				tt.mutate(guide)
			}
			if got := scoreGuide(guide, &tt.query); got != tt.want {
				t.Errorf("scoreGuide() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreHotel(t *testing.T) {
	old := time.Now().AddDate(-2, 0, 0)

	hotel := &domain.HotelPartner{
		CompanyName: "Seaside Resort",
		Bio:         strPtr("Beachfront stay with a pool"),
		City:        strPtr("Tybee Island"),
		State:       strPtr("Georgia"),
		Amenities:   []string{"Pool", "WiFi"},
		IsVerified:  true,
		CreatedAt:   old,
	}

	query := domain.SearchQuery{
		Text:     "pool",
		Location: &domain.LocationQuery{State: "Georgia"},
	}
	// Verified + bio mention + amenity match + state match.
	want := pointsVerified + pointsBioMatch + pointsArrayMatch + pointsStateMatch
	if got := scoreHotel(hotel, &query); got != want {
		t.Errorf("scoreHotel() = %d, want %d", got, want)
	}
}
