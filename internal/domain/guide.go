package domain

import (
	"strings"
	"time"
)

type TourGuide struct {
	ID              int       `json:"id" db:"id"`
	UserID          string    `json:"user_id" db:"user_id"`
	FullName        string    `json:"full_name" db:"full_name"`
	Phone           string    `json:"phone" db:"phone"`
	Email           *string   `json:"email" db:"email"`
	Website         *string   `json:"website" db:"website"`
	Bio             *string   `json:"bio" db:"bio"`
	Address         string    `json:"address" db:"address"`
	City            *string   `json:"city" db:"city"`
	State           *string   `json:"state" db:"state"`
	Specialties     []string  `json:"specialties" db:"specialties"`
	Languages       []string  `json:"languages" db:"languages"`
	Certifications  []string  `json:"certifications" db:"certifications"`
	HourlyRate      *float64  `json:"hourly_rate" db:"hourly_rate"`
	ExperienceYears *int      `json:"experience_years" db:"experience_years"`
	IsVerified      bool      `json:"is_verified" db:"is_verified"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// IsComplete reports whether the guide satisfies the tour_guide
// required-field checklist that gates directory listing.
func (g *TourGuide) IsComplete() bool {
	return strings.TrimSpace(g.FullName) != "" &&
		strings.TrimSpace(g.Phone) != "" &&
		g.ExperienceYears != nil &&
		g.HourlyRate != nil &&
		len(g.Specialties) > 0 &&
		strings.TrimSpace(g.Address) != ""
}
