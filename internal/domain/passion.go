package domain

import "time"

// PassionType is the role a user is registered under. It drives which role
// table and which eligibility checklist apply.
type PassionType string

const (
	PassionTourist      PassionType = "tourist"
	PassionTourGuide    PassionType = "tour_guide"
	PassionHotelPartner PassionType = "hotel_partner"
)

func (p PassionType) Valid() bool {
	switch p {
	case PassionTourist, PassionTourGuide, PassionHotelPartner:
		return true
	}
	return false
}

// Listable reports whether the passion type can appear in the public
// directory. Tourists have no eligibility checklist and are never listed.
func (p PassionType) Listable() bool {
	return p == PassionTourGuide || p == PassionHotelPartner
}

// UserPassion links a user to one of their registered roles.
type UserPassion struct {
	ID          int         `json:"id" db:"id"`
	UserID      string      `json:"user_id" db:"user_id"`
	PassionType PassionType `json:"passion_type" db:"passion_type"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}
