package domain

import (
	"strings"
	"time"
)

type HotelPartner struct {
	ID          int       `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	CompanyName string    `json:"company_name" db:"company_name"`
	Phone       *string   `json:"phone" db:"phone"`
	Email       *string   `json:"email" db:"email"`
	Website     *string   `json:"website" db:"website"`
	Bio         *string   `json:"bio" db:"bio"`
	Address     string    `json:"address" db:"address"`
	City        *string   `json:"city" db:"city"`
	State       *string   `json:"state" db:"state"`
	HotelType   string    `json:"hotel_type" db:"hotel_type"`
	Amenities   []string  `json:"amenities" db:"amenities"`
	RoomTypes   []string  `json:"room_types" db:"room_types"`
	Images      []string  `json:"images" db:"images"`
	PriceMin    *float64  `json:"price_min" db:"price_min"`
	PriceMax    *float64  `json:"price_max" db:"price_max"`
	IsVerified  bool      `json:"is_verified" db:"is_verified"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// IsComplete reports whether the hotel satisfies the hotel_partner
// required-field checklist that gates directory listing.
func (h *HotelPartner) IsComplete() bool {
	return strings.TrimSpace(h.CompanyName) != "" &&
		strings.TrimSpace(h.HotelType) != "" &&
		strings.TrimSpace(h.Address) != "" &&
		len(h.Amenities) > 0
}
