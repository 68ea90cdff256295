package domain

import "time"

// Tourist profiles exist for registration and personalization only; they are
// never published to the directory.
type Tourist struct {
	ID        int       `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Phone     *string   `json:"phone" db:"phone"`
	Email     *string   `json:"email" db:"email"`
	City      *string   `json:"city" db:"city"`
	State     *string   `json:"state" db:"state"`
	Interests []string  `json:"interests" db:"interests"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
