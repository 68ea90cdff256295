package domain

import "errors"

var (
	// ErrIncompleteRegistration is returned when a listing is requested for a
	// profile that fails its passion type's required-field checklist.
	ErrIncompleteRegistration = errors.New("incomplete registration: required profile fields are missing")

	ErrProfileNotFound     = errors.New("profile not found")
	ErrListingNotFound     = errors.New("listing not found")
	ErrPreferencesNotFound = errors.New("visibility preferences not found")
	ErrUnknownPassionType  = errors.New("unknown passion type")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidInput        = errors.New("invalid input")
)
