package repository

import (
	"context"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

type ListingRepository interface {
	// Upsert creates or updates the listing keyed on (user_id, passion_type).
	Upsert(ctx context.Context, listing *domain.DirectoryListing) error
	GetByUser(ctx context.Context, userID string) ([]*domain.DirectoryListing, error)
	Get(ctx context.Context, userID string, passion domain.PassionType) (*domain.DirectoryListing, error)
	// GetVisibleUserIDs returns the owners of visible listings for one passion type.
	GetVisibleUserIDs(ctx context.Context, passion domain.PassionType) ([]string, error)
	// SetVisibilityForUser flips every listing the user owns and returns the rows.
	SetVisibilityForUser(ctx context.Context, userID string, visible bool) ([]*domain.DirectoryListing, error)
	// SetVisibility flips a single (user, passion) listing.
	SetVisibility(ctx context.Context, userID string, passion domain.PassionType, visible bool) (*domain.DirectoryListing, error)
}
