package repository

import (
	"context"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

type PreferencesRepository interface {
	// Get returns ErrPreferencesNotFound when the user never saved a row;
	// callers synthesize the all-true default.
	Get(ctx context.Context, userID string) (*domain.VisibilityPreferences, error)
	Upsert(ctx context.Context, prefs *domain.VisibilityPreferences) error
}
