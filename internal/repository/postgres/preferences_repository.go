package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/yatradesk/tourism-directory-backend/internal/domain"
	"github.com/yatradesk/tourism-directory-backend/internal/repository"
)

type preferencesRepository struct {
	db *sqlx.DB
}

func NewPreferencesRepository(db *sqlx.DB) repository.PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) Get(ctx context.Context, userID string) (*domain.VisibilityPreferences, error) {
	var p domain.VisibilityPreferences
	query := `
		SELECT user_id, show_contact_info, show_pricing, show_location, show_reviews,
		       custom_bio, featured_images, updated_at
		FROM user_visibility_preferences WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.ShowContactInfo, &p.ShowPricing, &p.ShowLocation, &p.ShowReviews,
		&p.CustomBio, pq.Array(&p.FeaturedImages), &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPreferencesNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *preferencesRepository) Upsert(ctx context.Context, prefs *domain.VisibilityPreferences) error {
	query := `
		INSERT INTO user_visibility_preferences (
			user_id, show_contact_info, show_pricing, show_location, show_reviews,
			custom_bio, featured_images
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id)
		DO UPDATE SET show_contact_info = EXCLUDED.show_contact_info,
		              show_pricing = EXCLUDED.show_pricing,
		              show_location = EXCLUDED.show_location,
		              show_reviews = EXCLUDED.show_reviews,
		              custom_bio = EXCLUDED.custom_bio,
		              featured_images = EXCLUDED.featured_images,
		              updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		prefs.UserID, prefs.ShowContactInfo, prefs.ShowPricing, prefs.ShowLocation,
		prefs.ShowReviews, prefs.CustomBio, pq.Array(prefs.FeaturedImages),
	).Scan(&prefs.UpdatedAt)
}
