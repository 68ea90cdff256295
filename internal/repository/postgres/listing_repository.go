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

type listingRepository struct {
	db *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

const listingColumns = `id, user_id, passion_type, is_visible, is_featured, priority, search_keywords, updated_at`

func scanListing(row rowScanner) (*domain.DirectoryListing, error) {
	var l domain.DirectoryListing
	err := row.Scan(
		&l.ID, &l.UserID, &l.PassionType, &l.IsVisible, &l.IsFeatured,
		&l.Priority, pq.Array(&l.SearchKeywords), &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *listingRepository) Upsert(ctx context.Context, listing *domain.DirectoryListing) error {
	query := `
		INSERT INTO public_directory_listings (user_id, passion_type, is_visible, is_featured, priority, search_keywords)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, passion_type)
		DO UPDATE SET is_visible = EXCLUDED.is_visible,
		              is_featured = EXCLUDED.is_featured,
		              priority = EXCLUDED.priority,
		              search_keywords = EXCLUDED.search_keywords,
		              updated_at = CURRENT_TIMESTAMP
		RETURNING id, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		listing.UserID, listing.PassionType, listing.IsVisible, listing.IsFeatured,
		listing.Priority, pq.Array(listing.SearchKeywords),
	).Scan(&listing.ID, &listing.UpdatedAt)
}

func (r *listingRepository) GetByUser(ctx context.Context, userID string) ([]*domain.DirectoryListing, error) {
	query := `SELECT ` + listingColumns + ` FROM public_directory_listings WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*domain.DirectoryListing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

func (r *listingRepository) Get(ctx context.Context, userID string, passion domain.PassionType) (*domain.DirectoryListing, error) {
	query := `SELECT ` + listingColumns + ` FROM public_directory_listings WHERE user_id = $1 AND passion_type = $2`
	listing, err := scanListing(r.db.QueryRowContext(ctx, query, userID, passion))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (r *listingRepository) GetVisibleUserIDs(ctx context.Context, passion domain.PassionType) ([]string, error) {
	query := `SELECT user_id FROM public_directory_listings WHERE passion_type = $1 AND is_visible = true`
	rows, err := r.db.QueryContext(ctx, query, passion)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, id)
	}
	return userIDs, rows.Err()
}

func (r *listingRepository) SetVisibilityForUser(ctx context.Context, userID string, visible bool) ([]*domain.DirectoryListing, error) {
	query := `
		UPDATE public_directory_listings
		SET is_visible = $1, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2
		RETURNING ` + listingColumns
	rows, err := r.db.QueryContext(ctx, query, visible, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*domain.DirectoryListing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

func (r *listingRepository) SetVisibility(ctx context.Context, userID string, passion domain.PassionType, visible bool) (*domain.DirectoryListing, error) {
	query := `
		UPDATE public_directory_listings
		SET is_visible = $1, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2 AND passion_type = $3
		RETURNING ` + listingColumns
	listing, err := scanListing(r.db.QueryRowContext(ctx, query, visible, userID, passion))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}
