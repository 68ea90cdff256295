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

type guideRepository struct {
	db *sqlx.DB
}

func NewGuideRepository(db *sqlx.DB) repository.GuideRepository {
	return &guideRepository{db: db}
}

const guideColumns = `
	id, user_id, full_name, phone, email, website, bio, address, city, state,
	specialties, languages, certifications, hourly_rate, experience_years,
	is_verified, is_active, created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGuide(row rowScanner) (*domain.TourGuide, error) {
	var g domain.TourGuide
	err := row.Scan(
		&g.ID, &g.UserID, &g.FullName, &g.Phone, &g.Email, &g.Website, &g.Bio,
		&g.Address, &g.City, &g.State,
		pq.Array(&g.Specialties), pq.Array(&g.Languages), pq.Array(&g.Certifications),
		&g.HourlyRate, &g.ExperienceYears,
		&g.IsVerified, &g.IsActive, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *guideRepository) Create(ctx context.Context, guide *domain.TourGuide) error {
	query := `
		INSERT INTO tour_guides (
			user_id, full_name, phone, email, website, bio, address, city, state,
			specialties, languages, certifications, hourly_rate, experience_years,
			is_verified, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		guide.UserID, guide.FullName, guide.Phone, guide.Email, guide.Website,
		guide.Bio, guide.Address, guide.City, guide.State,
		pq.Array(guide.Specialties), pq.Array(guide.Languages), pq.Array(guide.Certifications),
		guide.HourlyRate, guide.ExperienceYears, guide.IsVerified, guide.IsActive,
	).Scan(&guide.ID, &guide.CreatedAt, &guide.UpdatedAt)
}

func (r *guideRepository) GetByUserID(ctx context.Context, userID string) (*domain.TourGuide, error) {
	query := `SELECT ` + guideColumns + ` FROM tour_guides WHERE user_id = $1`
	guide, err := scanGuide(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return guide, nil
}

func (r *guideRepository) GetByUserIDs(ctx context.Context, userIDs []string) ([]*domain.TourGuide, error) {
	query := `SELECT ` + guideColumns + ` FROM tour_guides WHERE user_id = ANY($1) AND is_active = true`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(userIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guides []*domain.TourGuide
	for rows.Next() {
		guide, err := scanGuide(rows)
		if err != nil {
			return nil, err
		}
		guides = append(guides, guide)
	}
	return guides, rows.Err()
}

func (r *guideRepository) ListActive(ctx context.Context, limit, offset int) ([]*domain.TourGuide, error) {
	query := `
		SELECT ` + guideColumns + ` FROM tour_guides
		WHERE is_active = true
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guides []*domain.TourGuide
	for rows.Next() {
		guide, err := scanGuide(rows)
		if err != nil {
			return nil, err
		}
		guides = append(guides, guide)
	}
	return guides, rows.Err()
}

func (r *guideRepository) Update(ctx context.Context, guide *domain.TourGuide) error {
	query := `
		UPDATE tour_guides
		SET full_name = $1, phone = $2, email = $3, website = $4, bio = $5,
		    address = $6, city = $7, state = $8,
		    specialties = $9, languages = $10, certifications = $11,
		    hourly_rate = $12, experience_years = $13,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $14
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		guide.FullName, guide.Phone, guide.Email, guide.Website, guide.Bio,
		guide.Address, guide.City, guide.State,
		pq.Array(guide.Specialties), pq.Array(guide.Languages), pq.Array(guide.Certifications),
		guide.HourlyRate, guide.ExperienceYears,
		guide.UserID,
	).Scan(&guide.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *guideRepository) SetActive(ctx context.Context, userID string, active bool) error {
	return r.setFlag(ctx, "is_active", userID, active)
}

func (r *guideRepository) SetVerified(ctx context.Context, userID string, verified bool) error {
	return r.setFlag(ctx, "is_verified", userID, verified)
}

func (r *guideRepository) setFlag(ctx context.Context, column, userID string, value bool) error {
	query := `UPDATE tour_guides SET ` + column + ` = $1, updated_at = CURRENT_TIMESTAMP WHERE user_id = $2`
	result, err := r.db.ExecContext(ctx, query, value, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
