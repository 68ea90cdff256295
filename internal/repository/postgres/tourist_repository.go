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

type touristRepository struct {
	db *sqlx.DB
}

func NewTouristRepository(db *sqlx.DB) repository.TouristRepository {
	return &touristRepository{db: db}
}

func (r *touristRepository) Create(ctx context.Context, tourist *domain.Tourist) error {
	query := `
		INSERT INTO tourists (user_id, full_name, phone, email, city, state, interests, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		tourist.UserID, tourist.FullName, tourist.Phone, tourist.Email,
		tourist.City, tourist.State, pq.Array(tourist.Interests), tourist.IsActive,
	).Scan(&tourist.ID, &tourist.CreatedAt, &tourist.UpdatedAt)
}

func (r *touristRepository) GetByUserID(ctx context.Context, userID string) (*domain.Tourist, error) {
	var t domain.Tourist
	query := `
		SELECT id, user_id, full_name, phone, email, city, state, interests,
		       is_active, created_at, updated_at
		FROM tourists WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&t.ID, &t.UserID, &t.FullName, &t.Phone, &t.Email, &t.City, &t.State,
		pq.Array(&t.Interests), &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *touristRepository) Update(ctx context.Context, tourist *domain.Tourist) error {
	query := `
		UPDATE tourists
		SET full_name = $1, phone = $2, email = $3, city = $4, state = $5,
		    interests = $6, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $7
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		tourist.FullName, tourist.Phone, tourist.Email, tourist.City, tourist.State,
		pq.Array(tourist.Interests), tourist.UserID,
	).Scan(&tourist.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *touristRepository) SetActive(ctx context.Context, userID string, active bool) error {
	query := `UPDATE tourists SET is_active = $1, updated_at = CURRENT_TIMESTAMP WHERE user_id = $2`
	result, err := r.db.ExecContext(ctx, query, active, userID)
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
