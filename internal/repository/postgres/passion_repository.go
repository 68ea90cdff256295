package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/yatradesk/tourism-directory-backend/internal/domain"
	"github.com/yatradesk/tourism-directory-backend/internal/repository"
)

type passionRepository struct {
	db *sqlx.DB
}

func NewPassionRepository(db *sqlx.DB) repository.PassionRepository {
	return &passionRepository{db: db}
}

func (r *passionRepository) GetUserPassions(ctx context.Context, userID string) ([]*domain.UserPassion, error) {
	query := `
		SELECT id, user_id, passion_type, created_at
		FROM user_passions
		WHERE user_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var passions []*domain.UserPassion
	for rows.Next() {
		var p domain.UserPassion
		if err := rows.Scan(&p.ID, &p.UserID, &p.PassionType, &p.CreatedAt); err != nil {
			return nil, err
		}
		passions = append(passions, &p)
	}
	return passions, rows.Err()
}

func (r *passionRepository) Add(ctx context.Context, userID string, passion domain.PassionType) error {
	query := `
		INSERT INTO user_passions (user_id, passion_type)
		VALUES ($1, $2)
		ON CONFLICT (user_id, passion_type) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, userID, passion)
	return err
}
