package repository

import (
	"context"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

type PassionRepository interface {
	GetUserPassions(ctx context.Context, userID string) ([]*domain.UserPassion, error)
	Add(ctx context.Context, userID string, passion domain.PassionType) error
}
