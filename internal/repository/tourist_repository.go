package repository

import (
	"context"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

type TouristRepository interface {
	Create(ctx context.Context, tourist *domain.Tourist) error
	GetByUserID(ctx context.Context, userID string) (*domain.Tourist, error)
	Update(ctx context.Context, tourist *domain.Tourist) error
	SetActive(ctx context.Context, userID string, active bool) error
}
