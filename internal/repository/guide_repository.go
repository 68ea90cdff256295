package repository

import (
	"context"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

type GuideRepository interface {
	Create(ctx context.Context, guide *domain.TourGuide) error
	GetByUserID(ctx context.Context, userID string) (*domain.TourGuide, error)
	GetByUserIDs(ctx context.Context, userIDs []string) ([]*domain.TourGuide, error)
	ListActive(ctx context.Context, limit, offset int) ([]*domain.TourGuide, error)
	Update(ctx context.Context, guide *domain.TourGuide) error
	SetActive(ctx context.Context, userID string, active bool) error
	SetVerified(ctx context.Context, userID string, verified bool) error
}
