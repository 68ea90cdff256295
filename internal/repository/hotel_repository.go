package repository

import (
	"context"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.HotelPartner) error
	GetByUserID(ctx context.Context, userID string) (*domain.HotelPartner, error)
	GetByUserIDs(ctx context.Context, userIDs []string) ([]*domain.HotelPartner, error)
	ListActive(ctx context.Context, limit, offset int) ([]*domain.HotelPartner, error)
	Update(ctx context.Context, hotel *domain.HotelPartner) error
	SetActive(ctx context.Context, userID string, active bool) error
	SetVerified(ctx context.Context, userID string, verified bool) error
}
