package eligibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
	"github.com/yatradesk/tourism-directory-backend/internal/repository"
)

// UseCase is the registration/eligibility gate: it certifies role profiles as
// complete and owns creation of directory listings.
type UseCase struct {
	guideRepo   repository.GuideRepository
	hotelRepo   repository.HotelRepository
	listingRepo repository.ListingRepository
}

func NewUseCase(
	guideRepo repository.GuideRepository,
	hotelRepo repository.HotelRepository,
	listingRepo repository.ListingRepository,
) *UseCase {
	return &UseCase{
		guideRepo:   guideRepo,
		hotelRepo:   hotelRepo,
		listingRepo: listingRepo,
	}
}

// CheckComplete reports whether the user's role profile satisfies the
// required-field checklist for the passion type. A missing profile is simply
// incomplete, not an error.
func (uc *UseCase) CheckComplete(ctx context.Context, userID string, passion domain.PassionType) (bool, error) {
	switch passion {
	case domain.PassionTourGuide:
		guide, err := uc.guideRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("failed to get guide profile: %w", err)
		}
		return guide.IsComplete(), nil
	case domain.PassionHotelPartner:
		hotel, err := uc.hotelRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("failed to get hotel profile: %w", err)
		}
		return hotel.IsComplete(), nil
	default:
		// Tourists have no checklist and are never listed.
		return false, domain.ErrUnknownPassionType
	}
}

// CreateListing upserts the (user, passion) directory listing once the gate
// certifies the profile. Re-invocation with the same key updates in place.
func (uc *UseCase) CreateListing(ctx context.Context, userID string, passion domain.PassionType, keywords []string) (*domain.DirectoryListing, error) {
	complete, err := uc.CheckComplete(ctx, userID, passion)
	if err != nil {
		return nil, err
	}
	if !complete {
		return nil, domain.ErrIncompleteRegistration
	}

	listing := &domain.DirectoryListing{
		UserID:         userID,
		PassionType:    passion,
		IsVisible:      true,
		Priority:       0,
		SearchKeywords: keywords,
	}
	if err := uc.listingRepo.Upsert(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to upsert listing: %w", err)
	}
	return listing, nil
}
