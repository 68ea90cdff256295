package visibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

// BuildPublicProfile composes the user's preferences with their role profile
// into a redacted public view. Returns nil (no error) when the user's passion
// type cannot be determined — no listing and no passion row.
func (uc *UseCase) BuildPublicProfile(ctx context.Context, userID string) (*domain.PublicProfile, error) {
	passion, err := uc.resolvePassion(ctx, userID)
	if err != nil {
		return nil, err
	}
	if passion == nil {
		return nil, nil
	}

	prefs, err := uc.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch *passion {
	case domain.PassionTourGuide:
		guide, err := uc.guideRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to get guide profile: %w", err)
		}
		return buildGuideProfile(guide, prefs), nil
	case domain.PassionHotelPartner:
		hotel, err := uc.hotelRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to get hotel profile: %w", err)
		}
		return buildHotelProfile(hotel, prefs), nil
	}
	return nil, nil
}

// resolvePassion prefers the passion of an existing listing, then falls back
// to the user's registered passions. Tourist passions never resolve.
func (uc *UseCase) resolvePassion(ctx context.Context, userID string) (*domain.PassionType, error) {
	listings, err := uc.listingRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}
	for _, listing := range listings {
		if listing.PassionType.Listable() {
			p := listing.PassionType
			return &p, nil
		}
	}

	passions, err := uc.passionRepo.GetUserPassions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user passions: %w", err)
	}
	for _, passion := range passions {
		if passion.PassionType.Listable() {
			p := passion.PassionType
			return &p, nil
		}
	}
	return nil, nil
}

func buildGuideProfile(guide *domain.TourGuide, prefs *domain.VisibilityPreferences) *domain.PublicProfile {
	profile := &domain.PublicProfile{
		UserID:         guide.UserID,
		PassionType:    domain.PassionTourGuide,
		DisplayName:    guide.FullName,
		Bio:            resolveBio(prefs.CustomBio, guide.Bio),
		IsVerified:     guide.IsVerified,
		FeaturedImages: prefs.FeaturedImages,
	}
	if prefs.ShowLocation {
		profile.Location = &domain.Location{
			Address: guide.Address,
			City:    guide.City,
			State:   guide.State,
		}
	}
	if prefs.ShowContactInfo {
		phone := guide.Phone
		profile.ContactInfo = &domain.ContactInfo{
			Phone:   &phone,
			Email:   guide.Email,
			Website: guide.Website,
		}
	}
	if prefs.ShowPricing {
		profile.Pricing = &domain.Pricing{HourlyRate: guide.HourlyRate}
	}
	if prefs.ShowReviews {
		// Zero until a review-aggregation collaborator exists.
		profile.Reviews = &domain.Reviews{}
	}
	return profile
}

func buildHotelProfile(hotel *domain.HotelPartner, prefs *domain.VisibilityPreferences) *domain.PublicProfile {
	profile := &domain.PublicProfile{
		UserID:         hotel.UserID,
		PassionType:    domain.PassionHotelPartner,
		DisplayName:    hotel.CompanyName,
		Bio:            resolveBio(prefs.CustomBio, hotel.Bio),
		IsVerified:     hotel.IsVerified,
		FeaturedImages: prefs.FeaturedImages,
	}
	if prefs.ShowLocation {
		profile.Location = &domain.Location{
			Address: hotel.Address,
			City:    hotel.City,
			State:   hotel.State,
		}
	}
	if prefs.ShowContactInfo {
		profile.ContactInfo = &domain.ContactInfo{
			Phone:   hotel.Phone,
			Email:   hotel.Email,
			Website: hotel.Website,
		}
	}
	if prefs.ShowPricing {
		profile.Pricing = &domain.Pricing{
			PriceMin: hotel.PriceMin,
			PriceMax: hotel.PriceMax,
		}
	}
	if prefs.ShowReviews {
		profile.Reviews = &domain.Reviews{}
	}
	return profile
}

func resolveBio(custom, raw *string) *string {
	if custom != nil && *custom != "" {
		return custom
	}
	return raw
}
