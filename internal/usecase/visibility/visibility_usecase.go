package visibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
	"github.com/yatradesk/tourism-directory-backend/internal/repository"
)

// UseCase composes per-field disclosure preferences with directory listings
// to decide both directory inclusion and field redaction.
type UseCase struct {
	prefsRepo   repository.PreferencesRepository
	listingRepo repository.ListingRepository
	passionRepo repository.PassionRepository
	guideRepo   repository.GuideRepository
	hotelRepo   repository.HotelRepository
	touristRepo repository.TouristRepository
}

func NewUseCase(
	prefsRepo repository.PreferencesRepository,
	listingRepo repository.ListingRepository,
	passionRepo repository.PassionRepository,
	guideRepo repository.GuideRepository,
	hotelRepo repository.HotelRepository,
	touristRepo repository.TouristRepository,
) *UseCase {
	return &UseCase{
		prefsRepo:   prefsRepo,
		listingRepo: listingRepo,
		passionRepo: passionRepo,
		guideRepo:   guideRepo,
		hotelRepo:   hotelRepo,
		touristRepo: touristRepo,
	}
}

// GetPreferences returns the stored preferences, or the all-true default when
// the user never saved a row. Absence is never an error.
func (uc *UseCase) GetPreferences(ctx context.Context, userID string) (*domain.VisibilityPreferences, error) {
	prefs, err := uc.prefsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPreferencesNotFound) {
			return domain.DefaultPreferences(userID), nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return prefs, nil
}

// SetPreferences merges only the supplied fields over the current values
// (stored or default) and persists the result.
func (uc *UseCase) SetPreferences(ctx context.Context, userID string, update *domain.PreferencesUpdate) (*domain.VisibilityPreferences, error) {
	prefs, err := uc.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.ShowContactInfo != nil {
		prefs.ShowContactInfo = *update.ShowContactInfo
	}
	if update.ShowPricing != nil {
		prefs.ShowPricing = *update.ShowPricing
	}
	if update.ShowLocation != nil {
		prefs.ShowLocation = *update.ShowLocation
	}
	if update.ShowReviews != nil {
		prefs.ShowReviews = *update.ShowReviews
	}
	if update.CustomBio != nil {
		prefs.CustomBio = update.CustomBio
	}
	if update.FeaturedImages != nil {
		prefs.FeaturedImages = *update.FeaturedImages
	}

	if err := uc.prefsRepo.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return prefs, nil
}

// SetFieldVisibility maps symbolic field names onto the boolean flags.
// Unknown field names are silently ignored.
func (uc *UseCase) SetFieldVisibility(ctx context.Context, userID string, changes []domain.FieldVisibilityChange) (*domain.VisibilityPreferences, error) {
	update := &domain.PreferencesUpdate{}
	for _, change := range changes {
		visible := change.Visible
		switch change.Field {
		case domain.FieldContactInfo:
			update.ShowContactInfo = &visible
		case domain.FieldPricing:
			update.ShowPricing = &visible
		case domain.FieldLocation:
			update.ShowLocation = &visible
		case domain.FieldReviews:
			update.ShowReviews = &visible
		}
	}
	return uc.SetPreferences(ctx, userID, update)
}

// GetListings returns every directory listing the user owns, never nil.
func (uc *UseCase) GetListings(ctx context.Context, userID string) ([]*domain.DirectoryListing, error) {
	listings, err := uc.listingRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}
	if listings == nil {
		listings = []*domain.DirectoryListing{}
	}
	return listings, nil
}

// IsListingVisible is true iff at least one of the user's listings is
// visible; false when the user has no listings at all.
func (uc *UseCase) IsListingVisible(ctx context.Context, userID string) (bool, error) {
	listings, err := uc.listingRepo.GetByUser(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get listings: %w", err)
	}
	for _, listing := range listings {
		if listing.IsVisible {
			return true, nil
		}
	}
	return false, nil
}

// SetListingVisibility flips visibility on all of the user's listings, or on
// the single listing matching passion when given.
func (uc *UseCase) SetListingVisibility(ctx context.Context, userID string, visible bool, passion *domain.PassionType) ([]*domain.DirectoryListing, error) {
	if passion != nil {
		listing, err := uc.listingRepo.SetVisibility(ctx, userID, *passion, visible)
		if err != nil {
			return nil, err
		}
		return []*domain.DirectoryListing{listing}, nil
	}
	listings, err := uc.listingRepo.SetVisibilityForUser(ctx, userID, visible)
	if err != nil {
		return nil, fmt.Errorf("failed to update listings: %w", err)
	}
	return listings, nil
}

// DeactivateAccount hides the user's listings and marks the role profiles
// inactive. The two writes are not atomic; listings are hidden first so a
// crash mid-sequence still leaves the user out of the directory.
func (uc *UseCase) DeactivateAccount(ctx context.Context, userID string) error {
	if _, err := uc.listingRepo.SetVisibilityForUser(ctx, userID, false); err != nil {
		return fmt.Errorf("failed to hide listings: %w", err)
	}

	passions, err := uc.passionRepo.GetUserPassions(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user passions: %w", err)
	}
	for _, p := range passions {
		var err error
		switch p.PassionType {
		case domain.PassionTourGuide:
			err = uc.guideRepo.SetActive(ctx, userID, false)
		case domain.PassionHotelPartner:
			err = uc.hotelRepo.SetActive(ctx, userID, false)
		case domain.PassionTourist:
			err = uc.touristRepo.SetActive(ctx, userID, false)
		}
		if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
			return fmt.Errorf("failed to deactivate %s profile: %w", p.PassionType, err)
		}
	}
	return nil
}
