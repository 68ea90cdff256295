package visibility

import (
	"context"
	"testing"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

func boolPtr(v bool) *bool        { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func newTestUseCase(
	prefs *fakePrefsRepo,
	listings *fakeListingRepo,
	passions *fakePassionRepo,
	guides *fakeGuideRepo,
	hotels *fakeHotelRepo,
	tourists *fakeTouristRepo,
) *UseCase {
	if prefs == nil {
		prefs = newFakePrefsRepo()
	}
	if listings == nil {
		listings = newFakeListingRepo()
	}
	if passions == nil {
		passions = newFakePassionRepo()
	}
	if guides == nil {
		guides = newFakeGuideRepo()
	}
	if hotels == nil {
		hotels = newFakeHotelRepo()
	}
	if tourists == nil {
		tourists = newFakeTouristRepo()
	}
	return NewUseCase(prefs, listings, passions, guides, hotels, tourists)
}

func TestGetPreferencesDefaultsToAllVisible(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, nil, nil, nil)

	prefs, err := uc.GetPreferences(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if !prefs.ShowContactInfo || !prefs.ShowPricing || !prefs.ShowLocation || !prefs.ShowReviews {
		t.Errorf("default preferences must be all-visible, got %+v", prefs)
	}
	if prefs.UserID != "user-1" {
		t.Errorf("UserID = %s, want user-1", prefs.UserID)
	}
}

func TestSetPreferencesMergesPartialUpdate(t *testing.T) {
	prefsRepo := newFakePrefsRepo(&domain.VisibilityPreferences{
		UserID:          "user-1",
		ShowContactInfo: false,
		ShowPricing:     true,
		ShowLocation:    true,
		ShowReviews:     true,
	})
	uc := newTestUseCase(prefsRepo, nil, nil, nil, nil, nil)

	got, err := uc.SetPreferences(context.Background(), "user-1", &domain.PreferencesUpdate{
		ShowPricing: boolPtr(false),
		CustomBio:   strPtr("Award-winning local guide"),
	})
	if err != nil {
		t.Fatalf("SetPreferences() error = %v", err)
	}

	if got.ShowContactInfo {
		t.Error("untouched ShowContactInfo must keep its stored value")
	}
	if got.ShowPricing {
		t.Error("ShowPricing must flip to false")
	}
	if !got.ShowLocation || !got.ShowReviews {
		t.Error("untouched flags must keep their stored values")
	}
	if got.CustomBio == nil || *got.CustomBio != "Award-winning local guide" {
		t.Errorf("CustomBio = %v, want the new bio", got.CustomBio)
	}

	stored := prefsRepo.prefs["user-1"]
	if stored.ShowPricing {
		t.Error("merge result must be persisted")
	}
}

func TestSetFieldVisibilityMapsSymbolicNames(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, nil, nil, nil)

	got, err := uc.SetFieldVisibility(context.Background(), "user-1", []domain.FieldVisibilityChange{
		{Field: domain.FieldContactInfo, Visible: false},
		{Field: domain.FieldReviews, Visible: false},
		{Field: "social_media", Visible: false}, // unknown, silently ignored
	})
	if err != nil {
		t.Fatalf("SetFieldVisibility() error = %v", err)
	}

	if got.ShowContactInfo {
		t.Error("contact_info must be hidden")
	}
	if got.ShowReviews {
		t.Error("reviews must be hidden")
	}
	if !got.ShowPricing || !got.ShowLocation {
		t.Error("unmentioned fields must stay at their defaults")
	}
}

func TestGetListingsReturnsAllRows(t *testing.T) {
	listings := newFakeListingRepo(
		&domain.DirectoryListing{UserID: "user-1", PassionType: domain.PassionTourGuide, IsVisible: true},
		&domain.DirectoryListing{UserID: "user-1", PassionType: domain.PassionHotelPartner, IsVisible: false},
		&domain.DirectoryListing{UserID: "user-2", PassionType: domain.PassionTourGuide, IsVisible: true},
	)
	uc := newTestUseCase(nil, listings, nil, nil, nil, nil)

	got, err := uc.GetListings(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetListings() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d listings, want the caller's 2", len(got))
	}
	for _, l := range got {
		if l.UserID != "user-1" {
			t.Errorf("listing for %s leaked into user-1's rows", l.UserID)
		}
	}

	got, err = uc.GetListings(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("GetListings() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("listings for unknown user = %v, want empty non-nil slice", got)
	}
}

func TestIsListingVisibleIsTrueWhenAnyListingIsVisible(t *testing.T) {
	tests := []struct {
		name     string
		listings []*domain.DirectoryListing
		want     bool
	}{
		{
			"no listings",
			nil,
			false,
		},
		{
			"all hidden",
			[]*domain.DirectoryListing{
				{UserID: "user-1", PassionType: domain.PassionTourGuide, IsVisible: false},
				{UserID: "user-1", PassionType: domain.PassionHotelPartner, IsVisible: false},
			},
			false,
		},
		{
			"one visible among hidden",
			[]*domain.DirectoryListing{
				{UserID: "user-1", PassionType: domain.PassionTourGuide, IsVisible: false},
				{UserID: "user-1", PassionType: domain.PassionHotelPartner, IsVisible: true},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(nil, newFakeListingRepo(tt.listings...), nil, nil, nil, nil)
			got, err := uc.IsListingVisible(context.Background(), "user-1")
			if err != nil {
				t.Fatalf("IsListingVisible() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsListingVisible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetListingVisibilityScopes(t *testing.T) {
	listings := newFakeListingRepo(
		&domain.DirectoryListing{UserID: "user-1", PassionType: domain.PassionTourGuide, IsVisible: true},
		&domain.DirectoryListing{UserID: "user-1", PassionType: domain.PassionHotelPartner, IsVisible: true},
	)
	uc := newTestUseCase(nil, listings, nil, nil, nil, nil)

	passion := domain.PassionTourGuide
	updated, err := uc.SetListingVisibility(context.Background(), "user-1", false, &passion)
	if err != nil {
		t.Fatalf("SetListingVisibility(single) error = %v", err)
	}
	if len(updated) != 1 {
		t.Fatalf("single-passion update touched %d listings, want 1", len(updated))
	}
	if listings.listings[listingKey{"user-1", domain.PassionHotelPartner}].IsVisible != true {
		t.Error("other passion's listing must be untouched")
	}

	updated, err = uc.SetListingVisibility(context.Background(), "user-1", false, nil)
	if err != nil {
		t.Fatalf("SetListingVisibility(all) error = %v", err)
	}
	if len(updated) != 2 {
		t.Fatalf("all-passions update touched %d listings, want 2", len(updated))
	}
	for key, l := range listings.listings {
		if l.IsVisible {
			t.Errorf("listing %v still visible after hide-all", key)
		}
	}
}

func TestDeactivateAccountHidesListingsBeforeProfiles(t *testing.T) {
	guide := &domain.TourGuide{UserID: "user-1", FullName: "John Doe", IsActive: true}
	listings := newFakeListingRepo(
		&domain.DirectoryListing{UserID: "user-1", PassionType: domain.PassionTourGuide, IsVisible: true},
	)
	guides := newFakeGuideRepo(guide)
	guides.hideLog = &listings.hideLog

	passions := newFakePassionRepo()
	_ = passions.Add(context.Background(), "user-1", domain.PassionTourGuide)

	uc := newTestUseCase(nil, listings, passions, guides, nil, nil)

	if err := uc.DeactivateAccount(context.Background(), "user-1"); err != nil {
		t.Fatalf("DeactivateAccount() error = %v", err)
	}

	if guide.IsActive {
		t.Error("guide profile must be inactive")
	}
	if listings.listings[listingKey{"user-1", domain.PassionTourGuide}].IsVisible {
		t.Error("listing must be hidden")
	}
	if len(listings.hideLog) != 2 || listings.hideLog[0] != "listings" || listings.hideLog[1] != "guide-profile" {
		t.Errorf("hide order = %v, want listings before guide-profile", listings.hideLog)
	}
}

func TestDeactivateAccountToleratesMissingProfiles(t *testing.T) {
	passions := newFakePassionRepo()
	_ = passions.Add(context.Background(), "user-1", domain.PassionTourGuide)
	_ = passions.Add(context.Background(), "user-1", domain.PassionTourist)

	uc := newTestUseCase(nil, nil, passions, nil, nil, nil)

	if err := uc.DeactivateAccount(context.Background(), "user-1"); err != nil {
		t.Fatalf("DeactivateAccount() with absent profiles error = %v", err)
	}
}
