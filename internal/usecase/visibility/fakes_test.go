package visibility

import (
	"context"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

type fakePrefsRepo struct {
	prefs map[string]*domain.VisibilityPreferences
}

func newFakePrefsRepo(prefs ...*domain.VisibilityPreferences) *fakePrefsRepo {
	repo := &fakePrefsRepo{prefs: make(map[string]*domain.VisibilityPreferences)}
	for _, p := range prefs {
		repo.prefs[p.UserID] = p
	}
	return repo
}

func (r *fakePrefsRepo) Get(_ context.Context, userID string) (*domain.VisibilityPreferences, error) {
	p, ok := r.prefs[userID]
	if !ok {
		return nil, domain.ErrPreferencesNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePrefsRepo) Upsert(_ context.Context, prefs *domain.VisibilityPreferences) error {
	r.prefs[prefs.UserID] = prefs
	return nil
}

type listingKey struct {
	userID  string
	passion domain.PassionType
}

type fakeListingRepo struct {
	listings map[listingKey]*domain.DirectoryListing
	hideLog  []string
}

func newFakeListingRepo(listings ...*domain.DirectoryListing) *fakeListingRepo {
	repo := &fakeListingRepo{listings: make(map[listingKey]*domain.DirectoryListing)}
	for _, l := range listings {
		repo.listings[listingKey{l.UserID, l.PassionType}] = l
	}
	return repo
}

func (r *fakeListingRepo) Upsert(_ context.Context, listing *domain.DirectoryListing) error {
	r.listings[listingKey{listing.UserID, listing.PassionType}] = listing
	return nil
}

func (r *fakeListingRepo) GetByUser(_ context.Context, userID string) ([]*domain.DirectoryListing, error) {
	var out []*domain.DirectoryListing
	for _, l := range r.listings {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) Get(_ context.Context, userID string, passion domain.PassionType) (*domain.DirectoryListing, error) {
	l, ok := r.listings[listingKey{userID, passion}]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return l, nil
}

func (r *fakeListingRepo) GetVisibleUserIDs(_ context.Context, passion domain.PassionType) ([]string, error) {
	var out []string
	for _, l := range r.listings {
		if l.PassionType == passion && l.IsVisible {
			out = append(out, l.UserID)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) SetVisibilityForUser(_ context.Context, userID string, visible bool) ([]*domain.DirectoryListing, error) {
	if !visible {
		r.hideLog = append(r.hideLog, "listings")
	}
	var out []*domain.DirectoryListing
	for _, l := range r.listings {
		if l.UserID == userID {
			l.IsVisible = visible
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) SetVisibility(_ context.Context, userID string, passion domain.PassionType, visible bool) (*domain.DirectoryListing, error) {
	l, ok := r.listings[listingKey{userID, passion}]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	l.IsVisible = visible
	return l, nil
}

type fakePassionRepo struct {
	passions map[string][]*domain.UserPassion
}

func newFakePassionRepo() *fakePassionRepo {
	return &fakePassionRepo{passions: make(map[string][]*domain.UserPassion)}
}

func (r *fakePassionRepo) GetUserPassions(_ context.Context, userID string) ([]*domain.UserPassion, error) {
	return r.passions[userID], nil
}

func (r *fakePassionRepo) Add(_ context.Context, userID string, passion domain.PassionType) error {
	r.passions[userID] = append(r.passions[userID], &domain.UserPassion{UserID: userID, PassionType: passion})
	return nil
}

type fakeGuideRepo struct {
	guides  map[string]*domain.TourGuide
	hideLog *[]string
}

func newFakeGuideRepo(guides ...*domain.TourGuide) *fakeGuideRepo {
	repo := &fakeGuideRepo{guides: make(map[string]*domain.TourGuide)}
	for _, g := range guides {
		repo.guides[g.UserID] = g
	}
	return repo
}

func (r *fakeGuideRepo) Create(_ context.Context, guide *domain.TourGuide) error {
	r.guides[guide.UserID] = guide
	return nil
}

func (r *fakeGuideRepo) GetByUserID(_ context.Context, userID string) (*domain.TourGuide, error) {
	g, ok := r.guides[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return g, nil
}

func (r *fakeGuideRepo) GetByUserIDs(_ context.Context, userIDs []string) ([]*domain.TourGuide, error) {
	var out []*domain.TourGuide
	for _, id := range userIDs {
		if g, ok := r.guides[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGuideRepo) ListActive(_ context.Context, limit, offset int) ([]*domain.TourGuide, error) {
	return nil, nil
}

func (r *fakeGuideRepo) Update(_ context.Context, guide *domain.TourGuide) error {
	r.guides[guide.UserID] = guide
	return nil
}

func (r *fakeGuideRepo) SetActive(_ context.Context, userID string, active bool) error {
	g, ok := r.guides[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	g.IsActive = active
	if !active && r.hideLog != nil {
		*r.hideLog = append(*r.hideLog, "guide-profile")
	}
	return nil
}

func (r *fakeGuideRepo) SetVerified(_ context.Context, userID string, verified bool) error {
	g, ok := r.guides[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	g.IsVerified = verified
	return nil
}

type fakeHotelRepo struct {
	hotels map[string]*domain.HotelPartner
}

func newFakeHotelRepo(hotels ...*domain.HotelPartner) *fakeHotelRepo {
	repo := &fakeHotelRepo{hotels: make(map[string]*domain.HotelPartner)}
	for _, h := range hotels {
		repo.hotels[h.UserID] = h
	}
	return repo
}

func (r *fakeHotelRepo) Create(_ context.Context, hotel *domain.HotelPartner) error {
	r.hotels[hotel.UserID] = hotel
	return nil
}

func (r *fakeHotelRepo) GetByUserID(_ context.Context, userID string) (*domain.HotelPartner, error) {
	h, ok := r.hotels[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return h, nil
}

func (r *fakeHotelRepo) GetByUserIDs(_ context.Context, userIDs []string) ([]*domain.HotelPartner, error) {
	var out []*domain.HotelPartner
	for _, id := range userIDs {
		if h, ok := r.hotels[id]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHotelRepo) ListActive(_ context.Context, limit, offset int) ([]*domain.HotelPartner, error) {
	return nil, nil
}

func (r *fakeHotelRepo) Update(_ context.Context, hotel *domain.HotelPartner) error {
	r.hotels[hotel.UserID] = hotel
	return nil
}

func (r *fakeHotelRepo) SetActive(_ context.Context, userID string, active bool) error {
	h, ok := r.hotels[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	h.IsActive = active
	return nil
}

func (r *fakeHotelRepo) SetVerified(_ context.Context, userID string, verified bool) error {
	h, ok := r.hotels[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	h.IsVerified = verified
	return nil
}

type fakeTouristRepo struct {
	tourists map[string]*domain.Tourist
}

func newFakeTouristRepo(tourists ...*domain.Tourist) *fakeTouristRepo {
	repo := &fakeTouristRepo{tourists: make(map[string]*domain.Tourist)}
	for _, tr := range tourists {
		repo.tourists[tr.UserID] = tr
	}
	return repo
}

func (r *fakeTouristRepo) Create(_ context.Context, tourist *domain.Tourist) error {
	r.tourists[tourist.UserID] = tourist
	return nil
}

func (r *fakeTouristRepo) GetByUserID(_ context.Context, userID string) (*domain.Tourist, error) {
	t, ok := r.tourists[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return t, nil
}

func (r *fakeTouristRepo) Update(_ context.Context, tourist *domain.Tourist) error {
	r.tourists[tourist.UserID] = tourist
	return nil
}

func (r *fakeTouristRepo) SetActive(_ context.Context, userID string, active bool) error {
	t, ok := r.tourists[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	t.IsActive = active
	return nil
}
