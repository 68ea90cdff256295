package search

import (
	"context"
	"errors"
	"sort"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

type fakeGuideRepo struct {
	guides map[string]*domain.TourGuide
	calls  int
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
	r.calls++
	sorted := append([]string(nil), userIDs...)
	sort.Strings(sorted)
	var out []*domain.TourGuide
	for _, id := range sorted {
		if g, ok := r.guides[id]; ok && g.IsActive {
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
	calls  int
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
	r.calls++
	sorted := append([]string(nil), userIDs...)
	sort.Strings(sorted)
	var out []*domain.HotelPartner
	for _, id := range sorted {
		if h, ok := r.hotels[id]; ok && h.IsActive {
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

type listingKey struct {
	userID  string
	passion domain.PassionType
}

type fakeListingRepo struct {
	listings map[listingKey]*domain.DirectoryListing
	err      error
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
	if r.err != nil {
		return nil, r.err
	}
	var out []string
	for _, l := range r.listings {
		if l.PassionType == passion && l.IsVisible {
			out = append(out, l.UserID)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) SetVisibilityForUser(_ context.Context, userID string, visible bool) ([]*domain.DirectoryListing, error) {
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

type fakeCache struct {
	store map[string][]string
	hits  int
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]string)}
}

func (c *fakeCache) Get(_ context.Context, prefix string) ([]string, bool) {
	values, ok := c.store[prefix]
	if ok {
		c.hits++
	}
	return values, ok
}

func (c *fakeCache) Set(_ context.Context, prefix string, values []string) {
	c.sets++
	c.store[prefix] = values
}

var errRepoDown = errors.New("repository unavailable")

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }
