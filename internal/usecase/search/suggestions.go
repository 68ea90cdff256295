package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

const (
	minSuggestionQueryLen = 2
	maxSuggestions        = 10
)

// GetSuggestions returns up to 10 distinct values from visible guide and
// hotel fields that contain the partial query. Queries shorter than two
// characters yield nothing. Results pass through the suggestion cache when
// one is configured.
func (e *Engine) GetSuggestions(ctx context.Context, partial string) ([]string, error) {
	needle := normalize(partial)
	if len([]rune(needle)) < minSuggestionQueryLen {
		return []string{}, nil
	}

	if e.cache != nil {
		if cached, ok := e.cache.Get(ctx, needle); ok {
			return cached, nil
		}
	}

	collector := newSuggestionCollector(needle, maxSuggestions)

	guideIDs, err := e.listingRepo.GetVisibleUserIDs(ctx, domain.PassionTourGuide)
	if err != nil {
		return nil, fmt.Errorf("failed to get visible guide listings: %w", err)
	}
	if len(guideIDs) > 0 {
		guides, err := e.guideRepo.GetByUserIDs(ctx, guideIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to get guide profiles: %w", err)
		}
		for _, guide := range guides {
			collector.add(guide.FullName)
			collector.addPtr(guide.City)
			collector.addPtr(guide.State)
			collector.addAll(guide.Specialties)
		}
	}

	hotelIDs, err := e.listingRepo.GetVisibleUserIDs(ctx, domain.PassionHotelPartner)
	if err != nil {
		return nil, fmt.Errorf("failed to get visible hotel listings: %w", err)
	}
	if len(hotelIDs) > 0 {
		hotels, err := e.hotelRepo.GetByUserIDs(ctx, hotelIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to get hotel profiles: %w", err)
		}
		for _, hotel := range hotels {
			collector.add(hotel.CompanyName)
			collector.addPtr(hotel.City)
			collector.addPtr(hotel.State)
			collector.addAll(hotel.Amenities)
		}
	}

	suggestions := collector.values()
	if e.cache != nil {
		e.cache.Set(ctx, needle, suggestions)
	}
	return suggestions, nil
}

// suggestionCollector keeps the first N distinct matching values in
// encounter order; distinctness is case-insensitive.
type suggestionCollector struct {
	needle string
	limit  int
	seen   map[string]struct{}
	out    []string
}

func newSuggestionCollector(needle string, limit int) *suggestionCollector {
	return &suggestionCollector{
		needle: needle,
		limit:  limit,
		seen:   make(map[string]struct{}),
		out:    []string{},
	}
}

func (c *suggestionCollector) add(value string) {
	if len(c.out) >= c.limit {
		return
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !containsFold(trimmed, c.needle) {
		return
	}
	key := strings.ToLower(trimmed)
	if _, ok := c.seen[key]; ok {
		return
	}
	c.seen[key] = struct{}{}
	c.out = append(c.out, trimmed)
}

func (c *suggestionCollector) addPtr(value *string) {
	if value != nil {
		c.add(*value)
	}
}

func (c *suggestionCollector) addAll(values []string) {
	for _, v := range values {
		c.add(v)
	}
}

func (c *suggestionCollector) values() []string {
	return c.out
}
