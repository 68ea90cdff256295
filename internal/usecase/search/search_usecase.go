package search

import (
	"context"
	"fmt"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
	"github.com/yatradesk/tourism-directory-backend/internal/repository"
)

// SuggestionCache is a best-effort prefix cache for autocomplete. A nil
// cache disables caching; failures inside an implementation must degrade to
// a miss, never an error.
type SuggestionCache interface {
	Get(ctx context.Context, prefix string) ([]string, bool)
	Set(ctx context.Context, prefix string, values []string)
}

// Engine runs directory searches over currently-visible listings: filter,
// score, sort, paginate.
type Engine struct {
	guideRepo   repository.GuideRepository
	hotelRepo   repository.HotelRepository
	listingRepo repository.ListingRepository
	cache       SuggestionCache
}

func NewEngine(
	guideRepo repository.GuideRepository,
	hotelRepo repository.HotelRepository,
	listingRepo repository.ListingRepository,
	cache SuggestionCache,
) *Engine {
	return &Engine{
		guideRepo:   guideRepo,
		hotelRepo:   hotelRepo,
		listingRepo: listingRepo,
		cache:       cache,
	}
}

// SearchGuides searches visible tour guide listings.
func (e *Engine) SearchGuides(ctx context.Context, query *domain.SearchQuery) (*domain.GuideSearchResponse, error) {
	page := query.Pagination.Normalized()

	userIDs, err := e.listingRepo.GetVisibleUserIDs(ctx, domain.PassionTourGuide)
	if err != nil {
		return nil, fmt.Errorf("failed to get visible listings: %w", err)
	}
	// Nothing visible: skip the profile query entirely.
	if len(userIDs) == 0 {
		return &domain.GuideSearchResponse{Results: []*domain.GuideResult{}, Page: page.Page, Limit: page.Limit}, nil
	}

	guides, err := e.guideRepo.GetByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get guide profiles: %w", err)
	}

	var results []*domain.GuideResult
	for _, guide := range guides {
		if !matchGuide(guide, query) {
			continue
		}
		results = append(results, guideResult(guide, scoreGuide(guide, query)))
	}

	sortGuideResults(results, query.Sort)

	total := len(results)
	offset := (page.Page - 1) * page.Limit
	return &domain.GuideSearchResponse{
		Results: sliceGuides(results, offset, page.Limit),
		Total:   total,
		Page:    page.Page,
		Limit:   page.Limit,
		HasMore: offset+page.Limit < total,
	}, nil
}

// SearchHotels searches visible hotel partner listings.
func (e *Engine) SearchHotels(ctx context.Context, query *domain.SearchQuery) (*domain.HotelSearchResponse, error) {
	page := query.Pagination.Normalized()

	userIDs, err := e.listingRepo.GetVisibleUserIDs(ctx, domain.PassionHotelPartner)
	if err != nil {
		return nil, fmt.Errorf("failed to get visible listings: %w", err)
	}
	if len(userIDs) == 0 {
		return &domain.HotelSearchResponse{Results: []*domain.HotelResult{}, Page: page.Page, Limit: page.Limit}, nil
	}

	hotels, err := e.hotelRepo.GetByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get hotel profiles: %w", err)
	}

	var results []*domain.HotelResult
	for _, hotel := range hotels {
		if !matchHotel(hotel, query) {
			continue
		}
		results = append(results, hotelResult(hotel, scoreHotel(hotel, query)))
	}

	sortHotelResults(results, query.Sort)

	total := len(results)
	offset := (page.Page - 1) * page.Limit
	return &domain.HotelSearchResponse{
		Results: sliceHotels(results, offset, page.Limit),
		Total:   total,
		Page:    page.Page,
		Limit:   page.Limit,
		HasMore: offset+page.Limit < total,
	}, nil
}

func sliceGuides(results []*domain.GuideResult, offset, limit int) []*domain.GuideResult {
	if offset >= len(results) {
		return []*domain.GuideResult{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}

func sliceHotels(results []*domain.HotelResult, offset, limit int) []*domain.HotelResult {
	if offset >= len(results) {
		return []*domain.HotelResult{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}

func guideResult(guide *domain.TourGuide, score int) *domain.GuideResult {
	experience := 0
	if guide.ExperienceYears != nil {
		experience = *guide.ExperienceYears
	}
	return &domain.GuideResult{
		UserID:          guide.UserID,
		FullName:        guide.FullName,
		Bio:             guide.Bio,
		City:            guide.City,
		State:           guide.State,
		Specialties:     guide.Specialties,
		LanguagesSpoken: guide.Languages,
		ExperienceYears: experience,
		HourlyRate:      guide.HourlyRate,
		Certifications:  guide.Certifications,
		// Rating and ReviewCount stay 0 until review aggregation lands.
		IsVerified:     guide.IsVerified,
		RelevanceScore: score,
		CreatedAt:      guide.CreatedAt,
	}
}

func hotelResult(hotel *domain.HotelPartner, score int) *domain.HotelResult {
	var priceRange *domain.PriceRange
	if hotel.PriceMin != nil || hotel.PriceMax != nil {
		priceRange = &domain.PriceRange{Min: hotel.PriceMin, Max: hotel.PriceMax}
	}
	return &domain.HotelResult{
		UserID:      hotel.UserID,
		CompanyName: hotel.CompanyName,
		Bio:         hotel.Bio,
		City:        hotel.City,
		State:       hotel.State,
		HotelType:   hotel.HotelType,
		Amenities:   hotel.Amenities,
		RoomTypes:   hotel.RoomTypes,
		PriceRange:  priceRange,
		Images:      hotel.Images,
		// Rating and ReviewCount stay 0 until review aggregation lands.
		IsVerified:     hotel.IsVerified,
		RelevanceScore: score,
		CreatedAt:      hotel.CreatedAt,
	}
}
