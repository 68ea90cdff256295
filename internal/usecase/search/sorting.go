package search

import (
	"math"
	"sort"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

// Sort semantics: each key orders on its primary attribute with relevance
// score, descending, as the tie-breaker. Missing distances and missing
// price-low values sort last; missing price-high values sort as 0.

func sortGuideResults(results []*domain.GuideResult, sortBy domain.SortOption) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if c := compareGuides(a, b, sortBy); c != 0 {
			return c < 0
		}
		return a.RelevanceScore > b.RelevanceScore
	})
}

func compareGuides(a, b *domain.GuideResult, sortBy domain.SortOption) int {
	switch sortBy {
	case domain.SortRating:
		return compareFloatDesc(a.Rating, b.Rating)
	case domain.SortDistance:
		return compareFloatAsc(floatOrInf(a.Distance), floatOrInf(b.Distance))
	case domain.SortPriceLow:
		return compareFloatAsc(floatOrInf(a.HourlyRate), floatOrInf(b.HourlyRate))
	case domain.SortPriceHigh:
		return compareFloatDesc(floatOrZero(a.HourlyRate), floatOrZero(b.HourlyRate))
	case domain.SortNewest:
		if a.CreatedAt.After(b.CreatedAt) {
			return -1
		}
		if b.CreatedAt.After(a.CreatedAt) {
			return 1
		}
		return 0
	case domain.SortExperience:
		return compareFloatDesc(float64(a.ExperienceYears), float64(b.ExperienceYears))
	case domain.SortPopularity:
		return compareFloatDesc(float64(a.ReviewCount), float64(b.ReviewCount))
	}
	// Default: pure relevance ordering, handled by the tie-breaker.
	return 0
}

func sortHotelResults(results []*domain.HotelResult, sortBy domain.SortOption) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if c := compareHotels(a, b, sortBy); c != 0 {
			return c < 0
		}
		return a.RelevanceScore > b.RelevanceScore
	})
}

func compareHotels(a, b *domain.HotelResult, sortBy domain.SortOption) int {
	switch sortBy {
	case domain.SortRating:
		return compareFloatDesc(a.Rating, b.Rating)
	case domain.SortDistance:
		return compareFloatAsc(floatOrInf(a.Distance), floatOrInf(b.Distance))
	case domain.SortPriceLow:
		return compareFloatAsc(floatOrInf(priceRangeMin(a.PriceRange)), floatOrInf(priceRangeMin(b.PriceRange)))
	case domain.SortPriceHigh:
		return compareFloatDesc(floatOrZero(priceRangeMax(a.PriceRange)), floatOrZero(priceRangeMax(b.PriceRange)))
	case domain.SortNewest:
		if a.CreatedAt.After(b.CreatedAt) {
			return -1
		}
		if b.CreatedAt.After(a.CreatedAt) {
			return 1
		}
		return 0
	case domain.SortExperience:
		// Hotels carry no experience; everything ties back to relevance.
		return 0
	case domain.SortPopularity:
		return compareFloatDesc(float64(a.ReviewCount), float64(b.ReviewCount))
	}
	return 0
}

func priceRangeMin(pr *domain.PriceRange) *float64 {
	if pr == nil {
		return nil
	}
	return pr.Min
}

func priceRangeMax(pr *domain.PriceRange) *float64 {
	if pr == nil {
		return nil
	}
	return pr.Max
}

func floatOrInf(v *float64) float64 {
	if v == nil {
		return math.Inf(1)
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func compareFloatAsc(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareFloatDesc(a, b float64) int {
	return compareFloatAsc(b, a)
}
