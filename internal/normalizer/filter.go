package normalizer

import (
	"github.com/flight-search/itinerary-normalization-service/internal/domain"
)

// ApplyFilters applies the given presentation filter options to a list of
// itineraries. It returns a new slice containing only itineraries that match
// all filter criteria.
//
// Behavior:
//   - Returns the original slice if opts is nil (no filtering)
//   - Nil/empty filter values are skipped (no filtering on that criterion)
//   - Itineraries with an unavailable price pass the MaxPrice filter
//   - Does NOT mutate the original itineraries slice
//   - Performance is O(n) where n = number of itineraries
func ApplyFilters(itineraries []domain.Itinerary, opts *domain.FilterOptions) []domain.Itinerary {
	if opts == nil {
		return itineraries
	}

	result := make([]domain.Itinerary, 0, len(itineraries))
	for _, it := range itineraries {
		if opts.MatchesItinerary(it) {
			result = append(result, it)
		}
	}
	return result
}
