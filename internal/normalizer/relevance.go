package normalizer

import (
	"github.com/flight-search/itinerary-normalization-service/internal/domain"
)

// FilterRelevant retains only itineraries relevant to the requested route.
//
// Rules, in order:
//   - Itineraries flagged hidden-city or throwaway are always retained: the
//     classification is provider-asserted and takes precedence over geometry.
//   - Itineraries containing a malformed segment (no airport codes at all)
//     cannot be matched to any route and are dropped.
//   - Single-segment itineraries must match the route exactly.
//   - Multi-segment itineraries must start at the requested origin and either
//     pass through the requested destination as an intermediate arrival
//     (fly-through patterns that continue elsewhere) or terminate at it.
//
// Non-matching itineraries are dropped silently; survivors are never mutated.
// The second return value is the number of itineraries dropped.
func FilterRelevant(itineraries []domain.Itinerary, route domain.RouteContext) ([]domain.Itinerary, int) {
	result := make([]domain.Itinerary, 0, len(itineraries))

	for _, it := range itineraries {
		if isRelevant(it, route) {
			result = append(result, it)
		}
	}

	return result, len(itineraries) - len(result)
}

// isRelevant applies the retention rules to a single itinerary.
func isRelevant(it domain.Itinerary, route domain.RouteContext) bool {
	if it.IsFareFlagged() {
		return true
	}

	if len(it.Segments) == 0 || it.HasMalformedSegment() {
		return false
	}

	first := it.FirstSegment()
	last := it.LastSegment()

	if len(it.Segments) == 1 {
		return first.Origin.Code == route.Origin && first.Destination.Code == route.Destination
	}

	if first.Origin.Code != route.Origin {
		return false
	}

	if last.Destination.Code == route.Destination {
		return true
	}

	// Fly-through: the requested destination appears as an intermediate
	// arrival, the journey continues elsewhere
	for i := 0; i < len(it.Segments)-1; i++ {
		if it.Segments[i].Destination.Code == route.Destination {
			return true
		}
	}

	return false
}
