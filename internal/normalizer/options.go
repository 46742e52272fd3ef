package normalizer

import "github.com/flight-search/itinerary-normalization-service/internal/domain"

// Options controls a single normalization run.
type Options struct {
	// Route enables relevance filtering against the searched route.
	// When nil, no itinerary is dropped for route mismatch.
	Route *domain.RouteContext

	// Filters restricts the presented itineraries (price cap, stops, airlines,
	// time windows). When nil, all normalized itineraries are kept.
	Filters *domain.FilterOptions

	// SortBy selects the presentation order of each collection
	SortBy domain.SortOption
}

// DefaultOptions returns options with no filtering and best-match ordering.
func DefaultOptions() Options {
	return Options{SortBy: domain.SortByBestValue}
}
