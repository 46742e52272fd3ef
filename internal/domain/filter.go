package domain

import (
	"strings"
	"time"
)

// SortOption defines the available sorting options for normalized itineraries.
type SortOption string

// Available sort options.
const (
	// SortByBestValue sorts by the calculated ranking score (default)
	SortByBestValue SortOption = "best"

	// SortByPrice sorts by price ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by total duration ascending (shortest first)
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by first-segment departure time ascending
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByBestValue, SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// FilterOptions defines optional presentation filters applied after
// normalization and relevance filtering. These are user preferences, not
// business rules: they never affect classification.
type FilterOptions struct {
	// MaxPrice drops itineraries priced above this amount. Itineraries with an
	// unavailable price pass (their price cannot be judged).
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops drops itineraries with more effective stops than this value.
	// 0 = direct flights only, 1 = max 1 stop, etc.
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines keeps only itineraries where every marketing carrier is in this
	// list. Empty means no airline filtering.
	Airlines []string `json:"airlines,omitempty"`

	// DepartureTimeRange keeps itineraries whose first segment departs within
	// this window
	DepartureTimeRange *TimeRange `json:"departureTimeRange,omitempty"`

	// DurationRange keeps itineraries by total duration in minutes
	DurationRange *DurationRange `json:"durationRange,omitempty"`
}

// TimeRange represents a time window for filtering.
type TimeRange struct {
	// Start is the beginning of the time range (inclusive)
	Start time.Time `json:"start"`

	// End is the end of the time range (inclusive)
	End time.Time `json:"end"`
}

// Contains checks if a given time falls within the time range.
// Only the time-of-day portion is compared, dates are ignored.
func (tr *TimeRange) Contains(t time.Time) bool {
	if tr == nil {
		return true
	}

	tMinutes := t.Hour()*60 + t.Minute()
	startMinutes := tr.Start.Hour()*60 + tr.Start.Minute()
	endMinutes := tr.End.Hour()*60 + tr.End.Minute()

	return tMinutes >= startMinutes && tMinutes <= endMinutes
}

// DurationRange represents a duration range filter in minutes.
type DurationRange struct {
	// MinMinutes is the minimum acceptable total duration (inclusive)
	MinMinutes *int `json:"minMinutes,omitempty"`

	// MaxMinutes is the maximum acceptable total duration (inclusive)
	MaxMinutes *int `json:"maxMinutes,omitempty"`
}

// IsValid checks if the duration range is valid.
// Returns false if min > max, or if any values are negative.
func (dr *DurationRange) IsValid() bool {
	if dr == nil {
		return true
	}

	if dr.MinMinutes != nil && *dr.MinMinutes < 0 {
		return false
	}
	if dr.MaxMinutes != nil && *dr.MaxMinutes < 0 {
		return false
	}

	if dr.MinMinutes != nil && dr.MaxMinutes != nil {
		if *dr.MinMinutes > *dr.MaxMinutes {
			return false
		}
	}

	return true
}

// Contains checks if a given duration (in minutes) falls within the range.
func (dr *DurationRange) Contains(durationMinutes int) bool {
	if dr == nil {
		return true
	}

	if dr.MinMinutes != nil && durationMinutes < *dr.MinMinutes {
		return false
	}
	if dr.MaxMinutes != nil && durationMinutes > *dr.MaxMinutes {
		return false
	}

	return true
}

// MatchesItinerary checks if an itinerary passes all filter criteria.
func (opts *FilterOptions) MatchesItinerary(it Itinerary) bool {
	if opts == nil {
		return true
	}

	// Price filter: unavailable prices pass, they cannot be compared
	if opts.MaxPrice != nil && it.Price.Available && it.Price.Amount > *opts.MaxPrice {
		return false
	}

	if opts.MaxStops != nil && it.NumberOfStops > *opts.MaxStops {
		return false
	}

	if len(opts.Airlines) > 0 && !itineraryAirlinesAllowed(it, opts.Airlines) {
		return false
	}

	if opts.DepartureTimeRange != nil {
		first := it.FirstSegment()
		if first == nil || !opts.DepartureTimeRange.Contains(first.DepartureLocal) {
			return false
		}
	}

	if opts.DurationRange != nil && !opts.DurationRange.Contains(it.TotalDurationMinutes) {
		return false
	}

	return true
}

// itineraryAirlinesAllowed reports whether every marketing carrier on the
// itinerary is in the allowed list (case-insensitive).
func itineraryAirlinesAllowed(it Itinerary, allowed []string) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, code := range allowed {
		set[strings.ToUpper(code)] = struct{}{}
	}

	for _, a := range it.Airlines {
		if _, ok := set[strings.ToUpper(a.Code)]; !ok {
			return false
		}
	}
	return true
}
