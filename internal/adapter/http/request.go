// Package http provides the HTTP handler layer for the itinerary normalization API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
)

// NormalizeRequest represents the request body for itinerary normalization.
// Payload carries the raw upstream search response verbatim; everything else
// tunes how the normalized result is filtered and presented.
type NormalizeRequest struct {
	// Payload is the raw search response to normalize. Any of the supported
	// schema variants is accepted.
	Payload map[string]interface{} `json:"payload"`

	// Route optionally enables relevance filtering against the searched route
	Route *RouteDTO `json:"route,omitempty"`

	// Filters contains optional presentation filters
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies result ordering: best, price, duration, departure
	SortBy string `json:"sortBy,omitempty"`
}

// RouteDTO is the searched origin/destination pair.
type RouteDTO struct {
	// Origin is the IATA code of the departure airport (e.g., "PEK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination"`
}

// FilterDTO represents optional presentation filters.
// Example: {"maxPrice": 5000, "maxStops": 1, "departureTimeRange": {"start": "06:00", "end": "12:00"}}
type FilterDTO struct {
	// MaxPrice drops itineraries priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"5000"`

	// MaxStops drops itineraries with more effective stops (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"1"`

	// Airlines keeps only itineraries flown entirely by these airline codes
	Airlines []string `json:"airlines,omitempty" example:"CA,MU"`

	// DepartureTimeRange keeps itineraries departing within a time window
	DepartureTimeRange *TimeRangeDTO `json:"departureTimeRange,omitempty"`

	// DurationRange keeps itineraries by total duration in minutes
	DurationRange *DurationRangeDTO `json:"durationRange,omitempty"`
}

// TimeRangeDTO represents a time window for filtering.
type TimeRangeDTO struct {
	// Start is the beginning of the time range (HH:MM format, e.g., "06:00")
	Start string `json:"start"`

	// End is the end of the time range (HH:MM format, e.g., "12:00")
	End string `json:"end"`
}

// DurationRangeDTO represents a duration range filter in minutes.
// Example: {"minMinutes": 120, "maxMinutes": 900} keeps itineraries between 2-15 hours.
type DurationRangeDTO struct {
	// MinMinutes is the minimum acceptable total duration in minutes
	MinMinutes *int `json:"minMinutes,omitempty" example:"120"`

	// MaxMinutes is the maximum acceptable total duration in minutes
	MaxMinutes *int `json:"maxMinutes,omitempty" example:"900"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	timePattern        = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Valid sort options.
var validSortOptions = map[string]bool{
	"best":      true,
	"price":     true,
	"duration":  true,
	"departure": true,
	"":          true, // Empty is valid (defaults to best)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the normalize request and returns any validation errors.
func (r *NormalizeRequest) Validate() error {
	errs := &ValidationErrors{}

	// Validate payload presence
	r.validatePayload(errs)

	// Validate route
	r.validateRoute(errs)

	// Validate sort option
	r.validateSortBy(errs)

	// Validate filters
	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *NormalizeRequest) validatePayload(errs *ValidationErrors) {
	if r.Payload == nil {
		errs.Add("payload", "payload is required and must be a JSON object")
	}
}

func (r *NormalizeRequest) validateRoute(errs *ValidationErrors) {
	if r.Route == nil {
		return
	}

	origin := strings.ToUpper(r.Route.Origin)
	if origin == "" {
		errs.Add("route.origin", "origin is required when route is specified")
	} else if !airportCodePattern.MatchString(origin) {
		errs.Add("route.origin", "origin must be a valid 3-letter IATA airport code")
	} else {
		r.Route.Origin = origin // Normalize to uppercase
	}

	dest := strings.ToUpper(r.Route.Destination)
	if dest == "" {
		errs.Add("route.destination", "destination is required when route is specified")
	} else if !airportCodePattern.MatchString(dest) {
		errs.Add("route.destination", "destination must be a valid 3-letter IATA airport code")
	} else {
		r.Route.Destination = dest // Normalize to uppercase
	}

	if origin != "" && dest != "" && origin == dest {
		errs.Add("route.destination", "origin and destination must be different")
	}
}

func (r *NormalizeRequest) validateSortBy(errs *ValidationErrors) {
	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sortBy", "sortBy must be one of: best, price, duration, departure")
	}
}

func (r *NormalizeRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	// Validate maxPrice
	if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
		errs.Add("filters.maxPrice", "maxPrice must be a positive number")
	}

	// Validate maxStops
	if r.Filters.MaxStops != nil && *r.Filters.MaxStops < 0 {
		errs.Add("filters.maxStops", "maxStops must be a non-negative number")
	}

	// Validate airline codes
	for i, airline := range r.Filters.Airlines {
		normalized := strings.ToUpper(airline)
		if len(normalized) < 2 || len(normalized) > 3 {
			errs.Add(fmt.Sprintf("filters.airlines[%d]", i),
				"airline code must be 2 or 3 characters")
		}
		r.Filters.Airlines[i] = normalized
	}

	// Validate departure time range
	if r.Filters.DepartureTimeRange != nil {
		r.validateDepartureTimeRange(errs)
	}

	// Validate duration range
	if r.Filters.DurationRange != nil {
		r.validateDurationRange(errs)
	}
}

func (r *NormalizeRequest) validateDepartureTimeRange(errs *ValidationErrors) {
	tr := r.Filters.DepartureTimeRange

	if tr.Start == "" {
		errs.Add("filters.departureTimeRange.start", "start time is required when departureTimeRange is specified")
	} else if !isValidTimeFormat(tr.Start) {
		errs.Add("filters.departureTimeRange.start", "start must be in HH:MM format with valid hours (00-23) and minutes (00-59)")
	}

	if tr.End == "" {
		errs.Add("filters.departureTimeRange.end", "end time is required when departureTimeRange is specified")
	} else if !isValidTimeFormat(tr.End) {
		errs.Add("filters.departureTimeRange.end", "end must be in HH:MM format with valid hours (00-23) and minutes (00-59)")
	}
}

func (r *NormalizeRequest) validateDurationRange(errs *ValidationErrors) {
	dr := r.Filters.DurationRange

	// Validate minimum duration
	if dr.MinMinutes != nil {
		if *dr.MinMinutes < 0 {
			errs.Add("filters.durationRange.minMinutes", "minMinutes must be a non-negative number")
		}
	}

	// Validate maximum duration
	if dr.MaxMinutes != nil {
		if *dr.MaxMinutes < 0 {
			errs.Add("filters.durationRange.maxMinutes", "maxMinutes must be a non-negative number")
		}
	}

	// Validate that min <= max if both are provided
	if dr.MinMinutes != nil && dr.MaxMinutes != nil {
		if *dr.MinMinutes > *dr.MaxMinutes {
			errs.Add("filters.durationRange", "minMinutes must be less than or equal to maxMinutes")
		}
	}
}

// isValidTimeFormat validates that a time string is in HH:MM format with valid values.
// Hours must be 00-23, minutes must be 00-59.
func isValidTimeFormat(timeStr string) bool {
	// Check basic format
	if !timePattern.MatchString(timeStr) {
		return false
	}

	// Parse and validate hour and minute values
	var hour, minute int
	_, err := fmt.Sscanf(timeStr, "%02d:%02d", &hour, &minute)
	if err != nil {
		return false
	}

	// Validate ranges
	if hour < 0 || hour > 23 {
		return false
	}
	if minute < 0 || minute > 59 {
		return false
	}

	return true
}
