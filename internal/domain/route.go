package domain

import (
	"fmt"
	"regexp"
)

// RouteContext is the requested origin/destination pair a search was run for.
// When present, the relevance filter uses it to drop itineraries that neither
// terminate at the requested route nor qualify as a recognized hidden-city or
// throwaway pattern reaching it.
type RouteContext struct {
	// Origin is the IATA code of the requested departure airport (e.g., "PVG")
	Origin string `json:"origin"`

	// Destination is the IATA code of the requested arrival airport (e.g., "LHR")
	Destination string `json:"destination"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Validate checks the route context.
// Returns a wrapped ErrInvalidRoute error if validation fails.
func (r *RouteContext) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRoute)
	}
	if !airportCodeRegex.MatchString(r.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRoute, r.Origin)
	}

	if r.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRoute)
	}
	if !airportCodeRegex.MatchString(r.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRoute, r.Destination)
	}

	if r.Origin == r.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRoute)
	}

	return nil
}
