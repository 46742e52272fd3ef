// Package http provides swagger type definitions for API documentation.
// These types mirror the response DTOs but are defined here to help swag generate proper documentation.
package http

// SwaggerNormalizeResponse represents the normalization API response for swagger documentation.
// @Description Normalized itinerary batch with metadata
type SwaggerNormalizeResponse struct {
	// SearchID is the upstream correlation id of the normalized search
	SearchID string `json:"search_id" example:"srch-7f3a2b"`

	// Metadata contains aggregate counts about the normalization run
	Metadata SwaggerBatchMetadata `json:"metadata"`

	// DirectItineraries are the normalized direct-flight results
	DirectItineraries []SwaggerItinerary `json:"direct_itineraries"`

	// OtherItineraries are combo deals and hidden-city results
	OtherItineraries []SwaggerItinerary `json:"other_itineraries"`

	// Disclaimers are the provider's legal disclaimers for this batch
	Disclaimers []string `json:"disclaimers" example:"Hidden-city ticketing may violate carrier terms"`
}

// SwaggerBatchMetadata contains aggregate counts about a normalization run.
// @Description Aggregate counts for the normalized batch
type SwaggerBatchMetadata struct {
	// TotalResults is the total number of itineraries after filtering
	TotalResults int `json:"total_results" example:"14"`

	// DirectCount is the number of direct-collection itineraries
	DirectCount int `json:"direct_count" example:"6"`

	// OtherCount is the number of combo and hidden-city itineraries
	OtherCount int `json:"other_count" example:"8"`

	// FlaggedCount is the number of hidden-city or throwaway itineraries
	FlaggedCount int `json:"flagged_count" example:"5"`

	// DroppedByFilter is the number of itineraries removed by relevance filtering
	DroppedByFilter int `json:"dropped_by_filter" example:"2"`

	// WarningCount is the total number of data-quality warnings recorded
	WarningCount int `json:"warning_count" example:"3"`
}

// SwaggerItinerary represents a single normalized itinerary.
// @Description Canonical itinerary produced by the normalization pipeline
type SwaggerItinerary struct {
	// ID uniquely identifies the itinerary within its batch
	ID string `json:"id" example:"it-88af01"`

	// Segments are the flown legs in order
	Segments []SwaggerSegment `json:"segments"`

	// Transfers describe the layovers between consecutive segments
	Transfers []SwaggerTransfer `json:"transfers,omitempty"`

	// TotalDuration is the door-to-door duration including layovers
	TotalDuration SwaggerDuration `json:"total_duration"`

	// Price is the validated itinerary price
	Price SwaggerPrice `json:"price"`

	// IsDirectFlight is true for a genuine single-leg flight
	IsDirectFlight bool `json:"is_direct_flight" example:"false"`

	// NumberOfStops is the effective stop count from the traveler's perspective
	NumberOfStops int `json:"number_of_stops" example:"1"`

	// IsHiddenCity marks a provider-asserted hidden-city fare
	IsHiddenCity bool `json:"is_hidden_city" example:"true"`

	// IsThrowawayDeal marks a provider-asserted throwaway fare
	IsThrowawayDeal bool `json:"is_throwaway_deal" example:"false"`

	// HiddenDestination is where a hidden-city traveler actually disembarks
	HiddenDestination *SwaggerAirport `json:"hidden_destination,omitempty"`

	// Warnings records data-quality issues found during normalization
	Warnings []SwaggerWarning `json:"warnings,omitempty"`

	// RankingScore is the best-value score used for sorting (lower is better)
	RankingScore float64 `json:"ranking_score,omitempty" example:"0.31"`
}

// SwaggerSegment represents one flown leg.
// @Description One flown leg of an itinerary
type SwaggerSegment struct {
	// ID is the segment identifier
	ID string `json:"id" example:"seg-1"`

	// Airline is the marketing carrier
	Airline SwaggerAirline `json:"airline"`

	// FlightNumber is the airline's flight number
	FlightNumber string `json:"flight_number" example:"CA1858"`

	// Origin is the departure airport
	Origin SwaggerAirport `json:"origin"`

	// Destination is the arrival airport
	Destination SwaggerAirport `json:"destination"`

	// DepartureLocal is the scheduled departure in local wall-clock time
	DepartureLocal string `json:"departure_local" example:"2025-12-15T08:00:00"`

	// ArrivalLocal is the scheduled arrival in local wall-clock time
	ArrivalLocal string `json:"arrival_local" example:"2025-12-15T10:35:00"`

	// Duration is the flown duration of this leg
	Duration SwaggerDuration `json:"duration"`
}

// SwaggerTransfer represents the layover between two segments.
// @Description Ground time between two consecutive segments
type SwaggerTransfer struct {
	// City is where the transfer happens
	City string `json:"city,omitempty" example:"Chengdu"`

	// DurationMinutes is the layover duration
	DurationMinutes int `json:"duration_minutes" example:"95"`

	// IsDifferentAirport is true when the traveler must change airports
	IsDifferentAirport bool `json:"is_different_airport" example:"false"`

	// IsAirlineChange is true when the marketing carrier changes
	IsAirlineChange bool `json:"is_airline_change" example:"true"`

	// IsBaggageRecheck is true when baggage must be rechecked
	IsBaggageRecheck bool `json:"is_baggage_recheck" example:"false"`
}

// SwaggerAirline contains information about an airline.
// @Description Airline information
type SwaggerAirline struct {
	// Code is the IATA airline code
	Code string `json:"code" example:"CA"`

	// Name is the full airline name
	Name string `json:"name" example:"Air China"`

	// LogoURL points to the airline's logo image
	LogoURL string `json:"logo_url,omitempty" example:"https://daisycon.io/images/airline/?width=300&height=150&iata=CA"`
}

// SwaggerAirport contains information about an airport.
// @Description Airport information
type SwaggerAirport struct {
	// Code is the IATA airport code
	Code string `json:"code" example:"PEK"`

	// Name is the full airport name
	Name string `json:"name,omitempty" example:"Beijing Capital International Airport"`

	// CityName is the city the airport serves
	CityName string `json:"city_name,omitempty" example:"Beijing"`
}

// SwaggerDuration contains duration information.
// @Description Duration information
type SwaggerDuration struct {
	// TotalMinutes is the duration in minutes
	TotalMinutes int `json:"total_minutes" example:"845"`

	// Formatted is a human-readable duration string
	Formatted string `json:"formatted" example:"14h 5m"`
}

// SwaggerPrice contains validated price information.
// @Description Price information
type SwaggerPrice struct {
	// Amount is the price value
	Amount float64 `json:"amount" example:"2199.50"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency" example:"CNY"`

	// Available is false when no valid price could be derived
	Available bool `json:"available" example:"true"`
}

// SwaggerWarning represents a data-quality warning.
// @Description Data-quality issue found during normalization
type SwaggerWarning struct {
	// Code classifies the issue
	Code string `json:"code" example:"invalid_price"`

	// Field names the logical field involved
	Field string `json:"field,omitempty" example:"price"`

	// Detail is a human-readable description
	Detail string `json:"detail,omitempty" example:"price could not be coerced to a number"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
