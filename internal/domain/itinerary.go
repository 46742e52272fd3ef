// Package domain contains the canonical itinerary model produced by the
// normalization pipeline. These entities are schema-agnostic: whatever shape the
// upstream search provider returned, the rest of the system only ever sees these types.
package domain

import (
	"fmt"
	"time"
)

// AirportRef identifies an airport. Immutable value object.
type AirportRef struct {
	// Code is the IATA airport code (e.g., "PVG")
	Code string `json:"code"`

	// Name is the full airport name (e.g., "Shanghai Pudong International Airport")
	Name string `json:"name,omitempty"`

	// CityName is the city the airport serves (e.g., "Shanghai")
	CityName string `json:"cityName,omitempty"`

	// CountryName is the country the airport is in
	CountryName string `json:"countryName,omitempty"`
}

// AirlineRef identifies an airline. Immutable value object.
type AirlineRef struct {
	// Code is the IATA airline code (e.g., "CA" for Air China)
	Code string `json:"code"`

	// Name is the full airline name (e.g., "Air China")
	Name string `json:"name,omitempty"`

	// LogoURL points to the airline's logo image. When the upstream payload does
	// not supply one it is derived deterministically from Code.
	LogoURL string `json:"logoUrl,omitempty"`
}

// Segment is one flown leg of an itinerary.
type Segment struct {
	// ID is the upstream segment identifier, or a generated one when absent
	ID string `json:"id,omitempty"`

	// Airline is the marketing carrier
	Airline AirlineRef `json:"airline"`

	// OperatingAirline is the carrier actually operating the flight, when it
	// differs from the marketing carrier
	OperatingAirline *AirlineRef `json:"operatingAirline,omitempty"`

	// FlightNumber is the airline's flight number (e.g., "CA1858")
	FlightNumber string `json:"flightNumber"`

	// Origin is the departure airport
	Origin AirportRef `json:"origin"`

	// Destination is the arrival airport
	Destination AirportRef `json:"destination"`

	// DepartureLocal is the scheduled departure in local wall-clock time
	DepartureLocal time.Time `json:"departureLocal"`

	// ArrivalLocal is the scheduled arrival in local wall-clock time.
	// DepartureLocal < ArrivalLocal is NOT guaranteed across time zones;
	// DurationMinutes is the ground truth for elapsed time.
	ArrivalLocal time.Time `json:"arrivalLocal"`

	// DurationMinutes is the flown duration of this leg
	DurationMinutes int `json:"durationMinutes"`

	// CabinClass is the booked cabin (economy, business, first), when known
	CabinClass string `json:"cabinClass,omitempty"`

	// Equipment is the aircraft type, when known
	Equipment string `json:"equipment,omitempty"`
}

// IsMalformed reports whether the segment is missing both airport codes.
// Such a segment survives normalization but cannot be matched to any route,
// so the relevance filter excludes its itinerary.
func (s *Segment) IsMalformed() bool {
	return s.Origin.Code == "" && s.Destination.Code == ""
}

// Transfer describes the ground time between two consecutive segments.
// It is derived, never persisted independently; its lifetime is that of the
// owning Itinerary.
type Transfer struct {
	// City is the city where the transfer happens
	City string `json:"city,omitempty"`

	// DurationMinutes is the layover duration, computed on the same local-time
	// basis as the source data
	DurationMinutes int `json:"durationMinutes"`

	// Formatted is the human-readable layover duration (e.g., "2h 30m")
	Formatted string `json:"formatted,omitempty"`

	// IsDifferentAirport is true when the traveler must change airports
	IsDifferentAirport bool `json:"isDifferentAirport"`

	// AirportChange carries the from/to codes when IsDifferentAirport is true
	AirportChange *AirportChange `json:"airportChange,omitempty"`

	// IsAirlineChange is true when the marketing carrier changes
	IsAirlineChange bool `json:"isAirlineChange"`

	// IsBaggageRecheck is true when baggage must be rechecked. This is inferred
	// from the airport change alone, not verified against carrier data.
	IsBaggageRecheck bool `json:"isBaggageRecheck"`

	// IsImplausible is true when the layover duration is negative or longer
	// than 24 hours, so the classifier can report an anomaly
	IsImplausible bool `json:"isImplausible,omitempty"`
}

// AirportChange records an airport switch during a transfer.
type AirportChange struct {
	FromCode string `json:"fromCode"`
	ToCode   string `json:"toCode"`
}

// Price is a validated, non-negative price. Amount is never NaN, never negative,
// never a string; invalid upstream values surface as Available == false.
type Price struct {
	// Amount is the numeric price value (>= 0)
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "CNY", "USD")
	Currency string `json:"currency"`

	// Available is false when the upstream price could not be coerced to a
	// valid positive number. Consumers must render an "unavailable" state
	// instead of a zero price.
	Available bool `json:"available"`
}

// HiddenDestination is the airport a hidden-city traveler is expected to
// actually disembark at, as opposed to the ticketed final destination.
type HiddenDestination struct {
	Code        string `json:"code"`
	Name        string `json:"name,omitempty"`
	CityName    string `json:"cityName,omitempty"`
	CountryName string `json:"countryName,omitempty"`
}

// Itinerary is the aggregate root of the canonical model.
//
// Invariant: NumberOfStops == len(Segments)-1, unless the itinerary is a
// hidden-city or throwaway fare, in which case NumberOfStops is forced to at
// least 1 and IsDirectFlight to false even for a single ticketed segment:
// the traveler experiences an effective stop at the early-disembarkation point.
type Itinerary struct {
	// ID uniquely identifies this itinerary within its batch
	ID string `json:"id"`

	// Segments are the flown legs, in order (always >= 1)
	Segments []Segment `json:"segments"`

	// Transfers describe the layovers between consecutive segments
	// (always len(Segments)-1 entries)
	Transfers []Transfer `json:"transfers,omitempty"`

	// TotalDurationMinutes is the door-to-door duration including layovers
	TotalDurationMinutes int `json:"totalDurationMinutes"`

	// TotalDurationFormatted is the human-readable total duration (e.g., "14h 5m")
	TotalDurationFormatted string `json:"totalDurationFormatted,omitempty"`

	// Price is the validated itinerary price
	Price Price `json:"price"`

	// Airlines lists every marketing carrier on the itinerary,
	// deduplicated by code in first-seen order
	Airlines []AirlineRef `json:"airlines,omitempty"`

	// IsDirectFlight is true for a genuine single-leg flight
	IsDirectFlight bool `json:"isDirectFlight"`

	// NumberOfStops is the effective stop count from the traveler's perspective
	NumberOfStops int `json:"numberOfStops"`

	// Fare-type flags, asserted by the upstream provider (not re-derived
	// from segment geometry)
	IsHiddenCity     bool `json:"isHiddenCity"`
	IsThrowawayDeal  bool `json:"isThrowawayDeal"`
	IsTrueHiddenCity bool `json:"isTrueHiddenCity"`
	IsSelfTransfer   bool `json:"isSelfTransfer"`
	IsVirtualInterline bool `json:"isVirtualInterline"`

	// HiddenDestination is where a hidden-city traveler actually gets off.
	// Nil when the payload asserts no hidden destination, even if the
	// hidden-city flag is set (recorded as a warning, never fabricated).
	HiddenDestination *HiddenDestination `json:"hiddenDestination,omitempty"`

	// BookingToken is the opaque upstream booking handle, when present
	BookingToken string `json:"bookingToken,omitempty"`

	// DeepLink is the upstream booking URL, when present
	DeepLink string `json:"deepLink,omitempty"`

	// Warnings records data-quality issues found during normalization.
	// A warned itinerary is still rendered; it is never dropped for data quality.
	Warnings []Warning `json:"warnings,omitempty"`

	// RankingScore is the calculated best-value score for sorting.
	// Lower scores indicate better value (price, duration, stops weighted).
	RankingScore float64 `json:"rankingScore,omitempty"`
}

// FirstSegment returns the first segment, or nil for an empty itinerary.
func (it *Itinerary) FirstSegment() *Segment {
	if len(it.Segments) == 0 {
		return nil
	}
	return &it.Segments[0]
}

// LastSegment returns the last segment, or nil for an empty itinerary.
func (it *Itinerary) LastSegment() *Segment {
	if len(it.Segments) == 0 {
		return nil
	}
	return &it.Segments[len(it.Segments)-1]
}

// IsFareFlagged reports whether the upstream provider asserted a hidden-city
// or throwaway classification. Flagged itineraries bypass geometric relevance
// filtering because the classification takes precedence.
func (it *Itinerary) IsFareFlagged() bool {
	return it.IsHiddenCity || it.IsThrowawayDeal
}

// HasMalformedSegment reports whether any segment is missing both airport codes.
func (it *Itinerary) HasMalformedSegment() bool {
	for i := range it.Segments {
		if it.Segments[i].IsMalformed() {
			return true
		}
	}
	return false
}

// FormatDurationMinutes formats a minute count as a compact human-readable
// duration: "2h 30m", "2h", "45m". Zero and negative values format as "0m".
func FormatDurationMinutes(totalMinutes int) string {
	if totalMinutes <= 0 {
		return "0m"
	}

	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
