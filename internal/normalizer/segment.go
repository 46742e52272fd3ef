package normalizer

import (
	"fmt"
	"time"

	"github.com/flight-search/itinerary-normalization-service/internal/domain"
	"github.com/flight-search/itinerary-normalization-service/internal/infrastructure/timeutil"
)

// normalizeSegment converts one raw segment into a canonical Segment, resolving
// every field through the alias table. It fails soft: an unresolved required
// field becomes an empty string and a MissingField warning, so one malformed
// segment never aborts normalization of the batch. The classifier treats
// segments with no airport codes as suspect.
func (p *Pipeline) normalizeSegment(raw map[string]any, index int) (domain.Segment, []domain.Warning) {
	var warnings []domain.Warning

	fieldRef := func(name string) string {
		return fmt.Sprintf("segments[%d].%s", index, name)
	}

	id := p.seg.String(raw, "id")
	if id == "" {
		id = fmt.Sprintf("segment-%d", index)
	}

	airlineCode := p.seg.String(raw, "airlineCode")
	airline := domain.AirlineRef{
		Code:    airlineCode,
		Name:    p.seg.String(raw, "airlineName"),
		LogoURL: p.seg.String(raw, "airlineLogoUrl"),
	}
	if airline.LogoURL == "" && airlineCode != "" {
		airline.LogoURL = p.airlineLogoURL(airlineCode)
	}

	var operating *domain.AirlineRef
	if code, name := p.seg.String(raw, "operatingCarrierCode"), p.seg.String(raw, "operatingCarrierName"); code != "" || name != "" {
		operating = &domain.AirlineRef{Code: code, Name: name}
	}

	flightNumber := p.seg.String(raw, "flightNumber")
	if flightNumber == "" {
		warnings = append(warnings, domain.NewWarning(domain.WarnMissingField,
			fieldRef("flightNumber"), "flight number not present in any known alias"))
	}

	origin := domain.AirportRef{
		Code:        p.seg.String(raw, "departureAirportCode"),
		Name:        p.seg.String(raw, "departureAirportName"),
		CityName:    p.seg.String(raw, "departureCityName"),
		CountryName: p.seg.String(raw, "departureCountryName"),
	}
	if origin.Code == "" {
		warnings = append(warnings, domain.NewWarning(domain.WarnMissingField,
			fieldRef("departureAirportCode"), "departure airport code not present in any known alias"))
	}

	destination := domain.AirportRef{
		Code:        p.seg.String(raw, "arrivalAirportCode"),
		Name:        p.seg.String(raw, "arrivalAirportName"),
		CityName:    p.seg.String(raw, "arrivalCityName"),
		CountryName: p.seg.String(raw, "arrivalCountryName"),
	}
	if destination.Code == "" {
		warnings = append(warnings, domain.NewWarning(domain.WarnMissingField,
			fieldRef("arrivalAirportCode"), "arrival airport code not present in any known alias"))
	}

	departureLocal := p.parseSegmentTime(raw, "departureTime", fieldRef("departureTime"), &warnings)
	arrivalLocal := p.parseSegmentTime(raw, "arrivalTime", fieldRef("arrivalTime"), &warnings)

	// Duration is ground truth over timestamp arithmetic; wall-clock order is
	// not guaranteed across time zones.
	duration := p.seg.Int(raw, "durationMinutes")
	if duration <= 0 {
		warnings = append(warnings, domain.NewWarning(domain.WarnMissingField,
			fieldRef("durationMinutes"), "segment duration absent or not positive"))
	}

	return domain.Segment{
		ID:               id,
		Airline:          airline,
		OperatingAirline: operating,
		FlightNumber:     flightNumber,
		Origin:           origin,
		Destination:      destination,
		DepartureLocal:   departureLocal,
		ArrivalLocal:     arrivalLocal,
		DurationMinutes:  duration,
		CabinClass:       p.seg.String(raw, "cabinClass"),
		Equipment:        p.seg.String(raw, "aircraft"),
	}, warnings
}

// parseSegmentTime resolves and parses a local timestamp field, recording a
// MissingField warning when the value is absent or unparseable.
func (p *Pipeline) parseSegmentTime(raw map[string]any, field, fieldRef string, warnings *[]domain.Warning) (t time.Time) {
	value := p.seg.String(raw, field)
	if value == "" {
		*warnings = append(*warnings, domain.NewWarning(domain.WarnMissingField,
			fieldRef, "timestamp not present in any known alias"))
		return t
	}

	parsed, err := timeutil.ParseLocalTime(value)
	if err != nil {
		*warnings = append(*warnings, domain.NewWarning(domain.WarnMissingField,
			fieldRef, "unparseable timestamp %q", value))
		return t
	}
	return parsed
}

// airlineLogoURL derives a logo URL deterministically from an airline code.
func (p *Pipeline) airlineLogoURL(code string) string {
	return fmt.Sprintf(p.cfg.LogoURLTemplate, code)
}
