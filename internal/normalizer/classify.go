package normalizer

import (
	"fmt"

	"github.com/flight-search/itinerary-normalization-service/internal/domain"
)

// flightTypeHiddenCity is the flight_type discriminator some payloads use
// instead of a boolean hidden-city flag.
const flightTypeHiddenCity = "hidden_city"

// classify assembles segments and transfers into a canonical Itinerary:
// stop count, direct-flight flag, provider-asserted fare-type flags with the
// hidden-city override rule, hidden-destination resolution, airline
// deduplication, and data-quality warnings.
//
// Fare-type flags are read from the payload, never re-derived from segment
// geometry: the provider asserted them and the assertion carries the legal
// disclaimers downstream.
func (p *Pipeline) classify(rawItin map[string]any, rawSegments []map[string]any, collection string, index int, segments []domain.Segment, transfers []domain.Transfer, warnings []domain.Warning) domain.Itinerary {
	id := p.itin.String(rawItin, "id")
	if id == "" {
		// Deterministic fallback keeps repeated runs structurally identical
		id = fmt.Sprintf("%s-%d", collection, index)
	}

	stops := 0
	if len(segments) > 0 {
		stops = len(segments) - 1
	}
	direct := len(segments) == 1

	hiddenCity := p.itin.Bool(rawItin, "isHiddenCity") ||
		p.itin.String(rawItin, "flightType") == flightTypeHiddenCity
	throwaway := p.itin.Bool(rawItin, "isThrowawayDeal")

	// Override rule: a hidden-city or throwaway fare conceals an intended early
	// disembarkation, which is operationally a stop even on a single ticketed
	// segment.
	if hiddenCity || throwaway {
		direct = false
		if stops < 1 {
			stops = 1
		}
	}

	hiddenDest := p.resolveHiddenDestination(rawItin, rawSegments)
	if (hiddenCity || throwaway) && hiddenDest == nil {
		warnings = append(warnings, domain.NewWarning(domain.WarnInconsistentFareFlags,
			"hiddenDestination", "fare flagged hidden-city/throwaway but no hidden destination is resolvable"))
	}
	if hiddenDest != nil && !hiddenCity && !throwaway {
		warnings = append(warnings, domain.NewWarning(domain.WarnInconsistentFareFlags,
			"hiddenDestination", "hidden destination present but fare is not flagged"))
	}

	for i, tr := range transfers {
		if tr.IsImplausible {
			warnings = append(warnings, domain.NewWarning(domain.WarnImplausibleTransfer,
				fmt.Sprintf("transfers[%d]", i), "layover of %d minutes is outside the plausible range", tr.DurationMinutes))
		}
	}

	for i := range segments {
		if segments[i].IsMalformed() {
			warnings = append(warnings, domain.NewWarning(domain.WarnMalformedSegment,
				fmt.Sprintf("segments[%d]", i), "segment has neither origin nor destination airport code"))
		}
	}

	rawPrice, _ := p.itin.Resolve(rawItin, "price")
	price := NormalizePrice(rawPrice, p.itin.String(rawItin, "currency"), p.cfg.DefaultCurrency)
	if !price.Available {
		warnings = append(warnings, domain.NewWarning(domain.WarnInvalidPrice,
			"price", "price could not be coerced to a valid positive amount"))
	}

	totalDuration := p.itin.Int(rawItin, "totalDurationMinutes")
	if totalDuration <= 0 {
		totalDuration = sumDurations(segments, transfers)
	}

	return domain.Itinerary{
		ID:                     id,
		Segments:               segments,
		Transfers:              transfers,
		TotalDurationMinutes:   totalDuration,
		TotalDurationFormatted: domain.FormatDurationMinutes(totalDuration),
		Price:                  price,
		Airlines:               dedupeAirlines(segments),
		IsDirectFlight:         direct,
		NumberOfStops:          stops,
		IsHiddenCity:           hiddenCity,
		IsThrowawayDeal:        throwaway,
		IsTrueHiddenCity:       p.itin.Bool(rawItin, "isTrueHiddenCity"),
		IsSelfTransfer:         p.itin.Bool(rawItin, "isSelfTransfer"),
		IsVirtualInterline:     p.itin.Bool(rawItin, "isVirtualInterline"),
		HiddenDestination:      hiddenDest,
		BookingToken:           p.itin.String(rawItin, "bookingToken"),
		DeepLink:               p.itin.String(rawItin, "deepLink"),
		Warnings:               warnings,
	}
}

// resolveHiddenDestination looks for a hidden destination on the itinerary
// first, then inside individual segments, first match wins. When neither is
// present no hidden destination is asserted, even if the fare flag is set:
// the inconsistency is recorded, never papered over with a fabricated airport.
func (p *Pipeline) resolveHiddenDestination(rawItin map[string]any, rawSegments []map[string]any) *domain.HiddenDestination {
	if obj := p.itin.Object(rawItin, "hiddenDestination"); obj != nil {
		return p.hiddenDestinationFrom(obj)
	}

	for _, rawSeg := range rawSegments {
		if obj := p.seg.Object(rawSeg, "hiddenDestination"); obj != nil {
			return p.hiddenDestinationFrom(obj)
		}
	}
	return nil
}

// hiddenDestinationFrom maps a raw hidden-destination object through its alias table.
func (p *Pipeline) hiddenDestinationFrom(obj map[string]any) *domain.HiddenDestination {
	return &domain.HiddenDestination{
		Code:        p.hidden.String(obj, "code"),
		Name:        p.hidden.String(obj, "name"),
		CityName:    p.hidden.String(obj, "cityName"),
		CountryName: p.hidden.String(obj, "countryName"),
	}
}

// dedupeAirlines collects the marketing carriers across all segments,
// deduplicated by code in first-seen order. Segments without a carrier code
// contribute nothing.
func dedupeAirlines(segments []domain.Segment) []domain.AirlineRef {
	seen := make(map[string]struct{}, len(segments))
	airlines := make([]domain.AirlineRef, 0, len(segments))

	for i := range segments {
		a := segments[i].Airline
		if a.Code == "" {
			continue
		}
		if _, ok := seen[a.Code]; ok {
			continue
		}
		seen[a.Code] = struct{}{}
		airlines = append(airlines, a)
	}

	if len(airlines) == 0 {
		return nil
	}
	return airlines
}

// sumDurations computes the door-to-door duration from segment and layover
// minutes, used when the payload supplies no total. Negative layovers do not
// reduce the total.
func sumDurations(segments []domain.Segment, transfers []domain.Transfer) int {
	total := 0
	for i := range segments {
		total += segments[i].DurationMinutes
	}
	for i := range transfers {
		if transfers[i].DurationMinutes > 0 {
			total += transfers[i].DurationMinutes
		}
	}
	return total
}
