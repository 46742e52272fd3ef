package normalizer

import (
	"github.com/flight-search/itinerary-normalization-service/internal/domain"
	"github.com/flight-search/itinerary-normalization-service/internal/infrastructure/timeutil"
)

// maxPlausibleLayoverMinutes is the upper bound for a believable layover.
// Anything longer (or negative) is flagged for anomaly reporting.
const maxPlausibleLayoverMinutes = 24 * 60

// AnalyzeTransfer computes the Transfer between two consecutive canonical
// segments: layover duration on the same local-time basis as the source data,
// airport change, airline change, and baggage-recheck inference.
//
// Baggage recheck is inferred from the airport change alone. This is a
// simplifying assumption, not a rule verified against carrier data: a
// through-checked connection at the same airport can still require a recheck,
// and consumers must treat the field as a heuristic.
func AnalyzeTransfer(prev, next domain.Segment) domain.Transfer {
	var duration int
	timesKnown := !prev.ArrivalLocal.IsZero() && !next.DepartureLocal.IsZero()
	if timesKnown {
		// No UTC conversion: both timestamps are on the source's local basis
		duration = timeutil.MinutesBetween(prev.ArrivalLocal, next.DepartureLocal)
	}

	differentAirport := prev.Destination.Code != next.Origin.Code
	var airportChange *domain.AirportChange
	if differentAirport {
		airportChange = &domain.AirportChange{
			FromCode: prev.Destination.Code,
			ToCode:   next.Origin.Code,
		}
	}

	return domain.Transfer{
		City:               prev.Destination.CityName,
		DurationMinutes:    duration,
		Formatted:          domain.FormatDurationMinutes(duration),
		IsDifferentAirport: differentAirport,
		AirportChange:      airportChange,
		IsAirlineChange:    prev.Airline.Code != next.Airline.Code,
		IsBaggageRecheck:   differentAirport,
		IsImplausible:      timesKnown && (duration < 0 || duration > maxPlausibleLayoverMinutes),
	}
}

// buildTransfers derives the Transfer list for an ordered segment slice.
// Always returns len(segments)-1 entries (nil for fewer than two segments).
func buildTransfers(segments []domain.Segment) []domain.Transfer {
	if len(segments) < 2 {
		return nil
	}

	transfers := make([]domain.Transfer, 0, len(segments)-1)
	for i := 0; i < len(segments)-1; i++ {
		transfers = append(transfers, AnalyzeTransfer(segments[i], segments[i+1]))
	}
	return transfers
}
