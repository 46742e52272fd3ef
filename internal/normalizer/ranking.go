package normalizer

import (
	"math"
	"sort"

	"github.com/flight-search/itinerary-normalization-service/internal/domain"
)

// Ranking algorithm weights.
// These weights determine the importance of each factor in the ranking score.
// The sum of weights equals 1.0 for normalized scoring.
const (
	// weightPrice is the weight for price in ranking calculation.
	weightPrice = 0.5

	// weightDuration is the weight for total duration in ranking calculation.
	weightDuration = 0.3

	// weightStops is the weight for effective stop count in ranking calculation.
	weightStops = 0.2
)

// CalculateRankingScores calculates the best-value score for each itinerary
// using a weighted formula:
//
//	Score = (0.5 × NormalizedPrice) + (0.3 × NormalizedDuration) + (0.2 × NormalizedStops)
//
// Normalized values are in [0, 1]: 0 = best (cheapest, shortest, fewest
// effective stops), 1 = worst. Lower score = better value.
//
// Itineraries with an unavailable price are scored with the batch's worst
// price so they rank last among otherwise equal options.
//
// Does NOT mutate the input slice; returns a scored copy.
func CalculateRankingScores(itineraries []domain.Itinerary) []domain.Itinerary {
	if len(itineraries) == 0 {
		return itineraries
	}

	minPrice, maxPrice := findPriceRange(itineraries)
	minDuration, maxDuration := findDurationRange(itineraries)
	minStops, maxStops := findStopsRange(itineraries)

	result := make([]domain.Itinerary, len(itineraries))
	for i, it := range itineraries {
		result[i] = it

		price := it.Price.Amount
		if !it.Price.Available {
			price = maxPrice
		}

		normPrice := normalizeValue(price, minPrice, maxPrice)
		normDuration := normalizeValue(float64(it.TotalDurationMinutes), float64(minDuration), float64(maxDuration))
		normStops := normalizeValue(float64(it.NumberOfStops), float64(minStops), float64(maxStops))

		result[i].RankingScore = (weightPrice * normPrice) +
			(weightDuration * normDuration) +
			(weightStops * normStops)
	}

	return result
}

// normalizeValue normalizes a value to the range [0, 1] based on min and max.
// Returns 0 when min == max (all values equal = all optimal).
func normalizeValue(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}

// findPriceRange finds the minimum and maximum available price across the batch.
// Unavailable prices are excluded from the range.
func findPriceRange(itineraries []domain.Itinerary) (min, max float64) {
	min = math.MaxFloat64
	max = 0
	found := false

	for i := range itineraries {
		if !itineraries[i].Price.Available {
			continue
		}
		found = true
		amount := itineraries[i].Price.Amount
		if amount < min {
			min = amount
		}
		if amount > max {
			max = amount
		}
	}

	if !found {
		return 0, 0
	}
	return min, max
}

// findDurationRange finds the minimum and maximum total duration in minutes.
func findDurationRange(itineraries []domain.Itinerary) (min, max int) {
	if len(itineraries) == 0 {
		return 0, 0
	}

	min = math.MaxInt
	max = 0

	for i := range itineraries {
		d := itineraries[i].TotalDurationMinutes
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// findStopsRange finds the minimum and maximum effective stop count.
func findStopsRange(itineraries []domain.Itinerary) (min, max int) {
	if len(itineraries) == 0 {
		return 0, 0
	}

	min = math.MaxInt
	max = 0

	for i := range itineraries {
		s := itineraries[i].NumberOfStops
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max
}

// SortItineraries sorts itineraries according to the specified sort option.
// Uses stable sorting to maintain consistent order for equal values.
//
// Sort options:
//   - SortByBestValue (default): ascending by RankingScore (lower = better)
//   - SortByPrice: ascending by Price.Amount, unavailable prices last
//   - SortByDuration: ascending by TotalDurationMinutes (shortest first)
//   - SortByDeparture: ascending by first-segment departure (earliest first)
//
// Does NOT mutate the input slice.
func SortItineraries(itineraries []domain.Itinerary, sortBy domain.SortOption) []domain.Itinerary {
	if len(itineraries) <= 1 {
		return itineraries
	}

	result := make([]domain.Itinerary, len(itineraries))
	copy(result, itineraries)

	if sortBy == "" || !sortBy.IsValid() {
		sortBy = domain.SortByBestValue
	}

	switch sortBy {
	case domain.SortByBestValue:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].RankingScore < result[j].RankingScore
		})
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			// Unavailable prices sort after every available one
			if result[i].Price.Available != result[j].Price.Available {
				return result[i].Price.Available
			}
			return result[i].Price.Amount < result[j].Price.Amount
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalDurationMinutes < result[j].TotalDurationMinutes
		})
	case domain.SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			fi, fj := result[i].FirstSegment(), result[j].FirstSegment()
			if fi == nil || fj == nil {
				return fj == nil && fi != nil
			}
			return fi.DepartureLocal.Before(fj.DepartureLocal)
		})
	}

	return result
}
