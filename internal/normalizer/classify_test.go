package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/itinerary-normalization-service/internal/domain"
)

// rawItinerary builds a minimal raw itinerary around the given segments.
func rawItinerary(segments ...map[string]any) map[string]any {
	segs := make([]any, len(segments))
	for i, s := range segments {
		segs[i] = s
	}
	return map[string]any{
		"id":       "it-100",
		"segments": segs,
		"price":    1500.0,
		"currency": "CNY",
	}
}

func TestClassify_DirectFlight(t *testing.T) {
	p := NewPipeline(nil, nil)

	it := p.normalizeItinerary(rawItinerary(rawSegmentV1()), "direct", 0)

	assert.Equal(t, "it-100", it.ID)
	assert.True(t, it.IsDirectFlight)
	assert.Equal(t, 0, it.NumberOfStops)
	assert.Len(t, it.Segments, 1)
	assert.Empty(t, it.Transfers)
	assert.True(t, it.Price.Available)
	assert.Equal(t, 1500.0, it.Price.Amount)
}

func TestClassify_MultiSegmentStops(t *testing.T) {
	p := NewPipeline(nil, nil)

	second := rawSegmentV1()
	second["departure_airport"] = "LAX"
	second["arrival_airport"] = "JFK"
	second["departure_time"] = "2026-03-15 14:00:00"
	second["arrival_time"] = "2026-03-15 22:00:00"

	it := p.normalizeItinerary(rawItinerary(rawSegmentV1(), second), "direct", 0)

	assert.False(t, it.IsDirectFlight)
	assert.Equal(t, 1, it.NumberOfStops)
	assert.Len(t, it.Transfers, 1)
}

func TestClassify_HiddenCityOverride(t *testing.T) {
	tests := []struct {
		name string
		set  func(raw map[string]any)
	}{
		{name: "boolean flag", set: func(raw map[string]any) { raw["is_hidden_city"] = true }},
		{name: "flight_type discriminator", set: func(raw map[string]any) { raw["flight_type"] = "hidden_city" }},
		{name: "throwaway flag", set: func(raw map[string]any) { raw["is_throwaway_deal"] = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPipeline(nil, nil)

			raw := rawItinerary(rawSegmentV1())
			tt.set(raw)

			it := p.normalizeItinerary(raw, "combo", 0)

			// A flagged fare is never presented as direct, even with one
			// ticketed segment: the early disembarkation is an effective stop.
			assert.False(t, it.IsDirectFlight)
			assert.GreaterOrEqual(t, it.NumberOfStops, 1)
			assert.True(t, it.IsFareFlagged())
		})
	}
}

func TestClassify_HiddenCityOverrideKeepsHigherStopCount(t *testing.T) {
	p := NewPipeline(nil, nil)

	second := rawSegmentV1()
	second["departure_airport"] = "LAX"
	second["arrival_airport"] = "JFK"

	raw := rawItinerary(rawSegmentV1(), second)
	raw["is_hidden_city"] = true

	it := p.normalizeItinerary(raw, "combo", 0)

	assert.Equal(t, 1, it.NumberOfStops, "override only raises the floor, it never lowers an actual stop count")
}

func TestClassify_HiddenDestination(t *testing.T) {
	t.Run("resolved from the itinerary", func(t *testing.T) {
		p := NewPipeline(nil, nil)

		raw := rawItinerary(rawSegmentV1())
		raw["is_hidden_city"] = true
		raw["hidden_destination"] = map[string]any{
			"code": "SFO", "name": "San Francisco Intl", "city_name": "San Francisco",
		}

		it := p.normalizeItinerary(raw, "combo", 0)

		require.NotNil(t, it.HiddenDestination)
		assert.Equal(t, "SFO", it.HiddenDestination.Code)
		assert.Equal(t, "San Francisco", it.HiddenDestination.CityName)
		assert.False(t, domain.HasWarning(it.Warnings, domain.WarnInconsistentFareFlags))
	})

	t.Run("resolved from a segment", func(t *testing.T) {
		p := NewPipeline(nil, nil)

		seg := rawSegmentV1()
		seg["hidden_destination"] = map[string]any{"code": "SFO"}

		raw := rawItinerary(seg)
		raw["is_hidden_city"] = true

		it := p.normalizeItinerary(raw, "combo", 0)

		require.NotNil(t, it.HiddenDestination)
		assert.Equal(t, "SFO", it.HiddenDestination.Code)
	})

	t.Run("flag without destination warns, never fabricates", func(t *testing.T) {
		p := NewPipeline(nil, nil)

		raw := rawItinerary(rawSegmentV1())
		raw["is_hidden_city"] = true

		it := p.normalizeItinerary(raw, "combo", 0)

		assert.Nil(t, it.HiddenDestination)
		assert.True(t, domain.HasWarning(it.Warnings, domain.WarnInconsistentFareFlags))
	})

	t.Run("destination without flag warns", func(t *testing.T) {
		p := NewPipeline(nil, nil)

		raw := rawItinerary(rawSegmentV1())
		raw["hidden_destination"] = map[string]any{"code": "SFO"}

		it := p.normalizeItinerary(raw, "direct", 0)

		require.NotNil(t, it.HiddenDestination)
		assert.True(t, domain.HasWarning(it.Warnings, domain.WarnInconsistentFareFlags))
	})
}

func TestClassify_ProviderFlagsAreNotReDerived(t *testing.T) {
	p := NewPipeline(nil, nil)

	raw := rawItinerary(rawSegmentV1())
	raw["is_self_transfer"] = true
	raw["is_virtual_interline"] = true
	raw["is_true_hidden_city"] = true
	raw["is_hidden_city"] = true
	raw["hidden_destination"] = map[string]any{"code": "SFO"}

	it := p.normalizeItinerary(raw, "combo", 0)

	assert.True(t, it.IsSelfTransfer)
	assert.True(t, it.IsVirtualInterline)
	assert.True(t, it.IsTrueHiddenCity)
	assert.True(t, it.IsHiddenCity)
}

func TestClassify_InvalidPriceWarns(t *testing.T) {
	p := NewPipeline(nil, nil)

	raw := rawItinerary(rawSegmentV1())
	raw["price"] = "call us"

	it := p.normalizeItinerary(raw, "direct", 0)

	assert.False(t, it.Price.Available)
	assert.True(t, domain.HasWarning(it.Warnings, domain.WarnInvalidPrice))
}

func TestClassify_TotalDurationFallback(t *testing.T) {
	t.Run("payload total wins", func(t *testing.T) {
		p := NewPipeline(nil, nil)

		raw := rawItinerary(rawSegmentV1())
		raw["total_duration_minutes"] = 800

		it := p.normalizeItinerary(raw, "direct", 0)
		assert.Equal(t, 800, it.TotalDurationMinutes)
	})

	t.Run("absent total is summed from segments and layovers", func(t *testing.T) {
		p := NewPipeline(nil, nil)

		second := rawSegmentV1()
		second["departure_airport"] = "LAX"
		second["arrival_airport"] = "JFK"
		second["departure_time"] = "2026-03-15 14:00:00" // 135m layover after 11:45 arrival
		second["arrival_time"] = "2026-03-15 19:00:00"
		second["duration_minutes"] = 300

		it := p.normalizeItinerary(rawItinerary(rawSegmentV1(), second), "direct", 0)

		// 735 + 135 + 300
		assert.Equal(t, 1170, it.TotalDurationMinutes)
		assert.Equal(t, "19h 30m", it.TotalDurationFormatted)
	})
}

func TestClassify_ImplausibleTransferWarns(t *testing.T) {
	p := NewPipeline(nil, nil)

	second := rawSegmentV1()
	second["departure_airport"] = "LAX"
	second["arrival_airport"] = "JFK"
	second["departure_time"] = "2026-03-15 10:00:00" // departs before the first arrival
	second["arrival_time"] = "2026-03-15 18:00:00"

	it := p.normalizeItinerary(rawItinerary(rawSegmentV1(), second), "direct", 0)

	require.Len(t, it.Transfers, 1)
	assert.True(t, it.Transfers[0].IsImplausible)
	assert.True(t, domain.HasWarning(it.Warnings, domain.WarnImplausibleTransfer))
}

func TestClassify_MalformedSegmentWarns(t *testing.T) {
	p := NewPipeline(nil, nil)

	it := p.normalizeItinerary(rawItinerary(map[string]any{"flight_number": "XX000"}), "direct", 0)

	assert.True(t, it.HasMalformedSegment())
	assert.True(t, domain.HasWarning(it.Warnings, domain.WarnMalformedSegment))
}

func TestClassify_DeterministicFallbackID(t *testing.T) {
	p := NewPipeline(nil, nil)

	raw := rawItinerary(rawSegmentV1())
	delete(raw, "id")

	first := p.normalizeItinerary(raw, "combo", 3)
	second := p.normalizeItinerary(raw, "combo", 3)

	assert.Equal(t, "combo-3", first.ID)
	assert.Equal(t, first.ID, second.ID, "repeated runs must yield the same fallback id")
}

func TestDedupeAirlines(t *testing.T) {
	segments := []domain.Segment{
		{Airline: domain.AirlineRef{Code: "CA", Name: "Air China"}},
		{Airline: domain.AirlineRef{Code: "NH", Name: "ANA"}},
		{Airline: domain.AirlineRef{Code: "CA", Name: "Air China"}},
		{Airline: domain.AirlineRef{}},
	}

	airlines := dedupeAirlines(segments)

	require.Len(t, airlines, 2)
	assert.Equal(t, "CA", airlines[0].Code)
	assert.Equal(t, "NH", airlines[1].Code)
}

func TestSumDurations_NegativeLayoversDoNotReduce(t *testing.T) {
	segments := []domain.Segment{
		{DurationMinutes: 300},
		{DurationMinutes: 200},
	}
	transfers := []domain.Transfer{{DurationMinutes: -90}}

	assert.Equal(t, 500, sumDurations(segments, transfers))
}
