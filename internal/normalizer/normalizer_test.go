package normalizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/itinerary-normalization-service/internal/domain"
)

// searchPayload is a representative raw search response with one direct flight
// and one hidden-city combo deal.
func searchPayload() map[string]any {
	connecting := rawSegmentV1()
	connecting["departure_airport"] = "LAX"
	connecting["arrival_airport"] = "JFK"
	connecting["departure_time"] = "2026-03-15 14:00:00"
	connecting["arrival_time"] = "2026-03-15 22:00:00"

	return map[string]any{
		"search_id": "srch-001",
		"direct_flights": []any{
			map[string]any{
				"id":       "direct-1",
				"segments": []any{rawSegmentV1()},
				"price":    2199.5,
				"currency": "CNY",
			},
		},
		"combo_deals": []any{
			map[string]any{
				"id":             "combo-1",
				"segments":       []any{rawSegmentV1(), connecting},
				"price":          1800.0,
				"is_hidden_city": true,
				"hidden_destination": map[string]any{
					"code": "LAX", "city_name": "Los Angeles",
				},
			},
		},
		"disclaimers": []any{"Hidden-city itineraries may violate carrier terms."},
	}
}

func TestPipeline_Normalize(t *testing.T) {
	p := NewPipeline(nil, nil)

	batch, err := p.Normalize(searchPayload(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "srch-001", batch.SearchID)
	require.Len(t, batch.DirectItineraries, 1)
	require.Len(t, batch.OtherItineraries, 1)
	assert.Equal(t, []string{"Hidden-city itineraries may violate carrier terms."}, batch.Disclaimers)

	direct := batch.DirectItineraries[0]
	assert.Equal(t, "direct-1", direct.ID)
	assert.True(t, direct.IsDirectFlight)
	assert.Equal(t, 2199.5, direct.Price.Amount)

	combo := batch.OtherItineraries[0]
	assert.Equal(t, "combo-1", combo.ID)
	assert.True(t, combo.IsHiddenCity)
	assert.False(t, combo.IsDirectFlight)
	require.NotNil(t, combo.HiddenDestination)
	assert.Equal(t, "LAX", combo.HiddenDestination.Code)

	assert.Equal(t, 2, batch.Metadata.TotalResults)
	assert.Equal(t, 1, batch.Metadata.FlaggedCount)
	assert.Equal(t, 0, batch.Metadata.DroppedByFilter)
}

func TestPipeline_Normalize_NilPayload(t *testing.T) {
	p := NewPipeline(nil, nil)

	_, err := p.Normalize(nil, DefaultOptions())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidPayload))
}

func TestPipeline_Normalize_CollectionNotAnArray(t *testing.T) {
	p := NewPipeline(nil, nil)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "direct_flights is an object", payload: map[string]any{"direct_flights": map[string]any{}}},
		{name: "direct_flights is a string", payload: map[string]any{"direct_flights": "none"}},
		{name: "combo_deals is a number", payload: map[string]any{"combo_deals": 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Normalize(tt.payload, DefaultOptions())

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidPayload))
		})
	}
}

func TestPipeline_Normalize_AbsentCollectionsYieldEmptyBatch(t *testing.T) {
	p := NewPipeline(nil, nil)

	batch, err := p.Normalize(map[string]any{"search_id": "srch-empty"}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "srch-empty", batch.SearchID)
	assert.NotNil(t, batch.DirectItineraries)
	assert.Empty(t, batch.DirectItineraries)
	assert.NotNil(t, batch.OtherItineraries)
	assert.Empty(t, batch.OtherItineraries)
	assert.Zero(t, batch.Metadata.TotalResults)
}

func TestPipeline_Normalize_NonObjectCollectionElementsSkipped(t *testing.T) {
	p := NewPipeline(nil, nil)

	payload := map[string]any{
		"direct_flights": []any{
			"stray string",
			42,
			map[string]any{"id": "direct-1", "segments": []any{rawSegmentV1()}, "price": 100.0},
		},
	}

	batch, err := p.Normalize(payload, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, batch.DirectItineraries, 1)
	assert.Equal(t, "direct-1", batch.DirectItineraries[0].ID)
}

func TestPipeline_Normalize_InvalidRoute(t *testing.T) {
	p := NewPipeline(nil, nil)

	_, err := p.Normalize(searchPayload(), Options{
		Route: &domain.RouteContext{Origin: "PEK", Destination: "PEK"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRoute))
}

func TestPipeline_Normalize_RouteFiltering(t *testing.T) {
	p := NewPipeline(nil, nil)

	// Add a geometrically irrelevant, unflagged itinerary to the direct list
	payload := searchPayload()
	payload["direct_flights"] = append(payload["direct_flights"].([]any), map[string]any{
		"id": "off-route",
		"segments": []any{map[string]any{
			"carrier_code":      "MU",
			"departure_airport": "SHA",
			"arrival_airport":   "CTU",
		}},
		"price": 400.0,
	})

	batch, err := p.Normalize(payload, Options{
		Route:  &domain.RouteContext{Origin: "PEK", Destination: "LAX"},
		SortBy: domain.SortByBestValue,
	})
	require.NoError(t, err)

	require.Len(t, batch.DirectItineraries, 1)
	assert.Equal(t, "direct-1", batch.DirectItineraries[0].ID)
	// The flagged combo deal survives regardless of geometry
	require.Len(t, batch.OtherItineraries, 1)
	assert.Equal(t, 1, batch.Metadata.DroppedByFilter)
}

func TestPipeline_Normalize_PresentationFiltersAndSorting(t *testing.T) {
	p := NewPipeline(nil, nil)

	payload := map[string]any{
		"direct_flights": []any{
			map[string]any{"id": "pricey", "segments": []any{rawSegmentV1()}, "price": 5000.0},
			map[string]any{"id": "cheap", "segments": []any{rawSegmentV1()}, "price": 1000.0},
			map[string]any{"id": "mid", "segments": []any{rawSegmentV1()}, "price": 2000.0},
		},
	}

	maxPrice := 3000.0
	batch, err := p.Normalize(payload, Options{
		Filters: &domain.FilterOptions{MaxPrice: &maxPrice},
		SortBy:  domain.SortByPrice,
	})
	require.NoError(t, err)

	require.Len(t, batch.DirectItineraries, 2)
	assert.Equal(t, "cheap", batch.DirectItineraries[0].ID)
	assert.Equal(t, "mid", batch.DirectItineraries[1].ID)
}

func TestPipeline_Normalize_Idempotent(t *testing.T) {
	p := NewPipeline(nil, nil)
	payload := searchPayload()
	opts := Options{
		Route:  &domain.RouteContext{Origin: "PEK", Destination: "LAX"},
		SortBy: domain.SortByBestValue,
	}

	first, err := p.Normalize(payload, opts)
	require.NoError(t, err)
	second, err := p.Normalize(payload, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated runs over the same payload must be structurally identical")
}

func TestPipeline_NormalizeJSON(t *testing.T) {
	p := NewPipeline(nil, nil)

	t.Run("valid json object", func(t *testing.T) {
		data := []byte(`{
			"search_id": "srch-json",
			"direct_flights": [
				{"id": "d1", "segments": [{"carrier_code": "CA", "departure_airport": "PEK", "arrival_airport": "LAX", "duration_minutes": 735}], "price": 2199.5}
			]
		}`)

		batch, err := p.NormalizeJSON(data, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, "srch-json", batch.SearchID)
		require.Len(t, batch.DirectItineraries, 1)
		assert.Equal(t, 735, batch.DirectItineraries[0].Segments[0].DurationMinutes)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := p.NormalizeJSON([]byte("{not json"), DefaultOptions())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidPayload))
	})

	t.Run("json array instead of object", func(t *testing.T) {
		_, err := p.NormalizeJSON([]byte("[1, 2, 3]"), DefaultOptions())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidPayload))
	})
}

func TestNewPipeline_ConfigDefaults(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		p := NewPipeline(nil, nil)
		assert.Equal(t, DefaultCurrency, p.cfg.DefaultCurrency)
		assert.Equal(t, DefaultLogoURLTemplate, p.cfg.LogoURLTemplate)
	})

	t.Run("partial config keeps remaining defaults", func(t *testing.T) {
		p := NewPipeline(nil, &Config{DefaultCurrency: "USD"})
		assert.Equal(t, "USD", p.cfg.DefaultCurrency)
		assert.Equal(t, DefaultLogoURLTemplate, p.cfg.LogoURLTemplate)
	})
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Nil(t, opts.Route)
	assert.Nil(t, opts.Filters)
	assert.Equal(t, domain.SortByBestValue, opts.SortBy)
}
