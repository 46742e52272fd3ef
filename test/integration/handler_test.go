package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/itinerary-normalization-service/test/testutil"
)

// TestHandler_NormalizeSuccess posts a full fixture payload and checks the
// wire-format response.
func TestHandler_NormalizeSuccess(t *testing.T) {
	ts := NewDefaultTestServer()

	resp := ts.NormalizeRequest(NormalizeRequestBody{
		Payload: testutil.LoadTestPayload(t, "v2_nested.json"),
		SortBy:  "best",
	})

	require.Equal(t, http.StatusOK, resp.Code)

	body, err := resp.ParseNormalizeResponse()
	require.NoError(t, err)

	assert.Equal(t, "srch-v2-0001", body.SearchID)
	require.Len(t, body.DirectItineraries, 1)
	require.Len(t, body.OtherItineraries, 1)

	direct := body.DirectItineraries[0]
	assert.True(t, direct.IsDirectFlight)
	assert.Equal(t, "12h 15m", direct.TotalDuration.Formatted)
	assert.Equal(t, 4350.0, direct.Price.Amount)
	assert.True(t, direct.Price.Available)
	assert.Equal(t, "2026-03-15T12:30:00", direct.Segments[0].DepartureLocal)

	combo := body.OtherItineraries[0]
	require.Len(t, combo.Transfers, 1)
	assert.Equal(t, 285, combo.Transfers[0].DurationMinutes)
	require.NotNil(t, combo.Transfers[0].AirportChange)
	assert.Equal(t, "NRT", combo.Transfers[0].AirportChange.FromCode)

	assert.Equal(t, 2, body.Metadata.TotalResults)
}

// TestHandler_NormalizeWithRouteAndFilters exercises route filtering and
// presentation filters through the HTTP layer.
func TestHandler_NormalizeWithRouteAndFilters(t *testing.T) {
	ts := NewDefaultTestServer()

	resp := ts.NormalizeRequest(NormalizeRequestBody{
		Payload: testutil.LoadTestPayload(t, "v2_nested.json"),
		Route:   map[string]string{"origin": "pek", "destination": "lax"},
		Filters: map[string]interface{}{"maxStops": 0},
		SortBy:  "price",
	})

	require.Equal(t, http.StatusOK, resp.Code)

	body, err := resp.ParseNormalizeResponse()
	require.NoError(t, err)

	// Lowercase route codes are normalized before filtering
	require.Len(t, body.DirectItineraries, 1)
	assert.Equal(t, "CA987-PEK-LAX", body.DirectItineraries[0].ID)
	assert.Empty(t, body.OtherItineraries)
	assert.Equal(t, 1, body.Metadata.DroppedByFilter)
}

// TestHandler_ValidationErrors covers request-level validation failures.
func TestHandler_ValidationErrors(t *testing.T) {
	ts := NewDefaultTestServer()

	tests := []struct {
		name        string
		body        NormalizeRequestBody
		wantDetails []string
	}{
		{
			name:        "missing payload",
			body:        NormalizeRequestBody{SortBy: "best"},
			wantDetails: []string{"payload"},
		},
		{
			name: "invalid route codes",
			body: NormalizeRequestBody{
				Payload: MinimalPayload(),
				Route:   map[string]string{"origin": "PEKX", "destination": ""},
			},
			wantDetails: []string{"route.origin", "route.destination"},
		},
		{
			name: "same origin and destination",
			body: NormalizeRequestBody{
				Payload: MinimalPayload(),
				Route:   map[string]string{"origin": "PEK", "destination": "PEK"},
			},
			wantDetails: []string{"route.destination"},
		},
		{
			name: "unknown sort option",
			body: NormalizeRequestBody{
				Payload: MinimalPayload(),
				SortBy:  "cheapest",
			},
			wantDetails: []string{"sortBy"},
		},
		{
			name: "negative max price",
			body: NormalizeRequestBody{
				Payload: MinimalPayload(),
				Filters: map[string]interface{}{"maxPrice": -100},
			},
			wantDetails: []string{"filters.maxPrice"},
		},
		{
			name: "bad departure window format",
			body: NormalizeRequestBody{
				Payload: MinimalPayload(),
				Filters: map[string]interface{}{
					"departureTimeRange": map[string]string{"start": "25:00", "end": "12:00"},
				},
			},
			wantDetails: []string{"filters.departureTimeRange.start"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.NormalizeRequest(tt.body)

			require.Equal(t, http.StatusBadRequest, resp.Code)

			errBody, err := resp.ParseError()
			require.NoError(t, err)
			assert.Equal(t, "validation_error", errBody["code"])

			details, ok := errBody["details"].(map[string]interface{})
			require.True(t, ok, "validation response should carry field details")
			for _, field := range tt.wantDetails {
				assert.Contains(t, details, field)
			}
		})
	}
}

// TestHandler_InvalidPayloadShape covers payloads the pipeline rejects outright.
func TestHandler_InvalidPayloadShape(t *testing.T) {
	ts := NewDefaultTestServer()

	resp := ts.NormalizeRequest(NormalizeRequestBody{
		Payload: map[string]interface{}{"direct_flights": "definitely not an array"},
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)

	errBody, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "invalid_payload", errBody["code"])
}

// TestHandler_MalformedRequestBody covers unparseable JSON bodies.
func TestHandler_MalformedRequestBody(t *testing.T) {
	ts := NewDefaultTestServer()

	resp := ts.Do(Request{
		Method:  http.MethodPost,
		Path:    "/api/v1/itineraries/normalize",
		RawBody: []byte("{not valid json"),
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)

	errBody, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "invalid_request", errBody["code"])
}

// TestHandler_MalformedDataDegradesToWarnings verifies that bad itinerary
// data inside a well-shaped payload yields 200 with warnings, not an error.
func TestHandler_MalformedDataDegradesToWarnings(t *testing.T) {
	ts := NewDefaultTestServer()

	resp := ts.NormalizeRequest(NormalizeRequestBody{
		Payload: map[string]interface{}{
			"direct_flights": []interface{}{
				map[string]interface{}{
					"id":       "broken",
					"segments": []interface{}{map[string]interface{}{}},
					"price":    "call us",
				},
			},
		},
	})

	require.Equal(t, http.StatusOK, resp.Code)

	body, err := resp.ParseNormalizeResponse()
	require.NoError(t, err)
	require.Len(t, body.DirectItineraries, 1)

	it := body.DirectItineraries[0]
	assert.False(t, it.Price.Available)
	assert.NotEmpty(t, it.Warnings)
	assert.Positive(t, body.Metadata.WarningCount)
}

// TestHandler_Health checks the health endpoint.
func TestHandler_Health(t *testing.T) {
	ts := NewDefaultTestServer()

	resp := ts.HealthRequest()

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body))
}

// TestHandler_UnknownRoute returns 404 for unregistered paths.
func TestHandler_UnknownRoute(t *testing.T) {
	ts := NewDefaultTestServer()

	resp := ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/itineraries",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
