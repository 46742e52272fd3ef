// Package integration provides helpers and integration tests for the
// itinerary normalization service. Integration tests exercise the full path
// from HTTP request through the handler into the normalization pipeline.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-search/itinerary-normalization-service/internal/adapter/http"
	"github.com/flight-search/itinerary-normalization-service/internal/normalizer"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ItineraryHandler
}

// NewTestServer creates a test server backed by the given normalizer. It
// registers both the normalization and search lifecycle routes.
func NewTestServer(n normalizer.Normalizer) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewItineraryHandler(n)
	httpAdapter.RegisterRoutes(e, handler)
	httpAdapter.RegisterSearchRoutes(e, httpAdapter.NewSearchHandler(nil, n))

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// NewDefaultTestServer creates a test server backed by a pipeline with
// built-in alias tables and default configuration.
func NewDefaultTestServer() *TestServer {
	return NewTestServer(normalizer.NewPipeline(nil, nil))
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	RawBody     []byte
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch {
	case req.RawBody != nil:
		bodyReader = bytes.NewReader(req.RawBody)
	case req.Body != nil:
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	default:
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil || req.RawBody != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// NormalizeRequest posts a normalize request with the given body.
func (ts *TestServer) NormalizeRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/normalize",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseNormalizeResponse parses the response body as a NormalizeResponseDTO.
func (r *Response) ParseNormalizeResponse() (*httpAdapter.NormalizeResponseDTO, error) {
	var resp httpAdapter.NormalizeResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// NormalizeRequestBody is a helper struct for building normalize request bodies.
type NormalizeRequestBody struct {
	Payload map[string]interface{} `json:"payload"`
	Route   map[string]string      `json:"route,omitempty"`
	Filters map[string]interface{} `json:"filters,omitempty"`
	SortBy  string                 `json:"sortBy,omitempty"`
}

// MinimalPayload returns the smallest raw search response the pipeline accepts:
// one direct itinerary with one well-formed segment.
func MinimalPayload() map[string]interface{} {
	return map[string]interface{}{
		"search_id": "srch-integration",
		"direct_flights": []interface{}{
			map[string]interface{}{
				"id": "it-1",
				"segments": []interface{}{
					map[string]interface{}{
						"carrier_code":      "CA",
						"flight_number":     "CA987",
						"departure_airport": "PEK",
						"departure_time":    "2026-03-15 12:30:00",
						"arrival_airport":   "LAX",
						"arrival_time":      "2026-03-15 09:45:00",
						"duration_minutes":  735,
					},
				},
				"price":    4350.0,
				"currency": "CNY",
			},
		},
	}
}

// DefaultNormalizeRequest returns a valid request body wrapping MinimalPayload.
func DefaultNormalizeRequest() NormalizeRequestBody {
	return NormalizeRequestBody{
		Payload: MinimalPayload(),
		SortBy:  "best",
	}
}
