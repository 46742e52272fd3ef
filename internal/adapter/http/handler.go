// Package http provides the HTTP handler layer for the itinerary normalization API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/itinerary-normalization-service/internal/adapter/http/response"
	"github.com/flight-search/itinerary-normalization-service/internal/domain"
	"github.com/flight-search/itinerary-normalization-service/internal/normalizer"
)

// ItineraryHandler handles HTTP requests for itinerary normalization endpoints.
type ItineraryHandler struct {
	normalizer normalizer.Normalizer
}

// NewItineraryHandler creates a new ItineraryHandler with the given pipeline.
func NewItineraryHandler(n normalizer.Normalizer) *ItineraryHandler {
	return &ItineraryHandler{
		normalizer: n,
	}
}

// NormalizeItineraries handles POST /api/v1/itineraries/normalize
//
// @Summary Normalize a raw flight search response
// @Description Converts a raw provider search response (any supported schema variant) into the canonical itinerary model, with optional relevance filtering, presentation filters and sorting
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body NormalizeRequest true "Raw payload and presentation options"
// @Success 200 {object} NormalizeResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error or malformed payload"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/itineraries/normalize [post]
func (h *ItineraryHandler) NormalizeItineraries(c echo.Context) error {
	var req NormalizeRequest

	// Bind request body
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	// Validate request
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	// Run the normalization pipeline
	batch, err := h.normalizer.Normalize(req.Payload, ToNormalizeOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	// Return the normalized batch
	return response.NormalizedBatch(c, ToNormalizeResponseDTO(batch))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	// Malformed payload shape (not an object, collections not arrays)
	if errors.Is(err, domain.ErrInvalidPayload) {
		return response.InvalidPayload(c, err.Error())
	}

	// Invalid route context
	if errors.Is(err, domain.ErrInvalidRoute) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ItineraryHandler) Health(c echo.Context) error {
	return response.Health(c)
}
