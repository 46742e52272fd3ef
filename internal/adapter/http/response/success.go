// Package response provides standardized HTTP response builders for the itinerary normalization API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// NormalizedBatch writes a 200 OK response with the normalized batch.
func NormalizedBatch(c echo.Context, batch interface{}) error {
	return c.JSON(http.StatusOK, batch)
}
