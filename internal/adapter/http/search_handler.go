package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/itinerary-normalization-service/internal/adapter/http/response"
	"github.com/flight-search/itinerary-normalization-service/internal/domain"
	"github.com/flight-search/itinerary-normalization-service/internal/normalizer"
	"github.com/flight-search/itinerary-normalization-service/internal/searchstate"
)

// SearchHandler exposes the search lifecycle over HTTP. The normalization
// pipeline stays stateless; this handler owns the one mutable piece of the
// system, the lifecycle machine for the current polled search. A new search
// supersedes the previous one and late events for superseded searches are
// rejected with 409.
type SearchHandler struct {
	machine    *searchstate.Machine
	normalizer normalizer.Normalizer
}

// NewSearchHandler creates a SearchHandler. If machine is nil a machine with
// default lifecycle thresholds is used.
func NewSearchHandler(machine *searchstate.Machine, n normalizer.Normalizer) *SearchHandler {
	if machine == nil {
		machine = searchstate.NewMachine(nil, nil)
	}
	return &SearchHandler{
		machine:    machine,
		normalizer: n,
	}
}

// SearchStateDTO is the wire representation of the search lifecycle state.
type SearchStateDTO struct {
	SearchID            string                `json:"search_id,omitempty"`
	State               string                `json:"state"`
	ConsecutiveFailures int                   `json:"consecutive_failures"`
	LastError           string                `json:"last_error,omitempty"`
	Result              *NormalizeResponseDTO `json:"result,omitempty"`
}

// FailureRequest reports one failed upstream poll attempt.
type FailureRequest struct {
	// Message describes why the poll failed
	Message string `json:"message"`
}

// StartSearch handles POST /api/v1/searches
//
// @Summary Start a new search
// @Description Begins tracking a new polled search. Any search already in flight is superseded and its late results will be rejected.
// @Tags searches
// @Produce json
// @Success 200 {object} SearchStateDTO
// @Router /api/v1/searches [post]
func (h *SearchHandler) StartSearch(c echo.Context) error {
	id := h.machine.StartSearch()
	return response.OK(c, &SearchStateDTO{
		SearchID: id,
		State:    string(searchstate.StateLoading),
	})
}

// SubmitResult handles POST /api/v1/searches/:id/results
//
// @Summary Submit a raw search response for the current search
// @Description Normalizes the raw payload and records the batch against the search. Results for a superseded search are discarded with 409.
// @Tags searches
// @Accept json
// @Produce json
// @Param id path string true "Search correlation id"
// @Param request body NormalizeRequest true "Raw payload and presentation options"
// @Success 200 {object} SearchStateDTO
// @Failure 400 {object} response.ErrorDetail "Validation error or malformed payload"
// @Failure 409 {object} response.ErrorDetail "Stale search"
// @Router /api/v1/searches/{id}/results [post]
func (h *SearchHandler) SubmitResult(c echo.Context) error {
	var req NormalizeRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		var validationErrs *ValidationErrors
		if errors.As(err, &validationErrs) {
			return response.ValidationError(c, validationErrs.ToMap())
		}
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	batch, err := h.normalizer.Normalize(req.Payload, ToNormalizeOptions(&req))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPayload) {
			return response.InvalidPayload(c, err.Error())
		}
		if errors.Is(err, domain.ErrInvalidRoute) {
			return response.ValidationErrorWithMessage(c, err.Error())
		}
		return response.InternalServerError(c)
	}

	if !h.machine.ResultReceived(c.Param("id"), batch) {
		return response.StaleSearch(c)
	}

	return response.OK(c, h.stateDTO())
}

// ReportFailure handles POST /api/v1/searches/:id/failures
//
// @Summary Report a failed poll attempt
// @Description Records one failed upstream poll. After the configured number of consecutive failures the search moves to the error state.
// @Tags searches
// @Accept json
// @Produce json
// @Param id path string true "Search correlation id"
// @Param request body FailureRequest true "Failure description"
// @Success 200 {object} SearchStateDTO
// @Failure 409 {object} response.ErrorDetail "Stale search"
// @Router /api/v1/searches/{id}/failures [post]
func (h *SearchHandler) ReportFailure(c echo.Context) error {
	var req FailureRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if req.Message == "" {
		req.Message = "upstream poll failed"
	}

	if !h.machine.Failure(c.Param("id"), errors.New(req.Message)) {
		return response.StaleSearch(c)
	}

	return response.OK(c, h.stateDTO())
}

// CurrentSearch handles GET /api/v1/searches/current
//
// @Summary Get the current search state
// @Description Returns the lifecycle state of the current search, including the accepted result batch once one arrived. Reading the state while loading also checks the polling timeout.
// @Tags searches
// @Produce json
// @Success 200 {object} SearchStateDTO
// @Router /api/v1/searches/current [get]
func (h *SearchHandler) CurrentSearch(c echo.Context) error {
	// A read while loading doubles as a poll tick so a timed-out search is
	// reported as errored rather than loading forever
	if h.machine.State() == searchstate.StateLoading {
		h.machine.PollTick(h.machine.CorrelationID())
	}

	return response.OK(c, h.stateDTO())
}

// StopSearch handles DELETE /api/v1/searches/current
//
// @Summary Stop the current search
// @Description Halts the search in flight. Late results for it will be rejected.
// @Tags searches
// @Produce json
// @Success 200 {object} SearchStateDTO
// @Router /api/v1/searches/current [delete]
func (h *SearchHandler) StopSearch(c echo.Context) error {
	h.machine.Stop()
	return response.OK(c, h.stateDTO())
}

// stateDTO snapshots the machine into its wire representation.
func (h *SearchHandler) stateDTO() *SearchStateDTO {
	dto := &SearchStateDTO{
		SearchID:            h.machine.CorrelationID(),
		State:               string(h.machine.State()),
		ConsecutiveFailures: h.machine.ConsecutiveFailures(),
	}

	if err := h.machine.LastError(); err != nil {
		dto.LastError = err.Error()
	}
	if batch := h.machine.Batch(); batch != nil {
		dto.Result = ToNormalizeResponseDTO(batch)
	}

	return dto
}
