package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller programming errors.
//
// The pipeline never returns an error for malformed *data*: bad prices, absent
// fields and inconsistent flags all degrade into the canonical model as
// warnings or unavailable states. Errors are reserved for malformed input
// *shape*: a payload that is not an object at all, or a route context that is
// not a valid IATA pair.
var (
	// ErrInvalidPayload indicates the top-level search payload is not an object,
	// or the itinerary collections inside it are not arrays.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInvalidRoute indicates the supplied route context failed validation.
	ErrInvalidRoute = errors.New("invalid route")
)

// WarningCode classifies a data-quality issue found during normalization.
type WarningCode string

// Data-quality warning codes.
const (
	// WarnMissingField marks a resolvable-but-absent field that was defaulted.
	WarnMissingField WarningCode = "missing_field"

	// WarnInvalidPrice marks a price that could not be coerced to a valid
	// positive number; the itinerary is rendered with an unavailable price.
	WarnInvalidPrice WarningCode = "invalid_price"

	// WarnInconsistentFareFlags marks a hidden-city flag without a resolvable
	// hidden destination, or vice versa.
	WarnInconsistentFareFlags WarningCode = "inconsistent_fare_flags"

	// WarnMalformedSegment marks a segment missing both origin and destination
	// codes; the itinerary is classified but excluded by the relevance filter.
	WarnMalformedSegment WarningCode = "malformed_segment"

	// WarnImplausibleTransfer marks a layover with a negative duration or one
	// longer than 24 hours.
	WarnImplausibleTransfer WarningCode = "implausible_transfer"
)

// Warning records a single data-quality issue on an itinerary. Warnings never
// abort processing of the itinerary or the batch.
type Warning struct {
	// Code classifies the issue
	Code WarningCode `json:"code"`

	// Field names the logical field or segment index involved, when applicable
	Field string `json:"field,omitempty"`

	// Detail is a human-readable description
	Detail string `json:"detail,omitempty"`
}

// NewWarning creates a Warning with a formatted detail message.
func NewWarning(code WarningCode, field, format string, args ...any) Warning {
	return Warning{
		Code:   code,
		Field:  field,
		Detail: fmt.Sprintf(format, args...),
	}
}

// String implements fmt.Stringer for log output.
func (w Warning) String() string {
	if w.Field == "" {
		return fmt.Sprintf("%s: %s", w.Code, w.Detail)
	}
	return fmt.Sprintf("%s (%s): %s", w.Code, w.Field, w.Detail)
}

// HasWarning reports whether the list contains a warning with the given code.
func HasWarning(warnings []Warning, code WarningCode) bool {
	for _, w := range warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
