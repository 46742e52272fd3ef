package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors_WrapCorrectly(t *testing.T) {
	wrapped := fmt.Errorf("%w: directFlights is not an array", ErrInvalidPayload)
	assert.True(t, errors.Is(wrapped, ErrInvalidPayload))
	assert.False(t, errors.Is(wrapped, ErrInvalidRoute))
}

func TestNewWarning(t *testing.T) {
	w := NewWarning(WarnMissingField, "segments[2].flightNumber", "flight number absent in %s schema", "v1_flat")

	assert.Equal(t, WarnMissingField, w.Code)
	assert.Equal(t, "segments[2].flightNumber", w.Field)
	assert.Equal(t, "flight number absent in v1_flat schema", w.Detail)
}

func TestWarning_String(t *testing.T) {
	tests := []struct {
		name    string
		warning Warning
		want    string
	}{
		{
			name:    "with field",
			warning: Warning{Code: WarnInvalidPrice, Field: "price", Detail: "not a number"},
			want:    "invalid_price (price): not a number",
		},
		{
			name:    "without field",
			warning: Warning{Code: WarnInconsistentFareFlags, Detail: "flag without destination"},
			want:    "inconsistent_fare_flags: flag without destination",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.warning.String())
		})
	}
}

func TestHasWarning(t *testing.T) {
	warnings := []Warning{
		{Code: WarnMissingField},
		{Code: WarnImplausibleTransfer},
	}

	assert.True(t, HasWarning(warnings, WarnMissingField))
	assert.True(t, HasWarning(warnings, WarnImplausibleTransfer))
	assert.False(t, HasWarning(warnings, WarnInvalidPrice))
	assert.False(t, HasWarning(nil, WarnMissingField))
}
