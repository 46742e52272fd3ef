// Package timeutil provides time parsing and clock utilities for the
// normalization pipeline.
package timeutil

import (
	"fmt"
	"time"
)

// localDateTimeLayouts are the timestamp shapes upstream payloads use for
// local wall-clock times, tried in order.
var localDateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseLocalTime parses an upstream local timestamp. Timestamps without an
// offset are kept as naive wall-clock values: layover arithmetic between two
// naive timestamps stays on the same local-time basis as the source data,
// with no UTC conversion attempted.
func ParseLocalTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range localDateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp %q", value)
}

// MinutesBetween returns the whole minutes from a to b on the same time basis,
// rounded toward the nearest minute. Negative when b precedes a.
func MinutesBetween(a, b time.Time) int {
	return int(b.Sub(a).Round(time.Minute) / time.Minute)
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatLocal formats a time in the upstream local-timestamp shape.
func FormatLocal(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}
