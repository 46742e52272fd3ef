// Package testutil provides shared helpers for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-search/itinerary-normalization-service/internal/infrastructure/timeutil"
)

// LoadTestJSON loads a raw payload fixture from the test/testdata directory.
// The filename is relative to that directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadTestPayload loads a fixture and unmarshals it into the parsed-payload
// form the normalization pipeline consumes.
func LoadTestPayload(t *testing.T, filename string) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	if err := json.Unmarshal(LoadTestJSON(t, filename), &payload); err != nil {
		t.Fatalf("Failed to parse test file %s: %v", filename, err)
	}
	return payload
}

// MustParseLocal parses an upstream local timestamp in any supported layout.
// It fails the test if parsing fails.
func MustParseLocal(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := timeutil.ParseLocalTime(value)
	if err != nil {
		t.Fatalf("Failed to parse timestamp %s: %v", value, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
// Convenience function for filter option tests.
func FloatPtr(f float64) *float64 {
	return &f
}

// IntPtr returns a pointer to an int.
// Convenience function for filter option tests.
func IntPtr(i int) *int {
	return &i
}

// StringSlice returns a slice of strings.
// Convenience function for airline filter tests.
func StringSlice(s ...string) []string {
	return s
}
