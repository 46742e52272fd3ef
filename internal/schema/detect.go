package schema

// Version identifies which producer schema a raw segment object is shaped as.
// Detection is informational: resolution itself is alias-driven and handles
// mixed shapes, but tagging the version up front is useful for logging and for
// verifying schema-alias equivalence in tests.
type Version string

// Known producer schema versions.
const (
	// VersionV2Nested is the schema with nested carrier/origin/destination
	// objects and departure/arrival blocks carrying local_time
	VersionV2Nested Version = "v2_nested"

	// VersionV1Flat is the flat snake_case schema
	// (carrier_code, departure_airport, departure_time, ...)
	VersionV1Flat Version = "v1_flat"

	// VersionSimplified is the flat camelCase schema
	// (airlineCode, departureAirportCode, ...)
	VersionSimplified Version = "simplified"

	// VersionUnknown means no discriminating field was found
	VersionUnknown Version = "unknown"
)

// DetectSegmentVersion tags a raw segment object with its producer schema,
// discriminating on the presence of the carrier field variants.
func DetectSegmentVersion(raw map[string]any) Version {
	if raw == nil {
		return VersionUnknown
	}

	if v, ok := raw["carrier"]; ok {
		if _, isObj := v.(map[string]any); isObj {
			return VersionV2Nested
		}
	}
	if _, ok := raw["carrier_code"]; ok {
		return VersionV1Flat
	}
	if _, ok := raw["airlineCode"]; ok {
		return VersionSimplified
	}

	return VersionUnknown
}
