// Package schema resolves logical field names against the raw, versioned
// upstream search payloads. Three producer schemas exist simultaneously (a flat
// V1-style schema, a V2 schema with nested carrier/origin/destination objects,
// and a simplified camelCase schema); instead of scattering fallback chains at
// every read site, each logical field maps to an ordered list of alias paths
// held in a data table. Supporting a new upstream schema version is a data
// change: append alias paths, never reorder existing ones.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed aliases.json
var defaultAliasJSON []byte

// AliasTable maps a logical field name to an ordered list of dotted access
// paths into the raw payload (e.g. "carrier.code"). Resolution tries paths in
// order; the first path whose value is present and non-null wins.
type AliasTable map[string][]string

// AliasConfig groups the alias tables for each raw object kind.
type AliasConfig struct {
	// Response aliases apply to the top-level search response object
	Response AliasTable `json:"response"`

	// Itinerary aliases apply to one raw itinerary object
	Itinerary AliasTable `json:"itinerary"`

	// Segment aliases apply to one raw segment object
	Segment AliasTable `json:"segment"`

	// HiddenDestination aliases apply to a raw hidden-destination object
	HiddenDestination AliasTable `json:"hiddenDestination"`
}

// DefaultAliasConfig returns the built-in alias tables.
// Panics only if the embedded table is corrupt, which is a build error.
func DefaultAliasConfig() *AliasConfig {
	cfg := &AliasConfig{}
	if err := json.Unmarshal(defaultAliasJSON, cfg); err != nil {
		panic(fmt.Sprintf("embedded alias table is invalid: %v", err))
	}
	return cfg
}

// LoadAliasConfig reads alias tables from a JSON file. The file is authoritative:
// it replaces the built-in tables wholesale, so deployments can support new
// upstream schema versions without a rebuild.
func LoadAliasConfig(path string) (*AliasConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias config: %w", err)
	}

	cfg := &AliasConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse alias config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate alias config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every table has at least one alias path per field.
func (c *AliasConfig) Validate() error {
	for name, table := range map[string]AliasTable{
		"response":          c.Response,
		"itinerary":         c.Itinerary,
		"segment":           c.Segment,
		"hiddenDestination": c.HiddenDestination,
	} {
		if len(table) == 0 {
			return fmt.Errorf("alias table %q is empty", name)
		}
		for field, paths := range table {
			if len(paths) == 0 {
				return fmt.Errorf("alias table %q: field %q has no paths", name, field)
			}
			for _, p := range paths {
				if p == "" {
					return fmt.Errorf("alias table %q: field %q has an empty path", name, field)
				}
			}
		}
	}
	return nil
}
