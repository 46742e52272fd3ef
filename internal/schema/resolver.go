package schema

import (
	"strings"

	"github.com/spf13/cast"
)

// Resolver resolves logical field names against a raw object using an ordered
// alias table. Resolution is deterministic: first present, non-null alias path
// wins, with no heuristic scoring. A broken path (missing intermediate object,
// wrong intermediate type) is treated as "absent", never as an error.
type Resolver struct {
	table AliasTable
}

// NewResolver creates a Resolver over the given alias table.
func NewResolver(table AliasTable) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns the first non-null value among the field's alias paths.
// The second return value is false when the logical field is unknown or no
// alias path yields a value.
func (r *Resolver) Resolve(raw map[string]any, field string) (any, bool) {
	paths, ok := r.table[field]
	if !ok {
		return nil, false
	}

	for _, path := range paths {
		if v, ok := walkPath(raw, path); ok {
			return v, true
		}
	}
	return nil, false
}

// String resolves a field and coerces it to a string.
// Absent fields and values that cannot be represented as strings yield "".
func (r *Resolver) String(raw map[string]any, field string) string {
	v, ok := r.Resolve(raw, field)
	if !ok {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// Int resolves a field and coerces it to an int. Numeric strings are accepted.
// Absent and non-numeric values yield 0.
func (r *Resolver) Int(raw map[string]any, field string) int {
	v, ok := r.Resolve(raw, field)
	if !ok {
		return 0
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0
	}
	return n
}

// Bool resolves a field and coerces it to a bool. Absent and non-boolean
// values yield false.
func (r *Resolver) Bool(raw map[string]any, field string) bool {
	v, ok := r.Resolve(raw, field)
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

// Object resolves a field expected to be a nested object.
// Returns nil when absent or not an object.
func (r *Resolver) Object(raw map[string]any, field string) map[string]any {
	v, ok := r.Resolve(raw, field)
	if !ok {
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return obj
}

// Array resolves a field expected to be an array.
// Returns nil when absent or not an array.
func (r *Resolver) Array(raw map[string]any, field string) []any {
	v, ok := r.Resolve(raw, field)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	return arr
}

// ObjectArray resolves a field expected to be an array of objects.
// Non-object elements are skipped.
func (r *Resolver) ObjectArray(raw map[string]any, field string) []map[string]any {
	arr := r.Array(raw, field)
	if arr == nil {
		return nil
	}

	objs := make([]map[string]any, 0, len(arr))
	for _, el := range arr {
		if obj, ok := el.(map[string]any); ok {
			objs = append(objs, obj)
		}
	}
	return objs
}

// walkPath follows a dotted path through nested maps. Any break in the path
// (missing key, non-map intermediate, null leaf) reports absent.
func walkPath(raw map[string]any, path string) (any, bool) {
	if raw == nil {
		return nil, false
	}

	current := raw
	parts := strings.Split(path, ".")

	for i, part := range parts {
		v, ok := current[part]
		if !ok || v == nil {
			return nil, false
		}

		if i == len(parts)-1 {
			return v, true
		}

		next, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}
