package pricing

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FormData is the untyped bag of values a renovation form produces, keyed by
// field id. It arrives from JSON, so numbers may be float64 or json.Number,
// booleans may be real booleans or checkbox strings, and anything may be
// missing. Accessors coerce defensively and default to the zero value; the
// calculator may be called with partial data while a form is still being
// filled in.
type FormData map[string]any

// Has reports whether the field was submitted at all.
func (f FormData) Has(id string) bool {
	_, ok := f[id]
	return ok
}

// Number returns the field as a float64, or 0 when missing or non-numeric.
func (f FormData) Number(id string) float64 {
	switch v := f[id].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0
		}
		return n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Bool returns the field as a boolean. Checkbox widgets submit "true"/"on"/
// "1" strings as often as real booleans; non-zero numbers also count.
func (f FormData) Bool(id string) bool {
	switch v := f[id].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "1", "yes":
			return true
		}
		return false
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

// String returns the field as a trimmed string, or "" when missing.
func (f FormData) String(id string) string {
	switch v := f[id].(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return ""
	}
}

// Strings returns a checkbox-group selection. JSON decoding yields []any, so
// both []string and []any-of-strings are accepted.
func (f FormData) Strings(id string) []string {
	switch v := f[id].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// FileCount returns how many file references a file field carries. Only the
// count ever leaves the form layer; raw content is never inspected.
func (f FormData) FileCount(id string) int {
	switch v := f[id].(type) {
	case []any:
		return len(v)
	case []string:
		return len(v)
	case []map[string]any:
		return len(v)
	default:
		return 0
	}
}
