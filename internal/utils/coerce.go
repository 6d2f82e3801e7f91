package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The upstream query service returns property metadata as loosely typed JSON:
// numeric fields may arrive as numbers or as strings ("450000.00"), list
// fields as []any. These helpers coerce such values into concrete Go types,
// reporting failure instead of guessing.

// AsString coerces a value to a non-empty trimmed string.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// AsFloat coerces a value to float64. Accepts JSON numbers, json.Number,
// and numeric strings (with optional "$" and thousands separators, as the
// upstream sometimes formats prices).
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AsInt coerces a value to int. Fractional floats are rejected rather than
// truncated so a malformed "2.5 bedrooms" degrades to absent.
func AsInt(v any) (int, bool) {
	f, ok := AsFloat(v)
	if !ok {
		return 0, false
	}
	i := int(f)
	if float64(i) != f {
		return 0, false
	}
	return i, true
}

// AsStringSlice coerces a value to a slice of non-empty strings, preserving
// order. Accepts []any, []string, or a single comma-separated string.
func AsStringSlice(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		out := make([]string, 0, len(list))
		for _, s := range list {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := AsString(item); ok {
				out = append(out, s)
			}
		}
		return out, true
	case string:
		if strings.TrimSpace(list) == "" {
			return nil, false
		}
		parts := strings.Split(list, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, true
	default:
		return nil, false
	}
}
