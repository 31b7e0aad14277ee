package aggregate

import (
	"encoding/json"
	"strconv"
)

// Legacy field names the per-category emission value has been stored under,
// in lookup priority order. Older clients wrote different names.
var annualFields = []string{
	"annualEmissions",
	"footprint",
	"carbon_footprint",
	"home_footprint",
}

// extractAnnual pulls the annual emission value out of a stored record,
// accepting any of the legacy field names and value shapes.
func extractAnnual(doc map[string]any) (float64, bool) {
	for _, field := range annualFields {
		raw, ok := doc[field]
		if !ok {
			continue
		}
		return coerceFloat(raw)
	}
	return 0, false
}

// coerceFloat converts a stored value to float64. Records round-tripped
// through JSON may carry numbers as float64, json.Number, or plain strings;
// older writers stored integers.
func coerceFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
