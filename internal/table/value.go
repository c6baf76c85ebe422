package table

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCell converts a raw text cell into its in-memory value: nil for an
// empty cell, float64 when the text parses as a number, the trimmed string
// otherwise.
func ParseCell(raw string) interface{} {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return trimmed
}

// AsFloat converts a cell value to float64 if possible.
func AsFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// CellString converts a cell value to its canonical string form. Missing
// values render as the empty string. Numeric values use %g so that 2.0 and
// int64(2) both render as "2", which keeps equality comparisons between
// differently typed columns honest.
func CellString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	default:
		if f, ok := AsFloat(v); ok {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return fmt.Sprintf("%v", val)
	}
}
