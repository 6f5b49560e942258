package utils

import (
	"strconv"
	"strings"
)

// FormatNumber writes v in its shortest decimal form without exponent:
// 10 -> "10", 2.5 -> "2.5", -25 -> "-25".
func FormatNumber(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Percent formats v as a css percentage, eg: "50%".
func Percent(v float64) string {
	return FormatNumber(v) + "%"
}

// Pixels formats v as a css pixel length, eg: "-10px".
func Pixels(v int) string {
	return strconv.Itoa(v) + "px"
}

// AnyToString converts log arguments to text without fmt so it can run under
// tinygo. Supports string, int, float64, bool, error and []string.
func AnyToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return FormatNumber(val)
	case bool:
		return strconv.FormatBool(val)
	case error:
		if val != nil {
			return val.Error()
		}
		return "<nil>"
	case []string:
		return "[" + strings.Join(val, ", ") + "]"
	case nil:
		return "<nil>"
	default:
		return "<?>"
	}
}
