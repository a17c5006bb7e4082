package conv

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AsInt converts value to int, it returns false if value is not an integral number
func AsInt(value interface{}) (int, bool) {
	switch actual := value.(type) {
	case int:
		return actual, true
	case int8:
		return int(actual), true
	case int16:
		return int(actual), true
	case int32:
		return int(actual), true
	case int64:
		return int(actual), true
	case uint:
		return int(actual), true
	case uint8:
		return int(actual), true
	case uint16:
		return int(actual), true
	case uint32:
		return int(actual), true
	case uint64:
		return int(actual), true
	case float32:
		return floatAsInt(float64(actual))
	case float64:
		return floatAsInt(actual)
	case json.Number:
		if i, err := actual.Int64(); err == nil {
			return int(i), true
		}
		if f, err := actual.Float64(); err == nil {
			return floatAsInt(f)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(actual)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func floatAsInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// AsBool converts value to bool, accepting booleans and their common string forms
func AsBool(value interface{}) (bool, bool) {
	switch actual := value.(type) {
	case bool:
		return actual, true
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(actual)); err == nil {
			return b, true
		}
	}
	return false, false
}

// AsString converts value to string; numbers and booleans are formatted, other types rejected
func AsString(value interface{}) (string, bool) {
	switch actual := value.(type) {
	case string:
		return actual, true
	case json.Number:
		return actual.String(), true
	case bool:
		return strconv.FormatBool(actual), true
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64), true
	case int, int32, int64:
		return fmt.Sprintf("%d", actual), true
	}
	return "", false
}
