package value

import (
	"math"
	"strconv"
)

// IsNumber reports whether v is a Go integer or float.
func IsNumber(v any) bool {
	return KindOf(v) == KindNumber
}

// ToFloat converts a number to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// AddInt adds delta to a number, keeping the number's Go type.
// Non-numbers are returned unchanged.
func AddInt(v any, delta int) any {
	if delta == 0 {
		return v
	}
	switch n := v.(type) {
	case int:
		return n + delta
	case int8:
		return n + int8(delta)
	case int16:
		return n + int16(delta)
	case int32:
		return n + int32(delta)
	case int64:
		return n + int64(delta)
	case uint:
		return uint(int(n) + delta)
	case uint8:
		return uint8(int(n) + delta)
	case uint16:
		return uint16(int(n) + delta)
	case uint32:
		return uint32(int64(n) + int64(delta))
	case uint64:
		return uint64(int64(n) + int64(delta))
	case float32:
		return n + float32(delta)
	case float64:
		return n + float64(delta)
	}
	return v
}

// FormatNumber renders a number the way a JSON encoder would: integers
// without a fraction, floats in the shortest decimal form without exponent.
func FormatNumber(v any) string {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float32:
		return formatFloat(float64(n), 32)
	case float64:
		return formatFloat(n, 64)
	}
	if f, ok := ToFloat(v); ok {
		return formatFloat(f, 64)
	}
	return ""
}

func formatFloat(f float64, bits int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
