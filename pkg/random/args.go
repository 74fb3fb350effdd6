package random

import (
	"math"
	"strconv"
	"strings"
)

// intArg reads args[i] as an int. Numeric strings are accepted.
func intArg(args []any, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	switch v := args[i].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(f), true
		}
	}
	return 0, false
}

// intArgOr reads args[i] as an int or returns def.
func intArgOr(args []any, i, def int) int {
	if n, ok := intArg(args, i); ok {
		return n
	}
	return def
}

// floatArg reads args[i] as a float64.
func floatArg(args []any, i int) (float64, bool) {
	if i >= len(args) {
		return 0, false
	}
	switch v := args[i].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

// stringArg reads args[i] as a string that is not a number.
func stringArg(args []any, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}
	s, ok := args[i].(string)
	if !ok {
		return "", false
	}
	if _, isNum := intArg(args, i); isNum {
		return "", false
	}
	return s, true
}

// textArg reads args[i] as text of any kind.
func textArg(args []any, i int) (string, bool) {
	if i >= len(args) || args[i] == nil {
		return "", false
	}
	switch v := args[i].(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}

// boolArg reads args[i] as a bool. "true"/"false" strings are accepted.
func boolArg(args []any, i int) (bool, bool) {
	if i >= len(args) {
		return false, false
	}
	switch v := args[i].(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return b, err == nil
	}
	return false, false
}

// listArg reads args[i] as a list.
func listArg(args []any, i int) ([]any, bool) {
	if i >= len(args) {
		return nil, false
	}
	l, ok := args[i].([]any)
	return l, ok
}

// lengthArgs resolves the (min, max) length convention shared by many
// generators: no argument draws from [defMin, defMax], one argument is an
// exact length, two arguments a range.
func (r *Random) lengthArgs(args []any, i, defMin, defMax int) int {
	min, hasMin := intArg(args, i)
	max, hasMax := intArg(args, i+1)
	switch {
	case hasMin && hasMax:
		return r.between(min, max)
	case hasMin:
		return min
	default:
		return r.between(defMin, defMax)
	}
}

func pickString(r *Random, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[r.intN(len(pool))]
}

func toAny(items []string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}
