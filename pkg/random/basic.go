package random

import (
	"strconv"
	"strings"
)

// maxSafeInt bounds the default ranges of natural and integer.
const maxSafeInt = 9007199254740992

// maxRangeLen caps the list built by range.
const maxRangeLen = 1 << 16

func (r *Random) registerBasic() {
	r.alias(r.boolean, "boolean", "bool")
	r.Register("natural", r.natural)
	r.alias(r.integer, "integer", "int")
	r.Register("float", r.float)
	r.alias(r.character, "character", "char")
	r.alias(r.str, "string", "str")
	r.Register("range", r.rangeList)
}

// boolean(min?, max?, current?)
func (r *Random) boolean(args ...any) any {
	if cur, ok := boolArg(args, 2); ok {
		min, hasMin := intArg(args, 0)
		max, hasMax := intArg(args, 1)
		var minp, maxp *int
		if hasMin {
			minp = &min
		}
		if hasMax {
			maxp = &max
		}
		return r.Bool(minp, maxp, cur)
	}
	return r.float64() >= 0.5
}

// natural(min = 0, max = 2^53)
func (r *Random) natural(args ...any) any {
	min := intArgOr(args, 0, 0)
	max := intArgOr(args, 1, maxSafeInt)
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return r.between(min, max)
}

// integer(min = -2^53, max = 2^53)
func (r *Random) integer(args ...any) any {
	return r.between(intArgOr(args, 0, -maxSafeInt), intArgOr(args, 1, maxSafeInt))
}

// float(min, max, dmin = 0, dmax = 17)
func (r *Random) float(args ...any) any {
	dmin := clamp(intArgOr(args, 2, 0), 0, 17)
	dmax := clamp(intArgOr(args, 3, 17), 0, 17)
	whole := r.between(intArgOr(args, 0, -maxSafeInt), intArgOr(args, 1, maxSafeInt))
	return r.Float(whole, r.between(dmin, dmax))
}

// Float builds a float from an integer part and dcount random fraction
// digits. The last digit is never 0 so the digit count survives parsing.
func (r *Random) Float(whole, dcount int) float64 {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(whole))
	if dcount > 0 {
		sb.WriteByte('.')
		for i := 0; i < dcount; i++ {
			if i < dcount-1 {
				sb.WriteString(r.Character(poolNumber))
			} else {
				sb.WriteString(r.Character("123456789"))
			}
		}
	}
	f, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return float64(whole)
	}
	return f
}

// character(pool?)
func (r *Random) character(args ...any) any {
	pool, _ := textArg(args, 0)
	return r.Character(pool)
}

// string(), string(length), string(pool, length), string(min, max),
// string(pool, min, max)
func (r *Random) str(args ...any) any {
	pool := ""
	if p, ok := stringArg(args, 0); ok {
		pool = p
		args = args[1:]
	}
	return r.stringFrom(pool, r.lengthArgs(args, 0, 3, 7))
}

// range(stop), range(start, stop), range(start, stop, step)
func (r *Random) rangeList(args ...any) any {
	start, stop := 0, intArgOr(args, 0, 0)
	if len(args) >= 2 {
		start, stop = stop, intArgOr(args, 1, 0)
	}
	step := intArgOr(args, 2, 1)
	if step == 0 {
		step = 1
	}
	out := []any{}
	if step > 0 {
		for i := start; i < stop && len(out) < maxRangeLen; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop && len(out) < maxRangeLen; i += step {
			out = append(out, i)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
