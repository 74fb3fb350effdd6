package template

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// ruleSuffix matches everything after the last '|' of a key:
	// +step, or an optional range followed by an optional decimal range.
	ruleSuffix = regexp.MustCompile(`^(?:\+(\d+)|([+-]?\d+-?[+-]?\d*)?(?:\.(\d+-?\d*))?)$`)

	// ruleRange splits "min-max" into its bounds.
	ruleRange = regexp.MustCompile(`^([+-]?\d+)-?([+-]?\d+)?$`)
)

// IntSource draws the counts of min-max rules.
type IntSource interface {
	Integer(min, max int) int
}

// Rule is a parsed key suffix. The zero Rule means the key had none.
type Rule struct {
	// Parameters holds the raw groups: full key, name, step, range, decimal.
	Parameters []string
	// Range holds the raw integer range: full, min, max.
	Range []string
	Min   *int
	Max   *int
	// Count is Min alone, or one draw from [Min, Max] made at parse time.
	Count *int
	// Decimal holds the raw decimal range: full, dmin, dmax.
	Decimal []string
	DMin    *int
	DMax    *int
	DCount  *int
	Step    *int
}

// IsZero reports whether the key carried no rule.
func (r Rule) IsZero() bool {
	return r.Parameters == nil
}

// ParseRule splits key into its name and rule. Keys without a '|', with an
// empty suffix, or with a suffix that is not a rule yield the zero Rule;
// for the latter the name is the whole key.
func ParseRule(key string, ints IntSource) (string, Rule) {
	name, groups, ok := matchRule(key)
	if !ok || (groups[1] == "" && groups[2] == "" && groups[3] == "") {
		return name, Rule{}
	}

	rule := Rule{Parameters: []string{key, name, groups[1], groups[2], groups[3]}}
	if groups[1] != "" {
		step, err := strconv.Atoi(groups[1])
		if err != nil {
			return key, Rule{}
		}
		rule.Step = &step
		return name, rule
	}
	if groups[2] != "" {
		lo, hi, count, ok := parseRange(groups[2], ints)
		if !ok {
			return key, Rule{}
		}
		rule.Range = []string{groups[2], rangeBound(groups[2], 1), rangeBound(groups[2], 2)}
		rule.Min, rule.Max, rule.Count = lo, hi, count
	}
	if groups[3] != "" {
		lo, hi, count, ok := parseRange(groups[3], ints)
		if !ok {
			return key, Rule{}
		}
		rule.Decimal = []string{groups[3], rangeBound(groups[3], 1), rangeBound(groups[3], 2)}
		rule.DMin, rule.DMax, rule.DCount = lo, hi, count
	}
	return name, rule
}

// KeyName returns the name part of a key without drawing any counts.
func KeyName(key string) string {
	name, _, _ := matchRule(key)
	return name
}

// keyStep returns the +step of a key, or 0.
func keyStep(key string) int {
	_, groups, ok := matchRule(key)
	if !ok || groups[1] == "" {
		return 0
	}
	step, _ := strconv.Atoi(groups[1])
	return step
}

// matchRule returns the name and the step, range and decimal groups.
// ok is false when the key has no '|' or the suffix is not a rule, in
// which case name is the whole key.
func matchRule(key string) (name string, groups [4]string, ok bool) {
	i := strings.LastIndexByte(key, '|')
	if i < 0 {
		return key, groups, false
	}
	m := ruleSuffix.FindStringSubmatch(key[i+1:])
	if m == nil {
		return key, groups, false
	}
	copy(groups[:], m)
	return key[:i], groups, true
}

func parseRange(s string, ints IntSource) (lo, hi, count *int, ok bool) {
	m := ruleRange.FindStringSubmatch(s)
	if m == nil {
		return nil, nil, nil, false
	}
	min, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, nil, nil, false
	}
	lo = &min
	if m[2] == "" {
		n := min
		return lo, nil, &n, true
	}
	max, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, nil, nil, false
	}
	hi = &max
	n := min
	if ints != nil {
		n = ints.Integer(min, max)
	}
	return lo, hi, &n, true
}

func rangeBound(s string, i int) string {
	m := ruleRange.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[i]
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
