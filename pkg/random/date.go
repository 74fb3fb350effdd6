package random

import (
	"strconv"
	"strings"
	"time"
)

const (
	defaultDateFormat     = "yyyy-MM-dd"
	defaultTimeFormat     = "HH:mm:ss"
	defaultDatetimeFormat = "yyyy-MM-dd HH:mm:ss"
)

func (r *Random) registerDate() {
	r.Register("date", r.dateFunc(defaultDateFormat))
	r.Register("time", r.dateFunc(defaultTimeFormat))
	r.Register("datetime", r.dateFunc(defaultDatetimeFormat))
	r.Register("now", r.nowFunc)
}

func (r *Random) dateFunc(def string) Func {
	return func(args ...any) any {
		format, ok := textArg(args, 0)
		if !ok {
			format = def
		}
		return FormatDate(r.Date(), format)
	}
}

// Date returns a random instant between the Unix epoch and now.
func (r *Random) Date() time.Time {
	ms := r.now().UnixMilli()
	return time.UnixMilli(r.int64N(ms + 1)).In(r.now().Location())
}

// now(unit?, format?) where unit truncates to the start of a year, month,
// week, day, hour, minute or second.
func (r *Random) nowFunc(args ...any) any {
	t := r.now()
	format := defaultDatetimeFormat
	rest := args
	if unit, ok := textArg(args, 0); ok {
		if truncated, isUnit := startOf(t, unit); isUnit {
			t = truncated
			rest = args[1:]
		}
	}
	if f, ok := textArg(rest, 0); ok {
		format = f
	}
	return FormatDate(t, format)
}

func startOf(t time.Time, unit string) (time.Time, bool) {
	y, m, d := t.Date()
	loc := t.Location()
	switch strings.ToLower(unit) {
	case "year":
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc), true
	case "month":
		return time.Date(y, m, 1, 0, 0, 0, 0, loc), true
	case "week":
		return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, loc), true
	case "day":
		return time.Date(y, m, d, 0, 0, 0, 0, loc), true
	case "hour":
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, loc), true
	case "minute":
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc), true
	case "second":
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc), true
	}
	return t, false
}

// dateTokens are matched longest first at every position.
var dateTokens = []string{
	"yyyy", "yy", "y",
	"MM", "M",
	"dd", "d",
	"HH", "H",
	"hh", "h",
	"mm", "m",
	"ss", "s",
	"SS", "S",
	"A", "a", "T",
}

// FormatDate renders t with the pattern tokens yyyy yy y MM M dd d HH H
// hh h mm m ss s SS S A a T. Other characters are copied.
func FormatDate(t time.Time, format string) string {
	var sb strings.Builder
	for i := 0; i < len(format); {
		tok := ""
		for _, candidate := range dateTokens {
			if strings.HasPrefix(format[i:], candidate) {
				tok = candidate
				break
			}
		}
		if tok == "" {
			sb.WriteByte(format[i])
			i++
			continue
		}
		sb.WriteString(dateToken(t, tok))
		i += len(tok)
	}
	return sb.String()
}

func dateToken(t time.Time, tok string) string {
	hour12 := t.Hour() % 12
	if hour12 == 0 {
		hour12 = 12
	}
	ms := t.Nanosecond() / int(time.Millisecond)
	switch tok {
	case "yyyy":
		return strconv.Itoa(t.Year())
	case "yy":
		return pad(t.Year()%100, 2)
	case "y":
		return strconv.Itoa(t.Year() % 100)
	case "MM":
		return pad(int(t.Month()), 2)
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "dd":
		return pad(t.Day(), 2)
	case "d":
		return strconv.Itoa(t.Day())
	case "HH":
		return pad(t.Hour(), 2)
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return pad(hour12, 2)
	case "h":
		return strconv.Itoa(hour12)
	case "mm":
		return pad(t.Minute(), 2)
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return pad(t.Second(), 2)
	case "s":
		return strconv.Itoa(t.Second())
	case "SS":
		return pad(ms, 3)
	case "S":
		return strconv.Itoa(ms)
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	case "T":
		return strconv.FormatInt(t.UnixMilli(), 10)
	}
	return tok
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
