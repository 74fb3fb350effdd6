package random

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func (r *Random) registerHelper() {
	r.Register("capitalize", func(args ...any) any {
		s, _ := textArg(args, 0)
		return capitalize(s)
	})
	r.Register("upper", func(args ...any) any {
		s, _ := textArg(args, 0)
		return cases.Upper(language.Und).String(s)
	})
	r.Register("lower", func(args ...any) any {
		s, _ := textArg(args, 0)
		return cases.Lower(language.Und).String(s)
	})
	r.Register("pick", r.pick)
	r.Register("shuffle", r.shuffle)
}

// pick(list, min?, max?) picks one element, or a shuffled sample of
// min..max elements when bounds are given. pick(a, b, c) picks among its
// arguments.
func (r *Random) pick(args ...any) any {
	list, ok := listArg(args, 0)
	if !ok {
		return r.Pick(args)
	}
	if _, bounded := intArg(args, 1); !bounded {
		return r.Pick(list)
	}
	return r.shuffle(args...)
}

// shuffle(list, min?, max?) returns a shuffled copy, truncated to min or
// to a length drawn from [min, max].
func (r *Random) shuffle(args ...any) any {
	list, ok := listArg(args, 0)
	if !ok {
		list = args
		args = []any{list}
	}
	out := make([]any, len(list))
	copy(out, list)
	for i := len(out) - 1; i > 0; i-- {
		j := r.intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	if _, bounded := intArg(args, 1); !bounded {
		return out
	}
	n := clamp(r.lengthArgs(args, 1, 0, 0), 0, len(out))
	return out[:n]
}
