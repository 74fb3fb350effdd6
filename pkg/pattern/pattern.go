// Package pattern synthesizes strings that match a regular expression.
//
// It backs pattern templates: a *regexp.Regexp in a template generates a
// random string the expression would match.
//
//	g := pattern.New(random.New())
//	s, _ := g.Synthesize(`[A-Z]{3}-\d{4}`) // e.g. "QXF-0381"
package pattern

import (
	"errors"
	"fmt"
	"regexp/syntax"
	"strings"
	"unicode"
)

// DefaultMaxRepeat bounds the unbounded quantifiers *, + and {n,}.
const DefaultMaxRepeat = 8

// ErrNoMatch is returned for expressions no string can match.
var ErrNoMatch = errors.New("pattern matches nothing")

// Source supplies random integers in [min, max].
type Source interface {
	Integer(min, max int) int
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxRepeat changes how far unbounded quantifiers may repeat.
func WithMaxRepeat(n int) Option {
	return func(g *Generator) {
		if n >= 0 {
			g.maxRepeat = n
		}
	}
}

// Generator turns regular expression sources into matching strings.
type Generator struct {
	src       Source
	maxRepeat int
}

// New creates a Generator drawing from src.
func New(src Source, opts ...Option) *Generator {
	g := &Generator{src: src, maxRepeat: DefaultMaxRepeat}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Synthesize parses source with Perl syntax and returns one string that
// matches it.
func (g *Generator) Synthesize(source string) (string, error) {
	re, err := syntax.Parse(source, syntax.Perl)
	if err != nil {
		return "", fmt.Errorf("parse pattern %q: %w", source, err)
	}
	var sb strings.Builder
	if err := g.walk(&sb, re); err != nil {
		return "", fmt.Errorf("pattern %q: %w", source, err)
	}
	return sb.String(), nil
}

func (g *Generator) walk(sb *strings.Builder, re *syntax.Regexp) error {
	switch re.Op {
	case syntax.OpNoMatch:
		return ErrNoMatch
	case syntax.OpEmptyMatch, syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText, syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return nil
	case syntax.OpLiteral:
		for _, r := range re.Rune {
			if re.Flags&syntax.FoldCase != 0 && g.src.Integer(0, 1) == 1 {
				r = swapCase(r)
			}
			sb.WriteRune(r)
		}
		return nil
	case syntax.OpCharClass:
		r, ok := g.pickRune(re.Rune)
		if !ok {
			return ErrNoMatch
		}
		sb.WriteRune(r)
		return nil
	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		sb.WriteRune(rune(g.src.Integer(' ', '~')))
		return nil
	case syntax.OpCapture:
		return g.walk(sb, re.Sub[0])
	case syntax.OpStar:
		return g.repeat(sb, re.Sub[0], 0, g.maxRepeat)
	case syntax.OpPlus:
		return g.repeat(sb, re.Sub[0], 1, max(1, g.maxRepeat))
	case syntax.OpQuest:
		return g.repeat(sb, re.Sub[0], 0, 1)
	case syntax.OpRepeat:
		hi := re.Max
		if hi < 0 {
			hi = re.Min + g.maxRepeat
		}
		return g.repeat(sb, re.Sub[0], re.Min, hi)
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if err := g.walk(sb, sub); err != nil {
				return err
			}
		}
		return nil
	case syntax.OpAlternate:
		if len(re.Sub) == 0 {
			return ErrNoMatch
		}
		return g.walk(sb, re.Sub[g.src.Integer(0, len(re.Sub)-1)])
	}
	return fmt.Errorf("unsupported operator %v", re.Op)
}

func (g *Generator) repeat(sb *strings.Builder, sub *syntax.Regexp, lo, hi int) error {
	n := g.src.Integer(lo, hi)
	for i := 0; i < n; i++ {
		if err := g.walk(sb, sub); err != nil {
			return err
		}
	}
	return nil
}

// pickRune draws uniformly from a class given as inclusive range pairs.
// Printable ASCII members are preferred when the class has any.
func (g *Generator) pickRune(ranges []rune) (rune, bool) {
	printable := clip(ranges, ' ', '~')
	if len(printable) > 0 {
		ranges = printable
	}
	total := 0
	for i := 0; i+1 < len(ranges); i += 2 {
		total += int(ranges[i+1]-ranges[i]) + 1
	}
	if total == 0 {
		return 0, false
	}
	n := g.src.Integer(0, total-1)
	for i := 0; i+1 < len(ranges); i += 2 {
		size := int(ranges[i+1]-ranges[i]) + 1
		if n < size {
			return ranges[i] + rune(n), true
		}
		n -= size
	}
	return 0, false
}

func clip(ranges []rune, lo, hi rune) []rune {
	var out []rune
	for i := 0; i+1 < len(ranges); i += 2 {
		a, b := max(ranges[i], lo), min(ranges[i+1], hi)
		if a <= b {
			out = append(out, a, b)
		}
	}
	return out
}

func swapCase(r rune) rune {
	if unicode.IsUpper(r) {
		return unicode.ToLower(r)
	}
	return unicode.ToUpper(r)
}
