package template

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	argSeparator = regexp.MustCompile(`,\s*`)
	argNumber    = regexp.MustCompile(`^[+-]?(?:0[xX][0-9a-fA-F]+|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	argIdent     = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*`)

	errArgSyntax = errors.New("invalid argument syntax")
)

// ParseArgs parses a placeholder argument list into literal values: int,
// float64, string, bool, nil and []any. Nested placeholders are returned
// as strings. A list that is not made of literals is split on commas into
// strings instead.
func ParseArgs(raw string) []any {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	p := &argParser{s: raw}
	args, err := p.list()
	if err != nil {
		parts := argSeparator.Split(raw, -1)
		out := make([]any, len(parts))
		for i, s := range parts {
			out[i] = s
		}
		return out
	}
	return args
}

type argParser struct {
	s   string
	pos int
}

func (p *argParser) list() ([]any, error) {
	var out []any
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		p.skipSpace()
		if p.pos == len(p.s) {
			return out, nil
		}
		if p.s[p.pos] != ',' {
			return nil, p.errorf("expected ','")
		}
		p.pos++
	}
}

func (p *argParser) value() (any, error) {
	p.skipSpace()
	if p.pos == len(p.s) {
		return nil, p.errorf("missing value")
	}
	switch ch := p.s[p.pos]; {
	case ch == '"' || ch == '\'' || ch == '`':
		return p.quoted(ch)
	case ch == '[':
		return p.array()
	case ch == '@':
		return p.placeholder()
	case ch == '-' || ch == '+' || ch == '.' || (ch >= '0' && ch <= '9'):
		return p.number()
	}

	ident := argIdent.FindString(p.s[p.pos:])
	switch ident {
	case "true", "false":
		p.pos += len(ident)
		return ident == "true", nil
	case "null", "undefined":
		p.pos += len(ident)
		return nil, nil
	}
	return nil, p.errorf("unexpected %q", p.s[p.pos:])
}

func (p *argParser) number() (any, error) {
	lit := argNumber.FindString(p.s[p.pos:])
	if lit == "" {
		return nil, p.errorf("invalid number")
	}
	p.pos += len(lit)

	if body := strings.TrimLeft(lit, "+-"); strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		n, err := strconv.ParseInt(lit, 0, 64)
		if err != nil {
			return nil, p.errorf("invalid number %q", lit)
		}
		return int(n), nil
	}
	if !strings.ContainsAny(lit, ".eE") {
		if n, err := strconv.Atoi(lit); err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, p.errorf("invalid number %q", lit)
	}
	return f, nil
}

func (p *argParser) quoted(q byte) (any, error) {
	p.pos++
	var sb strings.Builder
	for p.pos < len(p.s) {
		ch := p.s[p.pos]
		switch {
		case ch == q:
			p.pos++
			return sb.String(), nil
		case ch == '\\':
			if err := p.escape(&sb); err != nil {
				return nil, err
			}
		default:
			sb.WriteByte(ch)
			p.pos++
		}
	}
	return nil, p.errorf("unterminated string")
}

func (p *argParser) escape(sb *strings.Builder) error {
	p.pos++
	if p.pos == len(p.s) {
		return p.errorf("unterminated escape")
	}
	ch := p.s[p.pos]
	p.pos++
	switch ch {
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'v':
		sb.WriteByte('\v')
	case '0':
		sb.WriteByte(0)
	case 'x', 'u':
		width := 2
		if ch == 'u' {
			width = 4
		}
		if p.pos+width > len(p.s) {
			return p.errorf("short \\%c escape", ch)
		}
		n, err := strconv.ParseUint(p.s[p.pos:p.pos+width], 16, 32)
		if err != nil {
			return p.errorf("invalid \\%c escape", ch)
		}
		p.pos += width
		sb.WriteRune(rune(n))
	default:
		// \\, \', \" and any other escaped character stand for themselves.
		r, size := utf8.DecodeRuneInString(p.s[p.pos-1:])
		p.pos += size - 1
		sb.WriteRune(r)
	}
	return nil
}

func (p *argParser) array() (any, error) {
	p.pos++
	out := []any{}
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == ']' {
		p.pos++
		return out, nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		p.skipSpace()
		if p.pos == len(p.s) {
			return nil, p.errorf("unterminated array")
		}
		switch p.s[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return out, nil
		default:
			return nil, p.errorf("expected ',' or ']'")
		}
	}
}

// placeholder reads a nested @key(args) token and keeps it as text.
func (p *argParser) placeholder() (any, error) {
	t, ok := scanPlaceholder(p.s, p.pos, p.pos)
	if !ok {
		return nil, p.errorf("empty placeholder")
	}
	// A key swallows everything up to a separator; trim list punctuation.
	end := t.End
	if !t.HasArgs {
		if i := strings.IndexAny(p.s[p.pos:end], ",]"); i >= 0 {
			end = p.pos + i
		}
	}
	text := p.s[p.pos:end]
	p.pos = end
	return text, nil
}

func (p *argParser) skipSpace() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *argParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %d: %s", errArgSyntax, p.pos, fmt.Sprintf(format, args...))
}
