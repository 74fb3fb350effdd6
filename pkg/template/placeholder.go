package template

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/getmockd/mockdata/pkg/value"
)

// Placeholder is one @key or @key(args) token found in a string.
type Placeholder struct {
	// Text is the token as written, including escaping backslashes.
	Text    string
	Key     string
	RawArgs string
	HasArgs bool
	// Escaped reports a backslash before '@'.
	Escaped bool
	// Start and End are byte offsets of Text in the scanned string.
	Start int
	End   int
}

// Tokenize returns the placeholders of s from left to right.
func Tokenize(s string) []Placeholder {
	var out []Placeholder
	last := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '@' {
			continue
		}
		start := i
		for start > last && s[start-1] == '\\' {
			start--
		}
		p, ok := scanPlaceholder(s, start, i)
		if !ok {
			continue
		}
		out = append(out, p)
		last = p.End
		i = p.End - 1
	}
	return out
}

// scanPlaceholder reads the token whose '@' is at at and whose escaping
// backslashes begin at start.
func scanPlaceholder(s string, start, at int) (Placeholder, bool) {
	end := at + 1
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if !isKeyRune(r) {
			break
		}
		end += size
	}
	if end == at+1 {
		return Placeholder{}, false
	}

	p := Placeholder{
		Key:     s[at+1 : end],
		Escaped: start < at,
		Start:   start,
		End:     end,
	}
	if end < len(s) && s[end] == '(' {
		if closing := matchParen(s, end); closing >= 0 {
			p.RawArgs, p.HasArgs, p.End = s[end+1:closing], true, closing+1
		} else if closing := strings.IndexByte(s[end+1:], ')'); closing >= 0 {
			closing += end + 1
			p.RawArgs, p.HasArgs, p.End = s[end+1:closing], true, closing+1
		}
	}
	p.Text = s[p.Start:p.End]
	return p, true
}

func isKeyRune(r rune) bool {
	switch r {
	case '@', '#', '%', '&', '(', ')', '?', utf8.RuneError:
		return false
	}
	return !unicode.IsSpace(r)
}

// matchParen returns the index of the ')' closing the '(' at open, or -1.
// Parentheses inside quoted strings do not count.
func matchParen(s string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(s); i++ {
		ch := s[i]
		if quote != 0 {
			switch ch {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch ch {
		case '\'', '"', '`':
			quote = ch
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// substitute replaces the placeholders of s. A string holding nothing but
// one placeholder yields the placeholder's value with its own type.
func (c *call) substitute(s string, o Options) (any, error) {
	tokens := Tokenize(s)
	if len(tokens) == 0 {
		return s, nil
	}
	if t := tokens[0]; len(tokens) == 1 && !t.Escaped && t.Start == 0 && t.End == len(s) {
		return c.resolve(t, o)
	}

	var sb strings.Builder
	resolved := make(map[string]string)
	last := 0
	for _, t := range tokens {
		sb.WriteString(s[last:t.Start])
		last = t.End
		if t.Escaped {
			sb.WriteString(strings.TrimLeft(t.Text, `\`))
			continue
		}
		text, ok := resolved[t.Text]
		if !ok {
			v, err := c.resolve(t, o)
			if err != nil {
				return nil, err
			}
			text = value.Stringify(v)
			resolved[t.Text] = text
		}
		sb.WriteString(text)
	}
	sb.WriteString(s[last:])
	return sb.String(), nil
}

// resolve returns the value of one placeholder. Lookups that find nothing
// leave the token text in place.
func (c *call) resolve(t Placeholder, o Options) (any, error) {
	ctx := o.Context
	key := t.Key

	if v, ok := value.Lookup(ctx.Current, key); ok {
		return v, nil
	}

	if strings.HasPrefix(key, "/") || len(splitPath(key)) > 1 {
		return c.resolvePath(key, t.Text, ctx)
	}

	if v, ok, err := c.fromTemplate(ctx.TemplateCurrent, ctx.Current, key, t.Text); ok || err != nil {
		return v, err
	}

	entry, ok := c.e.provider.Lookup(key)
	if !ok {
		c.e.logger.Debug("unresolved placeholder",
			"placeholder", t.Text, "path", ctx.Path.String())
		return t.Text, nil
	}

	args, err := c.args(t, o)
	if err != nil {
		return nil, err
	}
	switch {
	case entry.Func != nil:
		v := entry.Func(args...)
		if v == nil {
			return "", nil
		}
		return v, nil
	case entry.Pool != nil:
		return c.e.provider.Pick(entry.Pool), nil
	}
	return t.Text, nil
}

// args parses the argument list of t and resolves placeholders nested in
// string arguments.
func (c *call) args(t Placeholder, o Options) ([]any, error) {
	if !t.HasArgs {
		return nil, nil
	}
	args := ParseArgs(t.RawArgs)
	for i, a := range args {
		s, ok := a.(string)
		if !ok || !strings.Contains(s, "@") || len(Tokenize(s)) == 0 {
			continue
		}
		v, err := c.substitute(s, o)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// fromTemplate realizes key of a template container when the generated
// container does not hold it yet. ok is false when the key is absent,
// refers to itself, or is already being generated.
func (c *call) fromTemplate(tmpl, current any, key, text string) (any, bool, error) {
	raw, tv, ok := templateMember(tmpl, key)
	if !ok {
		return nil, false, nil
	}
	if s, isString := tv.(string); isString && (s == text || s == "@"+key) {
		return nil, false, nil
	}
	node := value.Identity(tmpl)
	if c.isRealizing(node, raw) {
		return nil, false, nil
	}
	v, err := c.realize(node, raw, tv, current, tmpl)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// templateMember finds key in a template container. Object keys match
// exactly first, then by their name without rule suffix.
func templateMember(tmpl any, key string) (raw string, v any, ok bool) {
	if v, ok := value.Lookup(tmpl, key); ok {
		return key, v, true
	}
	if value.KindOf(tmpl) != value.KindObject {
		return "", nil, false
	}
	o := value.AsObject(tmpl)
	for _, k := range o.Keys() {
		if k != key && KeyName(k) == key {
			v, _ := o.Get(k)
			return k, v, true
		}
	}
	return "", nil, false
}
