package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/getmockd/mockdata/pkg/value"
)

func (c *call) array(o Options) (any, error) {
	items := value.Items(o.Template)
	if len(items) == 0 {
		return []any{}, nil
	}
	r := o.Rule

	switch {
	case r.IsZero():
		return c.elements(o, items, 1)
	case r.Min != nil && *r.Min == 1 && r.Max == nil:
		all, err := c.whole(o)
		if err != nil {
			return nil, err
		}
		return c.e.provider.Pick(all), nil
	case r.Step != nil:
		all, err := c.whole(o)
		if err != nil || len(all) == 0 {
			return all, err
		}
		i := c.e.state.Cursor(value.Identity(o.Template), len(all), *r.Step)
		return all[i], nil
	}
	return c.elements(o, items, max(intValue(r.Count), 0))
}

// elements generates the element list times times. Value indexes keep
// counting across repetitions, template indexes restart.
func (c *call) elements(o Options, items []any, times int) ([]any, error) {
	ctx := o.Context
	node := value.Identity(o.Template)
	result := make([]any, 0, len(items)*times)
	defer ctx.enter(&result, o.Template)()
	defer c.forget(node)

	for range times {
		for j, item := range items {
			tseg := strconv.Itoa(j)
			if v, ok := c.memoized(node, tseg); ok {
				result = append(result, v)
				continue
			}
			seg := strconv.Itoa(len(result))
			unmark := c.mark(node, tseg)
			v, err := c.child(ctx, item, seg, seg, tseg, &result, o.Template)
			unmark()
			if err != nil {
				return nil, err
			}
			result = append(result, v)
		}
	}
	return result, nil
}

// whole generates every element of an array rule that selects one of them.
func (c *call) whole(o Options) ([]any, error) {
	v, err := c.child(o.Context, o.Template, "", o.ParsedName, o.Name, nil, o.Template)
	if err != nil {
		return nil, err
	}
	all, _ := v.([]any)
	return all, nil
}

func (c *call) object(o Options) (any, error) {
	ctx := o.Context
	tmpl := value.AsObject(o.Template)
	node := value.Identity(o.Template)
	result := value.NewObject()
	defer ctx.enter(result, o.Template)()
	defer c.forget(node)

	keys := tmpl.Keys()
	sampling := o.Rule.Min != nil
	if sampling {
		keys = c.e.provider.Shuffle(keys)
		keys = keys[:min(max(intValue(o.Rule.Count), 0), len(keys))]
	} else {
		keys = functionsLast(tmpl, keys)
	}

	for _, key := range keys {
		raw, _ := tmpl.Get(key)
		parsed := KeyName(key)

		v, ok := c.memoized(node, key)
		if !ok {
			var err error
			raw = value.AddInt(raw, c.e.state.Offset(node, key))
			unmark := c.mark(node, key)
			v, err = c.child(ctx, raw, key, parsed, key, result, o.Template)
			unmark()
			if err != nil {
				return nil, err
			}
		}
		result.Set(parsed, v)

		if !sampling && value.IsNumber(raw) {
			if step := keyStep(key); step != 0 {
				c.e.state.Advance(node, key, step)
			}
		}
	}
	return result, nil
}

// functionsLast moves function-valued keys behind the others, keeping
// declaration order within both groups.
func functionsLast(tmpl *value.Object, keys []string) []string {
	out := make([]string, 0, len(keys))
	var fns []string
	for _, k := range keys {
		v, _ := tmpl.Get(k)
		if value.KindOf(v) == value.KindFunction {
			fns = append(fns, k)
			continue
		}
		out = append(out, k)
	}
	return append(out, fns...)
}

func (c *call) number(o Options) any {
	r := o.Rule
	if r.Decimal != nil {
		return c.decimal(o)
	}
	if r.Range != nil && r.Step == nil {
		return intValue(r.Count)
	}
	return o.Template
}

// decimal builds a float from the template's integer part, or the drawn
// count, and DCount fraction digits. The last fraction digit is never 0.
func (c *call) decimal(o Options) any {
	r := o.Rule
	whole, frac, _ := strings.Cut(value.FormatNumber(o.Template), ".")
	if r.Range != nil {
		whole = strconv.Itoa(intValue(r.Count))
	}

	dcount := max(intValue(r.DCount), 0)
	if len(frac) > dcount {
		frac = frac[:dcount]
	}
	var sb strings.Builder
	sb.WriteString(frac)
	for sb.Len() < dcount {
		if sb.Len() < dcount-1 {
			sb.WriteString(c.e.provider.Character("number"))
		} else {
			sb.WriteString(c.e.provider.Character("123456789"))
		}
	}
	frac = sb.String()
	if strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1] + c.e.provider.Character("123456789")
	}

	s := whole
	if frac != "" {
		s += "." + frac
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.e.logger.Debug("decimal rule produced no number",
			"path", o.Context.TemplatePath.String(), "text", s, "error", err)
		return o.Template
	}
	return f
}

func (c *call) boolean(o Options) any {
	cur, _ := o.Template.(bool)
	if o.Rule.IsZero() {
		return cur
	}
	return c.e.provider.Bool(o.Rule.Min, o.Rule.Max, cur)
}

func (c *call) text(o Options) (any, error) {
	s, _ := o.Template.(string)
	r := o.Rule
	if s == "" {
		if r.Range != nil {
			return c.e.provider.String(max(intValue(r.Count), 0)), nil
		}
		return "", nil
	}
	if r.Count != nil {
		s = strings.Repeat(s, max(*r.Count, 0))
	}
	return c.substitute(s, o)
}

func (c *call) function(o Options) (any, error) {
	this := o.Context.Current
	var (
		out any
		err error
	)
	switch fn := o.Template.(type) {
	case Func:
		out, err = fn(this, o)
	case func(any, Options) (any, error):
		out, err = fn(this, o)
	case func(any, Options) any:
		out = fn(this, o)
	case func() (any, error):
		out, err = fn()
	case func() any:
		out = fn()
	default:
		c.e.logger.Debug("unsupported function template",
			"path", o.Context.TemplatePath.String(), "type", fmt.Sprintf("%T", o.Template))
		return o.Template, nil
	}
	if err != nil {
		return nil, fmt.Errorf("function template at %s: %w", o.Context.TemplatePath, err)
	}
	return out, nil
}

func (c *call) pattern(o Options) any {
	re, _ := o.Template.(*regexp.Regexp)
	if re == nil {
		return o.Template
	}
	times := 1
	if o.Rule.Count != nil {
		times = max(*o.Rule.Count, 0)
	}
	source := strings.Repeat(re.String(), times)
	s, err := c.e.patterns.Synthesize(source)
	if err != nil {
		c.e.logger.Debug("pattern synthesis failed",
			"path", o.Context.TemplatePath.String(), "pattern", source, "error", err)
		return source
	}
	return s
}
