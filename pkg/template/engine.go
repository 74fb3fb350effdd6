package template

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/getmockd/mockdata/internal/id"
	"github.com/getmockd/mockdata/pkg/logging"
	"github.com/getmockd/mockdata/pkg/pattern"
	"github.com/getmockd/mockdata/pkg/random"
	"github.com/getmockd/mockdata/pkg/value"
)

// DefaultMaxDepth is the default recursion ceiling of a generation.
const DefaultMaxDepth = 256

// ErrMaxDepth is returned when a template nests deeper than the engine
// allows. Cyclic templates and cyclic forward references end here.
var ErrMaxDepth = errors.New("template nesting exceeds max depth")

// Provider supplies randomness and the named generators placeholders call.
// *random.Random implements it.
type Provider interface {
	Pick(items []any) any
	Shuffle(keys []string) []string
	Bool(min, max *int, cur bool) bool
	String(count int) string
	Character(pool string) string
	Integer(min, max int) int
	Lookup(name string) (random.Entry, bool)
}

// PatternSynthesizer produces a string matching a regular expression
// source. *pattern.Generator implements it.
type PatternSynthesizer interface {
	Synthesize(source string) (string, error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithProvider sets the random provider. The default is random.New().
func WithProvider(p Provider) Option {
	return func(e *Engine) {
		e.provider = p
	}
}

// WithPatterns sets the pattern synthesizer. The default draws from the
// engine's provider.
func WithPatterns(p PatternSynthesizer) Option {
	return func(e *Engine) {
		e.patterns = p
	}
}

// WithLogger sets the logger degraded resolutions are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMaxDepth sets the recursion ceiling.
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// WithState shares a StateStore between engines.
func WithState(s *StateStore) Option {
	return func(e *Engine) {
		if s != nil {
			e.state = s
		}
	}
}

// Engine generates values from templates.
//
// An Engine may be shared between goroutines as long as its Provider is
// safe for concurrent use, which random.Random is. Increment and cursor
// state is kept per template node, so generating the same template
// instance concurrently interleaves its sequences.
type Engine struct {
	provider Provider
	patterns PatternSynthesizer
	logger   *slog.Logger
	maxDepth int
	state    *StateStore
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:   logging.Nop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.provider == nil {
		e.provider = random.New()
	}
	if e.patterns == nil {
		e.patterns = pattern.New(e.provider)
	}
	if e.state == nil {
		e.state = NewStateStore()
	}
	return e
}

// Generate produces a value from tmpl.
func (e *Engine) Generate(tmpl any) (any, error) {
	return e.GenerateWith(tmpl, "", nil)
}

// GenerateWith produces a value from tmpl as if it were stored under name,
// so a rule suffix on name applies. A nil ctx starts a new generation;
// function templates pass their Options.Context to generate in place.
func (e *Engine) GenerateWith(tmpl any, name string, ctx *Context) (any, error) {
	c := newCall(e)
	if ctx == nil {
		return c.gen(tmpl, name, c.newContext(nil, tmpl))
	}

	if ctx.call != nil && ctx.call.e == e {
		c = ctx.call
	} else {
		ctx.call = c
	}
	if ctx.Path == nil {
		ctx.Path = NewPath(c.vids.NextString())
	}
	if ctx.TemplatePath == nil {
		ctx.TemplatePath = NewPath(c.tids.NextString())
	}
	if ctx.TemplateCurrent == nil {
		ctx.TemplateCurrent = tmpl
	}
	if ctx.TemplateRoot == nil {
		ctx.TemplateRoot = ctx.TemplateCurrent
	}
	if ctx.Root == nil {
		ctx.Root = ctx.Current
	}
	return c.gen(tmpl, name, ctx)
}

// Reset clears increment offsets and array cursors.
func (e *Engine) Reset() {
	e.state.Reset()
}

// call is the state of one top-level generation.
type call struct {
	e *Engine

	// vids and tids number the roots of value and template paths.
	vids id.Counter
	tids id.Counter

	// memo holds keys realized ahead of their turn by forward references.
	memo      map[any]map[string]any
	realizing map[slot]int
	depth     int
}

func newCall(e *Engine) *call {
	return &call{
		e:         e,
		memo:      make(map[any]map[string]any),
		realizing: make(map[slot]int),
	}
}

// newContext seeds a context rooted at the given containers.
func (c *call) newContext(current, templateCurrent any) *Context {
	return &Context{
		Path:            NewPath(c.vids.NextString()),
		TemplatePath:    NewPath(c.tids.NextString()),
		Current:         current,
		TemplateCurrent: templateCurrent,
		Root:            current,
		TemplateRoot:    templateCurrent,
		call:            c,
	}
}

func (c *call) gen(tmpl any, name string, ctx *Context) (any, error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.e.maxDepth {
		return nil, fmt.Errorf("%w (%d) at %s", ErrMaxDepth, c.e.maxDepth, ctx.TemplatePath)
	}

	parsed, rule := ParseRule(name, c.e.provider)
	o := Options{
		Kind:       value.KindOf(tmpl),
		Template:   tmpl,
		Name:       name,
		ParsedName: parsed,
		Rule:       rule,
		Context:    ctx,
	}

	var (
		out any
		err error
	)
	switch o.Kind {
	case value.KindArray:
		out, err = c.array(o)
	case value.KindObject:
		out, err = c.object(o)
	case value.KindNumber:
		out = c.number(o)
	case value.KindBoolean:
		out = c.boolean(o)
	case value.KindString:
		out, err = c.text(o)
	case value.KindFunction:
		out, err = c.function(o)
	case value.KindPattern:
		out = c.pattern(o)
	default:
		out = tmpl
	}
	if err != nil {
		return nil, err
	}
	if ctx.Root == nil {
		ctx.Root = out
	}
	return out, nil
}

// child generates tmpl one level below the context's position.
func (c *call) child(ctx *Context, tmpl any, name, seg, tseg string, current, templateCurrent any) (any, error) {
	defer ctx.descend(seg, tseg, current, templateCurrent)()
	return c.gen(tmpl, name, ctx)
}

func (c *call) memoized(node any, key string) (any, bool) {
	if node == nil {
		return nil, false
	}
	v, ok := c.memo[node][key]
	return v, ok
}

func (c *call) remember(node any, key string, v any) {
	if node == nil {
		return
	}
	m := c.memo[node]
	if m == nil {
		m = make(map[string]any)
		c.memo[node] = m
	}
	m[key] = v
}

// forget drops the memo of a container once its instance is complete, so
// a repeated container realizes its forward references afresh.
func (c *call) forget(node any) {
	if node != nil {
		delete(c.memo, node)
	}
}

// mark flags key of node as being generated and returns the unmark func.
func (c *call) mark(node any, key string) func() {
	if node == nil {
		return func() {}
	}
	s := slot{node, key}
	c.realizing[s]++
	return func() {
		if c.realizing[s]--; c.realizing[s] <= 0 {
			delete(c.realizing, s)
		}
	}
}

func (c *call) isRealizing(node any, key string) bool {
	return node != nil && c.realizing[slot{node, key}] > 0
}

// realize generates key of a template container before its turn, in a
// fresh context rooted at the given containers, and memoizes the result.
func (c *call) realize(node any, key string, tmpl, current, templateCurrent any) (any, error) {
	if v, ok := c.memoized(node, key); ok {
		return v, nil
	}
	defer c.mark(node, key)()

	tmpl = value.AddInt(tmpl, c.e.state.Offset(node, key))
	v, err := c.gen(tmpl, key, c.newContext(current, templateCurrent))
	if err != nil {
		return nil, err
	}
	c.remember(node, key, v)
	return v, nil
}
