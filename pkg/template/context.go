package template

import (
	"errors"
	"strings"

	"github.com/getmockd/mockdata/pkg/value"
)

var errDetached = errors.New("context is not part of a generation")

// Path is a stack of key segments from a root to the value being generated.
type Path struct {
	segs []string
}

// NewPath creates a path holding segs.
func NewPath(segs ...string) *Path {
	return &Path{segs: append([]string(nil), segs...)}
}

// Push appends a segment.
func (p *Path) Push(seg string) {
	p.segs = append(p.segs, seg)
}

// Pop removes and returns the last segment, or "" when empty.
func (p *Path) Pop() string {
	if len(p.segs) == 0 {
		return ""
	}
	seg := p.segs[len(p.segs)-1]
	p.segs = p.segs[:len(p.segs)-1]
	return seg
}

// Len returns the number of segments.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.segs)
}

// Segments returns a copy of the segments.
func (p *Path) Segments() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.segs...)
}

// Root returns the first segment, the id of the generation root.
func (p *Path) Root() string {
	if p.Len() == 0 {
		return ""
	}
	return p.segs[0]
}

func (p *Path) String() string {
	return strings.Join(p.Segments(), "/")
}

// Context is the position of a template node inside one generation.
//
// Path uses parsed keys and generated array indexes, TemplatePath the raw
// keys and template indexes. Both always have the same length.
type Context struct {
	Path         *Path
	TemplatePath *Path

	// Current is the generated container the node is being written into.
	Current any
	// TemplateCurrent is the template container the node came from.
	TemplateCurrent any
	Root            any
	TemplateRoot    any

	frames []frame
	call   *call
}

// frame is a container under construction, visible to path lookups
// before it has been attached to its parent.
type frame struct {
	depth    int
	value    any
	template any
}

// descend moves the context onto a child and returns a func that restores it.
func (c *Context) descend(seg, tseg string, current, templateCurrent any) func() {
	prevCur, prevTmpl := c.Current, c.TemplateCurrent
	c.Path.Push(seg)
	c.TemplatePath.Push(tseg)
	c.Current, c.TemplateCurrent = current, templateCurrent
	return func() {
		c.Path.Pop()
		c.TemplatePath.Pop()
		c.Current, c.TemplateCurrent = prevCur, prevTmpl
	}
}

// enter registers a container under construction at the current depth.
func (c *Context) enter(result, tmpl any) func() {
	if c.Root == nil {
		c.Root = result
	}
	c.frames = append(c.frames, frame{depth: c.Path.Len(), value: result, template: tmpl})
	return func() {
		c.frames = c.frames[:len(c.frames)-1]
	}
}

// frameAt returns the innermost container registered at depth.
func (c *Context) frameAt(depth int) (frame, bool) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if c.frames[i].depth == depth {
			return c.frames[i], true
		}
	}
	return frame{}, false
}

// Generate produces a value from tmpl at the context's position, sharing
// the running generation's references and memo. Function templates use it
// to expand placeholders.
func (c *Context) Generate(tmpl any) (any, error) {
	if c.call == nil {
		return nil, errDetached
	}
	return c.call.gen(tmpl, "", c)
}

// Options describes the node a handler or function template receives.
type Options struct {
	Kind     value.Kind
	Template any
	// Name is the raw key including its rule suffix.
	Name string
	// ParsedName is the key without the rule suffix.
	ParsedName string
	Rule       Rule
	Context    *Context
}

// Func is a function template. this is the generated container the
// function's key is being written into.
type Func func(this any, opts Options) (any, error)
