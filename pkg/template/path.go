package template

import (
	"slices"
	"strconv"
	"strings"

	"github.com/getmockd/mockdata/pkg/value"
)

// splitPath splits a placeholder key on '/' and drops empty segments.
func splitPath(key string) []string {
	parts := strings.Split(key, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalizePath applies ".." and "." segments.
func normalizePath(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		switch p {
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case ".":
		default:
			out = append(out, p)
		}
	}
	return out
}

// absolutePath turns a placeholder path into segments starting at the
// generation root. Relative paths start from the container of the value
// being generated.
func absolutePath(key string, ctx *Context) []string {
	parts := splitPath(key)
	if strings.HasPrefix(key, "/") {
		return append([]string{ctx.Path.Root()}, normalizePath(parts)...)
	}
	base := ctx.Path.Segments()
	if len(base) > 0 {
		base = base[:len(base)-1]
	}
	return normalizePath(append(base, parts...))
}

// resolvePath resolves an @/absolute or @relative/path placeholder. Paths
// that lead nowhere yield "@" followed by their segments joined with '/'.
// A relative path popping past the root looks its key up on the root.
func (c *call) resolvePath(key, text string, ctx *Context) (any, error) {
	parts := splitPath(key)
	unresolved := "@" + strings.Join(parts, "/")
	if len(parts) == 0 {
		c.e.logger.Debug("unresolved path", "placeholder", text, "path", ctx.Path.String())
		return unresolved, nil
	}
	abs := absolutePath(key, ctx)

	cur, tmpl := ctx.Root, ctx.TemplateRoot
	here := ctx.Path.Segments()
	for i := 1; i < len(abs)-1; i++ {
		depth := i + 1
		if f, ok := ctx.frameAt(depth); ok && len(here) >= depth && slices.Equal(here[:depth], abs[:depth]) {
			cur, tmpl = f.value, f.template
			continue
		}
		cur, _ = value.Lookup(cur, abs[i])
		tmpl = templateChild(tmpl, abs[i])
	}

	last := parts[len(parts)-1]
	if v, ok := value.Lookup(cur, last); ok {
		return v, nil
	}
	if v, ok, err := c.fromTemplate(tmpl, cur, last, text); ok || err != nil {
		return v, err
	}
	c.e.logger.Debug("unresolved path", "placeholder", text, "path", ctx.Path.String())
	return unresolved, nil
}

// templateChild steps into a template container. Arrays are indexed modulo
// their length since generated arrays may repeat their template.
func templateChild(tmpl any, seg string) any {
	switch value.KindOf(tmpl) {
	case value.KindArray:
		items := value.Items(tmpl)
		n, err := strconv.Atoi(seg)
		if err != nil || len(items) == 0 {
			return nil
		}
		return items[((n%len(items))+len(items))%len(items)]
	case value.KindObject:
		if _, v, ok := templateMember(tmpl, seg); ok {
			return v
		}
	}
	return nil
}
