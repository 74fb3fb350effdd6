package template

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/getmockd/mockdata/pkg/value"
)

func TestGeneratorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property: sampling keeps between min and max keys, all from the template
	properties.Property("object min-max sampling", prop.ForAll(
		func(seed uint64, lo, span int) bool {
			hi := lo + span
			inner := value.NewObject()
			for i := range 6 {
				inner.Set("k"+strconv.Itoa(i), i)
			}
			key := fmt.Sprintf("obj|%d-%d", lo, hi)
			out, err := newTestEngine(seed).Generate(value.ObjectOf(key, inner))
			if err != nil {
				return false
			}
			v, _ := out.(*value.Object).Get("obj")
			got := v.(*value.Object)
			if got.Len() < min(lo, 6) || got.Len() > min(hi, 6) {
				return false
			}
			for _, k := range got.Keys() {
				if !inner.Has(k) {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.IntRange(0, 6),
		gen.IntRange(0, 4),
	))

	// Property: a stepped array visits elements at step intervals
	properties.Property("array step cycling", prop.ForAll(
		func(step, size, calls int) bool {
			items := make([]any, size)
			for i := range items {
				items[i] = i
			}
			tmpl := value.ObjectOf("v|+"+strconv.Itoa(step), items)
			e := newTestEngine(1)
			for i := range calls {
				out, err := e.Generate(tmpl)
				if err != nil {
					return false
				}
				v, _ := out.(*value.Object).Get("v")
				if v != (i*step)%size {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 5),
		gen.IntRange(1, 7),
		gen.IntRange(1, 12),
	))

	// Property: decimal rules yield exactly dcount fraction digits
	properties.Property("decimal fraction digits", prop.ForAll(
		func(seed uint64, whole, dcount int) bool {
			key := fmt.Sprintf("f|%d.%d", whole, dcount)
			out, err := newTestEngine(seed).Generate(value.ObjectOf(key, 0))
			if err != nil {
				return false
			}
			v, _ := out.(*value.Object).Get("f")
			f, ok := v.(float64)
			if !ok {
				return false
			}
			_, frac, _ := strings.Cut(strconv.FormatFloat(f, 'f', -1, 64), ".")
			return len(frac) == dcount && frac[len(frac)-1] != '0'
		},
		gen.UInt64(),
		gen.IntRange(0, 999),
		gen.IntRange(1, 10),
	))

	// Property: the context stacks are back at the root after any call
	properties.Property("path stacks restored", prop.ForAll(
		func(depth, maxDepth int) bool {
			var tmpl any = "@integer(1, 1)"
			for i := range depth {
				tmpl = value.ObjectOf("k"+strconv.Itoa(i), tmpl)
			}
			ctx := &Context{}
			_, err := newTestEngine(2, WithMaxDepth(maxDepth)).GenerateWith(tmpl, "", ctx)
			if (depth+1 > maxDepth) != (err != nil) {
				return false
			}
			return ctx.Path.Len() == 1 && ctx.TemplatePath.Len() == 1
		},
		gen.IntRange(0, 20),
		gen.IntRange(1, 20),
	))

	// Property: a placeholder spanning the whole string keeps its type
	properties.Property("whole-string placeholder is native", prop.ForAll(
		func(n int) bool {
			out, err := newTestEngine(3).Generate(fmt.Sprintf("@integer(%d,%d)", n, n))
			return err == nil && out == n
		},
		gen.IntRange(-1000, 1000),
	))

	properties.TestingRun(t)
}

func TestGeneratorFixedProperties(t *testing.T) {
	e := newTestEngine(4)

	out, err := e.Generate(value.ObjectOf("a", "@a"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if v, _ := out.(*value.Object).Get("a"); v != "@a" {
		t.Errorf("self reference = %v, want @a", v)
	}

	out, err = e.Generate(value.ObjectOf("x", value.ObjectOf("y", 1, "z", "@../x/y")))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	x, _ := out.(*value.Object).Get("x")
	if z, _ := x.(*value.Object).Get("z"); z != 1 {
		t.Errorf("relative path = %v, want 1", z)
	}

	out, err = e.Generate(`\@EMAIL`)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != "@EMAIL" {
		t.Errorf("escaped placeholder = %v, want @EMAIL", out)
	}

	out, err = e.Generate("@integer(1,1)")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != 1 {
		t.Errorf("@integer(1,1) = %#v, want int 1", out)
	}
}
