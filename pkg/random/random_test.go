package random

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_CaseInsensitive(t *testing.T) {
	r := New()
	for _, name := range []string{"email", "EMAIL", "Email", "eMaIl"} {
		e, ok := r.Lookup(name)
		require.True(t, ok, name)
		assert.NotNil(t, e.Func)
	}
	_, ok := r.Lookup("nope")
	assert.False(t, ok)
}

func TestRegister(t *testing.T) {
	r := New(WithSeed(1))
	r.Register("Sku", func(args ...any) any { return "SKU-" + strconv.Itoa(intArgOr(args, 0, 0)) })
	r.RegisterPool("tier", []any{"free", "pro"})

	v, ok := r.Call("sku", 7)
	require.True(t, ok)
	assert.Equal(t, "SKU-7", v)

	v, ok = r.Call("TIER")
	require.True(t, ok)
	assert.Contains(t, []any{"free", "pro"}, v)

	assert.Contains(t, r.Names(), "Sku")
	assert.Contains(t, r.Names(), "tier")
}

func TestIntegerBounds(t *testing.T) {
	r := New(WithSeed(3))
	for i := 0; i < 500; i++ {
		n := r.Integer(-3, 3)
		require.GreaterOrEqual(t, n, -3)
		require.LessOrEqual(t, n, 3)
	}
	assert.Equal(t, 5, r.Integer(5, 5))

	swapped := r.Integer(10, 1)
	assert.GreaterOrEqual(t, swapped, 1)
	assert.LessOrEqual(t, swapped, 10)
}

func TestBool(t *testing.T) {
	r := New(WithSeed(5))
	zero, one := 0, 1

	t.Run("min zero flips always", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			assert.False(t, r.Bool(&zero, &one, true))
		}
	})
	t.Run("max zero keeps always", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			assert.True(t, r.Bool(&one, &zero, true))
		}
	})
	t.Run("unset bounds split both ways", func(t *testing.T) {
		seen := map[bool]bool{}
		for i := 0; i < 100; i++ {
			seen[r.Bool(nil, nil, false)] = true
		}
		assert.Len(t, seen, 2)
	})
}

func TestCharacterPools(t *testing.T) {
	r := New(WithSeed(8))
	tests := map[string]string{
		"lower":  poolLower,
		"UPPER":  poolUpper,
		"number": poolNumber,
		"symbol": poolSymbol,
		"xyz":    "xyz",
		"":       poolAll,
	}
	for pool, chars := range tests {
		for i := 0; i < 20; i++ {
			c := r.Character(pool)
			assert.Len(t, []rune(c), 1)
			assert.Contains(t, chars, c, "pool %q", pool)
		}
	}
	assert.Equal(t, "中", r.Character("中"))
}

func TestStringGenerator(t *testing.T) {
	r := New(WithSeed(11))

	assert.Len(t, r.String(9), 9)
	assert.Empty(t, r.String(0))

	tests := []struct {
		name     string
		args     []any
		min, max int
		pool     string
	}{
		{"default", nil, 3, 7, poolAll},
		{"exact", []any{5}, 5, 5, poolAll},
		{"range", []any{2, 4}, 2, 4, poolAll},
		{"pool exact", []any{"lower", 6}, 6, 6, poolLower},
		{"pool range", []any{"number", 1, 3}, 1, 3, poolNumber},
		{"numeric strings", []any{"4"}, 4, 4, poolAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := r.Call("string", tt.args...)
			s := v.(string)
			assert.GreaterOrEqual(t, len(s), tt.min)
			assert.LessOrEqual(t, len(s), tt.max)
			for _, c := range s {
				assert.Contains(t, tt.pool, string(c))
			}
		})
	}
}

func TestFloatGenerator(t *testing.T) {
	r := New(WithSeed(13))
	for i := 0; i < 200; i++ {
		v, _ := r.Call("float", 1, 10, 2, 4)
		f := v.(float64)
		require.GreaterOrEqual(t, f, 1.0)
		require.Less(t, f, 11.0)

		s := strconv.FormatFloat(f, 'f', -1, 64)
		dot := strings.IndexByte(s, '.')
		require.NotEqual(t, -1, dot, s)
		frac := s[dot+1:]
		assert.GreaterOrEqual(t, len(frac), 2, s)
		assert.LessOrEqual(t, len(frac), 4, s)
		assert.NotEqual(t, byte('0'), frac[len(frac)-1], s)
	}
}

func TestRange(t *testing.T) {
	r := New()
	tests := []struct {
		args []any
		want []any
	}{
		{[]any{3}, []any{0, 1, 2}},
		{[]any{2, 5}, []any{2, 3, 4}},
		{[]any{0, 10, 4}, []any{0, 4, 8}},
		{[]any{5, 0, -2}, []any{5, 3, 1}},
		{[]any{0}, []any{}},
	}
	for _, tt := range tests {
		v, _ := r.Call("range", tt.args...)
		assert.Equal(t, tt.want, v, "range%v", tt.args)
	}
}

func TestTextGenerators(t *testing.T) {
	r := New(WithSeed(17))

	w, _ := r.Call("word", 6)
	assert.Regexp(t, `^[a-z]{6}$`, w)

	s, _ := r.Call("sentence", 4)
	assert.Regexp(t, `^[A-Z][a-z]* [a-z]+ [a-z]+ [a-z]+\.$`, s)

	title, _ := r.Call("title", 3)
	assert.Len(t, strings.Fields(title.(string)), 3)

	titled, _ := r.Call("title", "hello big world")
	assert.Equal(t, "Hello Big World", titled)

	cw, _ := r.Call("cword", 3)
	assert.Len(t, []rune(cw.(string)), 3)

	cs, _ := r.Call("csentence", 5)
	assert.Len(t, []rune(cs.(string)), 6)
	assert.True(t, strings.HasSuffix(cs.(string), "。"))
}

func TestHelpers(t *testing.T) {
	r := New(WithSeed(19))

	v, _ := r.Call("capitalize", "hello")
	assert.Equal(t, "Hello", v)
	v, _ = r.Call("upper", "MixEd")
	assert.Equal(t, "MIXED", v)
	v, _ = r.Call("lower", "MixEd")
	assert.Equal(t, "mixed", v)

	list := []any{"a", "b", "c", "d"}
	v, _ = r.Call("pick", list)
	assert.Contains(t, list, v)

	v, _ = r.Call("pick", "x", "y")
	assert.Contains(t, []any{"x", "y"}, v)

	v, _ = r.Call("pick", list, 2, 3)
	sample := v.([]any)
	assert.GreaterOrEqual(t, len(sample), 2)
	assert.LessOrEqual(t, len(sample), 3)
	assert.Subset(t, list, sample)

	v, _ = r.Call("shuffle", list)
	assert.ElementsMatch(t, list, v)
	assert.Equal(t, []any{"a", "b", "c", "d"}, list, "input must not be mutated")
}

func TestWebGenerators(t *testing.T) {
	r := New(WithSeed(23))

	checks := []struct {
		name    string
		args    []any
		pattern string
	}{
		{"email", nil, `^[a-z]\.[a-z]+@[a-z]+\.[a-z]+$`},
		{"email", []any{"example.com"}, `^[a-z]\.[a-z]+@example\.com$`},
		{"url", []any{"https", "example.com"}, `^https://example\.com/[a-z]+$`},
		{"domain", []any{"io"}, `^[a-z]+\.io$`},
		{"ip", nil, `^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`},
		{"ipv6", nil, `^([0-9a-f]{4}:){7}[0-9a-f]{4}$`},
		{"mac", nil, `^([0-9A-F]{2}:){5}[0-9A-F]{2}$`},
		{"image", []any{"200x100", "#ff0000", "#fff", "png", "hi"}, `^http://dummyimage\.com/200x100/ff0000/fff\.png&text=hi$`},
		{"hex", nil, `^#[0-9a-f]{6}$`},
		{"rgb", nil, `^rgb\(\d+, \d+, \d+\)$`},
		{"rgba", nil, `^rgba\(\d+, \d+, \d+, [01]\.\d{2}\)$`},
		{"hsl", nil, `^hsl\(\d+, \d+, \d+\)$`},
		{"zip", nil, `^\d{6}$`},
		{"phone", nil, `^\+1-\d{3}-\d{3}-\d{4}$`},
		{"ssn", nil, `^\d{3}-\d{2}-\d{4}$`},
		{"passport", nil, `^[A-Z]{2}\d{7}$`},
		{"price", nil, `^\d+\.\d{2}$`},
		{"iban", nil, `^[A-Z]{2}\d{2}[A-Z]{4}\d+$`},
		{"guid", nil, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`},
		{"id", nil, `^\d{17}[\dX]$`},
		{"shortid", nil, `^[0-9a-f]{16}$`},
	}
	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := r.Call(tt.name, tt.args...)
			require.True(t, ok)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), v)
		})
	}

	v, _ := r.Call("color", "navy")
	assert.Equal(t, "#001f3f", v)
}

func TestCreditCardLuhn(t *testing.T) {
	r := New(WithSeed(29))
	for i := 0; i < 50; i++ {
		v, _ := r.Call("creditcard")
		num := v.(string)
		require.Len(t, num, 16)
		assert.True(t, luhnValid(num), num)
	}
}

func luhnValid(num string) bool {
	sum := 0
	double := false
	for i := len(num) - 1; i >= 0; i-- {
		d := int(num[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func TestIncrementAndDice(t *testing.T) {
	r := New()
	a, _ := r.Call("increment")
	b, _ := r.Call("increment")
	c, _ := r.Call("increment", 10)
	assert.Equal(t, []any{1, 2, 12}, []any{a, b, c})

	for i := 0; i < 100; i++ {
		v, _ := r.Call("d6")
		n := v.(int)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 6)
	}
}

func TestAddress(t *testing.T) {
	r := New(WithSeed(31))
	region, _ := r.Call("region")
	assert.Contains(t, toAny(regions), region)

	city, _ := r.Call("city", true)
	assert.Len(t, strings.Fields(city.(string)), 2)

	county, _ := r.Call("county", true)
	assert.Len(t, strings.Fields(county.(string)), 3)
}
