package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Placeholder
	}{
		{"none", "plain text", nil},
		{"bare", "@EMAIL", []Placeholder{{Text: "@EMAIL", Key: "EMAIL", End: 6}}},
		{
			"args",
			"n=@integer(1, 5)!",
			[]Placeholder{{Text: "@integer(1, 5)", Key: "integer", RawArgs: "1, 5", HasArgs: true, Start: 2, End: 16}},
		},
		{
			"nested args",
			"@float(@natural(1, 2), 3)",
			[]Placeholder{{Text: "@float(@natural(1, 2), 3)", Key: "float", RawArgs: "@natural(1, 2), 3", HasArgs: true, End: 25}},
		},
		{
			"quoted paren",
			`@pick(["(", ")"])`,
			[]Placeholder{{Text: `@pick(["(", ")"])`, Key: "pick", RawArgs: `["(", ")"]`, HasArgs: true, End: 17}},
		},
		{
			"unbalanced falls back to first paren",
			"@a(b(c)",
			[]Placeholder{{Text: "@a(b(c)", Key: "a", RawArgs: "b(c", HasArgs: true, End: 7}},
		},
		{
			"unclosed has no args",
			"@a(b",
			[]Placeholder{{Text: "@a", Key: "a", End: 2}},
		},
		{
			"escaped",
			`x \@EMAIL`,
			[]Placeholder{{Text: `\@EMAIL`, Key: "EMAIL", Escaped: true, Start: 2, End: 9}},
		},
		{
			"paths",
			"@/a/b and @../c",
			[]Placeholder{
				{Text: "@/a/b", Key: "/a/b", End: 5},
				{Text: "@../c", Key: "../c", Start: 10, End: 15},
			},
		},
		{
			"adjacent",
			"@first@last",
			[]Placeholder{
				{Text: "@first", Key: "first", End: 6},
				{Text: "@last", Key: "last", Start: 6, End: 11},
			},
		},
		{"lonely at", "a @ b", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestSubstitute(t *testing.T) {
	e := newTestEngine(1)

	tests := []struct {
		name string
		tmpl any
		want any
	}{
		{"native int", "@integer(7, 7)", 7},
		{"native bool", "@boolean(1, 0, true)", true},
		{"embedded", "n=@integer(7, 7)", "n=7"},
		{"escaped", `\@EMAIL`, "@EMAIL"},
		{"double escaped", `\\@EMAIL`, "@EMAIL"},
		{"unknown kept", "hi @nobody", "hi @nobody"},
		{"unknown whole", "@nobody", "@nobody"},
		{"nil result is empty", "@pick", ""},
		{"nested args", "@integer(@integer(3, 3), 3)", 3},
		{"case insensitive", "@INTEGER(2, 2)", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Generate(tt.tmpl)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubstitute_DuplicateTokensResolveOnce(t *testing.T) {
	e := newTestEngine(3)

	got, err := e.Generate("@guid @guid")
	require.NoError(t, err)
	s := got.(string)
	require.Len(t, s, 73)
	assert.Equal(t, s[:36], s[37:])
}
