package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []any
	}{
		{"empty", "", nil},
		{"blank", "  ", nil},
		{"ints", "60, 100, 3, 5", []any{60, 100, 3, 5}},
		{"signed", "-5, +5", []any{-5, 5}},
		{"floats", "1.5, .25, 2e3", []any{1.5, 0.25, 2000.0}},
		{"hex", "0x1F", []any{31}},
		{"strings", `"a,b", 'c\'d', ` + "`e`", []any{"a,b", "c'd", "e"}},
		{"escapes", `"\n\tA\x42\\"`, []any{"\n\tAB\\"}},
		{"literals", "true, false, null, undefined", []any{true, false, nil, nil}},
		{"array", `["a", 1, [true]], []`, []any{[]any{"a", 1, []any{true}}, []any{}}},
		{"nested placeholder", "@natural(10, 20), 100", []any{"@natural(10, 20)", 100}},
		{"bare placeholder", "@first, 2", []any{"@first", 2}},
		{"bare words fall back", "yyyy-MM-dd", []any{"yyyy-MM-dd"}},
		{"mixed fall back", "upper, 3", []any{"upper", "3"}},
		{"unterminated fall back", `"abc, 3`, []any{`"abc`, "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseArgs(tt.in))
		})
	}
}
