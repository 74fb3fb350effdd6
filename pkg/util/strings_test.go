package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		maxSize int
		want    string
	}{
		{"short", "abc", 10, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"long", "abcdef", 3, "abc...(truncated)"},
		{"multibyte boundary", "aé", 2, "a...(truncated)"},
		{"empty", "", 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxSize))
		})
	}
}

func TestTruncate_DefaultMaxSize(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", MaxLogValueSize+1)
	got := Truncate(long, 0)
	assert.Equal(t, strings.Repeat("x", MaxLogValueSize)+"...(truncated)", got)
	assert.Equal(t, "x", Truncate("x", -1))
}
