package random

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 9, 45_000_000, time.UTC)
	tests := []struct {
		format string
		want   string
	}{
		{"yyyy-MM-dd", "2024-03-05"},
		{"yy/M/d", "24/3/5"},
		{"HH:mm:ss", "14:07:09"},
		{"h:m:s a", "2:7:9 pm"},
		{"hh A", "02 PM"},
		{"SS", "045"},
		{"S", "45"},
		{"T", "1709647629045"},
		{"[x]", "[x]"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(ts, tt.format))
		})
	}
}

func TestDateGenerators(t *testing.T) {
	r := newSeeded(3)

	v, _ := r.Call("date")
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, v)
	v, _ = r.Call("time")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, v)
	v, _ = r.Call("datetime", "yyyy")
	assert.Regexp(t, `^(19[7-9]\d|20[0-2]\d)$`, v)

	for i := 0; i < 100; i++ {
		d := r.Date()
		require.False(t, d.After(fixedClock()))
		require.False(t, d.Before(time.Unix(0, 0)))
	}
}

func TestNow(t *testing.T) {
	r := newSeeded(3)
	tests := []struct {
		args []any
		want string
	}{
		{nil, "2024-03-15 10:30:45"},
		{[]any{"year"}, "2024-01-01 00:00:00"},
		{[]any{"month"}, "2024-03-01 00:00:00"},
		{[]any{"week"}, "2024-03-10 00:00:00"},
		{[]any{"day", "yyyy/MM/dd HH"}, "2024/03/15 00"},
		{[]any{"minute"}, "2024-03-15 10:30:00"},
		{[]any{"yyyy"}, "2024"},
	}
	for _, tt := range tests {
		v, _ := r.Call("now", tt.args...)
		assert.Equal(t, tt.want, v, "now%v", tt.args)
	}
}
