package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mockdata/pkg/value"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite(t *testing.T) {
	doc := value.ObjectOf("b", 1, "a", "x&y")

	tests := []struct {
		name   string
		format Format
		indent int
		want   string
	}{
		{"compact json", FormatJSON, 0, "{\"b\":1,\"a\":\"x&y\"}\n"},
		{"indented json", FormatJSON, 2, "{\n  \"b\": 1,\n  \"a\": \"x&y\"\n}\n"},
		{"yaml", FormatYAML, 0, "b: 1\na: x&y\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, doc, tt.format, tt.indent))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTableAndWarn(t *testing.T) {
	var buf bytes.Buffer
	tw := Table(&buf)
	_, _ = tw.Write([]byte("a\tbb\n" + "ccc\td\n"))
	require.NoError(t, tw.Flush())
	assert.Equal(t, "a    bb\nccc  d\n", buf.String())

	buf.Reset()
	Warn(&buf, "%d skipped", 2)
	assert.Equal(t, "Warning: 2 skipped\n", buf.String())
}
