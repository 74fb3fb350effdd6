// Package output writes generated documents and command results.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

// Output formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want json or yaml)", s)
}

// Write encodes v to w. An indent of 0 gives compact JSON; YAML always
// uses at least two spaces.
func Write(w io.Writer, v any, format Format, indent int) error {
	if format == FormatYAML {
		return YAML(w, v, indent)
	}
	return JSON(w, v, indent)
}

// JSON writes v as JSON followed by a newline. HTML characters are not
// escaped, so generated URLs and markup stay readable.
func JSON(w io.Writer, v any, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v any, indent int) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if indent < 2 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := enc.Encode(v); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Table creates an aligned table writer.
// Remember to call Flush() when done writing.
func Table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Warn prints a warning message.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "Warning: "+format+"\n", args...)
}
