package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/getmockd/mockdata/pkg/value"
)

// Common errors for document loading.
var (
	ErrFileNotFound      = errors.New("template file not found")
	ErrEmptyFile         = errors.New("template file is empty")
	ErrUnsupportedFormat = errors.New("unsupported template format")
)

// Format is a template document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format implied by a file extension. Unknown
// extensions are JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// ParseFormat accepts "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Document is a loaded template.
type Document struct {
	Path     string
	Template any
}

// DocumentError reports a problem in a template document with its
// location when known.
type DocumentError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *DocumentError) Error() string {
	path := e.Path
	if path == "" {
		path = "<input>"
	}
	if e.Line > 0 {
		return path + " (line " + strconv.Itoa(e.Line) + ", column " + strconv.Itoa(e.Column) + "): " + e.Message
	}
	return path + ": " + e.Message
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Load reads one template document. The format follows the extension.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	tmpl, err := Parse(data, FormatOf(path))
	if err != nil {
		var de *DocumentError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return &Document{Path: path, Template: tmpl}, nil
}

// LoadAll loads every file the given paths and globs name, in order.
func LoadAll(patterns []string) ([]*Document, error) {
	paths, err := Expand(patterns)
	if err != nil {
		return nil, err
	}
	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		doc, err := Load(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Parse decodes a template document.
func Parse(data []byte, format Format) (any, error) {
	switch format {
	case FormatYAML:
		v, err := value.DecodeYAML(data, tagHook)
		if err != nil {
			return nil, yamlError(err)
		}
		return v, nil
	case FormatJSON, "":
		v, err := value.DecodeJSON(data)
		if err != nil {
			return nil, jsonError(data, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// tagHook builds pattern and function templates from tagged scalars.
func tagHook(tag string, n *yaml.Node) (any, bool, error) {
	switch tag {
	case "!regexp", "!regex":
		if n.Kind != yaml.ScalarNode {
			return nil, false, fmt.Errorf("%s must be a string", tag)
		}
		re, err := CompilePattern(n.Value)
		if err != nil {
			return nil, false, err
		}
		return re, true, nil
	case "!expr":
		if n.Kind != yaml.ScalarNode {
			return nil, false, errors.New("!expr must be a string")
		}
		fn, err := CompileExpr(n.Value)
		if err != nil {
			return nil, false, err
		}
		return fn, true, nil
	}
	return nil, false, nil
}

var slashPattern = regexp.MustCompile(`^/(.*)/([imsU]*)$`)

// CompilePattern compiles a pattern template. Besides plain RE2 syntax it
// accepts the /source/flags form with the i, m, s and U flags.
func CompilePattern(s string) (*regexp.Regexp, error) {
	if m := slashPattern.FindStringSubmatch(s); m != nil {
		s = m[1]
		if m[2] != "" {
			s = "(?" + m[2] + ")" + s
		}
	}
	re, err := regexp.Compile(s)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return re, nil
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func yamlError(err error) error {
	var ne *value.NodeError
	if errors.As(err, &ne) {
		return &DocumentError{Line: ne.Line, Column: ne.Column, Message: ne.Err.Error(), Err: err}
	}
	de := &DocumentError{Message: strings.TrimPrefix(err.Error(), "yaml: "), Err: err}
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		de.Line, _ = strconv.Atoi(m[1])
		de.Column = 1
	}
	return de
}

func jsonError(data []byte, err error) error {
	de := &DocumentError{Message: err.Error(), Err: err}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		de.Line, de.Column = FindLineColumn(data, se.Offset)
	}
	return de
}

// FindLineColumn finds the line and column number for a byte offset.
func FindLineColumn(data []byte, offset int64) (line, col int) {
	line = 1
	col = 1
	for i := int64(0); i < offset && int(i) < len(data); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
