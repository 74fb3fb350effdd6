// Package query extracts values from generated documents with JSONPath.
package query

import (
	"fmt"
	"strings"

	"github.com/ohler55/ojg/jp"

	"github.com/getmockd/mockdata/pkg/value"
)

// Selector is a compiled JSONPath expression.
type Selector struct {
	path string
	expr jp.Expr
}

// Compile parses a JSONPath expression. A path without the leading "$"
// is taken relative to the root, so "users[0].name" and "$.users[0].name"
// are the same selector.
func Compile(path string) (*Selector, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("empty JSONPath expression")
	}
	src := path
	if !strings.HasPrefix(src, "$") && !strings.HasPrefix(src, "@") {
		if strings.HasPrefix(src, "[") {
			src = "$" + src
		} else {
			src = "$." + src
		}
	}
	expr, err := jp.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", path, err)
	}
	return &Selector{path: path, expr: expr}, nil
}

// String returns the expression as given to Compile.
func (s *Selector) String() string {
	return s.path
}

// Get returns every value the expression matches in doc, in document order.
// Ordered objects are converted to plain maps first.
func (s *Selector) Get(doc any) []any {
	return s.expr.Get(value.Plain(doc))
}

// First returns the first match.
func (s *Selector) First(doc any) (any, bool) {
	results := s.Get(doc)
	if len(results) == 0 {
		return nil, false
	}
	return results[0], true
}

// Select applies the expression to each document and returns a single
// match as is and several matches as a list. Documents with no match are
// skipped.
func (s *Selector) Select(docs []any) []any {
	out := make([]any, 0, len(docs))
	for _, doc := range docs {
		results := s.Get(doc)
		switch len(results) {
		case 0:
		case 1:
			out = append(out, results[0])
		default:
			out = append(out, results)
		}
	}
	return out
}
