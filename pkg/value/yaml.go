package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// TagHook converts a node carrying an application tag (such as !regexp).
// It returns handled=false to let the node decode normally.
type TagHook func(tag string, n *yaml.Node) (v any, handled bool, err error)

// DecodeYAML decodes a YAML document into template values. Mappings
// become *Object with their document key order.
func DecodeYAML(data []byte, hook TagHook) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	return FromNode(&doc, hook)
}

// FromNode converts a parsed YAML node tree into template values.
func FromNode(n *yaml.Node, hook TagHook) (any, error) {
	if n == nil {
		return nil, nil
	}
	if hook != nil && isLocalTag(n.Tag) {
		v, handled, err := hook(n.Tag, n)
		if err != nil {
			return nil, &NodeError{Line: n.Line, Column: n.Column, Err: err}
		}
		if handled {
			return v, nil
		}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return FromNode(n.Content[0], hook)
	case yaml.AliasNode:
		return FromNode(n.Alias, hook)
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := FromNode(c, hook)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.MappingNode:
		return mappingFromNode(n, hook)
	case yaml.ScalarNode:
		if isLocalTag(n.Tag) {
			return n.Value, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, &NodeError{Line: n.Line, Column: n.Column, Err: err}
		}
		return v, nil
	}
	return nil, &NodeError{Line: n.Line, Column: n.Column, Err: fmt.Errorf("unsupported node kind %d", n.Kind)}
}

func mappingFromNode(n *yaml.Node, hook TagHook) (*Object, error) {
	o := NewObject()
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		if kn.Kind == yaml.ScalarNode && kn.ShortTag() == "!!merge" {
			if err := mergeNode(o, vn, hook); err != nil {
				return nil, err
			}
			continue
		}
		if kn.Kind != yaml.ScalarNode {
			return nil, &NodeError{Line: kn.Line, Column: kn.Column, Err: errors.New("mapping keys must be scalars")}
		}
		v, err := FromNode(vn, hook)
		if err != nil {
			return nil, err
		}
		o.Set(kn.Value, v)
	}
	return o, nil
}

// mergeNode applies a YAML merge key (<<) without overriding keys that
// the mapping declares itself.
func mergeNode(dst *Object, n *yaml.Node, hook TagHook) error {
	if n.Kind == yaml.SequenceNode {
		for _, c := range n.Content {
			if err := mergeNode(dst, c, hook); err != nil {
				return err
			}
		}
		return nil
	}
	v, err := FromNode(n, hook)
	if err != nil {
		return err
	}
	src, ok := v.(*Object)
	if !ok {
		return &NodeError{Line: n.Line, Column: n.Column, Err: errors.New("merge value must be a mapping")}
	}
	src.Range(func(k string, v any) bool {
		if !dst.Has(k) {
			dst.Set(k, v)
		}
		return true
	})
	return nil
}

func isLocalTag(tag string) bool {
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}

// NodeError reports a decoding problem at a document position.
type NodeError struct {
	Line   int
	Column int
	Err    error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// DecodeJSON decodes a JSON document into template values, keeping object
// key order. Integral numbers decode as int, others as float64.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			o := NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T at offset %d", kt, dec.InputOffset())
				}
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				o.Set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return o, nil
		case '[':
			items := []any{}
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return items, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q at offset %d", t, dec.InputOffset())
	case json.Number:
		return jsonNumber(t)
	}
	return tok, nil
}

func jsonNumber(n json.Number) (any, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
	}
	return n.Float64()
}
