package value

import (
	"fmt"
	"reflect"
	"strconv"
)

// Lookup returns the member key of a container value. Objects are indexed
// by key, arrays by a decimal index.
func Lookup(container any, key string) (any, bool) {
	switch c := container.(type) {
	case *Object:
		return c.Get(key)
	case map[string]any:
		v, ok := c[key]
		return v, ok
	case []any:
		return index(c, key)
	case *[]any:
		if c == nil {
			return nil, false
		}
		return index(*c, key)
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Slice, reflect.Array:
		return index(Items(container), key)
	}
	return nil, false
}

func index(items []any, key string) (any, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= len(items) {
		return nil, false
	}
	return items[i], true
}

// Plain converts v into plain Go data: every *Object becomes a
// map[string]any, recursively. The result suits libraries that walk
// generic JSON-like values.
func Plain(v any) any {
	switch t := v.(type) {
	case *Object:
		m := make(map[string]any, t.Len())
		t.Range(func(k string, v any) bool {
			m[k] = Plain(v)
			return true
		})
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, v := range t {
			m[k] = Plain(v)
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i, v := range t {
			out[i] = Plain(v)
		}
		return out
	case *[]any:
		if t == nil {
			return nil
		}
		return Plain(*t)
	}
	return v
}

// Stringify renders v for textual substitution. Strings are returned as
// is, numbers in JSON form, containers as compact JSON and nil as "null".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case []byte:
		return string(t)
	}
	if IsNumber(v) {
		return FormatNumber(v)
	}
	switch KindOf(v) {
	case KindArray, KindObject:
		b, err := marshalNoEscape(v)
		if err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(v)
}
