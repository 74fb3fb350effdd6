package value

import (
	"reflect"
	"regexp"
	"sort"
)

// Kind classifies a template value.
type Kind int

const (
	KindOther Kind = iota
	KindArray
	KindObject
	KindNumber
	KindBoolean
	KindString
	KindFunction
	KindPattern
)

var kindNames = [...]string{
	KindOther:    "other",
	KindArray:    "array",
	KindObject:   "object",
	KindNumber:   "number",
	KindBoolean:  "boolean",
	KindString:   "string",
	KindFunction: "function",
	KindPattern:  "pattern",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "other"
	}
	return kindNames[k]
}

// KindOf returns the kind of v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindOther
	case []any:
		return KindArray
	case *Object, map[string]any:
		return KindObject
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return KindNumber
	case bool:
		return KindBoolean
	case string:
		return KindString
	case *regexp.Regexp:
		return KindPattern
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Func:
		return KindFunction
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if reflect.TypeOf(v).Key().Kind() == reflect.String {
			return KindObject
		}
	}
	return KindOther
}

// Items returns the elements of an array value as []any.
// Typed slices are copied element by element.
func Items(v any) []any {
	if items, ok := v.([]any); ok {
		return items
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// AsObject returns an object value as *Object. Plain maps are converted
// with their keys in sorted order; nil is returned for non-objects.
func AsObject(v any) *Object {
	if o, ok := v.(*Object); ok {
		return o
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	o := NewObject()
	for _, k := range keys {
		o.Set(k, rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
	}
	return o
}

// Keys returns the keys of an object value in generation order.
func Keys(v any) []string {
	return AsObject(v).Keys()
}

// Identity returns a comparable handle that is stable for the lifetime of
// a container value: the *Object itself, the address of a slice's first
// element, or a map's data pointer. It returns nil for values without one
// (scalars and empty slices).
func Identity(v any) any {
	switch t := v.(type) {
	case *Object:
		return t
	case []any:
		if len(t) == 0 {
			return nil
		}
		return &t[0]
	case *[]any:
		return t
	}
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Len() == 0 {
			return nil
		}
		return rv.Index(0).Addr().Interface()
	case reflect.Map:
		return rv.UnsafePointer()
	case reflect.Pointer:
		return v
	}
	return nil
}
