// Package payload provides typed accessors over loosely-shaped JSON documents.
//
// Upstream payloads are decoded into generic maps (numbers kept as json.Number).
// Every accessor treats absence or a mistyped value as normal and returns a
// zero value plus ok=false instead of failing.
package payload

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Object is a decoded JSON object.
type Object = map[string]any

// Get walks a dotted key path ("placeName.default") and returns the value if every
// step exists and the final value is non-nil.
func Get(obj Object, path string) (any, bool) {
	if obj == nil || path == "" {
		return nil, false
	}
	var cur any = obj
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// First returns the first present non-nil value among the paths, in order.
func First(obj Object, paths ...string) (any, bool) {
	for _, p := range paths {
		if v, ok := Get(obj, p); ok {
			return v, true
		}
	}
	return nil, false
}

// FirstString returns the first value among the paths that is a non-blank string, trimmed.
func FirstString(obj Object, paths ...string) string {
	for _, p := range paths {
		v, ok := Get(obj, p)
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// FirstInt converts the first present value among the paths to an int.
// It returns def when nothing is present or the value is not numeric.
func FirstInt(obj Object, def int, paths ...string) int {
	v, ok := First(obj, paths...)
	if !ok {
		return def
	}
	n, ok := Int(v)
	if !ok {
		return def
	}
	return n
}

// FirstFloat converts the first present value among the paths to a float64.
func FirstFloat(obj Object, paths ...string) (float64, bool) {
	v, ok := First(obj, paths...)
	if !ok {
		return 0, false
	}
	return Float(v)
}

// ObjectAt returns the object stored at path, or an empty object.
func ObjectAt(obj Object, path string) Object {
	v, ok := Get(obj, path)
	if !ok {
		return Object{}
	}
	if m, ok := AsObject(v); ok {
		return m
	}
	return Object{}
}

// ListAt returns the list stored at path.
func ListAt(obj Object, path string) ([]any, bool) {
	v, ok := Get(obj, path)
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	return list, ok
}

// AsObject asserts v is a JSON object.
func AsObject(v any) (Object, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// Int converts a scalar JSON value to an int. Strings must hold an integer;
// floats are truncated.
func Int(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		if f, err := n.Float64(); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(f), true
		}
		return 0, false
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// Float converts a scalar JSON value to a float64.
func Float(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch n := v.(type) {
	case json.Number:
		f, err = n.Float64()
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Text renders a scalar JSON value as text. Objects, lists and nil render empty.
func Text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int, int64:
		return fmt.Sprintf("%d", s)
	default:
		return ""
	}
}

// Truthy mirrors JSON truthiness for identifier fallbacks: nil, "", 0 and false are empty.
func Truthy(v any) bool {
	switch s := v.(type) {
	case nil:
		return false
	case string:
		return s != ""
	case bool:
		return s
	case json.Number:
		f, err := s.Float64()
		return err != nil || f != 0
	case float64:
		return s != 0
	case int:
		return s != 0
	default:
		return true
	}
}

// FirstTruthyText returns the text of the first truthy value among the paths.
func FirstTruthyText(obj Object, paths ...string) string {
	for _, p := range paths {
		v, ok := Get(obj, p)
		if ok && Truthy(v) {
			return Text(v)
		}
	}
	return ""
}
