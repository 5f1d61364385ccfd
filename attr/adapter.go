package attr

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"
)

// FromAny converts a decoded JSON value into a typed Value.
//
// This is the adapter layer between the external decoder (which produces
// map[string]any documents) and the typed model used everywhere else.
// JSON numbers arrive as float64; values that are exactly representable as
// integers are stored as KindInt so that token limits compare exactly.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return Int(int64(x)), nil
		}
		return Float(x), nil
	case float32:
		return FromAny(float64(x))
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("attr: invalid number %q", string(x))
		}
		return Float(f), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > uint64(math.MaxInt64) {
			// Avoid silently truncating large values.
			return Value{}, fmt.Errorf("attr: uint64 out of range: %d", x)
		}
		return Int(int64(x)), nil
	case []Value:
		return Array(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i := range x {
			vv, err := FromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = vv
		}
		return Array(arr), nil
	case []string:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = String(x[i])
		}
		return Array(arr), nil
	case map[string]any:
		doc, err := DocumentFromAny(x)
		if err != nil {
			return Value{}, err
		}
		return Object(doc), nil
	case Document:
		return Object(x), nil
	default:
		return Value{}, fmt.Errorf("attr: unsupported value type %T", v)
	}
}

// DocumentFromAny converts a decoded map[string]any entry to a typed Document.
func DocumentFromAny(m map[string]any) (Document, error) {
	d := make(Document, len(m))
	for k, v := range m {
		vv, err := FromAny(v)
		if err != nil {
			return nil, err
		}
		d[k] = vv
	}
	return d, nil
}
