package attr

import (
	"math"
	"strconv"
	"strings"
	"unique"

	json "github.com/goccy/go-json"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
	// KindArray represents an array value.
	KindArray
	// KindObject represents a nested object value.
	KindObject
)

// Value is a small typed value used for raw entries and overflow attributes.
//
// The representation is designed to make filtering fast and predictable:
// no reflection and no fmt-based stringification. JSON marshaling emits the
// natural JSON shape (not a tagged envelope) so a loaded document can be
// re-serialized losslessly.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	s    unique.Handle[string]
	B    bool
	A    []Value
	O    Document
}

// StringValue returns the string value if Kind is KindString, otherwise empty string.
func (v Value) StringValue() string {
	if v.Kind == KindString {
		return v.s.Value()
	}
	return ""
}

// MarshalJSON implements json.Marshaler.
//
// Values marshal to their natural JSON representation so that overflow
// attributes round-trip byte-compatibly through load and re-serialize.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToAny())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	vv, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = vv
	return nil
}

// ToAny converts the Value back to its plain Go representation, suitable
// for feeding into any JSON encoder.
func (v Value) ToAny() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindInt:
		return v.I64
	case KindFloat:
		return v.F64
	case KindString:
		return v.s.Value()
	case KindBool:
		return v.B
	case KindArray:
		arr := make([]any, len(v.A))
		for i := range v.A {
			arr[i] = v.A[i].ToAny()
		}
		return arr
	case KindObject:
		obj := make(map[string]any, len(v.O))
		for k, vv := range v.O {
			obj[k] = vv.ToAny()
		}
		return obj
	default:
		return nil
	}
}

// Key returns a stable string representation for use in maps.
//
// It is intended for internal indexing (inverted indexes) and must remain
// stable across versions.
func (v Value) Key() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.s.Value()
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	case KindArray:
		if len(v.A) == 0 {
			return "a:"
		}
		parts := make([]string, len(v.A))
		for i := range v.A {
			parts[i] = v.A[i].Key()
		}
		return "a:" + strings.Join(parts, "\x1f")
	case KindObject:
		if len(v.O) == 0 {
			return "o:"
		}
		keys := make([]string, 0, len(v.O))
		for k := range v.O {
			keys = append(keys, k)
		}
		// Deterministic regardless of map iteration order.
		sortStrings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + v.O[k].Key()
		}
		return "o:" + strings.Join(parts, "\x1f")
	default:
		return "invalid"
	}
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsNumber returns the value as float64 if it is numeric (int or float).
func (v Value) AsNumber() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.I64), true
	case KindFloat:
		return v.F64, true
	default:
		return 0, false
	}
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsArray returns the array value if Kind is KindArray.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.A, true
}

// AsObject returns the object value if Kind is KindObject.
func (v Value) AsObject() (Document, bool) {
	if v.Kind != KindObject {
		return nil, false
	}
	return v.O, true
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Array returns an array Value.
func Array(v []Value) Value { return Value{Kind: KindArray, A: v} }

// Object returns a nested object Value.
func Object(v Document) Value { return Value{Kind: KindObject, O: v} }

// Document is a typed attribute document keyed by field name.
type Document map[string]Value

// Clone creates a deep copy of the document.
//
// This is the safe default to prevent external mutation of a record's
// overflow attributes after load.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	clone := make(Document, len(d))
	for k, v := range d {
		clone[k] = v.clone()
	}
	return clone
}

func (v Value) clone() Value {
	switch {
	case v.Kind == KindArray && len(v.A) > 0:
		arr := make([]Value, len(v.A))
		for i := range v.A {
			arr[i] = v.A[i].clone()
		}
		return Value{Kind: KindArray, A: arr}
	case v.Kind == KindObject && len(v.O) > 0:
		return Value{Kind: KindObject, O: v.O.Clone()}
	default:
		// Simple values are copied by value semantics.
		return v
	}
}

// ToAny converts the document back to a plain map[string]any.
func (d Document) ToAny() map[string]any {
	if d == nil {
		return nil
	}
	out := make(map[string]any, len(d))
	for k, v := range d {
		out[k] = v.ToAny()
	}
	return out
}
