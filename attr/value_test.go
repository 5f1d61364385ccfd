package attr

import (
	"reflect"
	"testing"
)

func TestValueAccessors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
		any  any
	}{
		{name: "null", v: Null(), kind: KindNull, any: nil},
		{name: "int", v: Int(42), kind: KindInt, any: int64(42)},
		{name: "float", v: Float(1.5), kind: KindFloat, any: 1.5},
		{name: "string", v: String("gpt-4"), kind: KindString, any: "gpt-4"},
		{name: "bool", v: Bool(true), kind: KindBool, any: true},
		{
			name: "array",
			v:    Array([]Value{Int(1), String("a")}),
			kind: KindArray,
			any:  []any{int64(1), "a"},
		},
		{
			name: "object",
			v:    Object(Document{"x": Int(1)}),
			kind: KindObject,
			any:  map[string]any{"x": int64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind != tt.kind {
				t.Fatalf("Kind = %v, want %v", tt.v.Kind, tt.kind)
			}
			if got := tt.v.ToAny(); !reflect.DeepEqual(got, tt.any) {
				t.Errorf("ToAny() = %#v, want %#v", got, tt.any)
			}
		})
	}
}

func TestValueKeyStable(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "null", v: Null(), want: "null"},
		{name: "int", v: Int(7), want: "i:7"},
		{name: "bool true", v: Bool(true), want: "b:1"},
		{name: "bool false", v: Bool(false), want: "b:0"},
		{name: "string", v: String("openai"), want: "s:openai"},
		{name: "empty array", v: Array(nil), want: "a:"},
		{name: "array", v: Array([]Value{Int(1), Int(2)}), want: "a:i:1\x1fi:2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueKeyObjectDeterministic(t *testing.T) {
	a := Object(Document{"b": Int(2), "a": Int(1)})
	b := Object(Document{"a": Int(1), "b": Int(2)})
	if a.Key() != b.Key() {
		t.Errorf("object keys differ: %q vs %q", a.Key(), b.Key())
	}
}

func TestDocumentClone(t *testing.T) {
	orig := Document{
		"tags":   Array([]Value{String("beta")}),
		"nested": Object(Document{"x": Int(1)}),
		"plain":  String("v"),
	}
	clone := orig.Clone()

	if !reflect.DeepEqual(orig.ToAny(), clone.ToAny()) {
		t.Fatalf("clone differs from original")
	}

	// Mutating the clone's array must not leak into the original.
	arr, _ := clone["tags"].AsArray()
	arr[0] = String("mutated")
	origArr, _ := orig["tags"].AsArray()
	if s, _ := origArr[0].AsString(); s != "beta" {
		t.Errorf("clone mutation leaked into original: %q", s)
	}
}

func TestValueJSONRoundTrip(t *testing.T) {
	v := Object(Document{
		"name":  String("claude"),
		"count": Int(3),
		"ratio": Float(0.25),
		"on":    Bool(true),
		"list":  Array([]Value{Int(1), Null()}),
	})

	data, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var back Value
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !reflect.DeepEqual(v.ToAny(), back.ToAny()) {
		t.Errorf("round trip mismatch: %#v vs %#v", v.ToAny(), back.ToAny())
	}
}
