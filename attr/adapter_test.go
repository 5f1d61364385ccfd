package attr

import (
	"reflect"
	"testing"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    Value
		wantErr bool
	}{
		{name: "nil", in: nil, want: Null()},
		{name: "bool", in: true, want: Bool(true)},
		{name: "string", in: "groq", want: String("groq")},
		// JSON decoders produce float64 for every number; integral
		// values must come back as ints for exact comparisons.
		{name: "integral float", in: float64(128000), want: Int(128000)},
		{name: "fractional float", in: 0.000003, want: Float(0.000003)},
		{name: "int", in: 42, want: Int(42)},
		{name: "slice", in: []any{"a", float64(1)}, want: Array([]Value{String("a"), Int(1)})},
		{name: "string slice", in: []string{"x", "y"}, want: Array([]Value{String("x"), String("y")})},
		{name: "channel unsupported", in: make(chan int), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FromAny(%v) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromAny(%v): %v", tt.in, err)
			}
			if !reflect.DeepEqual(got.ToAny(), tt.want.ToAny()) {
				t.Errorf("FromAny(%v) = %#v, want %#v", tt.in, got.ToAny(), tt.want.ToAny())
			}
		})
	}
}

func TestDocumentFromAny(t *testing.T) {
	doc, err := DocumentFromAny(map[string]any{
		"provider": "openai",
		"limits":   map[string]any{"max": float64(8192)},
	})
	if err != nil {
		t.Fatalf("DocumentFromAny: %v", err)
	}

	if s, _ := doc["provider"].AsString(); s != "openai" {
		t.Errorf("provider = %q", s)
	}
	limits, ok := doc["limits"].AsObject()
	if !ok {
		t.Fatalf("limits not an object")
	}
	if n, _ := limits["max"].AsInt64(); n != 8192 {
		t.Errorf("limits.max = %d", n)
	}
}
