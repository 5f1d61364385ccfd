package cost

import (
	"errors"
	"testing"

	"github.com/hupe1980/modelgo/catalog"
)

func record(t *testing.T, fields map[string]any) *catalog.Record {
	t.Helper()
	rec, warns, err := catalog.ValidateEntry("test-model", fields)
	if err != nil {
		t.Fatalf("ValidateEntry: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("fixture warned: %v", warns)
	}
	return rec
}

func TestPerVolume(t *testing.T) {
	rec := record(t, map[string]any{
		"input_cost_per_token":  0.000003,
		"output_cost_per_token": 0.000015,
	})

	got, err := PerVolume(rec, catalog.CostInputToken, MillionTokens)
	if err != nil {
		t.Fatalf("PerVolume: %v", err)
	}
	if got != 3.0 {
		t.Errorf("PerVolume = %v, want 3.0", got)
	}

	got, err = PerVolume(rec, catalog.CostOutputToken, MillionTokens)
	if err != nil {
		t.Fatalf("PerVolume: %v", err)
	}
	if got != 15.0 {
		t.Errorf("PerVolume = %v, want 15.0", got)
	}
}

func TestPerVolumeUnavailable(t *testing.T) {
	rec := record(t, map[string]any{
		"input_cost_per_token": 0.000003,
	})

	_, err := PerVolume(rec, catalog.CostOutputToken, MillionTokens)
	if err == nil {
		t.Fatal("expected error for absent cost kind")
	}
	if !errors.Is(err, ErrCostUnavailable) {
		t.Errorf("error %v does not match ErrCostUnavailable", err)
	}
	var ue *UnavailableError
	if !errors.As(err, &ue) || ue.ID != "test-model" || ue.Kind != catalog.CostOutputToken {
		t.Errorf("error detail: %+v", err)
	}
}

func TestPerVolumeZeroCost(t *testing.T) {
	rec := record(t, map[string]any{
		"input_cost_per_token": float64(0),
	})

	got, err := PerVolume(rec, catalog.CostInputToken, MillionTokens)
	if err != nil {
		t.Fatalf("zero cost must not error: %v", err)
	}
	if got != 0 {
		t.Errorf("PerVolume = %v, want 0", got)
	}
}

func TestPerVolumeUnitMismatch(t *testing.T) {
	rec := record(t, map[string]any{
		"file_search_cost_per_1k_calls":        0.0025,
		"vector_store_cost_per_gb_usd_per_day": 0.0001,
	})

	for _, kind := range []catalog.CostKind{
		catalog.CostFileSearchPer1kCalls,
		catalog.CostVectorStoreGBDay,
	} {
		_, err := PerVolume(rec, kind, MillionTokens)
		if err == nil {
			t.Fatalf("kind %s: expected unit mismatch", kind)
		}
		if !errors.Is(err, ErrUnitMismatch) {
			t.Errorf("kind %s: error %v does not match ErrUnitMismatch", kind, err)
		}
	}

	// The flat rate is still readable directly off the record.
	if c, ok := rec.Cost(catalog.CostFileSearchPer1kCalls); !ok || c != 0.0025 {
		t.Errorf("flat rate lost: %v, %v", c, ok)
	}
}

func TestPerMillionTokens(t *testing.T) {
	rec := record(t, map[string]any{
		"input_cost_per_token":     0.0000025,
		"input_cost_per_character": 0.0000001,
	})

	got, err := PerMillionTokens(rec, catalog.CostInputToken)
	if err != nil {
		t.Fatalf("PerMillionTokens: %v", err)
	}
	if got != 2.5 {
		t.Errorf("PerMillionTokens = %v, want 2.5", got)
	}

	// Character-billed kinds do not normalize to tokens.
	_, err = PerMillionTokens(rec, catalog.CostInputCharacter)
	if !errors.Is(err, ErrUnitMismatch) {
		t.Errorf("character kind: %v", err)
	}
}

func TestKindUnit(t *testing.T) {
	tests := []struct {
		kind catalog.CostKind
		want Unit
	}{
		{catalog.CostInputToken, UnitToken},
		{catalog.CostOutputAudioToken, UnitToken},
		{catalog.CostInputCharacter, UnitCharacter},
		{catalog.CostInputImage, UnitImage},
		{catalog.CostInputVideoSecond, UnitSecond},
		{catalog.CostFileSearchPer1kCalls, UnitCall},
		{catalog.CostVectorStoreGBDay, UnitGBDay},
		{catalog.CostKind("made_up"), UnitUnknown},
	}
	for _, tt := range tests {
		if got := KindUnit(tt.kind); got != tt.want {
			t.Errorf("KindUnit(%s) = %s, want %s", tt.kind, got, tt.want)
		}
	}
}
