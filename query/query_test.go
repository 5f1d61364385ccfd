package query

import (
	"testing"
	"time"

	"github.com/hupe1980/modelgo/catalog"
)

func testDataset(t *testing.T) *catalog.Dataset {
	t.Helper()
	ds, report := catalog.Load(catalog.RawDocument{
		{ID: "gpt-4o", Value: map[string]any{
			"litellm_provider":          "openai",
			"mode":                      "chat",
			"max_tokens":                float64(128000),
			"input_cost_per_token":      0.0000025,
			"supports_function_calling": true,
			"supports_vision":           true,
		}},
		{ID: "claude-sonnet", Value: map[string]any{
			"litellm_provider":          "anthropic",
			"mode":                      "chat",
			"max_tokens":                float64(200000),
			"input_cost_per_token":      0.000003,
			"supports_function_calling": true,
		}},
		{ID: "embed-small", Value: map[string]any{
			"litellm_provider":     "openai",
			"mode":                 "embedding",
			"input_cost_per_token": 0.00000002,
		}},
		{ID: "mystery", Value: map[string]any{
			"mode": "chat",
		}},
		{ID: "whisper", Value: map[string]any{
			"litellm_provider":      "openai",
			"mode":                  "audio_transcription",
			"input_cost_per_second": 0.0001,
			"deprecation_date":      "2025-01-01",
		}},
	})
	if !report.Clean() {
		t.Fatalf("fixture should load clean: %+v", report)
	}
	return ds
}

func collectIDs(t *testing.T, ds *catalog.Dataset, pred Predicate) []string {
	t.Helper()
	var ids []string
	for id := range Filter(ds, pred) {
		ids = append(ids, id)
	}
	return ids
}

func TestFilterByProvider(t *testing.T) {
	ds := testDataset(t)

	got := collectIDs(t, ds, ByProvider("openai"))
	want := []string{"gpt-4o", "embed-small", "whisper"}
	if len(got) != len(want) {
		t.Fatalf("ByProvider = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ByProvider = %v, want %v", got, want)
		}
	}

	for id := range Filter(ds, ByProvider("openai")) {
		rec, _ := ds.Get(id)
		if rec.Provider != "openai" {
			t.Errorf("record %s has provider %q", id, rec.Provider)
		}
	}

	// A record without a provider is excluded from provider queries,
	// even for the empty string.
	if ids := collectIDs(t, ds, ByProvider("")); len(ids) != 0 {
		t.Errorf("ByProvider(\"\") matched %v", ids)
	}
}

func TestFilterRestartable(t *testing.T) {
	ds := testDataset(t)
	seq := Filter(ds, ByMode(catalog.ModeChat))

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first != second || first == 0 {
		t.Errorf("re-iteration differs: %d vs %d", first, second)
	}
}

func TestWithCapabilityAbsentIsFalse(t *testing.T) {
	ds := testDataset(t)

	got := collectIDs(t, ds, WithCapability("vision"))
	if len(got) != 1 || got[0] != "gpt-4o" {
		t.Errorf("WithCapability(vision) = %v", got)
	}

	// mystery has no capabilities map at all; must simply not match.
	if ids := collectIDs(t, ds, WithCapability("anything")); len(ids) != 0 {
		t.Errorf("absent capability matched: %v", ids)
	}
}

func TestCostAtMostUnknownIsNotCheap(t *testing.T) {
	ds := testDataset(t)

	got := collectIDs(t, ds, CostAtMost(catalog.CostInputToken, 0.0000025))
	for _, id := range got {
		if id == "mystery" {
			t.Fatalf("record without cost matched a cost threshold")
		}
	}
	if len(got) != 2 { // gpt-4o, embed-small
		t.Errorf("CostAtMost = %v", got)
	}
}

func TestCombinators(t *testing.T) {
	ds := testDataset(t)

	got := collectIDs(t, ds, And(
		ByProvider("openai"),
		ByMode(catalog.ModeChat),
	))
	if len(got) != 1 || got[0] != "gpt-4o" {
		t.Errorf("And = %v", got)
	}

	got = collectIDs(t, ds, Or(
		ByProvider("anthropic"),
		ByMode(catalog.ModeEmbedding),
	))
	if len(got) != 2 {
		t.Errorf("Or = %v", got)
	}

	got = collectIDs(t, ds, Not(ByMode(catalog.ModeChat)))
	if len(got) != 2 { // embed-small, whisper
		t.Errorf("Not = %v", got)
	}
}

func TestNotDeprecated(t *testing.T) {
	ds := testDataset(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	got := collectIDs(t, ds, NotDeprecated(now))
	for _, id := range got {
		if id == "whisper" {
			t.Fatalf("deprecated record matched NotDeprecated")
		}
	}
	if len(got) != 4 {
		t.Errorf("NotDeprecated = %v", got)
	}
}

func TestContextAtLeast(t *testing.T) {
	ds := testDataset(t)

	got := collectIDs(t, ds, ContextAtLeast(150000))
	if len(got) != 1 || got[0] != "claude-sonnet" {
		t.Errorf("ContextAtLeast = %v", got)
	}
}
