package catalog

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatasetGet(t *testing.T) {
	ds, _ := Load(RawDocument{
		{ID: "a", Value: chatEntry("openai", 1)},
	})

	rec, ok := ds.Get("a")
	require.True(t, ok)
	require.Equal(t, "a", rec.ID)

	_, ok = ds.Get("missing")
	require.False(t, ok)
}

func TestDatasetAllEarlyStop(t *testing.T) {
	ds, _ := Load(RawDocument{
		{ID: "a", Value: chatEntry("x", 1)},
		{ID: "b", Value: chatEntry("y", 2)},
		{ID: "c", Value: chatEntry("z", 3)},
	})

	var seen int
	for range ds.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

// Round-trip: unknown fields present in a raw entry must come back
// unchanged after load and re-serialization.
func TestDatasetEncodeRoundTrip(t *testing.T) {
	data := []byte(`{
		"model-a": {
			"litellm_provider": "openai",
			"mode": "chat",
			"max_tokens": 4096,
			"input_cost_per_token": 1e-06,
			"supports_vision": true,
			"deprecation_date": "2026-06-01",
			"source": "https://example.com/pricing",
			"rpm": 500,
			"metadata": {"notes": "community sourced", "verified": false},
			"tags": ["experimental", "fast"]
		},
		"model-b": {
			"mode": "embedding",
			"output_vector_size": 1536
		}
	}`)

	doc, err := DecodeDocument(data)
	require.NoError(t, err)
	ds1, report := Load(doc)
	require.True(t, report.Clean(), "report: %+v", report)

	encoded, err := ds1.MarshalJSON()
	require.NoError(t, err)

	doc2, err := DecodeDocument(encoded)
	require.NoError(t, err)
	ds2, report2 := Load(doc2)
	require.True(t, report2.Clean(), "report: %+v", report2)

	require.Equal(t, ds1.IDs(), ds2.IDs())
	for id, rec1 := range ds1.All() {
		rec2, ok := ds2.Get(id)
		require.True(t, ok)
		require.True(t, reflect.DeepEqual(rec1, rec2), "record %s changed across round trip:\n%+v\n%+v", id, rec1, rec2)
	}

	// The unknown fields specifically.
	rec, _ := ds2.Get("model-a")
	n, ok := rec.Extra["rpm"].AsInt64()
	require.True(t, ok)
	require.EqualValues(t, 500, n)
	meta, ok := rec.Extra["metadata"].AsObject()
	require.True(t, ok)
	s, _ := meta["notes"].AsString()
	require.Equal(t, "community sourced", s)
}
