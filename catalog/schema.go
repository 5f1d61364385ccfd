package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/hupe1980/modelgo/attr"
)

// Persisted field names recognized by the validator. Everything else lands
// in the overflow bag untouched.
const (
	fieldProvider        = "litellm_provider"
	fieldProviderAlias   = "provider"
	fieldMode            = "mode"
	fieldMaxTokens       = "max_tokens"
	fieldMaxInputTokens  = "max_input_tokens"
	fieldMaxOutputTokens = "max_output_tokens"
	fieldDeprecationDate = "deprecation_date"
	fieldSource          = "source"
)

var costKindByField = func() map[string]CostKind {
	m := make(map[string]CostKind, len(costKinds))
	for _, k := range costKinds {
		m[string(k)] = k
	}
	return m
}()

// ValidateEntry checks one raw catalog entry and produces a Record.
//
// The only hard failure is a value that is not an object at all; every
// other problem degrades to a warning with the offending field treated as
// absent. This matches the dataset's real-world tolerance for heterogeneous
// community contributions.
func ValidateEntry(id string, raw any) (*Record, []Warning, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, &RecordInvalidError{ID: id, Reason: fmt.Sprintf("not an object (got %T)", raw)}
	}

	rec := &Record{
		ID:           id,
		Costs:        make(map[CostKind]float64),
		Capabilities: make(map[string]bool),
		Extra:        make(attr.Document),
	}
	var warns []Warning

	// Deterministic field order keeps warning output stable across loads.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		val := obj[key]
		if w := applyField(rec, key, val); w != nil {
			warns = append(warns, *w)
		}
	}

	// input + output exceeding total is flagged, never rejected: the
	// upstream data is known to be inconsistent about this.
	if rec.MaxTokens != nil && rec.MaxInputTokens != nil && rec.MaxOutputTokens != nil {
		if *rec.MaxInputTokens+*rec.MaxOutputTokens > *rec.MaxTokens {
			warns = append(warns, Warning{
				Code:  WarnContextWindow,
				Field: fieldMaxTokens,
				Message: fmt.Sprintf("max_input_tokens (%d) + max_output_tokens (%d) exceed max_tokens (%d)",
					*rec.MaxInputTokens, *rec.MaxOutputTokens, *rec.MaxTokens),
			})
		}
	}

	if len(rec.Costs) == 0 {
		rec.Costs = nil
	}
	if len(rec.Capabilities) == 0 {
		rec.Capabilities = nil
	}
	if len(rec.Extra) == 0 {
		rec.Extra = nil
	}

	return rec, warns, nil
}

// applyField assigns one raw field to the record, returning a warning if
// the value had to be discarded.
func applyField(rec *Record, key string, val any) *Warning {
	if kind, ok := costKindByField[key]; ok {
		c, ok := asNumber(val)
		if !ok {
			return typeMismatch(key, "number", val)
		}
		if c < 0 {
			return &Warning{Code: WarnNegativeCost, Field: key,
				Message: fmt.Sprintf("negative cost %v clamped to absent", c)}
		}
		rec.Costs[kind] = c
		return nil
	}

	if name, ok := strings.CutPrefix(key, capabilityPrefix); ok && name != "" {
		// Capability flags are JSON booleans only; "true" or 1 do not count.
		flag, ok := val.(bool)
		if !ok {
			return typeMismatch(key, "boolean", val)
		}
		rec.Capabilities[name] = flag
		return nil
	}

	switch key {
	case fieldProvider, fieldProviderAlias:
		s, ok := val.(string)
		if !ok {
			return typeMismatch(key, "string", val)
		}
		if rec.Provider != "" && key == fieldProviderAlias {
			// litellm_provider already claimed the slot; keep the alias
			// verbatim so nothing is dropped on re-serialization.
			return overflow(rec, key, val)
		}
		rec.Provider = s
		rec.providerKey = key
		return nil

	case fieldMode:
		s, ok := val.(string)
		if !ok {
			return typeMismatch(key, "string", val)
		}
		rec.Mode = Mode(s)
		return nil

	case fieldMaxTokens:
		return assignLimit(&rec.MaxTokens, key, val)
	case fieldMaxInputTokens:
		return assignLimit(&rec.MaxInputTokens, key, val)
	case fieldMaxOutputTokens:
		return assignLimit(&rec.MaxOutputTokens, key, val)

	case fieldDeprecationDate:
		s, ok := val.(string)
		if !ok {
			return typeMismatch(key, "string", val)
		}
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return &Warning{Code: WarnFieldTypeMismatch, Field: key,
				Message: fmt.Sprintf("expected %s date, got %q", DateLayout, s)}
		}
		rec.DeprecationDate = &t
		return nil

	case fieldSource:
		s, ok := val.(string)
		if !ok {
			return typeMismatch(key, "string", val)
		}
		rec.Source = s
		return nil

	default:
		return overflow(rec, key, val)
	}
}

func assignLimit(dst **int64, key string, val any) *Warning {
	n, ok := asInt(val)
	if !ok {
		return typeMismatch(key, "integer", val)
	}
	if n < 0 {
		return &Warning{Code: WarnFieldTypeMismatch, Field: key,
			Message: fmt.Sprintf("negative limit %d treated as absent", n)}
	}
	*dst = &n
	return nil
}

func overflow(rec *Record, key string, val any) *Warning {
	v, err := attr.FromAny(val)
	if err != nil {
		return &Warning{Code: WarnFieldTypeMismatch, Field: key, Message: err.Error()}
	}
	if rec.Extra == nil {
		rec.Extra = make(attr.Document)
	}
	rec.Extra[key] = v
	return nil
}

func typeMismatch(key, want string, got any) *Warning {
	return &Warning{Code: WarnFieldTypeMismatch, Field: key,
		Message: fmt.Sprintf("expected %s, got %T; field treated as absent", want, got)}
}

// asNumber accepts the numeric shapes a decoded JSON document can produce.
func asNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

// asInt accepts integers, including the float64 form JSON decoders emit.
func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int64:
		return x, true
	case float64:
		if x != math.Trunc(x) || math.Abs(x) >= 1<<53 {
			return 0, false
		}
		return int64(x), true
	default:
		return 0, false
	}
}
