package catalog

import (
	"time"

	"github.com/hupe1980/modelgo/attr"
)

// Mode classifies what a model does (chat, embedding, ...).
//
// Unrecognized values are preserved as opaque strings rather than rejected,
// so newly introduced modes in the upstream catalog keep loading.
type Mode string

const (
	ModeChat               Mode = "chat"
	ModeEmbedding          Mode = "embedding"
	ModeImageGeneration    Mode = "image_generation"
	ModeAudioTranscription Mode = "audio_transcription"
	ModeAudioSpeech        Mode = "audio_speech"
	ModeCompletion         Mode = "completion"
	ModeModeration         Mode = "moderation"
	ModeRerank             Mode = "rerank"
	ModeSearch             Mode = "search"
)

// Known reports whether the mode is one of the enumerated values.
func (m Mode) Known() bool {
	switch m {
	case ModeChat, ModeEmbedding, ModeImageGeneration, ModeAudioTranscription,
		ModeAudioSpeech, ModeCompletion, ModeModeration, ModeRerank, ModeSearch:
		return true
	}
	return false
}

// CostKind identifies one pricing dimension of a record.
//
// The string value is the exact field name used in the persisted catalog.
type CostKind string

const (
	CostInputToken           CostKind = "input_cost_per_token"
	CostOutputToken          CostKind = "output_cost_per_token"
	CostReasoningToken       CostKind = "output_cost_per_reasoning_token"
	CostCacheCreationToken   CostKind = "cache_creation_input_token_cost"
	CostCacheReadToken       CostKind = "cache_read_input_token_cost"
	CostInputAudioToken      CostKind = "input_cost_per_audio_token"
	CostOutputAudioToken     CostKind = "output_cost_per_audio_token"
	CostInputCharacter       CostKind = "input_cost_per_character"
	CostOutputCharacter      CostKind = "output_cost_per_character"
	CostInputImage           CostKind = "input_cost_per_image"
	CostOutputImage          CostKind = "output_cost_per_image"
	CostInputSecond          CostKind = "input_cost_per_second"
	CostOutputSecond         CostKind = "output_cost_per_second"
	CostInputVideoSecond     CostKind = "input_cost_per_video_per_second"
	CostFileSearchPer1kCalls CostKind = "file_search_cost_per_1k_calls"
	CostVectorStoreGBDay     CostKind = "vector_store_cost_per_gb_usd_per_day"
)

// costKinds lists all known kinds in a stable order.
var costKinds = []CostKind{
	CostInputToken,
	CostOutputToken,
	CostReasoningToken,
	CostCacheCreationToken,
	CostCacheReadToken,
	CostInputAudioToken,
	CostOutputAudioToken,
	CostInputCharacter,
	CostOutputCharacter,
	CostInputImage,
	CostOutputImage,
	CostInputSecond,
	CostOutputSecond,
	CostInputVideoSecond,
	CostFileSearchPer1kCalls,
	CostVectorStoreGBDay,
}

// CostKinds returns all known cost kinds in a stable order.
func CostKinds() []CostKind {
	out := make([]CostKind, len(costKinds))
	copy(out, costKinds)
	return out
}

// DateLayout is the calendar format used by deprecation_date fields.
const DateLayout = "2006-01-02"

// capabilityPrefix marks boolean capability fields in the persisted format,
// e.g. "supports_function_calling" -> capability "function_calling".
const capabilityPrefix = "supports_"

// Record is one validated catalog entry.
//
// Records are created once at load time and are immutable thereafter.
// Every optional field has an explicit present/absent representation;
// "unknown" is never collapsed to a zero value.
type Record struct {
	// ID is the model identifier, the entry's key in the catalog document.
	ID string

	// Provider is the serving provider tag. Empty means unknown; such
	// records are excluded from provider-based queries but load fine.
	Provider string

	// Mode classifies the model. Empty means unknown.
	Mode Mode

	// Context window limits. Nil means the limit is not published.
	MaxTokens       *int64
	MaxInputTokens  *int64
	MaxOutputTokens *int64

	// Costs holds the per-unit costs present on the entry. Absent kinds
	// have no key; a zero value means "actually free", not "unknown".
	Costs map[CostKind]float64

	// Capabilities maps capability names (without the supports_ prefix)
	// to flags. An absent key reads as false via Capability.
	Capabilities map[string]bool

	// DeprecationDate is the announced retirement date, if any.
	DeprecationDate *time.Time

	// Source is a free-text provenance field (usually a pricing URL).
	Source string

	// Extra preserves unknown fields verbatim so that load followed by
	// re-serialization is lossless.
	Extra attr.Document

	// providerKey remembers which field name carried the provider so
	// re-serialization reproduces the original document.
	providerKey string
}

// Cost returns the per-unit cost for the given kind.
// The boolean reports presence; callers must not treat absent as zero.
func (r *Record) Cost(kind CostKind) (float64, bool) {
	c, ok := r.Costs[kind]
	return c, ok
}

// Capability reports whether the record declares the named capability.
// Absent capabilities read as false, never as an error.
func (r *Record) Capability(name string) bool {
	return r.Capabilities[name]
}

// Deprecated reports whether the record's deprecation date is on or before
// the given time. Records without a date are never considered deprecated.
func (r *Record) Deprecated(now time.Time) bool {
	if r.DeprecationDate == nil {
		return false
	}
	return !now.Before(*r.DeprecationDate)
}

// entryMap reconstitutes the record as a plain map in the persisted shape,
// merging known fields with the overflow attributes.
func (r *Record) entryMap() map[string]any {
	m := make(map[string]any, 8+len(r.Costs)+len(r.Capabilities)+len(r.Extra))
	for k, v := range r.Extra {
		m[k] = v.ToAny()
	}
	if r.Provider != "" {
		key := r.providerKey
		if key == "" {
			key = fieldProvider
		}
		m[key] = r.Provider
	}
	if r.Mode != "" {
		m[fieldMode] = string(r.Mode)
	}
	if r.MaxTokens != nil {
		m[fieldMaxTokens] = *r.MaxTokens
	}
	if r.MaxInputTokens != nil {
		m[fieldMaxInputTokens] = *r.MaxInputTokens
	}
	if r.MaxOutputTokens != nil {
		m[fieldMaxOutputTokens] = *r.MaxOutputTokens
	}
	for kind, c := range r.Costs {
		m[string(kind)] = c
	}
	for name, flag := range r.Capabilities {
		m[capabilityPrefix+name] = flag
	}
	if r.DeprecationDate != nil {
		m[fieldDeprecationDate] = r.DeprecationDate.Format(DateLayout)
	}
	if r.Source != "" {
		m[fieldSource] = r.Source
	}
	return m
}
