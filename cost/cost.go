// Package cost derives normalized cost figures from catalog records.
//
// The calculator never rounds and never substitutes defaults: an absent
// cost is an error the caller must handle, because silently pricing an
// unknown model at zero is worse than failing loudly.
package cost

import (
	"github.com/hupe1980/modelgo/catalog"
)

// Unit is the billing unit behind a cost kind.
type Unit uint8

const (
	// UnitUnknown marks a cost kind this package cannot classify.
	UnitUnknown Unit = iota
	// UnitToken is billed per token.
	UnitToken
	// UnitCharacter is billed per character.
	UnitCharacter
	// UnitImage is billed per image.
	UnitImage
	// UnitSecond is billed per second of media.
	UnitSecond
	// UnitCall is billed per 1,000 API calls.
	UnitCall
	// UnitGBDay is billed per GB of storage per day.
	UnitGBDay
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case UnitToken:
		return "token"
	case UnitCharacter:
		return "character"
	case UnitImage:
		return "image"
	case UnitSecond:
		return "second"
	case UnitCall:
		return "1k-calls"
	case UnitGBDay:
		return "gb-day"
	default:
		return "unknown"
	}
}

var kindUnits = map[catalog.CostKind]Unit{
	catalog.CostInputToken:           UnitToken,
	catalog.CostOutputToken:          UnitToken,
	catalog.CostReasoningToken:       UnitToken,
	catalog.CostCacheCreationToken:   UnitToken,
	catalog.CostCacheReadToken:       UnitToken,
	catalog.CostInputAudioToken:      UnitToken,
	catalog.CostOutputAudioToken:     UnitToken,
	catalog.CostInputCharacter:       UnitCharacter,
	catalog.CostOutputCharacter:      UnitCharacter,
	catalog.CostInputImage:           UnitImage,
	catalog.CostOutputImage:          UnitImage,
	catalog.CostInputSecond:          UnitSecond,
	catalog.CostOutputSecond:         UnitSecond,
	catalog.CostInputVideoSecond:     UnitSecond,
	catalog.CostFileSearchPer1kCalls: UnitCall,
	catalog.CostVectorStoreGBDay:     UnitGBDay,
}

// KindUnit returns the billing unit for a cost kind.
func KindUnit(kind catalog.CostKind) Unit {
	return kindUnits[kind]
}

// scalable reports whether multiplying the per-unit cost by a caller-chosen
// volume is meaningful. Flat per-1k-calls and per-GB-per-day rates are not:
// scaling them by a token volume produces a nonsensical number.
func scalable(u Unit) bool {
	switch u {
	case UnitToken, UnitCharacter, UnitImage, UnitSecond:
		return true
	default:
		return false
	}
}

// MillionTokens is the conventional comparison volume for token prices.
const MillionTokens = 1_000_000

// PerVolume computes the cost of volume units for the given kind, e.g.
// PerVolume(r, catalog.CostInputToken, cost.MillionTokens) for the usual
// dollars-per-1M-tokens figure.
//
// An absent cost kind fails with an UnavailableError; a non-scalable kind
// (per-1k-calls, per-GB-per-day) fails with a UnitMismatchError. Results
// are not rounded; presentation rounding belongs to the caller.
func PerVolume(r *catalog.Record, kind catalog.CostKind, volume float64) (float64, error) {
	unit := KindUnit(kind)
	if !scalable(unit) {
		return 0, &UnitMismatchError{Kind: kind, Unit: unit}
	}

	perUnit, ok := r.Cost(kind)
	if !ok {
		return 0, &UnavailableError{ID: r.ID, Kind: kind}
	}
	return perUnit * volume, nil
}

// PerMillionTokens is shorthand for the standard 1M-token normalization of
// a token-billed cost kind.
func PerMillionTokens(r *catalog.Record, kind catalog.CostKind) (float64, error) {
	if u := KindUnit(kind); u != UnitToken {
		return 0, &UnitMismatchError{Kind: kind, Unit: u}
	}
	return PerVolume(r, kind, MillionTokens)
}
