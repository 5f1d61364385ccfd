package cost

import (
	"github.com/hupe1980/modelgo/catalog"
)

// Usage is one request's token accounting, in the shape provider APIs
// report it.
type Usage struct {
	InputTokens     int64
	OutputTokens    int64
	ReasoningTokens int64
	CacheCreation   int64
	CacheRead       int64
}

// Estimate prices a single request against a record.
//
// Input and output rates must be present when the corresponding token
// counts are non-zero; their absence fails with an UnavailableError.
// Cache and reasoning tokens fall back to the plain input/output rates
// when the specialized kinds are absent, which is the billing convention
// the upstream catalog documents.
func Estimate(r *catalog.Record, u Usage) (float64, error) {
	var total float64

	if u.InputTokens > 0 {
		rate, ok := r.Cost(catalog.CostInputToken)
		if !ok {
			return 0, &UnavailableError{ID: r.ID, Kind: catalog.CostInputToken}
		}
		total += rate * float64(u.InputTokens)
	}

	if u.OutputTokens > 0 {
		rate, ok := r.Cost(catalog.CostOutputToken)
		if !ok {
			return 0, &UnavailableError{ID: r.ID, Kind: catalog.CostOutputToken}
		}
		total += rate * float64(u.OutputTokens)
	}

	if u.ReasoningTokens > 0 {
		rate, ok := r.Cost(catalog.CostReasoningToken)
		if !ok {
			rate, ok = r.Cost(catalog.CostOutputToken)
		}
		if !ok {
			return 0, &UnavailableError{ID: r.ID, Kind: catalog.CostReasoningToken}
		}
		total += rate * float64(u.ReasoningTokens)
	}

	if u.CacheCreation > 0 {
		rate, ok := r.Cost(catalog.CostCacheCreationToken)
		if !ok {
			rate, ok = r.Cost(catalog.CostInputToken)
		}
		if !ok {
			return 0, &UnavailableError{ID: r.ID, Kind: catalog.CostCacheCreationToken}
		}
		total += rate * float64(u.CacheCreation)
	}

	if u.CacheRead > 0 {
		rate, ok := r.Cost(catalog.CostCacheReadToken)
		if !ok {
			rate, ok = r.Cost(catalog.CostInputToken)
		}
		if !ok {
			return 0, &UnavailableError{ID: r.ID, Kind: catalog.CostCacheReadToken}
		}
		total += rate * float64(u.CacheRead)
	}

	return total, nil
}
