package query

import (
	"iter"
	"time"

	"github.com/hupe1980/modelgo/catalog"
)

// Predicate decides whether a record participates in a result.
type Predicate func(id string, r *catalog.Record) bool

// Filter produces a lazy sequence of matching (id, record) pairs in
// dataset order. The sequence is restartable: re-iterating re-evaluates the
// predicate against the dataset, it does not replay a cached result.
func Filter(ds *catalog.Dataset, pred Predicate) iter.Seq2[string, *catalog.Record] {
	return func(yield func(string, *catalog.Record) bool) {
		for id, rec := range ds.All() {
			if pred != nil && !pred(id, rec) {
				continue
			}
			if !yield(id, rec) {
				return
			}
		}
	}
}

// ByProvider matches records whose provider tag equals name.
// Records without a provider never match.
func ByProvider(name string) Predicate {
	return func(_ string, r *catalog.Record) bool {
		return r.Provider != "" && r.Provider == name
	}
}

// ByMode matches records with the given mode, including modes unknown to
// this library (they are carried as opaque strings).
func ByMode(mode catalog.Mode) Predicate {
	return func(_ string, r *catalog.Record) bool {
		return r.Mode == mode
	}
}

// WithCapability matches records that declare the named capability as true.
// An absent capability reads as false, never as an error.
func WithCapability(name string) Predicate {
	return func(_ string, r *catalog.Record) bool {
		return r.Capability(name)
	}
}

// CostAtMost matches records whose cost for the given kind is present and
// does not exceed limit. Records lacking the kind never match; unknown cost
// is not free.
func CostAtMost(kind catalog.CostKind, limit float64) Predicate {
	return func(_ string, r *catalog.Record) bool {
		c, ok := r.Cost(kind)
		return ok && c <= limit
	}
}

// ContextAtLeast matches records whose published max_tokens is present and
// at least n.
func ContextAtLeast(n int64) Predicate {
	return func(_ string, r *catalog.Record) bool {
		return r.MaxTokens != nil && *r.MaxTokens >= n
	}
}

// NotDeprecated matches records that are not deprecated as of now.
// Records without a deprecation date always match.
func NotDeprecated(now time.Time) Predicate {
	return func(_ string, r *catalog.Record) bool {
		return !r.Deprecated(now)
	}
}

// And matches when all predicates match.
func And(preds ...Predicate) Predicate {
	return func(id string, r *catalog.Record) bool {
		for _, p := range preds {
			if !p(id, r) {
				return false
			}
		}
		return true
	}
}

// Or matches when at least one predicate matches.
func Or(preds ...Predicate) Predicate {
	return func(id string, r *catalog.Record) bool {
		for _, p := range preds {
			if p(id, r) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(pred Predicate) Predicate {
	return func(id string, r *catalog.Record) bool {
		return !pred(id, r)
	}
}
