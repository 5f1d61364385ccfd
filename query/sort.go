package query

import (
	"iter"
	"sort"

	"github.com/hupe1980/modelgo/catalog"
)

// Direction controls sort order.
type Direction uint8

const (
	// Ascending sorts smallest key first.
	Ascending Direction = iota
	// Descending sorts largest key first.
	Descending
)

// Key extracts a sortable numeric key from a record. The boolean reports
// whether the record has the key at all; keyless records are policy-ordered
// to the end regardless of direction, so "cheapest first" never surfaces
// unknown-cost entries ahead of known-cheap ones.
type Key func(id string, r *catalog.Record) (float64, bool)

// CostKey sorts by the record's cost for the given kind.
func CostKey(kind catalog.CostKind) Key {
	return func(_ string, r *catalog.Record) (float64, bool) {
		return r.Cost(kind)
	}
}

// ContextKey sorts by the record's published max_tokens.
func ContextKey() Key {
	return func(_ string, r *catalog.Record) (float64, bool) {
		if r.MaxTokens == nil {
			return 0, false
		}
		return float64(*r.MaxTokens), true
	}
}

// Match is one materialized query result.
type Match struct {
	ID     string
	Record *catalog.Record
}

// Collect materializes a filtered sequence.
func Collect(seq iter.Seq2[string, *catalog.Record]) []Match {
	var out []Match
	for id, rec := range seq {
		out = append(out, Match{ID: id, Record: rec})
	}
	return out
}

// SortBy materializes the sequence and stably sorts it by the given key.
// Ties preserve original relative order; records missing the key always
// sort after all records possessing it.
func SortBy(seq iter.Seq2[string, *catalog.Record], key Key, dir Direction) []Match {
	matches := Collect(seq)

	type keyed struct {
		m   Match
		val float64
		ok  bool
	}
	rows := make([]keyed, len(matches))
	for i, m := range matches {
		v, ok := key(m.ID, m.Record)
		rows[i] = keyed{m: m, val: v, ok: ok}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := rows[i], rows[j]
		if ri.ok != rj.ok {
			return ri.ok
		}
		if !ri.ok {
			return false
		}
		if dir == Descending {
			return ri.val > rj.val
		}
		return ri.val < rj.val
	})

	for i := range rows {
		matches[i] = rows[i].m
	}
	return matches
}

// TopN returns the first n results; if fewer are available it returns all.
func TopN(matches []Match, n int) []Match {
	if n < 0 {
		n = 0
	}
	if n > len(matches) {
		n = len(matches)
	}
	return matches[:n]
}
