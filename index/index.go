// Package index accelerates repeated set-style queries over a dataset.
//
// It maintains roaring-bitmap postings over the fields people actually
// slice catalogs by: provider, mode, capability flags and exact overflow
// attribute values. Build once per
// dataset; the index is read-only afterwards and safe for concurrent use.
// For ad-hoc predicates, a plain query.Filter scan is usually fast enough.
package index

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/modelgo/attr"
	"github.com/hupe1980/modelgo/catalog"
)

// Index holds bitmap postings keyed by ordinal position in the dataset.
type Index struct {
	ds  *catalog.Dataset
	ids []string

	providers    map[string]*roaring.Bitmap
	modes        map[string]*roaring.Bitmap
	capabilities map[string]*roaring.Bitmap
	attrs        map[string]*roaring.Bitmap
}

// Build constructs an index over the dataset.
func Build(ds *catalog.Dataset) *Index {
	ix := &Index{
		ds:           ds,
		ids:          ds.IDs(),
		providers:    make(map[string]*roaring.Bitmap),
		modes:        make(map[string]*roaring.Bitmap),
		capabilities: make(map[string]*roaring.Bitmap),
		attrs:        make(map[string]*roaring.Bitmap),
	}

	var ord uint32
	for _, rec := range ds.All() {
		if rec.Provider != "" {
			ix.add(ix.providers, rec.Provider, ord)
		}
		if rec.Mode != "" {
			ix.add(ix.modes, string(rec.Mode), ord)
		}
		for name, flag := range rec.Capabilities {
			if flag {
				ix.add(ix.capabilities, name, ord)
			}
		}
		for field, v := range rec.Extra {
			ix.add(ix.attrs, attrPostingKey(field, v), ord)
		}
		ord++
	}
	return ix
}

func (ix *Index) add(postings map[string]*roaring.Bitmap, key string, ord uint32) {
	bm, ok := postings[key]
	if !ok {
		bm = roaring.New()
		postings[key] = bm
	}
	bm.Add(ord)
}

// Provider returns the posting bitmap for a provider tag.
// The result is a copy; callers may mutate it freely.
func (ix *Index) Provider(name string) *roaring.Bitmap {
	return cloneOrEmpty(ix.providers[name])
}

// Mode returns the posting bitmap for a mode.
func (ix *Index) Mode(mode catalog.Mode) *roaring.Bitmap {
	return cloneOrEmpty(ix.modes[string(mode)])
}

// Capability returns the posting bitmap for records declaring the named
// capability as true.
func (ix *Index) Capability(name string) *roaring.Bitmap {
	return cloneOrEmpty(ix.capabilities[name])
}

// Attr returns the posting bitmap for records whose overflow attribute
// field holds exactly the given value. Postings are keyed by the value's
// stable Key representation, so lookups are exact-match only; range or
// substring conditions belong to query.WhereAttrs.
func (ix *Index) Attr(field string, v attr.Value) *roaring.Bitmap {
	return cloneOrEmpty(ix.attrs[attrPostingKey(field, v)])
}

// attrPostingKey joins field name and value key with a separator that
// cannot occur in either.
func attrPostingKey(field string, v attr.Value) string {
	return field + "\x00" + v.Key()
}

// And intersects posting bitmaps.
func And(bms ...*roaring.Bitmap) *roaring.Bitmap {
	if len(bms) == 0 {
		return roaring.New()
	}
	out := bms[0].Clone()
	for _, bm := range bms[1:] {
		out.And(bm)
	}
	return out
}

// Or unions posting bitmaps.
func Or(bms ...*roaring.Bitmap) *roaring.Bitmap {
	out := roaring.New()
	for _, bm := range bms {
		out.Or(bm)
	}
	return out
}

// Records resolves a posting bitmap back to (id, record) pairs in dataset
// order.
func (ix *Index) Records(bm *roaring.Bitmap) iter.Seq2[string, *catalog.Record] {
	return func(yield func(string, *catalog.Record) bool) {
		it := bm.Iterator()
		for it.HasNext() {
			ord := it.Next()
			if int(ord) >= len(ix.ids) {
				return
			}
			id := ix.ids[ord]
			rec, ok := ix.ds.Get(id)
			if !ok {
				continue
			}
			if !yield(id, rec) {
				return
			}
		}
	}
}

func cloneOrEmpty(bm *roaring.Bitmap) *roaring.Bitmap {
	if bm == nil {
		return roaring.New()
	}
	return bm.Clone()
}
