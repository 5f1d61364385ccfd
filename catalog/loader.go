package catalog

import (
	"sort"
)

// RawEntry is one undecoded catalog entry paired with its key.
type RawEntry struct {
	ID    string
	Value any
}

// RawDocument is the already-decoded input to Load: an ordered sequence of
// entries. Order and duplicate keys survive decoding (see DecodeDocument),
// which a plain map cannot represent.
type RawDocument []RawEntry

// DocumentFromMap adapts a map-shaped document into a RawDocument.
//
// Maps carry no order, so entries are sorted by id to keep repeated loads
// deterministic.
func DocumentFromMap(m map[string]any) RawDocument {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	doc := make(RawDocument, 0, len(m))
	for _, id := range ids {
		doc = append(doc, RawEntry{ID: id, Value: m[id]})
	}
	return doc
}

// Load validates every entry of the raw document and assembles the
// immutable Dataset.
//
// Entry-level problems never abort the load. A malformed entry is recorded
// in the report's Errors and excluded; mistyped fields degrade to warnings.
// Duplicate ids resolve last-occurrence-wins with a warning. Load performs
// no I/O and is a pure function of its input: loading the same document
// twice yields datasets with identical content and order.
func Load(doc RawDocument) (*Dataset, *Report) {
	report := newReport()

	ds := &Dataset{
		ids:  make([]string, 0, len(doc)),
		recs: make([]*Record, 0, len(doc)),
		byID: make(map[string]int, len(doc)),
	}

	seen := make(map[string]bool, len(doc))
	for _, entry := range doc {
		rec, warns, err := ValidateEntry(entry.ID, entry.Value)
		report.warn(entry.ID, warns...)

		if seen[entry.ID] {
			report.warn(entry.ID, Warning{
				Code:    WarnDuplicateID,
				Message: "id appears more than once; last occurrence wins",
			})
		}
		seen[entry.ID] = true

		if err != nil {
			// A malformed occurrence cannot win; an earlier valid
			// record stays, but the error remains visible.
			report.fail(entry.ID, err)
			continue
		}

		// A valid later occurrence supersedes an earlier failed one.
		delete(report.Errors, entry.ID)

		if prev, ok := ds.byID[entry.ID]; ok {
			ds.recs[prev] = rec
			continue
		}
		ds.byID[entry.ID] = len(ds.ids)
		ds.ids = append(ds.ids, entry.ID)
		ds.recs = append(ds.recs, rec)
	}

	return ds, report
}

// LoadMap is a convenience for callers holding a plain decoded map.
func LoadMap(m map[string]any) (*Dataset, *Report) {
	return Load(DocumentFromMap(m))
}
