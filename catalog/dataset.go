package catalog

import (
	"bytes"
	"iter"

	"github.com/hupe1980/modelgo/codec"
)

// Dataset is the validated, immutable record set produced by one load.
//
// It preserves the source document's entry order and is safe for
// unsynchronized concurrent reads; nothing mutates it post-construction.
// Reloads build a fresh Dataset wholesale, never patch one in place.
type Dataset struct {
	ids  []string
	recs []*Record
	byID map[string]int
}

// Len returns the number of successfully loaded records.
func (d *Dataset) Len() int { return len(d.ids) }

// Get returns the record for the given model id.
func (d *Dataset) Get(id string) (*Record, bool) {
	i, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return d.recs[i], true
}

// IDs returns the model ids in dataset order.
func (d *Dataset) IDs() []string {
	out := make([]string, len(d.ids))
	copy(out, d.ids)
	return out
}

// All iterates (id, record) pairs in dataset order.
func (d *Dataset) All() iter.Seq2[string, *Record] {
	return func(yield func(string, *Record) bool) {
		for i, id := range d.ids {
			if !yield(id, d.recs[i]) {
				return
			}
		}
	}
}

// Encode re-serializes the dataset as a top-level JSON object in dataset
// order, merging each record's known fields with its overflow attributes.
// Unknown fields present at load time come back unchanged.
func (d *Dataset) Encode(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range d.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := c.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := c.Marshal(d.recs[i].entryMap())
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler using the default codec.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	return d.Encode(codec.Default)
}
