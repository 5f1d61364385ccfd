package catalog

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// DecodeDocument parses raw catalog bytes into an ordered RawDocument.
//
// It streams tokens instead of decoding into a map so that entry order and
// duplicate keys survive; both matter to Load's semantics. Values are left
// undecoded beyond the generic any shape; per-entry validation happens in
// ValidateEntry.
func DecodeDocument(data []byte) (RawDocument, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top level must be an object, got %v", ErrMalformedDocument, tok)
	}

	var doc RawDocument
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		id, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is not a string: %v", ErrMalformedDocument, tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", ErrMalformedDocument, id, err)
		}
		doc = append(doc, RawEntry{ID: id, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	// The document must be exactly one object; anything after the closing
	// brace is a malformed catalog, not a second one.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after top-level object", ErrMalformedDocument)
	}

	return doc, nil
}
