package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordInvalid is the sentinel wrapped by all entry-fatal
	// validation errors.
	ErrRecordInvalid = errors.New("record invalid")

	// ErrMalformedDocument is returned when the raw bytes are not a
	// top-level JSON object. Unlike entry-level errors this fails the
	// whole decode, since there is no per-entry structure to salvage.
	ErrMalformedDocument = errors.New("malformed document")
)

// RecordInvalidError indicates an entry that is not a well-formed object.
// It is fatal to that entry only; the surrounding load continues.
type RecordInvalidError struct {
	ID     string
	Reason string
}

func (e *RecordInvalidError) Error() string {
	return fmt.Sprintf("record %q invalid: %s", e.ID, e.Reason)
}

func (e *RecordInvalidError) Unwrap() error { return ErrRecordInvalid }
