package catalog

import "fmt"

// WarningCode classifies a recoverable validation finding.
type WarningCode string

const (
	// WarnFieldTypeMismatch marks an optional field whose value had the
	// wrong type; the field was treated as absent.
	WarnFieldTypeMismatch WarningCode = "field_type_mismatch"

	// WarnNegativeCost marks a cost field with a negative value; the
	// value was clamped to absent rather than trusted.
	WarnNegativeCost WarningCode = "negative_cost"

	// WarnDuplicateID marks an id that appeared more than once in the
	// source document; the last occurrence won.
	WarnDuplicateID WarningCode = "duplicate_id"

	// WarnContextWindow marks an entry whose input+output token limits
	// exceed its total limit. Real-world data is known to be
	// inconsistent here, so this is flagged but never rejected.
	WarnContextWindow WarningCode = "context_window"
)

// Warning is one recoverable finding against a single entry.
type Warning struct {
	Code    WarningCode
	Field   string
	Message string
}

func (w Warning) String() string {
	if w.Field == "" {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("%s (%s): %s", w.Code, w.Field, w.Message)
}

// Report collects per-entry warnings and errors from one load.
//
// Entry-level problems never abort a load: a populated report alongside a
// populated dataset is the normal partial-failure outcome.
type Report struct {
	// Warnings maps model id to the recoverable findings for that entry.
	Warnings map[string][]Warning

	// Errors maps model id to the fatal error that excluded the entry.
	Errors map[string]error
}

func newReport() *Report {
	return &Report{
		Warnings: make(map[string][]Warning),
		Errors:   make(map[string]error),
	}
}

func (r *Report) warn(id string, ws ...Warning) {
	if len(ws) == 0 {
		return
	}
	r.Warnings[id] = append(r.Warnings[id], ws...)
}

func (r *Report) fail(id string, err error) {
	r.Errors[id] = err
}

// HasErrors reports whether any entry was excluded from the dataset.
func (r *Report) HasErrors() bool { return len(r.Errors) > 0 }

// Clean reports whether the load produced no findings at all.
func (r *Report) Clean() bool { return len(r.Errors) == 0 && len(r.Warnings) == 0 }

// WarningsFor returns the warnings recorded against the given id.
func (r *Report) WarningsFor(id string) []Warning { return r.Warnings[id] }
