package modelgo

import (
	"github.com/hupe1980/modelgo/catalog"
	"github.com/hupe1980/modelgo/source"
)

// Re-exported sentinels so callers matching errors from Open do not need
// to import the subpackages.
var (
	// ErrNotFound indicates the document does not exist at the source.
	ErrNotFound = source.ErrNotFound

	// ErrMalformedDocument indicates the fetched bytes are not a
	// top-level JSON object.
	ErrMalformedDocument = catalog.ErrMalformedDocument
)
