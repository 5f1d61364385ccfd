// Package source acquires raw catalog documents.
//
// The loader itself never performs I/O; a Source is the external
// collaborator that hands it already-fetched bytes. Implementations cover
// the places community catalogs actually live: local files, HTTP
// endpoints, S3 and S3-compatible object stores, plus a caching decorator
// for offline-tolerant refresh loops.
package source

import (
	"context"
	"fmt"
	"os"
)

// ErrNotFound is returned when the document does not exist at the source.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Source fetches one raw catalog document.
//
// Fetch returns the complete document bytes; catalogs are small (hundreds
// to low thousands of entries) so streaming is not worth its complexity.
// Implementations must be safe for concurrent use.
type Source interface {
	// Fetch returns the current document bytes.
	Fetch(ctx context.Context) ([]byte, error)

	// Name identifies the source for logs and error messages.
	Name() string
}

// MemorySource serves a fixed in-memory document. Primarily for tests and
// for embedding a vendored catalog snapshot into a binary.
type MemorySource struct {
	name string
	data []byte
}

// NewMemorySource creates a source serving the given bytes.
func NewMemorySource(name string, data []byte) *MemorySource {
	copied := make([]byte, len(data))
	copy(copied, data)
	return &MemorySource{name: name, data: copied}
}

// Fetch returns a copy of the held bytes.
func (s *MemorySource) Fetch(_ context.Context) ([]byte, error) {
	if s.data == nil {
		return nil, ErrNotFound
	}
	copied := make([]byte, len(s.data))
	copy(copied, s.data)
	return copied, nil
}

// Name identifies the source.
func (s *MemorySource) Name() string { return "memory://" + s.name }

// LocalSource reads the document from the local file system.
type LocalSource struct {
	path string
}

// NewLocalSource creates a source reading from the given path.
func NewLocalSource(path string) *LocalSource {
	return &LocalSource{path: path}
}

// Fetch reads the file.
func (s *LocalSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, err
	}
	return data, nil
}

// Name identifies the source.
func (s *LocalSource) Name() string { return "file://" + s.path }
