package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/singleflight"
)

// snapshotMagic identifies a cache snapshot file.
var snapshotMagic = []byte("MGSN")

// CachingSource decorates another Source with an on-disk snapshot of the
// last good fetch.
//
// A fresh snapshot (younger than MaxAge) is served without touching the
// inner source. When the inner fetch fails and a snapshot exists, the
// stale snapshot is served instead, so a flaky upstream never takes a
// refresh loop down. Concurrent refreshes of the same document collapse
// into a single inner fetch.
type CachingSource struct {
	inner      Source
	path       string
	maxAge     time.Duration
	compressor compressor
	group      singleflight.Group
}

// CachingOption configures a CachingSource.
type CachingOption func(*CachingSource)

// WithMaxAge sets how long a snapshot is considered fresh.
// Zero means a snapshot is never fresh (inner fetch always attempted).
func WithMaxAge(d time.Duration) CachingOption {
	return func(s *CachingSource) { s.maxAge = d }
}

// WithCompression selects the snapshot compression by name
// ("none", "zstd" or "lz4"). Unknown names keep the default.
func WithCompression(name string) CachingOption {
	return func(s *CachingSource) {
		if c, ok := compressorByName(name); ok {
			s.compressor = c
		}
	}
}

// NewCachingSource creates a caching decorator around inner, storing the
// snapshot in dir. Defaults: 1 hour freshness, zstd compression.
func NewCachingSource(inner Source, dir string, optFns ...CachingOption) *CachingSource {
	s := &CachingSource{
		inner:      inner,
		path:       filepath.Join(dir, "catalog.snap"),
		maxAge:     time.Hour,
		compressor: zstdCompressor{},
	}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

// Fetch returns the snapshot if fresh, otherwise refreshes from the inner
// source, falling back to a stale snapshot when the refresh fails.
func (s *CachingSource) Fetch(ctx context.Context) ([]byte, error) {
	if s.maxAge > 0 {
		if data, ok := s.readSnapshot(s.maxAge); ok {
			return data, nil
		}
	}

	v, err, _ := s.group.Do(s.path, func() (any, error) {
		data, err := s.inner.Fetch(ctx)
		if err != nil {
			// Stale beats nothing when upstream is unreachable.
			if stale, ok := s.readSnapshot(0); ok {
				return stale, nil
			}
			return nil, fmt.Errorf("fetch %s: %w", s.inner.Name(), err)
		}
		if werr := s.writeSnapshot(data); werr != nil {
			// The fetch itself succeeded; a broken cache dir must not
			// fail the caller.
			return data, nil
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Name identifies the decorated source.
func (s *CachingSource) Name() string { return s.inner.Name() }

// readSnapshot returns the snapshot payload if one exists and, when maxAge
// is non-zero, is younger than maxAge.
func (s *CachingSource) readSnapshot(maxAge time.Duration) ([]byte, bool) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return nil, false
	}
	// maxAge 0 means "any age will do"; used for the stale fallback.
	if maxAge > 0 && time.Since(fi.ModTime()) >= maxAge {
		return nil, false
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}
	payload, err := decodeSnapshot(raw)
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (s *CachingSource) writeSnapshot(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	encoded, err := encodeSnapshot(data, s.compressor)
	if err != nil {
		return err
	}
	// Write-then-rename keeps readers from observing a torn snapshot.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// encodeSnapshot frames the payload as: magic, name length, compressor
// name, compressed payload.
func encodeSnapshot(data []byte, c compressor) ([]byte, error) {
	compressed, err := c.Compress(data)
	if err != nil {
		return nil, err
	}
	name := c.Name()
	out := make([]byte, 0, len(snapshotMagic)+1+len(name)+len(compressed))
	out = append(out, snapshotMagic...)
	out = append(out, byte(len(name)))
	out = append(out, name...)
	out = append(out, compressed...)
	return out, nil
}

func decodeSnapshot(raw []byte) ([]byte, error) {
	if len(raw) < len(snapshotMagic)+1 {
		return nil, errors.New("snapshot too short")
	}
	if string(raw[:len(snapshotMagic)]) != string(snapshotMagic) {
		return nil, errors.New("bad snapshot magic")
	}
	raw = raw[len(snapshotMagic):]
	nameLen := int(raw[0])
	raw = raw[1:]
	if len(raw) < nameLen {
		return nil, errors.New("truncated snapshot header")
	}
	name := string(raw[:nameLen])
	c, ok := compressorByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown snapshot compressor %q", name)
	}
	return c.Decompress(raw[nameLen:])
}
