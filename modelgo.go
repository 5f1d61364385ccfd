package modelgo

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/modelgo/catalog"
	"github.com/hupe1980/modelgo/source"
)

// Open fetches a catalog document from the source, decodes it and loads it
// into an immutable Dataset.
//
// Entry-level validation problems do not fail Open; they are collected in
// the returned Report alongside a usable Dataset. Open fails only when the
// fetch fails or the document is not a top-level JSON object.
func Open(ctx context.Context, src source.Source, optFns ...Option) (*catalog.Dataset, *catalog.Report, error) {
	o := newOptions(optFns)

	start := time.Now()
	data, err := src.Fetch(ctx)
	o.metrics.RecordFetch(time.Since(start), len(data), err)
	o.logger.LogFetch(ctx, src.Name(), len(data), err)
	if err != nil {
		return nil, nil, fmt.Errorf("modelgo: fetch %s: %w", src.Name(), err)
	}

	ds, report, err := decode(ctx, data, o)
	if err != nil {
		return nil, nil, fmt.Errorf("modelgo: decode %s: %w", src.Name(), err)
	}
	return ds, report, nil
}

// Decode loads a catalog from bytes the caller already holds.
func Decode(data []byte, optFns ...Option) (*catalog.Dataset, *catalog.Report, error) {
	o := newOptions(optFns)
	ds, report, err := decode(context.Background(), data, o)
	if err != nil {
		return nil, nil, fmt.Errorf("modelgo: decode: %w", err)
	}
	return ds, report, nil
}

// Encode serializes a dataset back into the catalog document format,
// honoring WithCodec.
func Encode(ds *catalog.Dataset, optFns ...Option) ([]byte, error) {
	o := newOptions(optFns)
	return ds.Encode(o.codec)
}

func decode(ctx context.Context, data []byte, o *options) (*catalog.Dataset, *catalog.Report, error) {
	doc, err := catalog.DecodeDocument(data)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	ds, report := catalog.Load(doc)
	o.metrics.RecordLoad(ds.Len(), len(report.Errors), len(report.Warnings), time.Since(start))
	o.logger.LogLoad(ctx, ds.Len(), len(report.Errors), len(report.Warnings))

	return ds, report, nil
}
