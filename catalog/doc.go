// Package catalog loads and validates model pricing/capability catalogs.
//
// A catalog is a flat JSON object mapping model identifiers to metadata
// entries (token costs, context window limits, capability flags). The data
// is community-maintained and heterogeneous, so validation is deliberately
// tolerant: a malformed entry fails alone, a mistyped optional field
// degrades to a warning, and unknown fields are preserved verbatim so the
// document round-trips losslessly.
//
// The Dataset produced by Load is immutable and may be read concurrently
// without synchronization.
package catalog
