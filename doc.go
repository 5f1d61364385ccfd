// Package modelgo loads, validates and queries AI model pricing catalogs.
//
// The upstream data is a community-maintained JSON object mapping model
// identifiers to pricing and capability metadata (token costs, context
// window sizes, capability flags, provider tags). Modelgo turns that
// document into an immutable, queryable dataset.
//
// # Quick Start
//
// Local file:
//
//	ctx := context.Background()
//	ds, report, _ := modelgo.Open(ctx, source.NewLocalSource("./prices.json"))
//
// Hosted catalog with an on-disk cache:
//
//	src := source.NewCachingSource(source.NewHTTPSource(url), "/var/cache/modelgo")
//	ds, report, _ := modelgo.Open(ctx, src)
//
// # Querying
//
//	cheap := query.SortBy(
//	    query.Filter(ds, query.And(
//	        query.ByProvider("anthropic"),
//	        query.WithCapability("function_calling"),
//	    )),
//	    query.CostKey(catalog.CostInputToken),
//	    query.Ascending,
//	)
//	best := query.TopN(cheap, 5)
//
// # Cost math
//
//	perMillion, err := cost.PerMillionTokens(rec, catalog.CostInputToken)
//
// Costs absent from a record surface as errors, never as silent zeros;
// in a pricing context an unknown price must not read as free.
//
// # Tolerant loading
//
// Community data is heterogeneous. A malformed entry fails alone, mistyped
// optional fields degrade to warnings, and unknown fields are preserved
// verbatim so a loaded catalog re-serializes losslessly. The Report
// returned alongside every Dataset carries the findings.
package modelgo
