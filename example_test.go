package modelgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/modelgo"
	"github.com/hupe1980/modelgo/catalog"
	"github.com/hupe1980/modelgo/cost"
	"github.com/hupe1980/modelgo/query"
	"github.com/hupe1980/modelgo/source"
)

var catalogDocument = []byte(`{
	"gpt-4o": {
		"litellm_provider": "openai",
		"mode": "chat",
		"max_tokens": 16384,
		"input_cost_per_token": 2.5e-06,
		"output_cost_per_token": 1e-05,
		"supports_function_calling": true,
		"supports_vision": true
	},
	"claude-sonnet-4": {
		"litellm_provider": "anthropic",
		"mode": "chat",
		"max_tokens": 64000,
		"input_cost_per_token": 3e-06,
		"output_cost_per_token": 1.5e-05,
		"supports_function_calling": true
	},
	"text-embedding-3-small": {
		"litellm_provider": "openai",
		"mode": "embedding",
		"input_cost_per_token": 2e-08
	}
}`)

// Example demonstrates loading a catalog and reading a model's price.
func Example() {
	src := source.NewMemorySource("pricing", catalogDocument)

	ds, report, err := modelgo.Open(context.Background(), src)
	if err != nil {
		log.Fatal(err)
	}
	if report.HasErrors() {
		log.Printf("%d entries were excluded", len(report.Errors))
	}

	rec, _ := ds.Get("gpt-4o")
	perMillion, err := cost.PerMillionTokens(rec, catalog.CostInputToken)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s input: $%.2f per 1M tokens\n", rec.ID, perMillion)
	// Output: gpt-4o input: $2.50 per 1M tokens
}

// Example_query demonstrates filtering and ranking models.
func Example_query() {
	ds, _, err := modelgo.Decode(catalogDocument)
	if err != nil {
		log.Fatal(err)
	}

	chat := query.Filter(ds, query.And(
		query.ByMode(catalog.ModeChat),
		query.WithCapability("function_calling"),
	))
	ranked := query.SortBy(chat, query.CostKey(catalog.CostInputToken), query.Ascending)

	for _, m := range ranked {
		fmt.Println(m.ID)
	}
	// Output:
	// gpt-4o
	// claude-sonnet-4
}

// Example_estimate demonstrates pricing a single request.
func Example_estimate() {
	ds, _, err := modelgo.Decode(catalogDocument)
	if err != nil {
		log.Fatal(err)
	}

	rec, _ := ds.Get("claude-sonnet-4")
	total, err := cost.Estimate(rec, cost.Usage{
		InputTokens:  12000,
		OutputTokens: 800,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("request cost: $%.4f\n", total)
	// Output: request cost: $0.0480
}
