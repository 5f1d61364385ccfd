// Package query provides filter, sort and selection operations over a
// loaded catalog dataset.
//
// Every operation is a pure function of its inputs: the dataset is never
// mutated, nothing is cached, and re-running a query over the same dataset
// with the same arguments always produces the same output.
package query
