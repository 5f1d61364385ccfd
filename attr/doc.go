// Package attr provides the small typed value model used for raw catalog
// entries and for the overflow attributes a record carries after validation.
//
// It uses Go 1.24's unique package to intern strings, which keeps memory
// usage low for the highly repetitive values found in community-maintained
// model catalogs (provider names, mode strings, URLs).
package attr
