// Package synapse models the Kusto pool surface of the Synapse management
// API.
//
// Data connections and databases are discriminated by an open "kind" enum:
// a kind this version does not know decodes into an Unknown variant that
// keeps the raw kind and properties, so the document encodes back
// unchanged. Kusto list operations return a single page; only the
// operations list carries a next link.
package synapse

//go:generate go run ../../../cmd/azmodels generate catalog.yaml -o .
