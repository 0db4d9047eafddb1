// Package purview models the polymorphic documents of the Purview scanning
// data plane: data sources, scans, scan rulesets, credentials, integration
// runtimes and classification rules, together with their list envelopes.
//
// Every family is discriminated by a "kind" field. Variants are generated
// from catalog.yaml; the shared base types and properties live in the
// hand-written files of this package.
package purview

//go:generate go run ../../../cmd/azmodels generate catalog.yaml -o .
