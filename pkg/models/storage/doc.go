// Package storage models the storage account surface of the Storage
// management API, version 2021-06-01.
//
// Storage has no polymorphic resources. Its enums are open: a value added by
// a newer service version decodes, reports IsUnknown, and encodes back
// verbatim. Every list envelope follows its next link even when the link is
// an empty string; see the Review notes on the list policies.
package storage

//go:generate go run ../../../cmd/azmodels generate catalog.yaml -o .
