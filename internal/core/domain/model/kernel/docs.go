// Package kernel contains the shared value objects of the packaging domain:
// entity identifiers and the document numbers assigned to orders and labels.
//
// All value objects in this package are immutable and validate themselves on
// construction. Zero values are invalid and are rejected by Validate, which
// prevents accidental use of uninitialized identifiers in aggregates.
package kernel
