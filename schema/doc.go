// Package schema enumerates the output contract of the exporter: for
// each node family, the named variants a consumer can meet and the
// exact field count behind each one.
//
// The enumeration is derived from the taxonomy tables in package ast,
// so it cannot drift from what the encoder emits. Downstream parsers
// generate against this listing; a changed arity is a breaking change.
//
// # Related Packages
//
//   - github.com/astlib/astexport/ast defines the taxonomies this
//     package reads.
//   - github.com/astlib/astexport/export emits values conforming to
//     this contract.
package schema
