// Package export serializes externally built syntax trees into the
// tagged-variant form downstream tools parse against.
//
// The encoder dispatches on a node's kind within its family, wraps the
// node in a variant named after the kind, and fills a tuple whose
// declared size is the kind's resolved arity. Each ancestor kind in
// the taxonomy contributes its own fields, root first, so the field
// order and count are fixed by the tables in package ast rather than
// by per-kind encoding code.
//
// Encoding state is scoped to one Exporter: the identity table that
// virtualizes node addresses, the location cache behind the positional
// compression, and the writer's nesting stack. A second Export needs a
// second Exporter.
//
// # Usage
//
//	e, err := export.New(out,
//		export.WithBasePath("/src/project"),
//		export.WithDialect(atd.Yojson),
//	)
//	if err != nil { ... }
//	if err := e.Export(unit); err != nil { ... }
//
// # Related Packages
//
//   - github.com/astlib/astexport/ast holds the node model and kind
//     taxonomies.
//   - github.com/astlib/astexport/atd is the framing writer.
//   - github.com/astlib/astexport/schema renders the variant/arity
//     contract this package emits against.
package export
