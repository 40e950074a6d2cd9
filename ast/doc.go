// Package ast holds the node model the exporter consumes: four node
// families (declarations, statements and expressions, types, documentation
// comments), each with its own kind taxonomy declared as data.
//
// Nodes are built by an external front end and are treated as immutable
// here. A node's family and kind are fixed at construction; the exporter
// only reads them.
//
// The taxonomy tables map every kind to its parent kind and to the number
// of serialized fields the kind contributes on top of its ancestors. The
// total field count of a kind (its arity) is the fold of those counts over
// the ancestor chain, and is the schema contract downstream consumers
// parse against.
//
// # Related Packages
//
//   - github.com/astlib/astexport/export - encodes ast nodes
//   - github.com/astlib/astexport/schema - renders the taxonomy enumeration
package ast
