// Package atd provides a streaming writer for the two framing dialects
// used by the exporter, with declared-size checking on every container.
//
// A Writer is a stack machine. Containers are opened with a declared
// size and closed explicitly; writing more or fewer values than
// declared is a hard error. This catches emitter bugs at the point of
// the mistake rather than in a downstream parser.
//
// # Usage
//
//	w := atd.NewWriter(out, atd.WithDialect(atd.Yojson))
//	w.BeginVariant("FunctionDecl")
//	w.BeginTuple(4)
//	...
//	w.EndTuple()
//	w.EndVariant()
//	err := w.Close()
//
// # Related Packages
//
//   - github.com/astlib/astexport/export builds node trees on top of
//     this writer.
//   - github.com/astlib/astexport/schema describes the variant shapes
//     the writer will be asked to produce.
package atd
