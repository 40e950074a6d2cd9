package export

import (
	"fmt"

	"github.com/astlib/astexport/ast"
)

// emitAttrs encodes a declaration's attributes as a tagged list. Each
// attribute is a variant named after its kind wrapping a small record;
// parameters stay as their string renderings, with sub-node parameters
// flattened to "?" by the tree builder.
func (e *Exporter) emitAttrs(attrs []*ast.Attr) {
	e.w.BeginArray(len(attrs))
	for _, a := range attrs {
		if !a.Kind.Known() {
			e.fail(fmt.Errorf("%w: attribute kind %d", ErrEmit, int(a.Kind)))
			return
		}
		e.w.BeginVariant(a.Kind.String())
		n := 3
		if a.Inherited {
			n++
		}
		if a.Implicit {
			n++
		}
		e.w.BeginObject(n)
		e.w.Key("pointer")
		e.w.String(tok(e.idents, a))
		e.w.Key("source_range")
		e.emitRange(a.Range)
		e.w.Key("parameters")
		e.w.BeginArray(len(a.Params))
		for _, p := range a.Params {
			e.w.String(p)
		}
		e.w.EndArray()
		e.w.Flag("is_inherited", a.Inherited)
		e.w.Flag("is_implicit", a.Implicit)
		e.w.EndObject()
		e.w.EndVariant()
	}
	e.w.EndArray()
}
