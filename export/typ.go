package export

import (
	"fmt"

	"github.com/astlib/astexport/ast"
)

type typeVisit func(e *Exporter, t *ast.Type)

var typeVisits = map[ast.TypeKind]typeVisit{
	ast.TypeRoot:          (*Exporter).emitTypeInfo,
	ast.BuiltinType:       (*Exporter).emitBuiltinType,
	ast.PointerType:       (*Exporter).emitChildType,
	ast.ParenType:         (*Exporter).emitChildType,
	ast.AtomicType:        (*Exporter).emitChildType,
	ast.BlockPointerType:  (*Exporter).emitChildType,
	ast.DecltypeType:      (*Exporter).emitChildType,
	ast.AdjustedType:      (*Exporter).emitChildType,
	ast.ArrayType:         (*Exporter).emitChildType,
	ast.ConstantArrayType: (*Exporter).emitArraySize,
	ast.FunctionTypeKind:  (*Exporter).emitReturnType,
	ast.FunctionProtoType: (*Exporter).emitParamTypes,
	ast.TagType:           (*Exporter).emitTagTypeRef,
	ast.TypedefType:       (*Exporter).emitTypedefType,
}

// encodeType writes t by value. Child links go out as identity tokens
// rather than nested encodings: types form a graph, and the translation
// unit's type table is where each one appears in full.
func (e *Exporter) encodeType(t *ast.Type) {
	if t == nil {
		t = ast.NilType
	}
	if !e.enter() {
		return
	}
	defer e.leave()
	arity, err := ast.TypeArity(t.Kind)
	if err != nil {
		e.fail(err)
		return
	}
	chain, err := ast.TypeAncestry(t.Kind)
	if err != nil {
		e.fail(err)
		return
	}
	if t.Kind.Abstract() {
		e.fail(fmt.Errorf("%w: abstract %s", ErrEmit, t.Kind))
		return
	}
	e.w.BeginVariant(t.Kind.String())
	e.w.BeginTuple(arity)
	for _, k := range chain {
		fn := typeVisits[k]
		if fn == nil {
			if ast.TypeOwn(k) > 0 {
				e.fail(fmt.Errorf("%w: %s", ErrEmit, k))
				return
			}
			continue
		}
		fn(e, t)
	}
	e.w.EndTuple()
	e.w.EndVariant()
}

func (e *Exporter) emitTypeInfo(t *ast.Type) {
	n := 2
	if t.Desugared != nil {
		n++
	}
	e.w.BeginObject(n)
	e.w.Key("pointer")
	e.w.String(tok(e.idents, t))
	e.w.Key("raw")
	e.w.String(t.Raw)
	if t.Desugared != nil {
		e.w.Key("desugared_type")
		e.w.String(tok(e.idents, t.Desugared))
	}
	e.w.EndObject()
}

func (e *Exporter) emitBuiltinType(t *ast.Type) {
	e.w.Variant(t.Builtin)
}

func (e *Exporter) emitChildType(t *ast.Type) {
	e.w.String(tok(e.idents, t.Child))
}

func (e *Exporter) emitArraySize(t *ast.Type) {
	e.w.Int(t.Size)
}

func (e *Exporter) emitReturnType(t *ast.Type) {
	e.w.String(tok(e.idents, t.Return))
}

func (e *Exporter) emitParamTypes(t *ast.Type) {
	e.w.BeginArray(len(t.Params))
	for _, p := range t.Params {
		e.w.String(tok(e.idents, p))
	}
	e.w.EndArray()
}

func (e *Exporter) emitTagTypeRef(t *ast.Type) {
	e.w.String(tok(e.idents, t.Decl))
}

func (e *Exporter) emitTypedefType(t *ast.Type) {
	e.w.BeginObject(2)
	e.w.Key("decl_ptr")
	e.w.String(tok(e.idents, t.Decl))
	e.w.Key("child_type")
	e.w.String(tok(e.idents, t.Child))
	e.w.EndObject()
}
