package ast

import "fmt"

// TypeKind is the concrete kind of a type node. The serialized variant
// name is the kind name suffixed with "Type" (BuiltinType, PointerType,
// NoneType, ...).
type TypeKind int

const (
	// abstract anchors
	TypeRoot TypeKind = iota
	ArrayType
	FunctionTypeKind
	TagType

	// concrete kinds
	NoneType
	BuiltinType
	PointerType
	ParenType
	AtomicType
	BlockPointerType
	DecltypeType
	AdjustedType
	DecayedType
	ConstantArrayType
	IncompleteArrayType
	VariableArrayType
	FunctionProtoType
	FunctionNoProtoType
	RecordType
	EnumType
	TypedefType
)

var typeTaxonomy = newTaxonomy(TypeFamily, TypeRoot, map[TypeKind]kindEntry[TypeKind]{
	// type info object
	TypeRoot: {name: "Type", own: 1, abstract: true},
	// element type identity
	ArrayType: {name: "ArrayType", parent: TypeRoot, own: 1, abstract: true},
	// function info object (return type)
	FunctionTypeKind: {name: "FunctionType", parent: TypeRoot, own: 1, abstract: true},
	// declaring tag decl identity
	TagType: {name: "TagType", parent: TypeRoot, own: 1, abstract: true},

	NoneType:    {name: "NoneType", parent: TypeRoot, own: 0},
	BuiltinType: {name: "BuiltinType", parent: TypeRoot, own: 1},
	// the +1 on the child-bearing kinds is the child type identity
	PointerType:         {name: "PointerType", parent: TypeRoot, own: 1},
	ParenType:           {name: "ParenType", parent: TypeRoot, own: 1},
	AtomicType:          {name: "AtomicType", parent: TypeRoot, own: 1},
	BlockPointerType:    {name: "BlockPointerType", parent: TypeRoot, own: 1},
	DecltypeType:        {name: "DecltypeType", parent: TypeRoot, own: 1},
	AdjustedType:        {name: "AdjustedType", parent: TypeRoot, own: 1},
	DecayedType:         {name: "DecayedType", parent: AdjustedType, own: 0},
	ConstantArrayType:   {name: "ConstantArrayType", parent: ArrayType, own: 1},
	IncompleteArrayType: {name: "IncompleteArrayType", parent: ArrayType, own: 0},
	VariableArrayType:   {name: "VariableArrayType", parent: ArrayType, own: 0},
	FunctionProtoType:   {name: "FunctionProtoType", parent: FunctionTypeKind, own: 1},
	FunctionNoProtoType: {name: "FunctionNoProtoType", parent: FunctionTypeKind, own: 0},
	RecordType:          {name: "RecordType", parent: TagType, own: 0},
	EnumType:            {name: "EnumType", parent: TagType, own: 0},
	TypedefType:         {name: "TypedefType", parent: TypeRoot, own: 1},
})

func typeKindList() []TypeKind {
	return []TypeKind{
		TypeRoot, ArrayType, FunctionTypeKind, TagType,
		NoneType, BuiltinType, PointerType, ParenType, AtomicType,
		BlockPointerType, DecltypeType, AdjustedType, DecayedType,
		ConstantArrayType, IncompleteArrayType, VariableArrayType,
		FunctionProtoType, FunctionNoProtoType, RecordType, EnumType,
		TypedefType,
	}
}

// TypeKinds enumerates the concrete type kinds.
func TypeKinds() []TypeKind {
	return typeTaxonomy.Concrete(typeKindList())
}

func (k TypeKind) String() string {
	name, ok := typeTaxonomy.Name(k)
	if !ok {
		return fmt.Sprintf("TypeKind(%d)", int(k))
	}
	return name
}

func TypeArity(k TypeKind) (int, error) { return typeTaxonomy.Arity(k) }

func TypeAncestry(k TypeKind) ([]TypeKind, error) { return typeTaxonomy.Ancestry(k) }

// Type is a type node. Types form a graph, not a tree: child links are
// encoded by identity, so cycles through declarations are fine.
type Type struct {
	Kind TypeKind
	Raw  string // spelling of the unqualified type

	Desugared *Type // set when the desugared type differs from this one

	// Kind payloads.
	Child   *Type   // pointer, paren, atomic, block pointer, decltype, adjusted, array element, typedef underlying
	Builtin string  // BuiltinType kind name (Int, Char_S, Double, Void, ...)
	Size    int64   // ConstantArrayType element count
	Return  *Type   // function types
	Params  []*Type // FunctionProtoType
	Decl    *Decl   // tag and typedef types: the declaring declaration
}
