package ast

import "fmt"

// DeclKind is the concrete kind of a declaration node. The serialized
// variant name is the kind name suffixed with "Decl" (FunctionDecl,
// RecordDecl, ...), matching the schema enumeration.
type DeclKind int

const (
	// abstract anchors
	DeclRoot DeclKind = iota
	NamedDecl
	ValueDecl
	DeclaratorDecl
	TypeDeclKind
	TagDecl

	// concrete kinds
	EmptyDecl
	ImportDecl
	FileScopeAsmDecl
	TranslationUnitDecl
	LabelDecl
	NamespaceDecl
	EnumConstantDecl
	IndirectFieldDecl
	FunctionDecl
	FieldDecl
	VarDecl
	ParmVarDecl
	TypedefDecl
	RecordDecl
	EnumDecl
)

var declTaxonomy = newTaxonomy(DeclFamily, DeclRoot, map[DeclKind]kindEntry[DeclKind]{
	// decl info object
	DeclRoot: {name: "Decl", own: 1, abstract: true},
	// named decl info object
	NamedDecl: {name: "NamedDecl", parent: DeclRoot, own: 1, abstract: true},
	// qualified type
	ValueDecl:      {name: "ValueDecl", parent: NamedDecl, own: 1, abstract: true},
	DeclaratorDecl: {name: "DeclaratorDecl", parent: ValueDecl, own: 0, abstract: true},
	// declared type as variant, declared type identity
	TypeDeclKind: {name: "TypeDecl", parent: NamedDecl, own: 2, abstract: true},
	// member listing, scope info
	TagDecl: {name: "TagDecl", parent: TypeDeclKind, own: 2, abstract: true},

	EmptyDecl:        {name: "EmptyDecl", parent: DeclRoot, own: 0},
	ImportDecl:       {name: "ImportDecl", parent: DeclRoot, own: 1},
	FileScopeAsmDecl: {name: "FileScopeAsmDecl", parent: DeclRoot, own: 1},
	// member listing, scope info, type table
	TranslationUnitDecl: {name: "TranslationUnitDecl", parent: DeclRoot, own: 3},
	LabelDecl:           {name: "LabelDecl", parent: NamedDecl, own: 0},
	// member listing, scope info, namespace info
	NamespaceDecl:     {name: "NamespaceDecl", parent: NamedDecl, own: 3},
	EnumConstantDecl:  {name: "EnumConstantDecl", parent: ValueDecl, own: 1},
	IndirectFieldDecl: {name: "IndirectFieldDecl", parent: ValueDecl, own: 1},
	FunctionDecl:      {name: "FunctionDecl", parent: DeclaratorDecl, own: 1},
	FieldDecl:         {name: "FieldDecl", parent: DeclaratorDecl, own: 1},
	VarDecl:           {name: "VarDecl", parent: DeclaratorDecl, own: 1},
	ParmVarDecl:       {name: "ParmVarDecl", parent: VarDecl, own: 0},
	TypedefDecl:       {name: "TypedefDecl", parent: TypeDeclKind, own: 1},
	RecordDecl:        {name: "RecordDecl", parent: TagDecl, own: 1},
	EnumDecl:          {name: "EnumDecl", parent: TagDecl, own: 1},
})

func declKindList() []DeclKind {
	return []DeclKind{
		DeclRoot, NamedDecl, ValueDecl, DeclaratorDecl, TypeDeclKind, TagDecl,
		EmptyDecl, ImportDecl, FileScopeAsmDecl, TranslationUnitDecl,
		LabelDecl, NamespaceDecl, EnumConstantDecl, IndirectFieldDecl,
		FunctionDecl, FieldDecl, VarDecl, ParmVarDecl, TypedefDecl,
		RecordDecl, EnumDecl,
	}
}

// DeclKinds enumerates the concrete declaration kinds.
func DeclKinds() []DeclKind {
	return declTaxonomy.Concrete(declKindList())
}

// String returns the serialized variant name of the kind.
func (k DeclKind) String() string {
	name, ok := declTaxonomy.Name(k)
	if !ok {
		return fmt.Sprintf("DeclKind(%d)", int(k))
	}
	return name
}

// DeclArity resolves the total serialized field count of k, ancestors
// included.
func DeclArity(k DeclKind) (int, error) { return declTaxonomy.Arity(k) }

// DeclAncestry returns k's ancestor chain in root-to-leaf order, k last.
func DeclAncestry(k DeclKind) ([]DeclKind, error) { return declTaxonomy.Ancestry(k) }

// IsNamed reports whether k descends from the named-declaration anchor.
func (k DeclKind) IsNamed() bool { return declDescends(k, NamedDecl) }

// IsValue reports whether k descends from the value-declaration anchor,
// i.e. whether nodes of this kind carry a qualified type.
func (k DeclKind) IsValue() bool { return declDescends(k, ValueDecl) }

func declDescends(k, anchor DeclKind) bool {
	chain, err := declTaxonomy.Ancestry(k)
	if err != nil {
		return false
	}
	for _, c := range chain {
		if c == anchor {
			return true
		}
	}
	return false
}

// Name is the identifier of a named declaration. Qual is the qualified
// path in innermost-first order ("c", "b", "a" for a::b::c); when empty
// it is derived from Word alone.
type Name struct {
	Word string
	Qual []string
}

func (n Name) QualPath() []string {
	if len(n.Qual) > 0 {
		return n.Qual
	}
	return []string{n.Word}
}

// QualType is a use of a type: the raw spelling, the desugared spelling
// when it differs, and the identity of the canonical type node.
type QualType struct {
	Raw       string
	Desugared string
	Type      *Type
}

// Scope carries the direct members of a declaration context together
// with its external-storage markers.
type Scope struct {
	Members          []*Decl
	ExternalLexical  bool
	ExternalVisible  bool
}

// NamespaceInfo is the namespace-specific payload.
type NamespaceInfo struct {
	Inline   bool
	Original *Decl // nil when this is the original namespace
}

// FunctionInfo is the function-specific payload.
type FunctionInfo struct {
	Storage       string // "" when unspecified
	Inline        bool
	Virtual       bool
	ModulePrivate bool
	Pure          bool
	Deleted       bool
	Params        []*Decl
	Body          *Stmt // nil when this declaration has no body
}

// FieldInfo is the record-field payload.
type FieldInfo struct {
	Mutable       bool
	ModulePrivate bool
	BitWidth      *Stmt
	Init          *Stmt
}

// TLSKind is a variable's thread-local storage form.
type TLSKind int

const (
	TLSNone TLSKind = iota
	TLSStatic
	TLSDynamic
)

func (t TLSKind) String() string {
	switch t {
	case TLSStatic:
		return "Tls_static"
	case TLSDynamic:
		return "Tls_dynamic"
	default:
		return "Tls_none"
	}
}

// VarInfo is the variable payload, shared by VarDecl and ParmVarDecl.
type VarInfo struct {
	Storage       string
	TLS           TLSKind
	ModulePrivate bool
	NRVO          bool
	Init          *Stmt
}

// PrevKind distinguishes the two redeclaration links.
type PrevKind int

const (
	PrevNone PrevKind = iota
	PrevFirst
	PrevPrevious
)

// Decl is a declaration node. Kind selects which payload fields are
// meaningful; everything else is shared declaration state. Decls are
// one-struct fat nodes on purpose: the encoder dispatches on Kind, and a
// closed struct keeps the externally built tree trivially shareable.
type Decl struct {
	Kind  DeclKind
	Range SourceRange

	// Shared declaration info.
	LexicalParent *Decl // set only when lexical and semantic parents differ
	PrevKind      PrevKind
	Prev          *Decl // redeclaration link target, nil iff PrevKind is PrevNone
	OwningModule  string
	Hidden        bool
	Implicit      bool
	Used          bool
	Referenced    bool
	Invalid       bool
	Attrs         []*Attr
	Comment       *Comment

	Name Name      // named decls
	QT   *QualType // value decls

	Scope *Scope // decl contexts: translation unit, namespace, tag

	// Kind payloads.
	Module    string         // ImportDecl
	Asm       string         // FileScopeAsmDecl
	TypeTable []*Type        // TranslationUnitDecl
	Namespace *NamespaceInfo // NamespaceDecl
	Init      *Stmt          // EnumConstantDecl
	Chain     []*Decl        // IndirectFieldDecl, referenced decls
	Function  *FunctionInfo  // FunctionDecl
	Field     *FieldInfo     // FieldDecl
	Var       *VarInfo       // VarDecl, ParmVarDecl
	OfType    *Type          // type decls: the declared type
	// Tag / typedef payloads.
	ModulePrivate bool
	Complete      bool   // RecordDecl
	EnumScope     string // EnumDecl: "", "Class" or "Struct"
}

// File returns the resolved file the declaration originates from.
func (d *Decl) File() string {
	return d.Range.Begin.Resolve().File
}
