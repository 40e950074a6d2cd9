package export

import (
	"fmt"

	"github.com/astlib/astexport/ast"
)

type declVisit func(e *Exporter, d *ast.Decl)

// declVisits pairs each declaration kind with the routine emitting its
// own fields. A kind with a zero own-count needs no entry. The routine
// for an ancestor runs before the routine for its descendants, so
// fields appear in ancestor-first order and the total matches the
// resolved arity.
//
// The table is filled in init: the scope emitters recurse back into
// encodeDecl, so a literal initializer would cycle.
var declVisits map[ast.DeclKind]declVisit

func init() {
	declVisits = map[ast.DeclKind]declVisit{
		ast.DeclRoot:            (*Exporter).emitDeclInfo,
		ast.NamedDecl:           (*Exporter).emitDeclName,
		ast.ValueDecl:           (*Exporter).emitDeclType,
		ast.TypeDeclKind:        (*Exporter).emitTypeDecl,
		ast.TagDecl:             (*Exporter).emitTagDecl,
		ast.ImportDecl:          (*Exporter).emitImportDecl,
		ast.FileScopeAsmDecl:    (*Exporter).emitAsmDecl,
		ast.TranslationUnitDecl: (*Exporter).emitTranslationUnitDecl,
		ast.NamespaceDecl:       (*Exporter).emitNamespaceDecl,
		ast.EnumConstantDecl:    (*Exporter).emitEnumConstantDecl,
		ast.IndirectFieldDecl:   (*Exporter).emitIndirectFieldDecl,
		ast.FunctionDecl:        (*Exporter).emitFunctionDecl,
		ast.FieldDecl:           (*Exporter).emitFieldDecl,
		ast.VarDecl:             (*Exporter).emitVarDecl,
		ast.TypedefDecl:         (*Exporter).emitTypedefDecl,
		ast.RecordDecl:          (*Exporter).emitRecordDecl,
		ast.EnumDecl:            (*Exporter).emitEnumDecl,
	}
}

// encodeDecl writes d by value: a variant tagged with the kind name
// around a tuple of exactly the kind's arity, filled by the ancestor
// chain's routines in root-to-leaf order. A nil d encodes the shared
// empty-declaration sentinel.
func (e *Exporter) encodeDecl(d *ast.Decl) {
	if d == nil {
		d = ast.NilDecl
	}
	if !e.enter() {
		return
	}
	defer e.leave()
	arity, err := ast.DeclArity(d.Kind)
	if err != nil {
		e.fail(err)
		return
	}
	chain, err := ast.DeclAncestry(d.Kind)
	if err != nil {
		e.fail(err)
		return
	}
	if d.Kind.Abstract() {
		e.fail(fmt.Errorf("%w: abstract %s", ErrEmit, d.Kind))
		return
	}
	e.w.BeginVariant(d.Kind.String())
	e.w.BeginTuple(arity)
	for _, k := range chain {
		fn := declVisits[k]
		if fn == nil {
			if ast.DeclOwn(k) > 0 {
				e.fail(fmt.Errorf("%w: %s", ErrEmit, k))
				return
			}
			continue
		}
		fn(e, d)
	}
	e.w.EndTuple()
	e.w.EndVariant()
}

func (e *Exporter) emitDeclInfo(d *ast.Decl) {
	n := 3 // pointer, source_range, attributes
	if d.LexicalParent != nil {
		n++
	}
	if d.PrevKind != ast.PrevNone {
		n++
	}
	if d.OwningModule != "" {
		n++
	}
	for _, f := range []bool{d.Hidden, d.Implicit, d.Used, d.Referenced, d.Invalid} {
		if f {
			n++
		}
	}
	if d.Comment != nil {
		n++
	}
	e.w.BeginObject(n)
	e.w.Key("pointer")
	e.w.String(tok(e.idents, d))
	if d.LexicalParent != nil {
		e.w.Key("parent_pointer")
		e.w.String(tok(e.idents, d.LexicalParent))
	}
	if d.PrevKind != ast.PrevNone {
		tag := "First"
		if d.PrevKind == ast.PrevPrevious {
			tag = "Previous"
		}
		e.w.Key("previous_decl")
		e.w.BeginVariant(tag)
		e.w.String(tok(e.idents, d.Prev))
		e.w.EndVariant()
	}
	e.w.Key("source_range")
	e.emitRange(d.Range)
	if d.OwningModule != "" {
		e.w.Key("owning_module")
		e.w.String(d.OwningModule)
	}
	e.w.Flag("is_hidden", d.Hidden)
	e.w.Flag("is_implicit", d.Implicit)
	e.w.Flag("is_used", d.Used)
	e.w.Flag("is_this_declaration_referenced", d.Referenced)
	e.w.Flag("is_invalid_decl", d.Invalid)
	e.w.Key("attributes")
	e.emitAttrs(d.Attrs)
	if d.Comment != nil {
		e.w.Key("full_comment")
		e.encodeComment(d.Comment)
	}
	e.w.EndObject()
}

func (e *Exporter) emitDeclName(d *ast.Decl) {
	e.emitName(d.Name)
}

func (e *Exporter) emitName(n ast.Name) {
	path := n.QualPath()
	e.w.BeginObject(2)
	e.w.Key("name")
	e.w.String(n.Word)
	e.w.Key("qual_name")
	e.w.BeginArray(len(path))
	for _, p := range path {
		e.w.String(p)
	}
	e.w.EndArray()
	e.w.EndObject()
}

func (e *Exporter) emitDeclType(d *ast.Decl) {
	e.emitQualType(d.QT)
}

func (e *Exporter) emitQualType(qt *ast.QualType) {
	var (
		raw, desugared string
		t              *ast.Type
	)
	if qt != nil {
		raw, desugared, t = qt.Raw, qt.Desugared, qt.Type
	}
	n := 2
	if desugared != "" {
		n++
	}
	e.w.BeginObject(n)
	e.w.Key("raw")
	e.w.String(raw)
	if desugared != "" {
		e.w.Key("desugared")
		e.w.String(desugared)
	}
	e.w.Key("type_ptr")
	e.w.String(tok(e.idents, t))
	e.w.EndObject()
}

// emitDeclRef writes the by-reference form of a declaration: enough to
// resolve it against its by-value encoding elsewhere, never recursing.
func (e *Exporter) emitDeclRef(d *ast.Decl) {
	named := d.Kind.IsNamed()
	n := 2
	if named {
		n++
	}
	if d.Hidden {
		n++
	}
	if d.QT != nil {
		n++
	}
	e.w.BeginObject(n)
	e.w.Key("kind")
	e.w.Variant(d.Kind.String())
	e.w.Key("decl_pointer")
	e.w.String(tok(e.idents, d))
	if named {
		e.w.Key("name")
		e.emitName(d.Name)
	}
	e.w.Flag("is_hidden", d.Hidden)
	if d.QT != nil {
		e.w.Key("qual_type")
		e.emitQualType(d.QT)
	}
	e.w.EndObject()
}

// emitMembers lists a scope's direct members by value, consulting the
// traversal filter for each. This listing is the only place a
// declaration is encoded by value.
func (e *Exporter) emitMembers(d *ast.Decl) {
	var members []*ast.Decl
	if d.Scope != nil {
		for _, m := range d.Scope.Members {
			keep, err := e.keepMember(m)
			if err != nil {
				e.fail(err)
				return
			}
			if keep {
				members = append(members, m)
			}
		}
	}
	e.w.BeginArray(len(members))
	for _, m := range members {
		e.encodeDecl(m)
	}
	e.w.EndArray()
}

func (e *Exporter) emitScopeInfo(d *ast.Decl) {
	var lex, vis bool
	if d.Scope != nil {
		lex, vis = d.Scope.ExternalLexical, d.Scope.ExternalVisible
	}
	n := 0
	if lex {
		n++
	}
	if vis {
		n++
	}
	e.w.BeginObject(n)
	e.w.Flag("has_external_lexical_storage", lex)
	e.w.Flag("has_external_visible_storage", vis)
	e.w.EndObject()
}

func (e *Exporter) emitTypeDecl(d *ast.Decl) {
	var qt *ast.QualType
	if d.OfType != nil {
		qt = &ast.QualType{Raw: d.OfType.Raw, Type: d.OfType}
	}
	e.emitQualType(qt)
	e.w.String(tok(e.idents, d.OfType))
}

func (e *Exporter) emitTagDecl(d *ast.Decl) {
	e.emitMembers(d)
	e.emitScopeInfo(d)
}

func (e *Exporter) emitImportDecl(d *ast.Decl) {
	e.w.String(d.Module)
}

func (e *Exporter) emitAsmDecl(d *ast.Decl) {
	e.w.String(d.Asm)
}

func (e *Exporter) emitTranslationUnitDecl(d *ast.Decl) {
	e.emitMembers(d)
	e.emitScopeInfo(d)
	// The type table covers every type in the unit plus the shared
	// no-type sentinel, so every type_ptr in the output resolves.
	e.w.BeginArray(len(d.TypeTable) + 1)
	for _, t := range d.TypeTable {
		e.encodeType(t)
	}
	e.encodeType(nil)
	e.w.EndArray()
}

func (e *Exporter) emitNamespaceDecl(d *ast.Decl) {
	e.emitMembers(d)
	e.emitScopeInfo(d)
	var info ast.NamespaceInfo
	if d.Namespace != nil {
		info = *d.Namespace
	}
	n := 0
	if info.Inline {
		n++
	}
	if info.Original != nil {
		n++
	}
	e.w.BeginObject(n)
	e.w.Flag("is_inline", info.Inline)
	if info.Original != nil {
		e.w.Key("original_namespace")
		e.emitDeclRef(info.Original)
	}
	e.w.EndObject()
}

func (e *Exporter) emitEnumConstantDecl(d *ast.Decl) {
	n := 0
	if d.Init != nil {
		n++
	}
	e.w.BeginObject(n)
	if d.Init != nil {
		e.w.Key("init_expr")
		e.encodeStmt(d.Init)
	}
	e.w.EndObject()
}

func (e *Exporter) emitIndirectFieldDecl(d *ast.Decl) {
	e.w.BeginArray(len(d.Chain))
	for _, c := range d.Chain {
		e.emitDeclRef(c)
	}
	e.w.EndArray()
}

func (e *Exporter) emitFunctionDecl(d *ast.Decl) {
	var f ast.FunctionInfo
	if d.Function != nil {
		f = *d.Function
	}
	n := 0
	if f.Storage != "" {
		n++
	}
	for _, c := range []bool{f.Inline, f.Virtual, f.ModulePrivate, f.Pure, f.Deleted} {
		if c {
			n++
		}
	}
	if len(f.Params) > 0 {
		n++
	}
	if f.Body != nil {
		n++
	}
	e.w.BeginObject(n)
	if f.Storage != "" {
		e.w.Key("storage_class")
		e.w.String(f.Storage)
	}
	e.w.Flag("is_inline", f.Inline)
	e.w.Flag("is_virtual", f.Virtual)
	e.w.Flag("is_module_private", f.ModulePrivate)
	e.w.Flag("is_pure", f.Pure)
	e.w.Flag("is_delete_as_written", f.Deleted)
	if len(f.Params) > 0 {
		e.w.Key("parameters")
		e.w.BeginArray(len(f.Params))
		for _, p := range f.Params {
			e.encodeDecl(p)
		}
		e.w.EndArray()
	}
	if f.Body != nil {
		e.w.Key("body")
		e.encodeStmt(f.Body)
	}
	e.w.EndObject()
}

func (e *Exporter) emitFieldDecl(d *ast.Decl) {
	var f ast.FieldInfo
	if d.Field != nil {
		f = *d.Field
	}
	n := 0
	if f.Mutable {
		n++
	}
	if f.ModulePrivate {
		n++
	}
	if f.BitWidth != nil {
		n++
	}
	if f.Init != nil {
		n++
	}
	e.w.BeginObject(n)
	e.w.Flag("is_mutable", f.Mutable)
	e.w.Flag("is_module_private", f.ModulePrivate)
	if f.BitWidth != nil {
		e.w.Key("bit_width_expr")
		e.encodeStmt(f.BitWidth)
	}
	if f.Init != nil {
		e.w.Key("init_expr")
		e.encodeStmt(f.Init)
	}
	e.w.EndObject()
}

func (e *Exporter) emitVarDecl(d *ast.Decl) {
	var v ast.VarInfo
	if d.Var != nil {
		v = *d.Var
	}
	n := 0
	if v.Storage != "" {
		n++
	}
	if v.TLS != ast.TLSNone {
		n++
	}
	if v.ModulePrivate {
		n++
	}
	if v.NRVO {
		n++
	}
	if v.Init != nil {
		n++
	}
	e.w.BeginObject(n)
	if v.Storage != "" {
		e.w.Key("storage_class")
		e.w.String(v.Storage)
	}
	if v.TLS != ast.TLSNone {
		e.w.Key("tls_kind")
		e.w.Variant(v.TLS.String())
	}
	e.w.Flag("is_module_private", v.ModulePrivate)
	e.w.Flag("is_nrvo_variable", v.NRVO)
	if v.Init != nil {
		e.w.Key("init_expr")
		e.encodeStmt(v.Init)
	}
	e.w.EndObject()
}

func (e *Exporter) emitTypedefDecl(d *ast.Decl) {
	n := 0
	if d.ModulePrivate {
		n++
	}
	e.w.BeginObject(n)
	e.w.Flag("is_module_private", d.ModulePrivate)
	e.w.EndObject()
}

func (e *Exporter) emitRecordDecl(d *ast.Decl) {
	n := 0
	if d.ModulePrivate {
		n++
	}
	if d.Complete {
		n++
	}
	e.w.BeginObject(n)
	e.w.Flag("is_module_private", d.ModulePrivate)
	e.w.Flag("is_complete_definition", d.Complete)
	e.w.EndObject()
}

func (e *Exporter) emitEnumDecl(d *ast.Decl) {
	n := 0
	if d.EnumScope != "" {
		n++
	}
	if d.ModulePrivate {
		n++
	}
	e.w.BeginObject(n)
	if d.EnumScope != "" {
		e.w.Key("scope")
		e.w.Variant(d.EnumScope)
	}
	e.w.Flag("is_module_private", d.ModulePrivate)
	e.w.EndObject()
}
