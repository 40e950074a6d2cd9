package export

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/astlib/astexport/ast"
	"github.com/astlib/astexport/atd"
)

func exportString(t *testing.T, root *ast.Decl, opts ...Option) string {
	t.Helper()
	var sb strings.Builder
	e, err := New(&sb, opts...)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := e.Export(root); err != nil {
		t.Fatalf("export: %v", err)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Encoding a minimal node of every concrete kind must complete: the
// writer rejects any mismatch between a kind's resolved arity and the
// fields its routines emit, so completion is the arity proof.
func TestEveryConcreteKindEncodes(t *testing.T) {
	for _, k := range ast.DeclKinds() {
		out := exportString(t, &ast.Decl{Kind: k})
		if !json.Valid([]byte(out)) {
			t.Errorf("%s: invalid JSON: %s", k, out)
		}
		if !strings.Contains(out, `"`+k.String()+`"`) {
			t.Errorf("%s: missing variant tag in %s", k, out)
		}
	}
	for _, k := range ast.StmtKinds() {
		root := &ast.Decl{
			Kind:     ast.FunctionDecl,
			Name:     ast.Name{Word: "f"},
			Function: &ast.FunctionInfo{Body: &ast.Stmt{Kind: k}},
		}
		out := exportString(t, root)
		if !json.Valid([]byte(out)) {
			t.Errorf("%s: invalid JSON: %s", k, out)
		}
	}
	for _, k := range ast.TypeKinds() {
		root := &ast.Decl{
			Kind:      ast.TranslationUnitDecl,
			TypeTable: []*ast.Type{{Kind: k}},
		}
		out := exportString(t, root)
		if !json.Valid([]byte(out)) {
			t.Errorf("%s: invalid JSON: %s", k, out)
		}
	}
	for _, k := range ast.CommentKinds() {
		root := &ast.Decl{Kind: ast.EmptyDecl, Comment: &ast.Comment{Kind: k}}
		out := exportString(t, root)
		if !json.Valid([]byte(out)) {
			t.Errorf("%s: invalid JSON: %s", k, out)
		}
	}
}

func TestEmptyUnitGolden(t *testing.T) {
	root := &ast.Decl{Kind: ast.TranslationUnitDecl}
	got := exportString(t, root)
	want := `["TranslationUnitDecl",[{"pointer":"1","source_range":[{},{}],"attributes":[]},[],{},[["NoneType",[{"pointer":"2","raw":""}]]]]]`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}

	got = exportString(t, root, WithDialect(atd.Yojson))
	want = `<"TranslationUnitDecl":({"pointer":"1","source_range":({},{}),"attributes":[]},[],{},[<"NoneType":({"pointer":"2","raw":""})>])>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected yojson output (-want +got):\n%s", diff)
	}
}

// Two independent runs over the same tree must produce identical bytes
// in anonymized mode: token assignment depends only on traversal order.
func TestAnonymizedTokensDeterministic(t *testing.T) {
	root := sampleUnit()
	a := exportString(t, root)
	b := exportString(t, root)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
	if strings.Contains(a, "0x") {
		t.Errorf("anonymized output leaks addresses: %s", a)
	}
}

func TestRawPointerTokens(t *testing.T) {
	out := exportString(t, sampleUnit(), WithPointers(true))
	if !strings.Contains(out, "0x") {
		t.Errorf("raw mode output has no address tokens: %s", out)
	}
}

// A declaration referenced from an expression shows up by value once,
// in its scope's listing, and as a small reference record at the use.
func TestReferenceSharesIdentity(t *testing.T) {
	v := &ast.Decl{
		Kind: ast.VarDecl,
		Name: ast.Name{Word: "x"},
		QT:   &ast.QualType{Raw: "int"},
	}
	use := &ast.Stmt{
		Kind: ast.DeclRefExpr,
		Expr: &ast.ExprInfo{QT: ast.QualType{Raw: "int"}},
		Ref:  v,
	}
	fn := &ast.Decl{
		Kind:     ast.FunctionDecl,
		Name:     ast.Name{Word: "f"},
		Function: &ast.FunctionInfo{Body: &ast.Stmt{Kind: ast.CompoundStmt, Children: []*ast.Stmt{use}}},
	}
	root := &ast.Decl{
		Kind:  ast.TranslationUnitDecl,
		Scope: &ast.Scope{Members: []*ast.Decl{v, fn}},
	}
	out := exportString(t, root)
	if got := strings.Count(out, `["VarDecl",`); got != 1 {
		t.Errorf("VarDecl encoded by value %d times, want 1", got)
	}
	if !strings.Contains(out, `"decl_ref":{"kind":"VarDecl","decl_pointer":"2","name":{"name":"x","qual_name":["x"]},"qual_type":{"raw":"int","type_ptr":"0"}}`) {
		t.Errorf("missing by-reference record: %s", out)
	}
}

func TestNilNodesEncodeAsSentinels(t *testing.T) {
	out := exportString(t, nil)
	if !strings.HasPrefix(out, `["EmptyDecl",`) {
		t.Errorf("nil decl: got %s", out)
	}

	body := &ast.Stmt{Kind: ast.CompoundStmt, Children: []*ast.Stmt{nil}}
	root := &ast.Decl{
		Kind:     ast.FunctionDecl,
		Name:     ast.Name{Word: "f"},
		Function: &ast.FunctionInfo{Body: body},
	}
	out = exportString(t, root)
	if !strings.Contains(out, `["NullStmt",`) {
		t.Errorf("nil stmt child: got %s", out)
	}

	// Two absent children encode as two occurrences of one shared
	// sentinel, token included.
	body.Children = []*ast.Stmt{nil, nil}
	out = exportString(t, root)
	first := strings.Index(out, `["NullStmt",`)
	second := strings.LastIndex(out, `["NullStmt",`)
	if first == second {
		t.Fatalf("expected two sentinel encodings: %s", out)
	}
	a := out[first:strings.Index(out[first:], "]]")+first+2]
	b := out[second:strings.Index(out[second:], "]]")+second+2]
	if a != b {
		t.Errorf("sentinel encodings differ: %s vs %s", a, b)
	}
}

// The scope, children and comment listings re-enter their family's
// dispatch table; nested nodes of each family must encode through it.
func TestNestedListingsRecurse(t *testing.T) {
	field := &ast.Decl{
		Kind: ast.FieldDecl,
		Name: ast.Name{Word: "n"},
		QT:   &ast.QualType{Raw: "int"},
	}
	record := &ast.Decl{
		Kind:  ast.RecordDecl,
		Name:  ast.Name{Word: "box"},
		Scope: &ast.Scope{Members: []*ast.Decl{field}},
		Comment: &ast.Comment{
			Kind: ast.FullComment,
			Children: []*ast.Comment{{
				Kind:     ast.ParagraphComment,
				Children: []*ast.Comment{{Kind: ast.TextComment, Text: "a box"}},
			}},
		},
	}
	ns := &ast.Decl{
		Kind:  ast.NamespaceDecl,
		Name:  ast.Name{Word: "lib"},
		Scope: &ast.Scope{Members: []*ast.Decl{record}},
	}
	root := &ast.Decl{
		Kind:  ast.TranslationUnitDecl,
		Scope: &ast.Scope{Members: []*ast.Decl{ns}},
	}
	out := exportString(t, root)
	for _, want := range []string{
		`["NamespaceDecl",`, `["RecordDecl",`, `["FieldDecl",`,
		`["FullComment",`, `["ParagraphComment",`, `["TextComment",`,
		`"a box"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	deep := &ast.Stmt{Kind: ast.CompoundStmt}
	for i := 0; i < 50; i++ {
		deep = &ast.Stmt{Kind: ast.CompoundStmt, Children: []*ast.Stmt{deep}}
	}
	root := &ast.Decl{
		Kind:     ast.FunctionDecl,
		Name:     ast.Name{Word: "f"},
		Function: &ast.FunctionInfo{Body: deep},
	}
	e, err := New(io.Discard, WithMaxDepth(10))
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Export(root); !errors.Is(err, ErrDepth) {
		t.Errorf("got %v, want ErrDepth", err)
	}
}

func TestFilterExprCompileError(t *testing.T) {
	if _, err := New(io.Discard, WithFilter("file ++")); !errors.Is(err, ErrFilter) {
		t.Errorf("got %v, want ErrFilter", err)
	}
}

// sampleUnit is a small translation unit shaped like the export of a
// real source file: a typedef, a record with a field, and a function
// whose body declares and returns a variable.
func sampleUnit() *ast.Decl {
	intType := &ast.Type{Kind: ast.BuiltinType, Raw: "int", Builtin: "Int"}
	field := &ast.Decl{
		Kind: ast.FieldDecl,
		Name: ast.Name{Word: "n"},
		QT:   &ast.QualType{Raw: "int", Type: intType},
	}
	record := &ast.Decl{
		Kind:     ast.RecordDecl,
		Name:     ast.Name{Word: "pair"},
		OfType:   &ast.Type{Kind: ast.RecordType, Raw: "struct pair"},
		Scope:    &ast.Scope{Members: []*ast.Decl{field}},
		Complete: true,
	}
	v := &ast.Decl{
		Kind: ast.VarDecl,
		Name: ast.Name{Word: "r"},
		QT:   &ast.QualType{Raw: "int", Type: intType},
		Var: &ast.VarInfo{
			Init: &ast.Stmt{
				Kind: ast.IntegerLiteral,
				Expr: &ast.ExprInfo{QT: ast.QualType{Raw: "int", Type: intType}},
				Int:  &ast.IntLit{Signed: true, BitWidth: 32, Value: "42"},
			},
		},
	}
	ret := &ast.Stmt{
		Kind: ast.ReturnStmt,
		Children: []*ast.Stmt{{
			Kind: ast.DeclRefExpr,
			Expr: &ast.ExprInfo{QT: ast.QualType{Raw: "int", Type: intType}},
			Ref:  v,
		}},
	}
	body := &ast.Stmt{
		Kind: ast.CompoundStmt,
		Children: []*ast.Stmt{
			{Kind: ast.DeclStmt, Decls: []*ast.Decl{v}},
			ret,
		},
	}
	fn := &ast.Decl{
		Kind:     ast.FunctionDecl,
		Name:     ast.Name{Word: "make_pair"},
		QT:       &ast.QualType{Raw: "int (void)"},
		Function: &ast.FunctionInfo{Body: body},
	}
	typedef := &ast.Decl{
		Kind:   ast.TypedefDecl,
		Name:   ast.Name{Word: "pair_t"},
		OfType: &ast.Type{Kind: ast.TypedefType, Raw: "pair_t", Child: &ast.Type{Kind: ast.RecordType, Raw: "struct pair"}},
	}
	return &ast.Decl{
		Kind:      ast.TranslationUnitDecl,
		Scope:     &ast.Scope{Members: []*ast.Decl{typedef, record, fn}},
		TypeTable: []*ast.Type{intType},
	}
}
