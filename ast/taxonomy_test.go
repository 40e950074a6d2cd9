package ast

import (
	"errors"
	"testing"
)

func TestDeclArity(t *testing.T) {
	cases := []struct {
		kind DeclKind
		want int
	}{
		{EmptyDecl, 1},
		{ImportDecl, 2},
		{FileScopeAsmDecl, 2},
		{TranslationUnitDecl, 4},
		{LabelDecl, 2},
		{NamespaceDecl, 5},
		{EnumConstantDecl, 4},
		{IndirectFieldDecl, 4},
		{FunctionDecl, 4},
		{FieldDecl, 4},
		{VarDecl, 4},
		{ParmVarDecl, 4},
		{TypedefDecl, 5},
		{RecordDecl, 7},
		{EnumDecl, 7},
	}
	for _, c := range cases {
		got, err := DeclArity(c.kind)
		if err != nil {
			t.Fatalf("%s: %v", c.kind, err)
		}
		if got != c.want {
			t.Errorf("%s arity: got %d want %d", c.kind, got, c.want)
		}
	}
}

func TestStmtArity(t *testing.T) {
	cases := []struct {
		kind StmtKind
		want int
	}{
		{NullStmt, 2},
		{CompoundStmt, 2},
		{DeclStmt, 3},
		{LabelStmt, 3},
		{GotoStmt, 3},
		{IfStmt, 2},
		{DeclRefExpr, 4},
		{IntegerLiteral, 4},
		{CharacterLiteral, 4},
		{UnaryOperator, 4},
		{BinaryOperator, 4},
		{CompoundAssignOperator, 5},
		{MemberExpr, 4},
		{CallExpr, 3},
		{ConditionalOperator, 3},
		{ImplicitCastExpr, 4},
		{CStyleCastExpr, 5},
	}
	for _, c := range cases {
		got, err := StmtArity(c.kind)
		if err != nil {
			t.Fatalf("%s: %v", c.kind, err)
		}
		if got != c.want {
			t.Errorf("%s arity: got %d want %d", c.kind, got, c.want)
		}
	}
}

func TestTypeArity(t *testing.T) {
	cases := []struct {
		kind TypeKind
		want int
	}{
		{NoneType, 1},
		{BuiltinType, 2},
		{PointerType, 2},
		{ConstantArrayType, 3},
		{IncompleteArrayType, 2},
		{VariableArrayType, 2},
		{FunctionProtoType, 3},
		{FunctionNoProtoType, 2},
		{RecordType, 2},
		{EnumType, 2},
		{DecayedType, 2},
		{TypedefType, 2},
	}
	for _, c := range cases {
		got, err := TypeArity(c.kind)
		if err != nil {
			t.Fatalf("%s: %v", c.kind, err)
		}
		if got != c.want {
			t.Errorf("%s arity: got %d want %d", c.kind, got, c.want)
		}
	}
}

func TestCommentArity(t *testing.T) {
	cases := []struct {
		kind CommentKind
		want int
	}{
		{NoComment, 2},
		{FullComment, 2},
		{ParagraphComment, 2},
		{TextComment, 3},
		{VerbatimBlockLineComment, 2},
	}
	for _, c := range cases {
		got, err := CommentArity(c.kind)
		if err != nil {
			t.Fatalf("%s: %v", c.kind, err)
		}
		if got != c.want {
			t.Errorf("%s arity: got %d want %d", c.kind, got, c.want)
		}
	}
}

func TestAncestryOrder(t *testing.T) {
	chain, err := DeclAncestry(RecordDecl)
	if err != nil {
		t.Fatal(err)
	}
	want := []DeclKind{DeclRoot, NamedDecl, TypeDeclKind, TagDecl, RecordDecl}
	if len(chain) != len(want) {
		t.Fatalf("chain length: got %d want %d", len(chain), len(want))
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Errorf("chain[%d]: got %s want %s", i, chain[i], want[i])
		}
	}

	sc, err := StmtAncestry(CStyleCastExpr)
	if err != nil {
		t.Fatal(err)
	}
	swant := []StmtKind{StmtRoot, Expr, CastExpr, ExplicitCastExpr, CStyleCastExpr}
	for i := range swant {
		if sc[i] != swant[i] {
			t.Errorf("stmt chain[%d]: got %s want %s", i, sc[i], swant[i])
		}
	}
}

func TestArityUnknownKind(t *testing.T) {
	if _, err := DeclArity(DeclKind(999)); !errors.Is(err, ErrTaxonomy) {
		t.Errorf("got %v, want ErrTaxonomy", err)
	}
	if _, err := StmtAncestry(StmtKind(-1)); !errors.Is(err, ErrTaxonomy) {
		t.Errorf("got %v, want ErrTaxonomy", err)
	}
}

func TestConcreteKindsExcludeAbstract(t *testing.T) {
	for _, k := range DeclKinds() {
		switch k {
		case DeclRoot, NamedDecl, ValueDecl, DeclaratorDecl, TypeDeclKind, TagDecl:
			t.Errorf("abstract kind %s listed as concrete", k)
		}
	}
	for _, k := range StmtKinds() {
		switch k {
		case StmtRoot, Expr, CastExpr, ExplicitCastExpr:
			t.Errorf("abstract kind %s listed as concrete", k)
		}
	}
	for _, k := range TypeKinds() {
		switch k {
		case TypeRoot, ArrayType, FunctionTypeKind, TagType:
			t.Errorf("abstract kind %s listed as concrete", k)
		}
	}
}

func TestVariantNames(t *testing.T) {
	if got := FunctionDecl.String(); got != "FunctionDecl" {
		t.Errorf("got %q", got)
	}
	if got := ImplicitCastExpr.String(); got != "ImplicitCastExpr" {
		t.Errorf("got %q", got)
	}
	if got := ConstantArrayType.String(); got != "ConstantArrayType" {
		t.Errorf("got %q", got)
	}
	if got := TextComment.String(); got != "TextComment" {
		t.Errorf("got %q", got)
	}
	if got := WarnUnusedResultAttr.String(); got != "WarnUnusedResultAttr" {
		t.Errorf("got %q", got)
	}
}
