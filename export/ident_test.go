package export

import (
	"strings"
	"testing"

	"github.com/astlib/astexport/ast"
)

func TestIdentTableAnonymized(t *testing.T) {
	tbl := newIdentTable(false)
	a := &ast.Decl{Kind: ast.VarDecl}
	b := &ast.Decl{Kind: ast.VarDecl}
	if got := tok(tbl, a); got != "1" {
		t.Errorf("first token: got %q", got)
	}
	if got := tok(tbl, b); got != "2" {
		t.Errorf("second token: got %q", got)
	}
	if got := tok(tbl, a); got != "1" {
		t.Errorf("repeat token: got %q", got)
	}
	var nilDecl *ast.Decl
	if got := tok(tbl, nilDecl); got != "0" {
		t.Errorf("nil token: got %q", got)
	}
	var nilType *ast.Type
	if got := tok(tbl, nilType); got != "0" {
		t.Errorf("nil type token: got %q", got)
	}
}

func TestIdentTableRaw(t *testing.T) {
	tbl := newIdentTable(true)
	a := &ast.Decl{Kind: ast.VarDecl}
	got := tok(tbl, a)
	if !strings.HasPrefix(got, "0x") || got == "0x0" {
		t.Errorf("raw token: got %q", got)
	}
	if again := tok(tbl, a); again != got {
		t.Errorf("raw token unstable: %q then %q", got, again)
	}
	var nilDecl *ast.Decl
	if got := tok(tbl, nilDecl); got != "0x0" {
		t.Errorf("nil raw token: got %q", got)
	}
}
