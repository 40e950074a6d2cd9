package fixture

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astlib/astexport/ast"
	"github.com/astlib/astexport/export"
)

const sampleDoc = `
unit:
  kind: TranslationUnitDecl
  members:
    - kind: VarDecl
      id: counter
      name: counter
      type: {raw: int}
      file: /src/main.c
      line: 3
      column: 5
      init:
        kind: IntegerLiteral
        type: {raw: int}
        signed: true
        bitwidth: 32
        value: "0"
    - kind: FunctionDecl
      name: bump
      type: {raw: "void (void)"}
      file: /src/main.c
      line: 5
      column: 1
      body:
        kind: CompoundStmt
        children:
          - kind: BinaryOperator
            type: {raw: int}
            opcode: Assign
            children:
              - kind: DeclRefExpr
                type: {raw: int}
                ref: counter
`

func TestBuildSample(t *testing.T) {
	root, err := Build([]byte(sampleDoc))
	require.NoError(t, err)
	require.Equal(t, ast.TranslationUnitDecl, root.Kind)
	require.Len(t, root.Scope.Members, 2)

	counter := root.Scope.Members[0]
	assert.Equal(t, ast.VarDecl, counter.Kind)
	assert.Equal(t, "counter", counter.Name.Word)
	require.NotNil(t, counter.Var)
	require.NotNil(t, counter.Var.Init)
	assert.Equal(t, "0", counter.Var.Init.Int.Value)

	bump := root.Scope.Members[1]
	require.NotNil(t, bump.Function)
	require.NotNil(t, bump.Function.Body)
	assign := bump.Function.Body.Children[0]
	ref := assign.Children[0]
	assert.Same(t, counter, ref.Ref, "ref should resolve to the declared variable")
}

func TestBuildExports(t *testing.T) {
	root, err := Build([]byte(sampleDoc))
	require.NoError(t, err)
	var sb strings.Builder
	e, err := export.New(&sb, export.WithBasePath("/src"))
	require.NoError(t, err)
	require.NoError(t, e.Export(root))
	out := sb.String()
	assert.Contains(t, out, `"name":"counter"`)
	assert.Contains(t, out, `"file":"main.c"`)
	assert.Contains(t, out, `"kind":"VarDecl"`)
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"no unit", `{}`},
		{"bad kind", "unit:\n  kind: NoSuchDecl\n"},
		{"unknown ref", `
unit:
  kind: TranslationUnitDecl
  members:
    - kind: FunctionDecl
      name: f
      body:
        kind: CompoundStmt
        children:
          - {kind: DeclRefExpr, ref: missing}
`},
		{"duplicate id", `
unit:
  kind: TranslationUnitDecl
  members:
    - {kind: VarDecl, id: v, name: a}
    - {kind: VarDecl, id: v, name: b}
`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Build([]byte(c.doc))
			if !errors.Is(err, ErrFixture) {
				t.Errorf("got %v, want ErrFixture", err)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	out := Diff("abc", "abd")
	if out == "" || !strings.Contains(out, "ab") {
		t.Errorf("unhelpful diff: %q", out)
	}
}
