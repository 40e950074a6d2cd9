// Package fixture builds declaration trees from a compact YAML
// description. It exists for tests and for feeding the command line
// tool without a real front end: the YAML names kinds and payload
// fields directly, and declarations can be referenced by id from
// expressions elsewhere in the document.
package fixture

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/astlib/astexport/ast"
)

var ErrFixture = errors.New("fixture")

type typeSpec struct {
	Raw       string `yaml:"raw"`
	Desugared string `yaml:"desugared,omitempty"`
}

type stmtSpec struct {
	Kind     string      `yaml:"kind"`
	Children []*stmtSpec `yaml:"children,omitempty"`
	Type     *typeSpec   `yaml:"type,omitempty"`

	Ref      string      `yaml:"ref,omitempty"`
	Decls    []*declSpec `yaml:"decls,omitempty"`
	Label    string      `yaml:"label,omitempty"`
	Target   string      `yaml:"target,omitempty"`
	Value    string      `yaml:"value,omitempty"`
	Bitwidth int         `yaml:"bitwidth,omitempty"`
	Signed   bool        `yaml:"signed,omitempty"`
	Str      string      `yaml:"str,omitempty"`
	Float    string      `yaml:"float,omitempty"`
	Opcode   string      `yaml:"opcode,omitempty"`
	Postfix  bool        `yaml:"postfix,omitempty"`
	Cast     string      `yaml:"cast,omitempty"`
}

type declSpec struct {
	Kind string `yaml:"kind"`
	ID   string `yaml:"id,omitempty"`

	Name string    `yaml:"name,omitempty"`
	Qual []string  `yaml:"qual,omitempty"`
	Type *typeSpec `yaml:"type,omitempty"`

	File      string `yaml:"file,omitempty"`
	Line      int    `yaml:"line,omitempty"`
	Column    int    `yaml:"column,omitempty"`
	EndLine   int    `yaml:"endLine,omitempty"`
	EndColumn int    `yaml:"endColumn,omitempty"`

	Implicit bool `yaml:"implicit,omitempty"`
	Used     bool `yaml:"used,omitempty"`
	Hidden   bool `yaml:"hidden,omitempty"`

	Storage string `yaml:"storage,omitempty"`

	Members []*declSpec `yaml:"members,omitempty"`
	Params  []*declSpec `yaml:"params,omitempty"`
	Body    *stmtSpec   `yaml:"body,omitempty"`
	Init    *stmtSpec   `yaml:"init,omitempty"`
}

type document struct {
	Unit *declSpec `yaml:"unit"`
}

type builder struct {
	ids map[string]*ast.Decl
	// Reference fixups run after every declaration exists, so an id
	// may be used before its declaration appears in the document.
	fixups []func() error
}

// Build parses a YAML fixture document and returns its unit.
func Build(data []byte) (*ast.Decl, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFixture, err)
	}
	if doc.Unit == nil {
		return nil, fmt.Errorf("%w: no unit", ErrFixture)
	}
	b := &builder{ids: map[string]*ast.Decl{}}
	root, err := b.decl(doc.Unit)
	if err != nil {
		return nil, err
	}
	for _, fix := range b.fixups {
		if err := fix(); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func (b *builder) decl(s *declSpec) (*ast.Decl, error) {
	kind, err := parseDeclKind(s.Kind)
	if err != nil {
		return nil, err
	}
	d := &ast.Decl{
		Kind:     kind,
		Name:     ast.Name{Word: s.Name, Qual: s.Qual},
		Implicit: s.Implicit,
		Used:     s.Used,
		Hidden:   s.Hidden,
	}
	if s.File != "" || s.Line != 0 {
		d.Range.Begin = ast.SourceLocation{
			Valid: true, File: s.File, Line: s.Line, Column: s.Column,
		}
		if s.EndLine != 0 {
			d.Range.End = ast.SourceLocation{
				Valid: true, File: s.File, Line: s.EndLine, Column: s.EndColumn,
			}
		}
	}
	if s.Type != nil {
		d.QT = &ast.QualType{Raw: s.Type.Raw, Desugared: s.Type.Desugared}
	}
	if s.ID != "" {
		if _, dup := b.ids[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrFixture, s.ID)
		}
		b.ids[s.ID] = d
	}
	if len(s.Members) > 0 {
		d.Scope = &ast.Scope{}
		for _, m := range s.Members {
			md, err := b.decl(m)
			if err != nil {
				return nil, err
			}
			d.Scope.Members = append(d.Scope.Members, md)
		}
	}
	switch kind {
	case ast.FunctionDecl:
		info := &ast.FunctionInfo{Storage: s.Storage}
		for _, p := range s.Params {
			pd, err := b.decl(p)
			if err != nil {
				return nil, err
			}
			info.Params = append(info.Params, pd)
		}
		if s.Body != nil {
			body, err := b.stmt(s.Body)
			if err != nil {
				return nil, err
			}
			info.Body = body
		}
		d.Function = info
	case ast.VarDecl, ast.ParmVarDecl:
		info := &ast.VarInfo{Storage: s.Storage}
		if s.Init != nil {
			init, err := b.stmt(s.Init)
			if err != nil {
				return nil, err
			}
			info.Init = init
		}
		d.Var = info
	case ast.EnumConstantDecl:
		if s.Init != nil {
			init, err := b.stmt(s.Init)
			if err != nil {
				return nil, err
			}
			d.Init = init
		}
	}
	return d, nil
}

func (b *builder) stmt(s *stmtSpec) (*ast.Stmt, error) {
	kind, err := parseStmtKind(s.Kind)
	if err != nil {
		return nil, err
	}
	st := &ast.Stmt{Kind: kind}
	for _, c := range s.Children {
		cs, err := b.stmt(c)
		if err != nil {
			return nil, err
		}
		st.Children = append(st.Children, cs)
	}
	if kind.IsExpr() {
		st.Expr = &ast.ExprInfo{}
		if s.Type != nil {
			st.Expr.QT = ast.QualType{Raw: s.Type.Raw, Desugared: s.Type.Desugared}
		}
	}
	switch kind {
	case ast.DeclStmt:
		for _, ds := range s.Decls {
			d, err := b.decl(ds)
			if err != nil {
				return nil, err
			}
			st.Decls = append(st.Decls, d)
		}
	case ast.DeclRefExpr:
		if s.Ref != "" {
			b.resolve(s.Ref, func(d *ast.Decl) { st.Ref = d })
		}
	case ast.LabelStmt:
		st.Label = s.Label
	case ast.GotoStmt, ast.AddrLabelExpr:
		st.Label = s.Label
		if s.Target != "" {
			b.resolve(s.Target, func(d *ast.Decl) { st.Target = d })
		}
	case ast.IntegerLiteral:
		st.Int = &ast.IntLit{Signed: s.Signed, BitWidth: s.Bitwidth, Value: s.Value}
	case ast.FloatingLiteral:
		st.Float = s.Float
	case ast.StringLiteral:
		st.Str = s.Str
	case ast.UnaryOperator:
		st.Unary = &ast.UnaryInfo{Opcode: s.Opcode, Postfix: s.Postfix}
	case ast.BinaryOperator, ast.CompoundAssignOperator:
		st.Opcode = s.Opcode
	case ast.ImplicitCastExpr, ast.CStyleCastExpr:
		st.Cast = &ast.CastInfo{Kind: s.Cast}
	}
	return st, nil
}

func (b *builder) resolve(id string, set func(*ast.Decl)) {
	b.fixups = append(b.fixups, func() error {
		d, ok := b.ids[id]
		if !ok {
			return fmt.Errorf("%w: unknown id %q", ErrFixture, id)
		}
		set(d)
		return nil
	})
}

func parseDeclKind(name string) (ast.DeclKind, error) {
	for _, k := range ast.DeclKinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: no decl kind %q", ErrFixture, name)
}

func parseStmtKind(name string) (ast.StmtKind, error) {
	for _, k := range ast.StmtKinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: no stmt kind %q", ErrFixture, name)
}
