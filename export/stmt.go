package export

import (
	"fmt"

	"github.com/astlib/astexport/ast"
)

type stmtVisit func(e *Exporter, s *ast.Stmt)

// stmtVisits is filled in init; the child and decl listings recurse
// back through encodeStmt, so a literal initializer would cycle.
var stmtVisits map[ast.StmtKind]stmtVisit

func init() {
	stmtVisits = map[ast.StmtKind]stmtVisit{
		ast.StmtRoot:                 (*Exporter).emitStmtInfo,
		ast.DeclStmt:                 (*Exporter).emitDeclStmt,
		ast.LabelStmt:                (*Exporter).emitLabelStmt,
		ast.GotoStmt:                 (*Exporter).emitGotoStmt,
		ast.Expr:                     (*Exporter).emitExprInfo,
		ast.DeclRefExpr:              (*Exporter).emitDeclRefExpr,
		ast.PredefinedExpr:           (*Exporter).emitPredefinedExpr,
		ast.CharacterLiteral:         (*Exporter).emitCharacterLiteral,
		ast.IntegerLiteral:           (*Exporter).emitIntegerLiteral,
		ast.FloatingLiteral:          (*Exporter).emitFloatingLiteral,
		ast.StringLiteral:            (*Exporter).emitStringLiteral,
		ast.UnaryOperator:            (*Exporter).emitUnaryOperator,
		ast.UnaryExprOrTypeTraitExpr: (*Exporter).emitTraitExpr,
		ast.MemberExpr:               (*Exporter).emitMemberExpr,
		ast.BinaryOperator:           (*Exporter).emitBinaryOperator,
		ast.CompoundAssignOperator:   (*Exporter).emitCompoundAssign,
		ast.OpaqueValueExpr:          (*Exporter).emitOpaqueValueExpr,
		ast.AddrLabelExpr:            (*Exporter).emitAddrLabelExpr,
		ast.CastExpr:                 (*Exporter).emitCastInfo,
		ast.ExplicitCastExpr:         (*Exporter).emitExplicitCast,
	}
}

func (e *Exporter) encodeStmt(s *ast.Stmt) {
	if s == nil {
		s = ast.NilStmt
	}
	if !e.enter() {
		return
	}
	defer e.leave()
	arity, err := ast.StmtArity(s.Kind)
	if err != nil {
		e.fail(err)
		return
	}
	chain, err := ast.StmtAncestry(s.Kind)
	if err != nil {
		e.fail(err)
		return
	}
	if s.Kind.Abstract() {
		e.fail(fmt.Errorf("%w: abstract %s", ErrEmit, s.Kind))
		return
	}
	e.w.BeginVariant(s.Kind.String())
	e.w.BeginTuple(arity)
	for _, k := range chain {
		fn := stmtVisits[k]
		if fn == nil {
			if ast.StmtOwn(k) > 0 {
				e.fail(fmt.Errorf("%w: %s", ErrEmit, k))
				return
			}
			continue
		}
		fn(e, s)
	}
	e.w.EndTuple()
	e.w.EndVariant()
}

func (e *Exporter) emitStmtInfo(s *ast.Stmt) {
	e.w.BeginObject(2)
	e.w.Key("pointer")
	e.w.String(tok(e.idents, s))
	e.w.Key("source_range")
	e.emitRange(s.Range)
	e.w.EndObject()

	e.w.BeginArray(len(s.Children))
	for _, c := range s.Children {
		e.encodeStmt(c)
	}
	e.w.EndArray()
}

// emitDeclStmt lists the statement's declarations by value: a decl
// statement is the owning scope of what it declares.
func (e *Exporter) emitDeclStmt(s *ast.Stmt) {
	e.w.BeginArray(len(s.Decls))
	for _, d := range s.Decls {
		e.encodeDecl(d)
	}
	e.w.EndArray()
}

func (e *Exporter) emitLabelStmt(s *ast.Stmt) {
	e.w.String(s.Label)
}

func (e *Exporter) emitGotoStmt(s *ast.Stmt) {
	e.w.BeginObject(2)
	e.w.Key("label")
	e.w.String(s.Label)
	e.w.Key("pointer")
	e.w.String(tok(e.idents, s.Target))
	e.w.EndObject()
}

func (e *Exporter) emitExprInfo(s *ast.Stmt) {
	var info ast.ExprInfo
	if s.Expr != nil {
		info = *s.Expr
	}
	n := 1
	if info.ValueKind != "" {
		n++
	}
	if info.ObjectKind != "" {
		n++
	}
	e.w.BeginObject(n)
	e.w.Key("qual_type")
	e.emitQualType(&info.QT)
	if info.ValueKind != "" {
		e.w.Key("value_kind")
		e.w.Variant(info.ValueKind)
	}
	if info.ObjectKind != "" {
		e.w.Key("object_kind")
		e.w.Variant(info.ObjectKind)
	}
	e.w.EndObject()
}

func (e *Exporter) emitDeclRefExpr(s *ast.Stmt) {
	n := 0
	if s.Ref != nil {
		n++
	}
	if s.Found != nil {
		n++
	}
	e.w.BeginObject(n)
	if s.Ref != nil {
		e.w.Key("decl_ref")
		e.emitDeclRef(s.Ref)
	}
	if s.Found != nil {
		e.w.Key("found_decl_ref")
		e.emitDeclRef(s.Found)
	}
	e.w.EndObject()
}

func (e *Exporter) emitPredefinedExpr(s *ast.Stmt) {
	kind := s.Predefined
	if kind == "" {
		kind = "Func"
	}
	e.w.Variant(kind)
}

func (e *Exporter) emitCharacterLiteral(s *ast.Stmt) {
	e.w.Int(int64(s.Char))
}

func (e *Exporter) emitIntegerLiteral(s *ast.Stmt) {
	var lit ast.IntLit
	if s.Int != nil {
		lit = *s.Int
	}
	n := 2
	if lit.Signed {
		n++
	}
	e.w.BeginObject(n)
	e.w.Flag("is_signed", lit.Signed)
	e.w.Key("bitwidth")
	e.w.Int(int64(lit.BitWidth))
	e.w.Key("value")
	e.w.String(lit.Value)
	e.w.EndObject()
}

func (e *Exporter) emitFloatingLiteral(s *ast.Stmt) {
	e.w.String(s.Float)
}

func (e *Exporter) emitStringLiteral(s *ast.Stmt) {
	e.w.String(s.Str)
}

func (e *Exporter) emitUnaryOperator(s *ast.Stmt) {
	var u ast.UnaryInfo
	if s.Unary != nil {
		u = *s.Unary
	}
	n := 1
	if u.Postfix {
		n++
	}
	e.w.BeginObject(n)
	e.w.Key("kind")
	e.w.Variant(u.Opcode)
	e.w.Flag("is_postfix", u.Postfix)
	e.w.EndObject()
}

func (e *Exporter) emitTraitExpr(s *ast.Stmt) {
	var t ast.TraitInfo
	if s.Trait != nil {
		t = *s.Trait
	}
	n := 1
	if t.QT != nil {
		n++
	}
	e.w.BeginObject(n)
	e.w.Key("kind")
	e.w.Variant(t.Kind)
	if t.QT != nil {
		e.w.Key("qual_type")
		e.emitQualType(t.QT)
	}
	e.w.EndObject()
}

func (e *Exporter) emitMemberExpr(s *ast.Stmt) {
	var m ast.MemberInfo
	if s.Member != nil {
		m = *s.Member
	}
	n := 1
	if m.Arrow {
		n++
	}
	if m.Decl != nil {
		n++
	}
	e.w.BeginObject(n)
	e.w.Flag("is_arrow", m.Arrow)
	e.w.Key("name")
	e.emitName(m.Name)
	if m.Decl != nil {
		e.w.Key("decl_ref")
		e.emitDeclRef(m.Decl)
	}
	e.w.EndObject()
}

func (e *Exporter) emitBinaryOperator(s *ast.Stmt) {
	e.w.BeginObject(1)
	e.w.Key("kind")
	e.w.Variant(s.Opcode)
	e.w.EndObject()
}

func (e *Exporter) emitCompoundAssign(s *ast.Stmt) {
	var c ast.CompoundAssignInfo
	if s.CompoundAssign != nil {
		c = *s.CompoundAssign
	}
	e.w.BeginObject(2)
	e.w.Key("lhs_type")
	e.emitQualType(&c.LHSType)
	e.w.Key("result_type")
	e.emitQualType(&c.ResultType)
	e.w.EndObject()
}

func (e *Exporter) emitOpaqueValueExpr(s *ast.Stmt) {
	n := 0
	if s.Source != nil {
		n++
	}
	e.w.BeginObject(n)
	if s.Source != nil {
		e.w.Key("source_expr")
		e.encodeStmt(s.Source)
	}
	e.w.EndObject()
}

func (e *Exporter) emitAddrLabelExpr(s *ast.Stmt) {
	e.w.BeginObject(2)
	e.w.Key("label")
	e.w.String(s.Label)
	e.w.Key("pointer")
	e.w.String(tok(e.idents, s.Target))
	e.w.EndObject()
}

func (e *Exporter) emitCastInfo(s *ast.Stmt) {
	var c ast.CastInfo
	if s.Cast != nil {
		c = *s.Cast
	}
	e.w.BeginObject(2)
	e.w.Key("cast_kind")
	e.w.Variant(c.Kind)
	e.w.Key("base_path")
	e.w.BeginArray(len(c.BasePath))
	for _, b := range c.BasePath {
		n := 1
		if b.Virtual {
			n++
		}
		e.w.BeginObject(n)
		e.w.Key("name")
		e.w.String(b.Name)
		e.w.Flag("is_virtual", b.Virtual)
		e.w.EndObject()
	}
	e.w.EndArray()
	e.w.EndObject()
}

func (e *Exporter) emitExplicitCast(s *ast.Stmt) {
	var written *ast.QualType
	if s.Cast != nil {
		written = s.Cast.Written
	}
	e.emitQualType(written)
}
