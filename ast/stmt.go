package ast

import "fmt"

// StmtKind is the concrete kind of a statement or expression node. The
// serialized variant name is the kind name itself (CompoundStmt,
// BinaryOperator, ImplicitCastExpr, ...).
type StmtKind int

const (
	// abstract anchors
	StmtRoot StmtKind = iota
	Expr
	CastExpr
	ExplicitCastExpr

	// statements
	NullStmt
	CompoundStmt
	DeclStmt
	LabelStmt
	GotoStmt
	ReturnStmt
	IfStmt
	WhileStmt
	DoStmt
	ForStmt
	SwitchStmt
	CaseStmt
	DefaultStmt
	BreakStmt
	ContinueStmt

	// expressions
	DeclRefExpr
	PredefinedExpr
	CharacterLiteral
	IntegerLiteral
	FloatingLiteral
	StringLiteral
	UnaryOperator
	UnaryExprOrTypeTraitExpr
	MemberExpr
	BinaryOperator
	CompoundAssignOperator
	CallExpr
	ParenExpr
	ArraySubscriptExpr
	ConditionalOperator
	InitListExpr
	OpaqueValueExpr
	AddrLabelExpr
	ImplicitCastExpr
	CStyleCastExpr
)

var stmtTaxonomy = newTaxonomy(StmtFamily, StmtRoot, map[StmtKind]kindEntry[StmtKind]{
	// stmt info object, children listing
	StmtRoot: {name: "Stmt", own: 2, abstract: true},
	// expr info object
	Expr: {name: "Expr", parent: StmtRoot, own: 1, abstract: true},
	// cast info object
	CastExpr: {name: "CastExpr", parent: Expr, own: 1, abstract: true},
	// type as written
	ExplicitCastExpr: {name: "ExplicitCastExpr", parent: CastExpr, own: 1, abstract: true},

	NullStmt:     {name: "NullStmt", parent: StmtRoot, own: 0},
	CompoundStmt: {name: "CompoundStmt", parent: StmtRoot, own: 0},
	DeclStmt:     {name: "DeclStmt", parent: StmtRoot, own: 1},
	LabelStmt:    {name: "LabelStmt", parent: StmtRoot, own: 1},
	GotoStmt:     {name: "GotoStmt", parent: StmtRoot, own: 1},
	ReturnStmt:   {name: "ReturnStmt", parent: StmtRoot, own: 0},
	IfStmt:       {name: "IfStmt", parent: StmtRoot, own: 0},
	WhileStmt:    {name: "WhileStmt", parent: StmtRoot, own: 0},
	DoStmt:       {name: "DoStmt", parent: StmtRoot, own: 0},
	ForStmt:      {name: "ForStmt", parent: StmtRoot, own: 0},
	SwitchStmt:   {name: "SwitchStmt", parent: StmtRoot, own: 0},
	CaseStmt:     {name: "CaseStmt", parent: StmtRoot, own: 0},
	DefaultStmt:  {name: "DefaultStmt", parent: StmtRoot, own: 0},
	BreakStmt:    {name: "BreakStmt", parent: StmtRoot, own: 0},
	ContinueStmt: {name: "ContinueStmt", parent: StmtRoot, own: 0},

	DeclRefExpr:              {name: "DeclRefExpr", parent: Expr, own: 1},
	PredefinedExpr:           {name: "PredefinedExpr", parent: Expr, own: 1},
	CharacterLiteral:         {name: "CharacterLiteral", parent: Expr, own: 1},
	IntegerLiteral:           {name: "IntegerLiteral", parent: Expr, own: 1},
	FloatingLiteral:          {name: "FloatingLiteral", parent: Expr, own: 1},
	StringLiteral:            {name: "StringLiteral", parent: Expr, own: 1},
	UnaryOperator:            {name: "UnaryOperator", parent: Expr, own: 1},
	UnaryExprOrTypeTraitExpr: {name: "UnaryExprOrTypeTraitExpr", parent: Expr, own: 1},
	MemberExpr:               {name: "MemberExpr", parent: Expr, own: 1},
	BinaryOperator:           {name: "BinaryOperator", parent: Expr, own: 1},
	CompoundAssignOperator:   {name: "CompoundAssignOperator", parent: BinaryOperator, own: 1},
	CallExpr:                 {name: "CallExpr", parent: Expr, own: 0},
	ParenExpr:                {name: "ParenExpr", parent: Expr, own: 0},
	ArraySubscriptExpr:       {name: "ArraySubscriptExpr", parent: Expr, own: 0},
	ConditionalOperator:      {name: "ConditionalOperator", parent: Expr, own: 0},
	InitListExpr:             {name: "InitListExpr", parent: Expr, own: 0},
	OpaqueValueExpr:          {name: "OpaqueValueExpr", parent: Expr, own: 1},
	AddrLabelExpr:            {name: "AddrLabelExpr", parent: Expr, own: 1},
	ImplicitCastExpr:         {name: "ImplicitCastExpr", parent: CastExpr, own: 0},
	CStyleCastExpr:           {name: "CStyleCastExpr", parent: ExplicitCastExpr, own: 0},
})

func stmtKindList() []StmtKind {
	return []StmtKind{
		StmtRoot, Expr, CastExpr, ExplicitCastExpr,
		NullStmt, CompoundStmt, DeclStmt, LabelStmt, GotoStmt, ReturnStmt,
		IfStmt, WhileStmt, DoStmt, ForStmt, SwitchStmt, CaseStmt,
		DefaultStmt, BreakStmt, ContinueStmt,
		DeclRefExpr, PredefinedExpr, CharacterLiteral, IntegerLiteral,
		FloatingLiteral, StringLiteral, UnaryOperator,
		UnaryExprOrTypeTraitExpr, MemberExpr, BinaryOperator,
		CompoundAssignOperator, CallExpr, ParenExpr, ArraySubscriptExpr,
		ConditionalOperator, InitListExpr, OpaqueValueExpr, AddrLabelExpr,
		ImplicitCastExpr, CStyleCastExpr,
	}
}

// StmtKinds enumerates the concrete statement and expression kinds.
func StmtKinds() []StmtKind {
	return stmtTaxonomy.Concrete(stmtKindList())
}

func (k StmtKind) String() string {
	name, ok := stmtTaxonomy.Name(k)
	if !ok {
		return fmt.Sprintf("StmtKind(%d)", int(k))
	}
	return name
}

func StmtArity(k StmtKind) (int, error) { return stmtTaxonomy.Arity(k) }

func StmtAncestry(k StmtKind) ([]StmtKind, error) { return stmtTaxonomy.Ancestry(k) }

// IsExpr reports whether k descends from the expression anchor.
func (k StmtKind) IsExpr() bool {
	chain, err := stmtTaxonomy.Ancestry(k)
	if err != nil {
		return false
	}
	for _, c := range chain {
		if c == Expr {
			return true
		}
	}
	return false
}

// ExprInfo is the payload every expression carries: the expression's
// qualified type plus its value and object categories. Empty category
// strings mean the defaults (RValue, Ordinary) and are omitted from the
// output.
type ExprInfo struct {
	QT         QualType
	ValueKind  string // "", "LValue", "XValue"
	ObjectKind string // "", "BitField", "VectorComponent"
}

// IntLit is the integer-literal payload. Value is the decimal rendering;
// arbitrary-width literals survive the trip as strings.
type IntLit struct {
	Signed   bool
	BitWidth int
	Value    string
}

// UnaryInfo is the unary-operator payload.
type UnaryInfo struct {
	Opcode  string // AddrOf, Deref, Minus, LNot, PreInc, ...
	Postfix bool
}

// TraitInfo is the sizeof/alignof payload; QT is set when the argument
// is a type rather than an expression.
type TraitInfo struct {
	Kind string // SizeOf, AlignOf, VecStep
	QT   *QualType
}

// MemberInfo is the member-access payload.
type MemberInfo struct {
	Arrow bool
	Name  Name
	Decl  *Decl // referenced member
}

// CompoundAssignInfo carries the computation types of an op= expression.
type CompoundAssignInfo struct {
	LHSType    QualType
	ResultType QualType
}

// BaseSpec is one step of a cast's base path.
type BaseSpec struct {
	Name    string
	Virtual bool
}

// CastInfo is the payload shared by all cast expressions. Written is set
// only on explicit casts.
type CastInfo struct {
	Kind     string // LValueToRValue, BitCast, NoOp, IntegralCast, ...
	BasePath []BaseSpec
	Written  *QualType
}

// Stmt is a statement or expression node, with the same fat-struct shape
// as Decl. Children are the node's sub-statements in source order; a nil
// child slot stands for an absent sub-node and encodes as the family
// sentinel.
type Stmt struct {
	Kind     StmtKind
	Range    SourceRange
	Children []*Stmt

	Expr *ExprInfo // expression kinds

	// Kind payloads.
	Decls          []*Decl             // DeclStmt
	Label          string              // LabelStmt, GotoStmt, AddrLabelExpr
	Target         *Decl               // GotoStmt, AddrLabelExpr: label decl identity
	Ref            *Decl               // DeclRefExpr
	Found          *Decl               // DeclRefExpr: found decl when it differs
	Predefined     string              // PredefinedExpr: Func, Function, PrettyFunction, ...
	Char           int                 // CharacterLiteral
	Int            *IntLit             // IntegerLiteral
	Float          string              // FloatingLiteral
	Str            string              // StringLiteral
	Unary          *UnaryInfo          // UnaryOperator
	Trait          *TraitInfo          // UnaryExprOrTypeTraitExpr
	Member         *MemberInfo         // MemberExpr
	Opcode         string              // BinaryOperator
	CompoundAssign *CompoundAssignInfo // CompoundAssignOperator
	Source         *Stmt               // OpaqueValueExpr
	Cast           *CastInfo           // cast kinds
}
