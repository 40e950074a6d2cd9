package ast

// Sentinel nodes stand in for absent children where a slot must still
// be filled. Encoding a nil node emits the family's sentinel, so a
// missing child never changes the shape of its parent.
//
// The sentinels are shared and must not be mutated.
var (
	NilDecl    = &Decl{Kind: EmptyDecl}
	NilStmt    = &Stmt{Kind: NullStmt}
	NilType    = &Type{Kind: NoneType}
	NilComment = &Comment{Kind: NoComment}
)
