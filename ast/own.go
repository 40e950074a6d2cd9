package ast

// The Own functions report how many serialized fields a kind
// contributes on top of its parent. Encoders use them to pair each
// ancestor with a routine writing exactly that many fields.

func DeclOwn(k DeclKind) int       { return declTaxonomy.Own(k) }
func StmtOwn(k StmtKind) int       { return stmtTaxonomy.Own(k) }
func TypeOwn(k TypeKind) int       { return typeTaxonomy.Own(k) }
func CommentOwn(k CommentKind) int { return commentTaxonomy.Own(k) }

// Abstract reports whether k only anchors shared fields and can never
// be carried by a real node.

func (k DeclKind) Abstract() bool    { return declTaxonomy.entries[k].abstract }
func (k StmtKind) Abstract() bool    { return stmtTaxonomy.entries[k].abstract }
func (k TypeKind) Abstract() bool    { return typeTaxonomy.entries[k].abstract }
func (k CommentKind) Abstract() bool { return commentTaxonomy.entries[k].abstract }
