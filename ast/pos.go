package ast

// SourceLocation names a point in an input file. Line and Column are
// 1-based. A zero Valid marks the unknown location, which serializes as
// an empty record regardless of the other fields.
//
// Macro-expanded tokens carry the expansion point here and the original
// spelling point in Spelling.
type SourceLocation struct {
	Valid    bool
	File     string
	Line     int
	Column   int
	Spelling *SourceLocation
}

// Resolve follows the spelling chain to the location that should be
// reported, matching how a human reads the source.
func (l *SourceLocation) Resolve() *SourceLocation {
	if l == nil {
		return nil
	}
	cur := l
	for cur.Spelling != nil {
		cur = cur.Spelling
	}
	return cur
}

// SourceRange is a pair of locations delimiting a node's extent. Either
// end may be the invalid location.
type SourceRange struct {
	Begin SourceLocation
	End   SourceLocation
}
