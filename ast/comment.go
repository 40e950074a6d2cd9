package ast

import "fmt"

// CommentKind discriminates documentation comment nodes.
type CommentKind int

const (
	// CommentRoot is the abstract ancestor of every comment kind.
	CommentRoot CommentKind = iota

	NoComment
	FullComment
	ParagraphComment
	TextComment
	InlineCommandComment
	HTMLStartTagComment
	HTMLEndTagComment
	BlockCommandComment
	ParamCommandComment
	TParamCommandComment
	VerbatimBlockComment
	VerbatimBlockLineComment
	VerbatimLineComment
)

// Every comment node carries a parent reference, a source range and its
// children. Only text leaves add a payload of their own.
var commentTaxonomy = newTaxonomy(CommentFamily, CommentRoot, map[CommentKind]kindEntry[CommentKind]{
	CommentRoot: {name: "Comment", own: 2, abstract: true},

	NoComment:                {name: "NoComment", parent: CommentRoot, own: 0},
	FullComment:              {name: "FullComment", parent: CommentRoot, own: 0},
	ParagraphComment:         {name: "ParagraphComment", parent: CommentRoot, own: 0},
	TextComment:              {name: "TextComment", parent: CommentRoot, own: 1},
	InlineCommandComment:     {name: "InlineCommandComment", parent: CommentRoot, own: 0},
	HTMLStartTagComment:      {name: "HTMLStartTagComment", parent: CommentRoot, own: 0},
	HTMLEndTagComment:        {name: "HTMLEndTagComment", parent: CommentRoot, own: 0},
	BlockCommandComment:      {name: "BlockCommandComment", parent: CommentRoot, own: 0},
	ParamCommandComment:      {name: "ParamCommandComment", parent: CommentRoot, own: 0},
	TParamCommandComment:     {name: "TParamCommandComment", parent: CommentRoot, own: 0},
	VerbatimBlockComment:     {name: "VerbatimBlockComment", parent: CommentRoot, own: 0},
	VerbatimBlockLineComment: {name: "VerbatimBlockLineComment", parent: CommentRoot, own: 0},
	VerbatimLineComment:      {name: "VerbatimLineComment", parent: CommentRoot, own: 0},
})

func commentKindList() []CommentKind {
	return []CommentKind{
		CommentRoot,
		NoComment, FullComment, ParagraphComment, TextComment,
		InlineCommandComment, HTMLStartTagComment, HTMLEndTagComment,
		BlockCommandComment, ParamCommandComment, TParamCommandComment,
		VerbatimBlockComment, VerbatimBlockLineComment, VerbatimLineComment,
	}
}

// CommentKinds enumerates the concrete comment kinds.
func CommentKinds() []CommentKind {
	return commentTaxonomy.Concrete(commentKindList())
}

func (k CommentKind) String() string {
	name, ok := commentTaxonomy.Name(k)
	if !ok {
		return fmt.Sprintf("CommentKind(%d)", int(k))
	}
	return name
}

// CommentArity reports the serialized tuple size for k.
func CommentArity(k CommentKind) (int, error) {
	return commentTaxonomy.Arity(k)
}

// CommentAncestry returns k's kind chain from the root down to k.
func CommentAncestry(k CommentKind) ([]CommentKind, error) {
	return commentTaxonomy.Ancestry(k)
}

// Comment is a documentation comment node. Children hold nested
// comments in source order; Text is set only on TextComment leaves.
type Comment struct {
	Kind     CommentKind
	Range    SourceRange
	Children []*Comment
	Text     string
}
