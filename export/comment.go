package export

import (
	"fmt"

	"github.com/astlib/astexport/ast"
)

type commentVisit func(e *Exporter, c *ast.Comment)

// commentVisits is filled in init; the children listing recurses back
// through encodeComment, so a literal initializer would cycle.
var commentVisits map[ast.CommentKind]commentVisit

func init() {
	commentVisits = map[ast.CommentKind]commentVisit{
		ast.CommentRoot: (*Exporter).emitCommentInfo,
		ast.TextComment: (*Exporter).emitCommentText,
	}
}

func (e *Exporter) encodeComment(c *ast.Comment) {
	if c == nil {
		c = ast.NilComment
	}
	if !e.enter() {
		return
	}
	defer e.leave()
	arity, err := ast.CommentArity(c.Kind)
	if err != nil {
		e.fail(err)
		return
	}
	chain, err := ast.CommentAncestry(c.Kind)
	if err != nil {
		e.fail(err)
		return
	}
	if c.Kind.Abstract() {
		e.fail(fmt.Errorf("%w: abstract %s", ErrEmit, c.Kind))
		return
	}
	e.w.BeginVariant(c.Kind.String())
	e.w.BeginTuple(arity)
	for _, k := range chain {
		fn := commentVisits[k]
		if fn == nil {
			if ast.CommentOwn(k) > 0 {
				e.fail(fmt.Errorf("%w: %s", ErrEmit, k))
				return
			}
			continue
		}
		fn(e, c)
	}
	e.w.EndTuple()
	e.w.EndVariant()
}

func (e *Exporter) emitCommentInfo(c *ast.Comment) {
	e.w.BeginObject(2)
	e.w.Key("parent_pointer")
	e.w.String(tok(e.idents, c))
	e.w.Key("source_range")
	e.emitRange(c.Range)
	e.w.EndObject()

	e.w.BeginArray(len(c.Children))
	for _, child := range c.Children {
		e.encodeComment(child)
	}
	e.w.EndArray()
}

func (e *Exporter) emitCommentText(c *ast.Comment) {
	e.w.String(c.Text)
}
