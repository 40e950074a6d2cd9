package export

import (
	"strings"

	"github.com/astlib/astexport/ast"
	"github.com/astlib/astexport/debug"
)

// emitLocation writes a source position relative to the previous one
// emitted in this run. Fields repeat only when they change: a new file
// carries file, line and column, a new line on the same file carries
// line and column, and a position on the cached line carries just the
// column. Unknown positions are empty records and leave the cache
// untouched.
func (e *Exporter) emitLocation(l *ast.SourceLocation) {
	l = l.Resolve()
	if l == nil || !l.Valid {
		e.w.BeginObject(0)
		e.w.EndObject()
		return
	}
	file := e.relFile(l.File)
	switch {
	case file != e.lastFile:
		if debug.Loc() {
			debug.Logf("loc: file %s -> %s", e.lastFile, file)
		}
		e.w.BeginObject(3)
		e.w.Key("file")
		e.w.String(file)
		e.w.Key("line")
		e.w.Int(int64(l.Line))
		e.w.Key("column")
		e.w.Int(int64(l.Column))
		e.w.EndObject()
		e.lastFile = file
		e.lastLine = l.Line
	case l.Line != e.lastLine:
		e.w.BeginObject(2)
		e.w.Key("line")
		e.w.Int(int64(l.Line))
		e.w.Key("column")
		e.w.Int(int64(l.Column))
		e.w.EndObject()
		e.lastLine = l.Line
	default:
		e.w.BeginObject(1)
		e.w.Key("column")
		e.w.Int(int64(l.Column))
		e.w.EndObject()
	}
}

// emitRange writes the begin and end positions as a pair. Begin goes
// first so the compressor cache reflects document order.
func (e *Exporter) emitRange(r ast.SourceRange) {
	e.w.BeginTuple(2)
	e.emitLocation(&r.Begin)
	e.emitLocation(&r.End)
	e.w.EndTuple()
}

func (e *Exporter) relFile(file string) string {
	base := e.o.basePath
	if base == "" || !underPath(file, base) {
		return file
	}
	rel := strings.TrimPrefix(file, strings.TrimSuffix(base, "/"))
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		// The file is the base path itself. An empty name would look
		// like the compressor's unset state, so keep the full path.
		return file
	}
	return rel
}
