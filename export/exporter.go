package export

import (
	"io"

	"github.com/expr-lang/expr/vm"

	"github.com/astlib/astexport/ast"
	"github.com/astlib/astexport/atd"
)

// Exporter serializes one declaration tree. All encoding state, the
// identity table, the location cache and the writer's nesting stack,
// is owned by the Exporter and lives for exactly one Export call.
type Exporter struct {
	w      *atd.Writer
	o      options
	idents *identTable
	filter *vm.Program

	lastFile string
	lastLine int
	depth    int
	err      error
}

// New builds an Exporter writing to out. The filter expression, if
// configured, is compiled here so a bad expression fails before any
// output is produced.
func New(out io.Writer, opts ...Option) (*Exporter, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	e := &Exporter{
		o:      o,
		idents: newIdentTable(o.withPointers),
	}
	if o.filterExpr != "" {
		prog, err := compileFilter(o.filterExpr)
		if err != nil {
			return nil, err
		}
		e.filter = prog
	}
	wopts := []atd.WriteOption{
		atd.WithDialect(o.dialect),
		atd.WithPretty(o.pretty),
	}
	if o.colors != nil {
		wopts = append(wopts, atd.WithColors(o.colors))
	}
	e.w = atd.NewWriter(out, wopts...)
	return e, nil
}

// Export encodes root and everything reachable from it, then flushes.
// The first error aborts the run; partial output is not recovered.
func (e *Exporter) Export(root *ast.Decl) error {
	e.encodeDecl(root)
	if e.err != nil {
		return e.err
	}
	return e.w.Close()
}

func (e *Exporter) fail(err error) {
	if e.err == nil && err != nil {
		e.err = err
	}
}

func (e *Exporter) enter() bool {
	if e.err != nil {
		return false
	}
	e.depth++
	if e.o.maxDepth > 0 && e.depth > e.o.maxDepth {
		e.fail(ErrDepth)
		return false
	}
	return true
}

func (e *Exporter) leave() { e.depth-- }
