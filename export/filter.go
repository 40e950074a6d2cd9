package export

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/astlib/astexport/ast"
	"github.com/astlib/astexport/debug"
)

type filterEnv struct {
	File string `expr:"file"`
	Base string `expr:"base"`
}

func compileFilter(src string) (*vm.Program, error) {
	prog, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFilter, err)
	}
	return prog, nil
}

// keepMember decides whether a declaration belongs in its enclosing
// scope's listing. Declarations with no known file always stay; nodes
// reached by reference are never filtered.
func (e *Exporter) keepMember(d *ast.Decl) (bool, error) {
	file := d.File()
	if file == "" {
		return true, nil
	}
	if e.o.basePath != "" && !underPath(file, e.o.basePath) {
		if debug.Filter() {
			debug.Logf("filter: drop %s (outside %s)", file, e.o.basePath)
		}
		return false, nil
	}
	if e.o.keep != nil && !e.o.keep(file) {
		if debug.Filter() {
			debug.Logf("filter: drop %s (predicate)", file)
		}
		return false, nil
	}
	if e.filter != nil {
		out, err := expr.Run(e.filter, filterEnv{File: file, Base: e.o.basePath})
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrFilter, err)
		}
		if !out.(bool) {
			return false, nil
		}
	}
	return true, nil
}

func underPath(file, base string) bool {
	if file == base {
		return true
	}
	return strings.HasPrefix(file, strings.TrimSuffix(base, "/")+"/")
}
