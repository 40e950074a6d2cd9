package export

import (
	"sort"
	"strings"
	"testing"

	"github.com/astlib/astexport/ast"
)

func scopedUnit(files map[string]string) *ast.Decl {
	names := make([]string, 0, len(files))
	for n := range files {
		names = append(names, n)
	}
	sort.Strings(names)
	var members []*ast.Decl
	for _, n := range names {
		var begin ast.SourceLocation
		if f := files[n]; f != "" {
			begin = loc(f, 1, 1)
		}
		members = append(members, declAt(n, begin, ast.SourceLocation{}))
	}
	return &ast.Decl{
		Kind:  ast.TranslationUnitDecl,
		Scope: &ast.Scope{Members: members},
	}
}

func TestBasePathFilter(t *testing.T) {
	root := scopedUnit(map[string]string{
		"a": "/src/a.c",
		"b": "/other/b.c",
	})
	out := exportString(t, root, WithBasePath("/src"))
	if !strings.Contains(out, `"name":"a"`) {
		t.Errorf("in-tree member dropped: %s", out)
	}
	if strings.Contains(out, `"name":"b"`) {
		t.Errorf("out-of-tree member kept: %s", out)
	}
	// Emitted paths are relative to the base.
	if !strings.Contains(out, `"file":"a.c"`) {
		t.Errorf("path not relativized: %s", out)
	}
}

func TestKeepPredicate(t *testing.T) {
	root := scopedUnit(map[string]string{
		"a": "/src/keep/a.c",
		"b": "/src/skip/b.c",
	})
	keep := func(file string) bool { return strings.Contains(file, "/keep/") }
	out := exportString(t, root, WithKeep(keep))
	if !strings.Contains(out, `"name":"a"`) || strings.Contains(out, `"name":"b"`) {
		t.Errorf("predicate not honored: %s", out)
	}
}

func TestFilterExpression(t *testing.T) {
	root := scopedUnit(map[string]string{
		"a": "/src/a.c",
		"b": "/src/b.h",
	})
	out := exportString(t, root, WithFilter(`file endsWith ".c"`))
	if !strings.Contains(out, `"name":"a"`) || strings.Contains(out, `"name":"b"`) {
		t.Errorf("expression not honored: %s", out)
	}
}

func TestFilterSparesUnknownFiles(t *testing.T) {
	root := scopedUnit(map[string]string{"a": ""})
	out := exportString(t, root, WithBasePath("/src"))
	if !strings.Contains(out, `"name":"a"`) {
		t.Errorf("member without location dropped: %s", out)
	}
}
