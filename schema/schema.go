package schema

import (
	"fmt"
	"io"

	"github.com/astlib/astexport/ast"
	"github.com/astlib/astexport/atd"
)

// Variant is one entry of the output contract: a tag a consumer will
// see and the tuple width behind it.
type Variant struct {
	Name  string
	Arity int
}

// FamilySchema lists every concrete variant of one node family.
type FamilySchema struct {
	Family   ast.Family
	Variants []Variant
}

// Of builds the schema of a single family.
func Of(f ast.Family) (FamilySchema, error) {
	fs := FamilySchema{Family: f}
	add := func(name string, arity int, err error) error {
		if err != nil {
			return err
		}
		fs.Variants = append(fs.Variants, Variant{Name: name, Arity: arity})
		return nil
	}
	var err error
	switch f {
	case ast.DeclFamily:
		for _, k := range ast.DeclKinds() {
			a, aerr := ast.DeclArity(k)
			if err = add(k.String(), a, aerr); err != nil {
				return fs, err
			}
		}
	case ast.StmtFamily:
		for _, k := range ast.StmtKinds() {
			a, aerr := ast.StmtArity(k)
			if err = add(k.String(), a, aerr); err != nil {
				return fs, err
			}
		}
	case ast.TypeFamily:
		for _, k := range ast.TypeKinds() {
			a, aerr := ast.TypeArity(k)
			if err = add(k.String(), a, aerr); err != nil {
				return fs, err
			}
		}
	case ast.CommentFamily:
		for _, k := range ast.CommentKinds() {
			a, aerr := ast.CommentArity(k)
			if err = add(k.String(), a, aerr); err != nil {
				return fs, err
			}
		}
	default:
		return fs, fmt.Errorf("%w: family %d", ast.ErrTaxonomy, int(f))
	}
	return fs, nil
}

// All returns the full contract, one schema per family in the fixed
// family order.
func All() ([]FamilySchema, error) {
	var out []FamilySchema
	for _, f := range ast.Families() {
		fs, err := Of(f)
		if err != nil {
			return nil, err
		}
		out = append(out, fs)
	}
	return out, nil
}

// Lookup finds a variant by tag across all families.
func Lookup(name string) (ast.Family, Variant, bool) {
	all, err := All()
	if err != nil {
		return 0, Variant{}, false
	}
	for _, fs := range all {
		for _, v := range fs.Variants {
			if v.Name == name {
				return fs.Family, v, true
			}
		}
	}
	return 0, Variant{}, false
}

// Render writes the contract as text, one variant per line. Colors may
// be nil for plain output.
func Render(w io.Writer, schemas []FamilySchema, colors *atd.Colors) error {
	tag := func(s string) string { return s }
	num := tag
	if colors != nil {
		tag = func(s string) string { return colors.Color(atd.TagColor, s) }
		num = func(s string) string { return colors.Color(atd.NumberColor, s) }
	}
	for _, fs := range schemas {
		if _, err := fmt.Fprintf(w, "%s:\n", fs.Family); err != nil {
			return err
		}
		for _, v := range fs.Variants {
			if _, err := fmt.Fprintf(w, "  %s %s\n", tag(v.Name), num(fmt.Sprintf("(%d)", v.Arity))); err != nil {
				return err
			}
		}
	}
	return nil
}
