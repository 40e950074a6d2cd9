package ast

import (
	"fmt"
	"slices"
)

// Family identifies one of the four node categories.
type Family int

const (
	DeclFamily Family = iota
	StmtFamily
	TypeFamily
	CommentFamily
)

func (f Family) String() string {
	switch f {
	case DeclFamily:
		return "decl"
	case StmtFamily:
		return "stmt"
	case TypeFamily:
		return "type"
	case CommentFamily:
		return "comment"
	default:
		return fmt.Sprintf("<err: %d is not a family>", f)
	}
}

func Families() []Family {
	return []Family{DeclFamily, StmtFamily, TypeFamily, CommentFamily}
}

// ParseFamily is the inverse of Family.String, accepting the same short
// forms the CLI does.
func ParseFamily(v string) (Family, error) {
	f, ok := map[string]Family{
		"d":        DeclFamily,
		"decl":     DeclFamily,
		"s":        StmtFamily,
		"stmt":     StmtFamily,
		"t":        TypeFamily,
		"type":     TypeFamily,
		"c":        CommentFamily,
		"comment":  CommentFamily,
		"comments": CommentFamily,
	}[v]
	if !ok {
		return 0, fmt.Errorf("%w: no family %q", ErrTaxonomy, v)
	}
	return f, nil
}

// kindEntry declares one kind: its serialized variant name, its parent in
// the family tree, how many fields it contributes on top of the parent,
// and whether concrete nodes of this kind can exist (abstract kinds only
// anchor shared fields).
type kindEntry[K comparable] struct {
	name     string
	parent   K
	own      int
	abstract bool
}

// taxonomy resolves arities and ancestor chains for one family. All
// resolution happens once, at package init; Arity and Ancestry afterwards
// are table lookups.
type taxonomy[K comparable] struct {
	family  Family
	root    K
	entries map[K]kindEntry[K]
	arity   map[K]int
	chain   map[K][]K
}

func newTaxonomy[K comparable](family Family, root K, entries map[K]kindEntry[K]) *taxonomy[K] {
	t := &taxonomy[K]{
		family:  family,
		root:    root,
		entries: entries,
		arity:   make(map[K]int, len(entries)),
		chain:   make(map[K][]K, len(entries)),
	}
	for k := range entries {
		t.resolve(k)
	}
	return t
}

// resolve computes the root-to-leaf ancestor chain and the arity of k.
// It panics on a malformed table (unknown parent, cycle): the tables are
// compiled in, so a hole here can only be a programming error.
func (t *taxonomy[K]) resolve(k K) {
	if _, done := t.chain[k]; done {
		return
	}
	var chain []K
	arity := 0
	seen := map[K]bool{}
	for cur := k; ; {
		if seen[cur] {
			panic(fmt.Sprintf("ast: %s taxonomy cycle at %v", t.family, cur))
		}
		seen[cur] = true
		e, ok := t.entries[cur]
		if !ok {
			panic(fmt.Sprintf("ast: %s taxonomy has no entry for %v (parent of %v)", t.family, cur, k))
		}
		chain = append(chain, cur)
		arity += e.own
		if cur == t.root {
			break
		}
		cur = e.parent
	}
	slices.Reverse(chain)
	t.chain[k] = chain
	t.arity[k] = arity
}

func (t *taxonomy[K]) Arity(k K) (int, error) {
	n, ok := t.arity[k]
	if !ok {
		return 0, fmt.Errorf("%w: %s kind %v", ErrTaxonomy, t.family, k)
	}
	return n, nil
}

func (t *taxonomy[K]) Ancestry(k K) ([]K, error) {
	c, ok := t.chain[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s kind %v", ErrTaxonomy, t.family, k)
	}
	return c, nil
}

func (t *taxonomy[K]) Name(k K) (string, bool) {
	e, ok := t.entries[k]
	return e.name, ok
}

func (t *taxonomy[K]) Own(k K) int {
	return t.entries[k].own
}

// Concrete lists the kinds that real nodes may carry, in declaration
// order of the kind constants.
func (t *taxonomy[K]) Concrete(all []K) []K {
	res := make([]K, 0, len(all))
	for _, k := range all {
		if e, ok := t.entries[k]; ok && !e.abstract {
			res = append(res, k)
		}
	}
	return res
}
