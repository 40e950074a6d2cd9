package export

import (
	"fmt"
	"strconv"
)

// identTable maps node identities to stable per-run tokens. In raw
// mode the token is the address rendering itself; otherwise identities
// are numbered in first-seen order. The nil identity is seeded at
// construction so absent references always tokenize to "0".
type identTable struct {
	raw  bool
	next int
	ids  map[any]int
}

func newIdentTable(raw bool) *identTable {
	t := &identTable{raw: raw, ids: map[any]int{nil: 0}, next: 1}
	return t
}

// token accepts one of the node pointer types. Callers go through the
// typed tok helper, which collapses typed nils to the null identity.
func (t *identTable) token(n any) string {
	if t.raw {
		if n == nil {
			return "0x0"
		}
		return fmt.Sprintf("%p", n)
	}
	id, ok := t.ids[n]
	if !ok {
		id = t.next
		t.next++
		t.ids[n] = id
	}
	return strconv.Itoa(id)
}

func tok[T any](t *identTable, p *T) string {
	if p == nil {
		return t.token(nil)
	}
	return t.token(p)
}
