package atd

import (
	"errors"
	"fmt"
)

// Dialect selects how containers and variants are framed on the wire.
//
// JSON renders variants as ["Tag", arg] or a bare "Tag" string, and
// tuples as arrays. Yojson renders variants as <"Tag":arg> or <"Tag">,
// and tuples as parenthesized lists. Objects and arrays look the same
// in both.
type Dialect int

const (
	JSON Dialect = iota
	Yojson
)

var ErrBadDialect = errors.New("bad dialect")

func ParseDialect(v string) (Dialect, error) {
	d, ok := map[string]Dialect{
		"j":      JSON,
		"json":   JSON,
		"y":      Yojson,
		"yojson": Yojson,
	}[v]
	if ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDialect, v)
}

func (d Dialect) String() string {
	b, err := d.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(b)
}

func (d Dialect) MarshalText() ([]byte, error) {
	switch d {
	case JSON:
		return []byte("json"), nil
	case Yojson:
		return []byte("yojson"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a dialect>", d)
	}
}

func (d *Dialect) UnmarshalText(b []byte) error {
	pd, err := ParseDialect(string(b))
	if err != nil {
		return err
	}
	*d = pd
	return nil
}

func (d Dialect) Suffix() string {
	switch d {
	case JSON:
		return ".json"
	case Yojson:
		return ".yjson"
	default:
		return ""
	}
}
