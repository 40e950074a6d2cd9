package ast

import "errors"

var (
	// ErrTaxonomy reports a kind with no entry in its family's taxonomy
	// table. This is a build-time mismatch between the node model and the
	// encoder, never an input problem.
	ErrTaxonomy = errors.New("taxonomy incomplete")
)
