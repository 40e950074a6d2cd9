package atd

import "errors"

var (
	// ErrArity means a container was closed with a value count other
	// than the one declared when it was opened.
	ErrArity = errors.New("container arity mismatch")

	// ErrState means the writer was driven out of protocol, for
	// example a key written outside an object.
	ErrState = errors.New("writer state")

	// ErrClosed means a write was attempted after Close.
	ErrClosed = errors.New("writer closed")
)
