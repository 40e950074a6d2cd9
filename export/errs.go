package export

import "errors"

var (
	// ErrFilter means the membership filter expression failed to
	// compile or evaluate.
	ErrFilter = errors.New("filter expression")

	// ErrDepth means the tree nests deeper than the configured limit.
	ErrDepth = errors.New("max depth exceeded")

	// ErrEmit means a concrete kind reached the encoder without a
	// matching field-emission routine. The taxonomy and the encoder
	// are out of sync; the run is discarded.
	ErrEmit = errors.New("no emitter for kind")
)
