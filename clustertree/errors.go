package clustertree

import "errors"

var (
	// ErrInvalidInput indicates n < 1 or mpts < 1 was passed to
	// NewBuilder, or the supplied Graph does not have n real
	// vertices.
	ErrInvalidInput = errors.New("clustertree: invalid input")

	// ErrInvalidState indicates a Cluster's NumPoints went negative
	// during detachPoints — a fatal invariant violation per spec.md
	// §4.3.
	ErrInvalidState = errors.New("clustertree: negative cluster population")
)
