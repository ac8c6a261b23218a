package mst

import "errors"

var (
	// ErrInvalidInput indicates n < 1, or a core slice whose length
	// is not n, was passed to Build.
	ErrInvalidInput = errors.New("mst: invalid input")

	// ErrMSTFailure indicates the Prim expansion could not attach
	// every vertex — should be impossible for a well-formed,
	// fully-connected mutual-reachability graph, but is reported
	// rather than silently producing a partial tree.
	ErrMSTFailure = errors.New("mst: failed to build spanning tree")

	// ErrEdgeNotFound indicates RemoveEdge was called with an index
	// outside the current edge arrays, or for an edge already removed.
	ErrEdgeNotFound = errors.New("mst: edge not found")
)
