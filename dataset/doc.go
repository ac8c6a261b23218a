// Package dataset computes pairwise Euclidean distances and per-point
// core distances over a numeric dataset of one of six element widths.
//
// It owns exactly two derived artifacts: a packed upper-triangular
// distance store (see Distances) and a core-distance array, both
// write-once after Compute/CoreDistances and read-only afterwards.
// Parallelization across the outer row index is safe because every
// write lands in a disjoint cell; the package never fans out across
// any other axis.
//
// Errors:
//
//	ErrAllocation    - the engine could not size its internal buffers.
//	ErrInvalidShape  - rows/cols/dtype combination is malformed.
//	ErrInvalidMpts   - mpts < 1, or mpts > rows.
package dataset
