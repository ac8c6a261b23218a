package dataset

import "errors"

// Sentinel errors for the dataset package. Callers should branch on
// these with errors.Is; messages are not part of the contract.
var (
	// ErrAllocation indicates Compute could not size the packed
	// distance store (its cell count N*(N-1)/2 came out negative).
	// rows <= 0 is rejected earlier by NewEngine with ErrInvalidShape.
	ErrAllocation = errors.New("dataset: allocation failure")

	// ErrInvalidShape indicates rows, cols, or dtype describe a
	// dataset buffer that does not match the declared geometry.
	ErrInvalidShape = errors.New("dataset: invalid shape")

	// ErrInvalidMpts indicates mpts < 1 or mpts > rows.
	ErrInvalidMpts = errors.New("dataset: invalid mpts")

	// ErrIndexOutOfRange indicates a row/col index passed to Get is
	// outside [0, N).
	ErrIndexOutOfRange = errors.New("dataset: index out of range")

	// ErrInvalidState indicates an operation was requested before its
	// prerequisite stage (Compute before CoreDistances, etc.) ran.
	ErrInvalidState = errors.New("dataset: invalid state")
)
