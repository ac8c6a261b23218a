package hdbscan

import "errors"

// Sentinel errors for the orchestrator. The dataset, mst, and
// clustertree packages raise their own sentinels (ErrAllocation,
// ErrMSTFailure, ErrInvalidState in their respective packages); Run
// and Rerun propagate those unchanged so callers can still
// errors.Is against the originating package, and add the two below
// for orchestration-level misuse.
var (
	// ErrNotInitialized indicates Rerun was called before Run had
	// computed the dataset's distances, or WriteHierarchy or
	// WriteVisualizationSidecar was called before Run had built a
	// cluster tree.
	ErrNotInitialized = errors.New("hdbscan: engine not initialized")

	// ErrInvalidMpts indicates mpts < 1 was passed to NewEngine or
	// Rerun.
	ErrInvalidMpts = errors.New("hdbscan: invalid mpts")
)
