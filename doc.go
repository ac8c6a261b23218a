// Package hdbscan orchestrates the four-stage HDBSCAN* pipeline —
// dataset, mst, clustertree, propagate, extract — behind a single
// Engine value, mirroring how lvlath exposes a whole algorithm family
// (core.Graph plus its algorithms/matrix satellites) through one entry
// type per concern.
//
// Engine owns every derived artifact (pairwise distances, core
// distances, the MST, the cluster tree, the propagated stability, the
// flat labels, the outlier scores, and the validity statistics) and
// is not safe for concurrent use; NewEngine, Run, and Rerun must be called
// from a single goroutine. Rerun reuses the cached pairwise distances
// and core-distance engine, recomputing only the core-distance window,
// MST, cluster tree, propagation, and extraction for the new mpts.
package hdbscan
