// Package mst builds a minimum spanning tree over a mutual-reachability
// graph and exposes it as an undirected weighted Graph: adjacency
// lists plus parallel arrays of edges (VerticesA, VerticesB, Weights).
//
// Graph supports in-place ascending sort by weight and edge removal,
// mirroring the adjacency-list mutation style of lvlath's core.Graph
// but specialized to the fixed, array-backed edge set an MST produces
// rather than a general mutable multigraph.
package mst
