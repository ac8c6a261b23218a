// Package clustertree builds the condensed HDBSCAN* cluster tree from
// a sorted mutual-reachability MST: it repeatedly peels the heaviest
// tied edges, re-explores the affected components, classifies each
// as a true split, a shrinkage, or noise fall-off, and records one
// hierarchy level per edge-weight group that touches a non-noise point.
//
// Cluster is the tree node; Tree bundles the cluster vector, the
// hierarchy, and the per-point noise bookkeeping the Extractor needs
// later. Ownership follows spec.md §3: Tree owns the Cluster vector
// by label, parent references are plain label ints (never raw
// pointers), and propagated-descendant lists hold non-owning
// references into the same vector.
package clustertree
