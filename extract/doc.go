// Package extract turns a propagated clustertree.Tree into the final
// user-facing results: a flat per-point label assignment, per-point
// outlier scores, and per-cluster distance statistics used to judge
// clustering validity (spec.md §4.5-4.6).
package extract
