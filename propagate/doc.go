// Package propagate implements the post-order stability propagation
// pass over a clustertree.Tree: starting from the leaves, each
// cluster's contribution bubbles into its parent, choosing between
// "keep this cluster" and "keep its already-chosen descendants"
// by comparing stability (and the always-zero constraint hook).
//
// The walk is driven by a worklist of cluster labels rather than
// recursion, because child labels are always greater than their
// parent's (clusters are created in increasing label order), so
// repeatedly popping the current maximum label and re-queuing its
// parent yields a valid post-order without needing explicit child
// pointers.
package propagate
