package clustertree

import "math"

// Cluster is one node of the condensed cluster tree. Label 0 is
// reserved for noise and never backed by a live Cluster value; real
// clusters start at label 1 (the root).
type Cluster struct {
	Label      int
	BirthLevel float64 // density threshold (MRD) at birth; +Inf for the root
	DeathLevel float64 // MRD at which the cluster lost its last point; 0 = alive
	NumPoints  int
	Stability  float64

	// Propagated fields, populated by package propagate. Zero-valued
	// until propagation runs.
	PropagatedStability              float64
	PropagatedNumConstraintsSatisfied int
	PropagatedLowestChildDeathLevel   float64
	PropagatedDescendants             []*Cluster

	// NumConstraintsSatisfied is the semi-supervised constraint hook
	// from spec.md: wired but never populated, always 0.
	NumConstraintsSatisfied int

	Parent      int // label of the parent cluster, -1 for the root
	HasChildren bool

	// VirtualChildCluster holds the ids of points that fell off this
	// cluster as noise, kept sorted ascending (see spec.md §9: any
	// sorted-array or balanced-tree backing meets the ordered-set
	// contract).
	VirtualChildCluster []int

	// Offset is the hierarchy line number on which this cluster
	// first appears.
	Offset int64
}

func newRootCluster(n int) *Cluster {
	return &Cluster{
		Label:                           1,
		BirthLevel:                      math.Inf(1),
		DeathLevel:                      0,
		NumPoints:                       n,
		Parent:                          -1,
		PropagatedLowestChildDeathLevel: math.Inf(1),
	}
}

func newChildCluster(label, parent, numPoints int, birthLevel float64) *Cluster {
	return &Cluster{
		Label:                           label,
		BirthLevel:                      birthLevel,
		NumPoints:                       numPoints,
		Parent:                          parent,
		PropagatedLowestChildDeathLevel: math.Inf(1),
	}
}

// addVirtualChild inserts p into the cluster's virtual-child ordered
// set, keeping it sorted ascending with no duplicates.
func (c *Cluster) addVirtualChild(p int) {
	s := c.VirtualChildCluster
	i := 0
	for i < len(s) && s[i] < p {
		i++
	}
	if i < len(s) && s[i] == p {
		return
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:len(s)-1])
	s[i] = p
	c.VirtualChildCluster = s
}

// HierarchyEntry is a snapshot of per-point labels at one density
// level, keyed by a monotonically increasing line number (0 is
// reserved for the terminal all-noise level).
type HierarchyEntry struct {
	EdgeWeight float64
	Labels     []int
}

// Tree is the result of ClusterTreeBuilder.Run: the cluster vector
// (addressed by label, index 0 always nil), the hierarchy, and the
// per-point bookkeeping the Extractor needs to compute outlier
// scores.
type Tree struct {
	N int

	// Clusters is addressed by label; Clusters[0] is always nil.
	Clusters []*Cluster

	// Hierarchy maps line number -> snapshot. Line 0 is the terminal
	// all-noise level.
	Hierarchy map[int64]*HierarchyEntry

	// FinalLabels holds each point's cluster label at the moment it
	// last changed during tree construction (0 once noise).
	FinalLabels []int

	// PointNoiseLevels[p] is the MRD at which point p fell off its
	// last cluster as noise; 0 if p never fell off (i.e. it is still
	// labeled non-zero in FinalLabels at the end, which cannot
	// happen per spec's termination invariant, or p was noise from
	// the very start).
	PointNoiseLevels []float64

	// PointLastClusters[p] is the label of the cluster p belonged to
	// immediately before falling off as noise.
	PointLastClusters []int
}
