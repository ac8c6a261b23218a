package clustertree

import (
	"sort"

	"github.com/katalvlaran/hdbscan/mst"
)

// Builder drives the main cluster-tree construction loop described in
// spec.md §4.3. Create one with NewBuilder per run; it is not safe
// for concurrent use, and the tree-building loop must not be
// parallelized (it carries sequential dependencies edge-group to
// edge-group).
type Builder struct {
	mpts int
	n    int

	previousLabels []int
	currentLabels  []int

	clusters  []*Cluster
	hierarchy map[int64]*HierarchyEntry
	nextLine  int64
	nextLabel int

	pointNoiseLevels  []float64
	pointLastClusters []int
}

// NewBuilder allocates a Builder for n points and the given mpts.
func NewBuilder(mpts, n int) (*Builder, error) {
	if mpts < 1 || n < 1 {
		return nil, ErrInvalidInput
	}

	prev := make([]int, n)
	cur := make([]int, n)
	for i := range prev {
		prev[i] = 1
		cur[i] = 1
	}

	root := newRootCluster(n)
	b := &Builder{
		mpts:              mpts,
		n:                 n,
		previousLabels:    prev,
		currentLabels:     cur,
		clusters:          []*Cluster{nil, root},
		hierarchy:         make(map[int64]*HierarchyEntry),
		nextLine:          1,
		nextLabel:         2,
		pointNoiseLevels:  make([]float64, n),
		pointLastClusters: make([]int, n),
	}
	return b, nil
}

// Run consumes g (which it sorts ascending and mutates by removing
// edges) and returns the completed Tree.
func (b *Builder) Run(g *mst.Graph) (*Tree, error) {
	if g.N != b.n {
		return nil, ErrInvalidInput
	}
	g.SortAscending()

	cursor := len(g.Weights) - 1
	for cursor >= 0 {
		if !g.Alive(cursor) {
			cursor--
			continue
		}
		w := g.Weights[cursor]

		var groupEdges []int
		k := cursor
		for k >= 0 && g.Weights[k] == w {
			if g.Alive(k) {
				groupEdges = append(groupEdges, k)
			}
			k--
		}
		cursor = k

		affectedLabel := make(map[int]int) // vertex -> label at gather time
		labelSet := make(map[int]bool)
		consider := func(v int) {
			if _, seen := affectedLabel[v]; seen {
				return
			}
			lbl := b.currentLabels[v]
			if lbl == 0 {
				return
			}
			affectedLabel[v] = lbl
			labelSet[lbl] = true
		}
		for _, e := range groupEdges {
			consider(g.VerticesA[e])
			if !g.IsSelfLoop(e) {
				consider(g.VerticesB[e])
			}
		}
		for _, e := range groupEdges {
			_ = g.RemoveEdge(e) // e was just filtered by g.Alive above, so it cannot fail here
		}

		if len(affectedLabel) == 0 {
			continue
		}

		labels := make([]int, 0, len(labelSet))
		for l := range labelSet {
			labels = append(labels, l)
		}
		sort.Ints(labels) // process by popping the largest label first

		var createdThisRound []*Cluster
		for i := len(labels) - 1; i >= 0; i-- {
			created, err := b.processLabel(labels[i], affectedLabel, g, w)
			if err != nil {
				return nil, err
			}
			createdThisRound = append(createdThisRound, created...)
		}

		// Every edge-weight group that reached this point (it touched a
		// non-noise vertex) gets its own hierarchy line, matching
		// hdbscan_compute_hierarchy_and_cluster_tree's non-compact mode
		// rather than emitting only around cluster-creating rounds.
		line := b.nextLine
		b.nextLine++
		snapshot := make([]int, b.n)
		copy(snapshot, b.previousLabels)
		b.hierarchy[line] = &HierarchyEntry{EdgeWeight: w, Labels: snapshot}
		for _, c := range createdThisRound {
			c.Offset = line
		}
		copy(b.previousLabels, b.currentLabels)
	}

	// Terminal all-noise level, keyed 0.
	b.hierarchy[0] = &HierarchyEntry{EdgeWeight: 0, Labels: make([]int, b.n)}

	return &Tree{
		N:                 b.n,
		Clusters:          b.clusters,
		Hierarchy:         b.hierarchy,
		FinalLabels:       append([]int(nil), b.currentLabels...),
		PointNoiseLevels:  b.pointNoiseLevels,
		PointLastClusters: b.pointLastClusters,
	}, nil
}

// processLabel resolves every connected component the affected
// vertices of label L split into at weight w, applies the
// shrinkage/true-split/noise-fall-off rule, and returns any newly
// created clusters.
func (b *Builder) processLabel(label int, affectedLabel map[int]int, g *mst.Graph, w float64) ([]*Cluster, error) {
	var examined []int
	for v, l := range affectedLabel {
		if l == label {
			examined = append(examined, v)
		}
	}
	sort.Ints(examined) // deterministic seed order

	visited := make(map[int]bool, len(examined))
	var components [][]int
	for _, seed := range examined {
		if visited[seed] {
			continue
		}
		components = append(components, bfsComponent(seed, g, visited))
	}

	parent := b.clusters[label]

	var valid, invalid [][]int
	for _, c := range components {
		if len(c) >= b.mpts && len(c) > 1 {
			valid = append(valid, c)
		} else {
			invalid = append(invalid, c)
		}
	}

	var created []*Cluster
	switch {
	case len(valid) >= 2:
		for _, c := range valid {
			child := newChildCluster(b.nextLabel, label, len(c), w)
			b.nextLabel++
			b.clusters = append(b.clusters, child)
			parent.HasChildren = true
			for _, v := range c {
				b.currentLabels[v] = child.Label
			}
			if err := b.detachPoints(parent, len(c), w); err != nil {
				return nil, err
			}
			created = append(created, child)
		}
	case len(valid) == 1:
		// Shrinkage: the sole valid component keeps label, no new
		// cluster, no detachment for its points.
	}
	// len(valid) == 0 falls through with nothing special: every
	// component in `invalid` (which is then all of them) noises off.

	for _, c := range invalid {
		if err := b.noiseFallOff(parent, c, w); err != nil {
			return nil, err
		}
	}

	return created, nil
}

// noiseFallOff detaches the points of an invalid component from
// parent as noise, recording their fall-off level and last cluster.
func (b *Builder) noiseFallOff(parent *Cluster, verts []int, w float64) error {
	if err := b.detachPoints(parent, len(verts), w); err != nil {
		return err
	}
	for _, v := range verts {
		b.currentLabels[v] = 0
		b.pointNoiseLevels[v] = w
		b.pointLastClusters[v] = parent.Label
		parent.addVirtualChild(v)
	}
	return nil
}

// detachPoints implements spec.md §4.3's detachPoints(c, k, eps). The
// root's BirthLevel is +Inf, so 1/c.BirthLevel is exactly 0 and the
// term reduces to k/eps with no special-casing; eps==0 (duplicate
// points) then yields a genuine +Inf contribution, which is how
// Propagate's infinite-stability flag gets set.
func (b *Builder) detachPoints(c *Cluster, k int, eps float64) error {
	c.NumPoints -= k
	if c.NumPoints < 0 {
		return ErrInvalidState
	}
	c.Stability += float64(k) * (1/eps - 1/c.BirthLevel)
	if c.NumPoints == 0 {
		c.DeathLevel = eps
	}
	return nil
}

// bfsComponent explores the connected component of seed over g's live
// non-self-loop edges, marking every visited vertex in visited.
func bfsComponent(seed int, g *mst.Graph, visited map[int]bool) []int {
	queue := []int{seed}
	visited[seed] = true
	comp := []int{seed}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range g.Neighbors(v) {
			if g.IsSelfLoop(e) {
				continue
			}
			other := g.Other(e, v)
			if visited[other] {
				continue
			}
			visited[other] = true
			comp = append(comp, other)
			queue = append(queue, other)
		}
	}
	return comp
}
