package extract

import (
	"sort"

	"github.com/katalvlaran/hdbscan/clustertree"
)

// Labels computes the flat per-point cluster assignment and the
// sorted outlier scores from a propagated tree, per spec.md §4.5.
//
// The flat assignment reads clusters[1].PropagatedDescendants (the
// prominent clustering chosen by propagation): each descendant c is
// grouped by its birth offset, and for every such offset K, the
// hierarchy entry one line later (K+1 — the level just after c was
// born) supplies the per-point labels to copy into the result for any
// point whose label there matches one of the grouped descendants.
func Labels(tree *clustertree.Tree, coreDistances []float64) ([]int, []OutlierScore) {
	clusterLabels := make([]int, tree.N)

	root := tree.Clusters[1]
	byOffset := make(map[int64]map[int]bool)
	for _, c := range root.PropagatedDescendants {
		set := byOffset[c.Offset]
		if set == nil {
			set = make(map[int]bool)
			byOffset[c.Offset] = set
		}
		set[c.Label] = true
	}

	for offset, labelSet := range byOffset {
		entry, ok := tree.Hierarchy[offset+1]
		if !ok {
			continue
		}
		for p, lbl := range entry.Labels {
			if labelSet[lbl] {
				clusterLabels[p] = lbl
			}
		}
	}

	scores := make([]OutlierScore, tree.N)
	for p := 0; p < tree.N; p++ {
		eps := tree.PointNoiseLevels[p]
		var score float64
		if eps != 0 {
			lastCluster := tree.PointLastClusters[p]
			epsMax := tree.Clusters[lastCluster].PropagatedLowestChildDeathLevel
			score = 1 - epsMax/eps
		}
		cd := 0.0
		if coreDistances != nil {
			cd = coreDistances[p]
		}
		scores[p] = OutlierScore{ID: p, Score: score, CoreDistance: cd}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score < scores[j].Score
		}
		if scores[i].CoreDistance != scores[j].CoreDistance {
			return scores[i].CoreDistance < scores[j].CoreDistance
		}
		return scores[i].ID < scores[j].ID
	})

	return clusterLabels, scores
}
