package propagate

import (
	"math"
	"sort"

	"github.com/katalvlaran/hdbscan/clustertree"
)

// Propagate walks tree bottom-up, populating each non-root cluster's
// Parent with the accumulated PropagatedStability,
// PropagatedNumConstraintsSatisfied, and PropagatedDescendants per
// spec.md §4.4. It returns true if any cluster's stability is +Inf
// (a non-fatal warning: numerically plausible with duplicate points,
// see spec.md §9), in which case the caller should surface the flag
// but still use the result.
func Propagate(tree *clustertree.Tree) bool {
	infiniteStability := false

	queued := make(map[int]bool)
	var worklist []int
	for label := 1; label < len(tree.Clusters); label++ {
		c := tree.Clusters[label]
		if c == nil {
			continue
		}
		if !c.HasChildren {
			worklist = append(worklist, label)
			queued[label] = true
		}
	}

	for len(worklist) > 0 {
		sort.Ints(worklist)
		label := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		delete(queued, label)

		c := tree.Clusters[label]
		if math.IsInf(c.Stability, 1) {
			infiniteStability = true
		}
		if math.IsInf(c.PropagatedLowestChildDeathLevel, 1) {
			c.PropagatedLowestChildDeathLevel = c.DeathLevel
		}

		if c.Parent == -1 {
			continue // root: nothing further to bubble up
		}
		parent := tree.Clusters[c.Parent]
		if c.PropagatedLowestChildDeathLevel < parent.PropagatedLowestChildDeathLevel {
			parent.PropagatedLowestChildDeathLevel = c.PropagatedLowestChildDeathLevel
		}

		useSelf := true
		switch {
		case !c.HasChildren || c.NumConstraintsSatisfied > c.PropagatedNumConstraintsSatisfied:
			useSelf = true
		case c.NumConstraintsSatisfied < c.PropagatedNumConstraintsSatisfied:
			useSelf = false
		default:
			// Tie: take whichever side has greater stability,
			// preferring c itself on exact equality.
			useSelf = c.Stability >= c.PropagatedStability
		}

		if useSelf {
			parent.PropagatedStability += c.Stability
			parent.PropagatedNumConstraintsSatisfied += c.NumConstraintsSatisfied
			parent.PropagatedDescendants = append(parent.PropagatedDescendants, c)
		} else {
			parent.PropagatedStability += c.PropagatedStability
			parent.PropagatedNumConstraintsSatisfied += c.PropagatedNumConstraintsSatisfied
			parent.PropagatedDescendants = append(parent.PropagatedDescendants, c.PropagatedDescendants...)
		}
		if math.IsInf(parent.PropagatedStability, 1) {
			infiniteStability = true
		}

		if !queued[c.Parent] {
			worklist = append(worklist, c.Parent)
			queued[c.Parent] = true
		}
	}

	return infiniteStability
}
