package mst

import "math"

// Distancer is the subset of dataset.Engine the builder needs: the
// pairwise Euclidean distance between two points. Kept as a small,
// locally-defined interface, as lvlath favors, so mst never imports
// dataset directly for a concrete dependency on a sibling package's
// full type.
type Distancer interface {
	Get(i, j int) (float64, error)
}

// Build runs a Prim-style expansion over the mutual-reachability
// graph implied by core (core distances) and dist (pairwise
// distances), starting from vertex n-1, and returns the resulting
// Graph. When selfEdges is true, N self-loop edges are appended after
// the N-1 real edges: edge (i, n-1+i) carries weight core[i].
//
// Mutual-reachability weight of (a,b) is
// max(core[a], core[b], dist.Get(a,b)). Ties among candidate nearest
// vertices are broken by lowest index, for determinism.
func Build(core []float64, dist Distancer, n int, selfEdges bool) (*Graph, error) {
	if n < 1 || len(core) != n {
		return nil, ErrInvalidInput
	}
	if n == 1 {
		g := NewGraph(n, edgeCapacity(n, selfEdges))
		if selfEdges {
			g.addEdge(0, n-1+0, core[0], true)
		}
		return g, nil
	}

	attached := make([]bool, n)
	nearestMRD := make([]float64, n)
	nearestFrom := make([]int, n)
	for v := 0; v < n; v++ {
		nearestMRD[v] = math.Inf(1)
		nearestFrom[v] = -1
	}

	current := n - 1
	attached[current] = true
	updateFrontier(current, core, dist, attached, nearestMRD, nearestFrom)

	g := NewGraph(n, edgeCapacity(n, selfEdges))
	for attachedCount := 1; attachedCount < n; attachedCount++ {
		next := -1
		best := math.Inf(1)
		for v := 0; v < n; v++ {
			if attached[v] {
				continue
			}
			if nearestMRD[v] < best {
				best = nearestMRD[v]
				next = v
			}
		}
		if next == -1 || nearestFrom[next] == -1 {
			return nil, ErrMSTFailure
		}

		g.addEdge(nearestFrom[next], next, nearestMRD[next], false)
		attached[next] = true
		updateFrontier(next, core, dist, attached, nearestMRD, nearestFrom)
	}

	if selfEdges {
		for i := 0; i < n; i++ {
			g.addEdge(i, n-1+i, core[i], true)
		}
	}

	return g, nil
}

// updateFrontier relaxes nearestMRD/nearestFrom for every unattached
// vertex against the newly attached vertex `current`.
func updateFrontier(current int, core []float64, dist Distancer, attached []bool, nearestMRD []float64, nearestFrom []int) {
	for v := 0; v < len(attached); v++ {
		if attached[v] || v == current {
			continue
		}
		d, err := dist.Get(current, v)
		if err != nil {
			continue
		}
		mrd := mutualReachability(core[current], core[v], d)
		if mrd < nearestMRD[v] {
			nearestMRD[v] = mrd
			nearestFrom[v] = current
		}
	}
}

// mutualReachability computes max(coreA, coreB, d).
func mutualReachability(coreA, coreB, d float64) float64 {
	m := coreA
	if coreB > m {
		m = coreB
	}
	if d > m {
		m = d
	}
	return m
}

func edgeCapacity(n int, selfEdges bool) int {
	if selfEdges {
		return 2*n - 1
	}
	return n - 1
}
