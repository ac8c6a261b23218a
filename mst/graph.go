package mst

import "sort"

// Graph is an undirected weighted graph over the mutual-reachability
// space: N real vertices, E = (N-1) spanning-tree edges optionally
// joined by N self-loop edges (see Build). Edges are held as parallel
// arrays VerticesA/VerticesB/Weights, plus adjacency lists mapping
// each real vertex to the indices of its incident edges.
//
// A self-loop edge's second endpoint is a phantom id (N-1+i for point
// i, per spec) that never participates in adjacency as a travelable
// vertex. selfLoop[e] records which edges are self-loops; it is
// carried alongside the parallel arrays through SortAscending so
// self-loop-ness survives reordering even though self-loop weights
// generally interleave with real-edge weights after sorting.
type Graph struct {
	N int // number of real vertices

	VerticesA []int
	VerticesB []int
	Weights   []float64

	adjacency map[int][]int // real vertex -> incident edge indices, live only
	alive     []bool        // per-edge index, false once removed
	selfLoop  []bool        // per-edge index, true for self-loop edges
}

// NewGraph allocates an empty Graph sized for n real vertices and the
// given total edge capacity.
func NewGraph(n, edgeCapacity int) *Graph {
	return &Graph{
		N:         n,
		VerticesA: make([]int, 0, edgeCapacity),
		VerticesB: make([]int, 0, edgeCapacity),
		Weights:   make([]float64, 0, edgeCapacity),
		adjacency: make(map[int][]int, n),
	}
}

// addEdge appends one edge (a,b,w) and registers it in the adjacency
// list of a (and of b, when b is a real vertex index, i.e. b < N).
func (g *Graph) addEdge(a, b int, w float64, isSelfLoop bool) int {
	idx := len(g.VerticesA)
	g.VerticesA = append(g.VerticesA, a)
	g.VerticesB = append(g.VerticesB, b)
	g.Weights = append(g.Weights, w)
	g.alive = append(g.alive, true)
	g.selfLoop = append(g.selfLoop, isSelfLoop)

	g.adjacency[a] = append(g.adjacency[a], idx)
	if b < g.N && b != a {
		g.adjacency[b] = append(g.adjacency[b], idx)
	}
	return idx
}

// IsSelfLoop reports whether edge e is one of the N self-loop edges.
func (g *Graph) IsSelfLoop(e int) bool { return g.selfLoop[e] }

// EdgeCount returns the number of edges still present (not removed).
func (g *Graph) EdgeCount() int {
	n := 0
	for _, a := range g.alive {
		if a {
			n++
		}
	}
	return n
}

// Alive reports whether edge e has not been removed.
func (g *Graph) Alive(e int) bool { return g.alive[e] }

// RemoveEdge deletes edge e from the graph: it is marked dead and
// dropped from the adjacency lists of its endpoints. Removal is O(deg)
// in the endpoints' adjacency length.
func (g *Graph) RemoveEdge(e int) error {
	if e < 0 || e >= len(g.alive) || !g.alive[e] {
		return ErrEdgeNotFound
	}
	g.alive[e] = false

	a, b := g.VerticesA[e], g.VerticesB[e]
	g.adjacency[a] = removeValue(g.adjacency[a], e)
	if b < g.N && b != a {
		g.adjacency[b] = removeValue(g.adjacency[b], e)
	}
	return nil
}

func removeValue(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// Neighbors returns, for real vertex v, the live edge indices
// currently incident on it.
func (g *Graph) Neighbors(v int) []int {
	live := g.adjacency[v]
	out := make([]int, 0, len(live))
	for _, e := range live {
		if g.alive[e] {
			out = append(out, e)
		}
	}
	return out
}

// Other returns the endpoint of edge e that is not v.
func (g *Graph) Other(e, v int) int {
	if g.VerticesA[e] == v {
		return g.VerticesB[e]
	}
	return g.VerticesA[e]
}

// SortAscending permutes VerticesA, VerticesB, Weights, Alive and
// selfLoop in place so that Weights is non-decreasing (the Graph
// invariant per spec.md §3), then rebuilds adjacency against the new
// positions. ClusterTreeBuilder calls this exactly once, before any
// RemoveEdge, then walks the index from len-1 down to 0 to peel the
// heaviest edges first, per spec.md §4.3's traversal precondition.
func (g *Graph) SortAscending() {
	e := len(g.VerticesA)
	order := make([]int, e)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.Weights[order[i]] < g.Weights[order[j]]
	})

	newA := make([]int, e)
	newB := make([]int, e)
	newW := make([]float64, e)
	newAlive := make([]bool, e)
	newSelfLoop := make([]bool, e)
	for newIdx, oldIdx := range order {
		newA[newIdx] = g.VerticesA[oldIdx]
		newB[newIdx] = g.VerticesB[oldIdx]
		newW[newIdx] = g.Weights[oldIdx]
		newAlive[newIdx] = g.alive[oldIdx]
		newSelfLoop[newIdx] = g.selfLoop[oldIdx]
	}
	g.VerticesA, g.VerticesB, g.Weights = newA, newB, newW
	g.alive, g.selfLoop = newAlive, newSelfLoop

	g.adjacency = make(map[int][]int, g.N)
	for idx := 0; idx < e; idx++ {
		a, b := g.VerticesA[idx], g.VerticesB[idx]
		g.adjacency[a] = append(g.adjacency[a], idx)
		if b < g.N && b != a {
			g.adjacency[b] = append(g.adjacency[b], idx)
		}
	}
}
