// SPDX-License-Identifier: MIT
// File: api.go
// Role: read-only configuration probes and the Stats snapshot.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	AllowsMulti bool
	AllowsLoops bool

	VertexCount int
	EdgeCount   int

	// TotalWeight is the sum of all edge weights.
	TotalWeight float64
}

// Weighted reports whether the graph stores non-zero weights.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether new edges are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic snapshot of flags, counts and total weight.
//
// Implementation:
//   - Stage 1: under muVert, snapshot flags and vertex count.
//   - Stage 2: under muEdgeAdj, snapshot edge count and sum weights.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		stats.TotalWeight += e.Weight
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
