// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/EdgeWeight/
//       Edges/EdgeCount/FilterEdges. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order (numeric order of "e<N>" IDs).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under its read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to carrying weight.
//
// Steps:
//  1. Validate IDs, weight (finite; zero unless Weighted), loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Generate the ID, store the edge, link adjacency (mirrored when undirected).
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
// Errors: ErrEdgeNotFound.
// Complexity: O(1) removal + cleanup.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the Edge with the given ID or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeWeight returns the weight of the lowest-ID edge from→to.
// Errors: ErrEdgeNotFound when no such edge exists.
// Complexity: O(k) over parallel edges.
func (g *Graph) EdgeWeight(from, to string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var (
		best  *Edge
		eid   string
		found bool
	)
	for eid = range g.adjacencyList[from][to] {
		e := g.edges[eid]
		if !found || edgeIDLess(e.ID, best.ID) {
			best, found = e, true
		}
	}
	if !found {
		return 0, ErrEdgeNotFound
	}

	return best.Weight, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// FilterEdges removes all edges failing the predicate.
// pred must not mutate the graph.
// Complexity: O(E).
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	cleanupAdjacency(g)
}

// edgeIDLess orders "e<N>" identifiers numerically: shorter first, then lexicographic.
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// nextEdgeID returns a new unique textual edge ID using an atomic counter.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
