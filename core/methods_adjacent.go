// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: neighborhood queries (Neighbors, NeighborIDs, AdjacencyList) and the
//       private adjacency maintenance helpers used by mutators.
// Concurrency:
//   - Helpers ensureAdjacency/removeAdjacency/cleanupAdjacency must run under
//     the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns the edges incident to id in insertion order.
// For directed edges only outgoing edges are reported.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e := g.edges[eid]
			if e == nil || (e.Directed && e.From != id) {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique adjacent vertex IDs of id, sorted ascending.
// Errors are propagated from Neighbors.
// Complexity: O(d + k log k).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else {
			seen[e.From] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// AdjacencyList returns a snapshot vertex → sorted neighbor IDs.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	ids := g.Vertices()
	out := make(map[string][]string, len(ids))
	for _, id := range ids {
		nbs, err := g.NeighborIDs(id)
		if err != nil {
			continue // vertex removed concurrently
		}
		out[id] = nbs
	}

	return out
}

// ensureAdjacency allocates the nested bucket adjacencyList[from][to].
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e.ID from from→to and, for undirected non-loop
// edges, from the mirrored bucket; empty buckets are pruned.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty edge buckets after bulk removals.
// Top-level vertex entries stay so adjacency mirrors the vertex catalog.
func cleanupAdjacency(g *Graph) {
	for _, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
	}
}
