// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: vertex lifecycle & queries: AddVertex/HasVertex/RemoveVertex/Vertices/
//       VertexCount/SetVertexMeta/VertexMeta plus Degree and Strength.
// Determinism:
//   - Vertices() returns IDs in lexicographic ascending order.
// Concurrency:
//   - Lock order is always muVert -> muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex if absent; existing vertices are left untouched.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex together with every incident edge.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(E) scan of the edge catalog.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.vertices, id)
	delete(g.adjacencyList, id)
	cleanupAdjacency(g)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// SetVertexMeta stores value under key in the vertex metadata.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) SetVertexMeta(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = value

	return nil
}

// VertexMeta returns the metadata value stored under key.
// The boolean is false when the vertex or the key is absent.
func (g *Graph) VertexMeta(id, key string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	val, ok := v.Metadata[key]

	return val, ok
}

// Degree returns in/out counts for directed edges and the undirected incidence count.
//
// Policy:
//   - Directed self-loop contributes +1 to in and +1 to out.
//   - Undirected self-loop contributes +2 to undirected.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	err = g.scanIncident(id, func(e *Edge) {
		switch {
		case e.Directed:
			if e.From == id {
				out++
			}
			if e.To == id {
				in++
			}
		case e.From == id && e.To == id:
			undirected += 2
		default:
			undirected++
		}
	})

	return in, out, undirected, err
}

// Strength returns the weighted analogue of Degree: the sum of incoming and
// outgoing weights for directed graphs. For undirected graphs in == out ==
// the sum of incident weights, with self-loops counted twice.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Strength(id string) (in, out float64, err error) {
	err = g.scanIncident(id, func(e *Edge) {
		if e.Directed {
			if e.From == id {
				out += e.Weight
			}
			if e.To == id {
				in += e.Weight
			}
			return
		}
		in += e.Weight
		if e.From == e.To {
			in += e.Weight
		}
	})
	if err == nil && !g.Directed() {
		out = in
	}

	return in, out, err
}

// scanIncident calls fn for every edge touching id under both read locks.
func (g *Graph) scanIncident(id string, fn func(e *Edge)) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			fn(e)
		}
	}

	return nil
}
