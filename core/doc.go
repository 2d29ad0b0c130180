// Package core provides a thread-safe in-memory Graph used as the export
// target of relational matrices.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Real-valued weights (WithWeighted); NaN and ±Inf are always rejected
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	AddVertex(id) error                  // O(1)
//	RemoveVertex(id) error               // O(E)
//	AddEdge(from,to,weight) (id, error)  // O(1)†
//	RemoveEdge(id) error                 // O(1)
//	HasEdge(from,to) bool                // O(1)
//	EdgeWeight(from,to) (float64, error) // O(k)
//	Neighbors(id) ([]*Edge, error)       // O(d·log d)
//	NeighborIDs(id) ([]string, error)    // O(d·log d), unique, sorted
//	Vertices() []string                  // O(V·log V), lexicographic
//	Edges() []*Edge                      // O(E·log E), insertion order
//	Degree(id) (in,out,undirected,error) // O(E)
//	Strength(id) (in,out,error)          // O(E), weighted degree
//	FilterEdges(pred)                    // O(E)
//	Stats() *GraphStats                  // O(V+E)
//
// † amortized: atomic ID generation + nested-map insertion.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph, or non-finite weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
