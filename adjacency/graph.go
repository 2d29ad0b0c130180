// SPDX-License-Identifier: MIT

package adjacency

import (
	"sort"

	"github.com/katalvlaran/relnet/bfs"
	"github.com/katalvlaran/relnet/core"
)

// VertexIndexKey is the vertex metadata key holding a node's position in the matrix.
const VertexIndexKey = "index"

// ToGraph converts a single stored matrix into a weighted core.Graph: one
// vertex per label (isolated nodes included), one edge per non-zero entry.
// Directed matrices yield a directed graph; symmetric ones an undirected graph
// with one edge per node pair. NaN entries are skipped like zeros.
//
// Errors: ErrEmpty, ErrMultipleMatrices.
func (a *Adjacency) ToGraph() (*core.Graph, error) {
	const op = "ToGraph"
	if err := a.requireSingle(op); err != nil {
		return nil, err
	}
	sym := a.IsSymmetric()
	g := core.NewGraph(core.WithDirected(!sym), core.WithWeighted())
	labels := a.Labels()
	for i, l := range labels {
		if err := g.AddVertex(l); err != nil {
			return nil, opErrorf(op, err)
		}
		if err := g.SetVertexMeta(l, VertexIndexKey, i); err != nil {
			return nil, opErrorf(op, err)
		}
	}

	row, _ := a.data.RowView(0)
	var off int
	for i := 0; i < a.side; i++ {
		for j := 0; j < a.side; j++ {
			if i == j || (sym && j < i) {
				continue
			}
			w := row[off]
			off++
			if w == 0 || w != w {
				continue
			}
			if _, err := g.AddEdge(labels[i], labels[j], w); err != nil {
				return nil, opErrorf(op, err)
			}
		}
	}

	return g, nil
}

// Components assigns every node the id of its connected component in the
// graph of non-zero edges (weakly connected for Directed). Ids count from 0
// in order of each component's lowest node index.
//
// Errors: ErrEmpty, ErrMultipleMatrices.
func (a *Adjacency) Components() ([]int, error) {
	const op = "Components"
	g, err := a.ToGraph()
	if err != nil {
		return nil, err
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, opErrorf(op, err)
	}

	index := make(map[string]int, a.side)
	for i, l := range a.Labels() {
		index[l] = i
	}
	first := make([]int, len(comps))
	for c, members := range comps {
		first[c] = a.side
		for _, m := range members {
			if index[m] < first[c] {
				first[c] = index[m]
			}
		}
	}
	order := make([]int, len(comps))
	for c := range order {
		order[c] = c
	}
	sort.Slice(order, func(i, j int) bool { return first[order[i]] < first[order[j]] })

	out := make([]int, a.side)
	for id, c := range order {
		for _, m := range comps[c] {
			out[index[m]] = id
		}
	}

	return out, nil
}
