// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for vertex/edge lifecycle and query APIs.
//   - Validate constraint enforcement (weights, loops, multi-edges).

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/relnet/core"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	require.True(t, g.HasVertex("A"))
	require.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex("Z"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("A"))
	require.False(t, g.HasVertex("A"))
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		opts    []core.GraphOption
		from    string
		to      string
		weight  float64
		wantErr error
	}{
		{"unweighted non-zero", nil, "A", "B", 1.5, core.ErrBadWeight},
		{"unweighted zero", nil, "A", "B", 0, nil},
		{"nan weight", []core.GraphOption{core.WithWeighted()}, "A", "B", math.NaN(), core.ErrBadWeight},
		{"loop disabled", []core.GraphOption{core.WithWeighted()}, "A", "A", 1, core.ErrLoopNotAllowed},
		{"loop enabled", []core.GraphOption{core.WithWeighted(), core.WithLoops()}, "A", "A", 1, nil},
		{"empty id", nil, "", "B", 0, core.ErrEmptyVertexID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := core.NewGraph(tc.opts...)
			_, err := g.AddEdge(tc.from, tc.to, tc.weight)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGraph_MultiEdges(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 2)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("B", "A", 2) // mirror of an undirected edge
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	m := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, err = m.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = m.AddEdge("A", "B", 2)
	require.NoError(t, err)
	w, err := m.EdgeWeight("A", "B")
	require.NoError(t, err)
	require.Equal(t, 1.0, w) // lowest ID wins
}

func TestGraph_UndirectedMirror(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 0.5)
	require.NoError(t, err)

	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A"))
	w, err := g.EdgeWeight("B", "A")
	require.NoError(t, err)
	require.Equal(t, 0.5, w)

	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, ids)
}

func TestGraph_DirectedNeighborsAndDegree(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 3)
	require.NoError(t, err)

	require.True(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbs, 1)
	require.Equal(t, "B", nbs[0].To)

	in, out, und, err := g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, [3]int{1, 1, 0}, [3]int{in, out, und})

	sin, sout, err := g.Strength("A")
	require.NoError(t, err)
	require.Equal(t, 3.0, sin)
	require.Equal(t, 2.0, sout)

	_, _, err = g.Strength("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_UndirectedStrength(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "C", 3)

	in, out, err := g.Strength("A")
	require.NoError(t, err)
	require.Equal(t, 5.0, in)
	require.Equal(t, 5.0, out)

	_, _, und, err := g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, 2, und)
}

func TestGraph_EdgesInsertionOrder(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	var i int
	for i = 0; i < 12; i++ {
		_, err := g.AddEdge("A", "B", float64(i))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i = range edges {
		require.Equal(t, float64(i), edges[i].Weight) // "e10" sorts after "e9"
	}
}

func TestGraph_RemoveAndFilter(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithWeighted())
	e1, _ := g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", -1)
	_, _ = g.AddEdge("C", "D", 4)

	require.NoError(t, g.RemoveEdge(e1))
	require.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)
	require.False(t, g.HasEdge("B", "A"))

	g.FilterEdges(func(e *core.Edge) bool { return e.Weight > 0 })
	require.Equal(t, 1, g.EdgeCount())
	require.True(t, g.HasEdge("D", "C"))

	_, err := g.EdgeWeight("B", "C")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.GetEdge("e99")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_MetaAndStats(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1.5)
	_, _ = g.AddEdge("B", "C", 2.5)

	require.NoError(t, g.SetVertexMeta("A", "cluster", "x"))
	require.ErrorIs(t, g.SetVertexMeta("Q", "cluster", "x"), core.ErrVertexNotFound)
	v, ok := g.VertexMeta("A", "cluster")
	require.True(t, ok)
	require.Equal(t, "x", v)

	st := g.Stats()
	require.Equal(t, 3, st.VertexCount)
	require.Equal(t, 2, st.EdgeCount)
	require.Equal(t, 4.0, st.TotalWeight)
	require.True(t, st.Weighted)
	require.False(t, st.Directed)

	adj := g.AdjacencyList()
	require.Equal(t, []string{"A", "C"}, adj["B"])
}
