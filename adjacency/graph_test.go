// SPDX-License-Identifier: MIT

package adjacency_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relnet/adjacency"
)

func TestToGraph_Undirected(t *testing.T) {
	t.Parallel()

	// Node d is isolated; the NaN entry is skipped.
	a, err := adjacency.FromSquare([][]float64{
		{0, 0.5, 0, 0},
		{0.5, 0, math.NaN(), 0},
		{0, math.NaN(), 0, 0},
		{0, 0, 0, 0},
	}, adjacency.WithMatrixType(adjacency.Similarity), adjacency.WithLabels([]string{"a", "b", "c", "d"}))
	require.NoError(t, err)

	g, err := a.ToGraph()
	require.NoError(t, err)
	require.False(t, g.Directed())
	require.True(t, g.Weighted())
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())
	require.True(t, g.HasEdge("b", "a"))
	w, err := g.EdgeWeight("a", "b")
	require.NoError(t, err)
	require.Equal(t, 0.5, w)
	require.False(t, g.HasEdge("b", "c"))

	idx, ok := g.VertexMeta("d", adjacency.VertexIndexKey)
	require.True(t, ok)
	require.Equal(t, 3, idx)
}

func TestToGraph_Directed(t *testing.T) {
	t.Parallel()

	a, err := adjacency.FromSquare([][]float64{{0, 1, 0}, {2, 0, 0}, {0, -3, 0}})
	require.NoError(t, err)
	require.Equal(t, adjacency.Directed, a.MatrixType())

	g, err := a.ToGraph()
	require.NoError(t, err)
	require.True(t, g.Directed())
	require.Equal(t, 3, g.EdgeCount())
	require.True(t, g.HasEdge("2", "1"))
	require.False(t, g.HasEdge("1", "2"))
	in, out, err := g.Strength("1")
	require.NoError(t, err)
	require.Equal(t, -2.0, in)
	require.Equal(t, 2.0, out)

	stack, err := a.Append(a)
	require.NoError(t, err)
	_, err = stack.ToGraph()
	require.ErrorIs(t, err, adjacency.ErrMultipleMatrices)
	_, err = adjacency.Empty().ToGraph()
	require.ErrorIs(t, err, adjacency.ErrEmpty)
}

func TestComponents(t *testing.T) {
	t.Parallel()

	// Labels sort differently from node order: z(0)–x(2), y(1) alone.
	a, err := adjacency.FromVector([]float64{0, 0.7, 0}, adjacency.WithLabels([]string{"z", "y", "x"}))
	require.NoError(t, err)
	comps, err := a.Components()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0}, comps)

	d, err := adjacency.FromSquare([][]float64{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	comps, err = d.Components()
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 1}, comps)

	_, err = adjacency.Empty().Components()
	require.ErrorIs(t, err, adjacency.ErrEmpty)
}
