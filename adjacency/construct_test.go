// SPDX-License-Identifier: MIT

package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relnet/adjacency"
)

func TestConstruct_TypeInference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		square    [][]float64
		wantType  adjacency.MatrixType
		wantEdges []float64
	}{
		{
			name:      "symmetric zero diagonal is distance",
			square:    [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}},
			wantType:  adjacency.Distance,
			wantEdges: []float64{1, 2, 3},
		},
		{
			name:      "symmetric non-zero diagonal is similarity",
			square:    [][]float64{{1, 0.5, 0.2}, {0.5, 1, 0.3}, {0.2, 0.3, 1}},
			wantType:  adjacency.Similarity,
			wantEdges: []float64{0.5, 0.2, 0.3},
		},
		{
			name:      "asymmetric is directed",
			square:    [][]float64{{0, 1, 2}, {3, 0, 4}, {5, 6, 0}},
			wantType:  adjacency.Directed,
			wantEdges: []float64{1, 2, 3, 4, 5, 6},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, err := adjacency.FromSquare(tc.square)
			require.NoError(t, err)
			require.Equal(t, tc.wantType, a.MatrixType())
			n, e := a.Shape()
			require.Equal(t, 1, n)
			require.Equal(t, len(tc.wantEdges), e)
			row, err := a.Row(0)
			require.NoError(t, err)
			require.Equal(t, tc.wantEdges, row)
			k, k2 := a.SquareShape()
			require.Equal(t, 3, k)
			require.Equal(t, 3, k2)
		})
	}
}

func TestConstruct_ExplicitTypes(t *testing.T) {
	t.Parallel()

	sym := [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}
	a, err := adjacency.FromSquare(sym, adjacency.WithMatrixType(adjacency.SimilarityFlat))
	require.NoError(t, err)
	require.Equal(t, adjacency.Similarity, a.MatrixType())

	d, err := adjacency.FromSquare(sym, adjacency.WithMatrixType(adjacency.Directed))
	require.NoError(t, err)
	require.Equal(t, 6, d.Edges())

	// A list with one asymmetric member is directed.
	mixed, err := adjacency.New([][][]float64{sym, {{0, 1, 2}, {3, 0, 4}, {5, 6, 0}}})
	require.NoError(t, err)
	require.Equal(t, adjacency.Directed, mixed.MatrixType())
	require.Equal(t, 2, mixed.Len())

	// Symmetric within tolerance.
	near := [][]float64{{0, 1, 2}, {1 + 1e-4, 0, 3}, {2, 3, 0}}
	_, err = adjacency.FromSquare(near, adjacency.WithMatrixType(adjacency.Distance))
	require.ErrorIs(t, err, adjacency.ErrMatrixType)
	tol, err := adjacency.FromSquare(near, adjacency.WithTolerance(1e-3))
	require.NoError(t, err)
	require.Equal(t, adjacency.Distance, tol.MatrixType())

	v, err := adjacency.FromVector([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, adjacency.Similarity, v.MatrixType())
	dv, err := adjacency.FromVector([]float64{1, 2, 3, 4, 5, 6}, adjacency.WithMatrixType(adjacency.DirectedFlat))
	require.NoError(t, err)
	require.Equal(t, adjacency.Directed, dv.MatrixType())
	k, _ := dv.SquareShape()
	require.Equal(t, 3, k)

	parsed, err := adjacency.ParseMatrixType(" Distance_Flat ")
	require.NoError(t, err)
	require.Equal(t, adjacency.DistanceFlat, parsed)
	require.True(t, parsed.IsFlat())
	require.Equal(t, adjacency.Distance, parsed.Base())
}

func TestConstruct_Errors(t *testing.T) {
	t.Parallel()

	sym := [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}
	tests := []struct {
		name    string
		build   func() error
		wantErr error
	}{
		{"non-square", func() error { _, err := adjacency.FromSquare([][]float64{{1, 2}}); return err }, adjacency.ErrNonSquare},
		{"ragged", func() error { _, err := adjacency.FromSquare([][]float64{{1, 2}, {3}}); return err }, adjacency.ErrNonSquare},
		{"single node", func() error { _, err := adjacency.FromSquare([][]float64{{0}}); return err }, adjacency.ErrInvalidEdgeCount},
		{"size mismatch", func() error {
			_, err := adjacency.New([][][]float64{sym, {{0, 1}, {1, 0}}})
			return err
		}, adjacency.ErrShapeMismatch},
		{"asymmetric similarity", func() error {
			_, err := adjacency.FromSquare([][]float64{{0, 1}, {2, 0}}, adjacency.WithMatrixType(adjacency.Similarity))
			return err
		}, adjacency.ErrMatrixType},
		{"unknown type", func() error {
			_, err := adjacency.FromSquare(sym, adjacency.WithMatrixType("graph"))
			return err
		}, adjacency.ErrUnknownMatrixType},
		{"bad vector length", func() error { _, err := adjacency.FromVector([]float64{1, 2, 3, 4}); return err }, adjacency.ErrInvalidEdgeCount},
		{"ragged vectors", func() error {
			_, err := adjacency.FromVectors([][]float64{{1, 2, 3}, {1}})
			return err
		}, adjacency.ErrShapeMismatch},
		{"no vectors", func() error { _, err := adjacency.FromVectors(nil); return err }, adjacency.ErrEmpty},
		{"label count", func() error {
			_, err := adjacency.FromSquare(sym, adjacency.WithLabels([]string{"a", "b"}))
			return err
		}, adjacency.ErrLabels},
		{"duplicate labels", func() error {
			_, err := adjacency.FromSquare(sym, adjacency.WithLabels([]string{"a", "b", "a"}))
			return err
		}, adjacency.ErrLabels},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.build(), tc.wantErr)
		})
	}

	require.Panics(t, func() { adjacency.WithTolerance(-1) })
}

func TestIndexingAndAppend(t *testing.T) {
	t.Parallel()

	empty := adjacency.Empty()
	require.True(t, empty.IsEmpty())
	n, e := empty.Shape()
	require.Equal(t, [2]int{0, 0}, [2]int{n, e})

	one, err := adjacency.FromSquare([][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})
	require.NoError(t, err)

	a, err := empty.Append(one)
	require.NoError(t, err)
	n, e = a.Shape()
	require.Equal(t, [2]int{1, 3}, [2]int{n, e})

	a, err = a.Append(one)
	require.NoError(t, err)
	n, e = a.Shape()
	require.Equal(t, [2]int{2, 3}, [2]int{n, e})
	require.Equal(t, 1, one.Len(), "Append must not alias the argument")

	four, err := adjacency.FromVector([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	_, err = a.Append(four)
	require.ErrorIs(t, err, adjacency.ErrShapeMismatch)

	stack, err := adjacency.FromVectors([][]float64{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}})
	require.NoError(t, err)
	sel, err := stack.Select(2, 0, 2)
	require.NoError(t, err)
	sums, err := sel.RowSums()
	require.NoError(t, err)
	require.Equal(t, []float64{9, 3, 9}, sums)

	sl, err := stack.Slice(1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, sl.Len())

	at, err := stack.At(1)
	require.NoError(t, err)
	row, _ := at.Row(0)
	require.Equal(t, []float64{2, 2, 2}, row)

	_, err = stack.At(3)
	require.ErrorIs(t, err, adjacency.ErrIndexOutOfRange)
	_, err = stack.Slice(2, 2)
	require.ErrorIs(t, err, adjacency.ErrIndexOutOfRange)
	_, err = stack.Row(-1)
	require.ErrorIs(t, err, adjacency.ErrIndexOutOfRange)

	// Data and Row are copies.
	data := stack.Data()
	require.NoError(t, data.Set(0, 0, 100))
	row, _ = stack.Row(0)
	row[1] = 100
	again, _ := stack.Row(0)
	require.Equal(t, []float64{1, 1, 1}, again)
}

func TestLabels(t *testing.T) {
	t.Parallel()

	a, err := adjacency.FromVector([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, a.Labels())

	named, err := adjacency.FromVector([]float64{1, 2, 3}, adjacency.WithLabels([]string{"x", "y", "z"}))
	require.NoError(t, err)
	scaled, err := named.MulScalar(2)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y", "z"}, scaled.Labels())
	require.Equal(t, "Adjacency(similarity, 1 × 3 edges, 3 nodes)", named.String())
}
