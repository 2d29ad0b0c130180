// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/relnet/matrix"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

func TestCenterColumns(t *testing.T) {
	t.Parallel()

	X := MustDenseRows(t, [][]float64{{1, 10}, {3, 20}, {5, 30}})
	Xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 20}, means)
	requireClose(t, MustDenseRows(t, [][]float64{{-2, -10}, {0, 0}, {2, 10}}), Xc, epsTight)

	// Fallback path produces identical output.
	Xc2, _, err := matrix.CenterColumns(hide{X})
	require.NoError(t, err)
	requireClose(t, Xc, Xc2, 0)
}

func TestColumnStds(t *testing.T) {
	t.Parallel()

	X := MustDenseRows(t, [][]float64{{1, 2, 7}, {3, 6, 7}})
	pop, means, err := matrix.ColumnStds(X, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 7}, means)
	require.Equal(t, []float64{1, 2, 0}, pop)

	sample, _, err := matrix.ColumnStds(X, 1)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{math.Sqrt2, 2 * math.Sqrt2, 0}, sample, epsTight)

	// A single row has a population std of zero and no sample std.
	one := MustDenseRows(t, [][]float64{{4, 5}})
	pop, _, err = matrix.ColumnStds(one, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, pop)
	_, _, err = matrix.ColumnStds(one, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, _, err = matrix.ColumnStds(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCorrelation(t *testing.T) {
	t.Parallel()

	// col1 = 2*col0, col2 = -col0, col3 constant.
	X := MustDenseRows(t, [][]float64{
		{1, 2, -1, 5},
		{2, 4, -2, 5},
		{4, 8, -4, 5},
	})
	corr, _, stds, err := matrix.Correlation(X)
	require.NoError(t, err)
	require.Equal(t, 0.0, stds[3])

	require.InDelta(t, 1.0, MustAt(t, corr, 0, 1), epsTight)
	require.InDelta(t, -1.0, MustAt(t, corr, 0, 2), epsTight)
	require.Equal(t, 0.0, MustAt(t, corr, 3, 3)) // degenerate column zeroed
	require.InDelta(t, 1.0, MustAt(t, corr, 2, 2), epsTight)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustDenseRows(t, [][]float64{{1, 2}})
	b := MustDenseRows(t, [][]float64{{1, 2.001}})

	ok, err := matrix.AllClose(a, b, 0, 1e-2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-6)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDenseRows(t, [][]float64{{1}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
