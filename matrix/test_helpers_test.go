// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the kernel tests.
//   - hide masks *Dense so the At-based materialization path is exercised.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/relnet/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
type hide struct{ matrix.Matrix }

// MustDenseRows builds a *Dense from rows or fails the test.
func MustDenseRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireClose asserts element-wise closeness with an absolute tolerance.
func requireClose(t *testing.T, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
}
