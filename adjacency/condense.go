// SPDX-License-Identifier: MIT
// Package: relnet/adjacency
//
// condense.go — pure index mapping between square matrices and condensed rows.
//
// Layout:
//   - symmetric: (i,j) with i<j, row-major; offset = i*k - i*(i+1)/2 + (j-i-1).
//   - directed:  (i,j) with i≠j, row-major; offset = i*(k-1) + j - [j>i].
//
// Both directions are exact inverses; the diagonal is never stored and expands to 0.

package adjacency

import (
	"fmt"
	"math"

	"github.com/katalvlaran/relnet/matrix"
)

// EdgeCount returns the condensed length for k nodes.
func EdgeCount(k int, symmetric bool) int {
	if symmetric {
		return k * (k - 1) / 2
	}

	return k * (k - 1)
}

// SideFromEdges inverts EdgeCount.
// Errors: ErrInvalidEdgeCount when e is not a valid count for k >= 2.
func SideFromEdges(e int, symmetric bool) (int, error) {
	if e < 1 {
		return 0, fmt.Errorf("SideFromEdges(%d): %w", e, ErrInvalidEdgeCount)
	}
	// symmetric: k² - k - 2e = 0; directed: k² - k - e = 0.
	c := float64(e)
	if symmetric {
		c *= 2
	}
	k := int(math.Round((1 + math.Sqrt(1+4*c)) / 2))
	if EdgeCount(k, symmetric) != e {
		return 0, fmt.Errorf("SideFromEdges(%d): %w", e, ErrInvalidEdgeCount)
	}

	return k, nil
}

// edgeOffset maps (i,j), i≠j, to its condensed offset; for symmetric layouts
// the pair is first ordered so that i<j.
func edgeOffset(i, j, k int, symmetric bool) int {
	if symmetric {
		if i > j {
			i, j = j, i
		}
		return i*k - i*(i+1)/2 + (j - i - 1)
	}
	off := i*(k-1) + j
	if j > i {
		off--
	}

	return off
}

// Condense flattens a square matrix into its condensed vector.
// For symmetric layouts only the upper triangle is read.
// Errors: ErrNonSquare, ErrInvalidEdgeCount (k < 2).
func Condense(m matrix.Matrix, symmetric bool) ([]float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opErrorf("Condense", fmt.Errorf("%v: %w", err, ErrNonSquare))
	}
	k := m.Rows()
	if k < 2 {
		return nil, opErrorf("Condense", ErrInvalidEdgeCount)
	}
	out := make([]float64, 0, EdgeCount(k, symmetric))
	var i, j int
	var v float64
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			if i == j || (symmetric && j < i) {
				continue
			}
			v, _ = m.At(i, j)
			out = append(out, v)
		}
	}

	return out, nil
}

// Expand rebuilds the k×k square from a condensed vector; the diagonal is 0
// and symmetric layouts are mirrored.
// Errors: ErrInvalidEdgeCount.
func Expand(v []float64, symmetric bool) (*matrix.Dense, error) {
	k, err := SideFromEdges(len(v), symmetric)
	if err != nil {
		return nil, opErrorf("Expand", err)
	}
	sq, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, opErrorf("Expand", err)
	}
	var i, j, off int
	var row []float64
	for i = 0; i < k; i++ {
		row, _ = sq.RowView(i)
		for j = 0; j < k; j++ {
			if i == j {
				continue
			}
			if symmetric {
				row[j] = v[edgeOffset(i, j, k, true)]
				continue
			}
			row[j] = v[off]
			off++
		}
	}

	return sq, nil
}

// permuteCondensed relabels nodes: out[(a,b)] = v[(perm[a], perm[b])].
func permuteCondensed(v []float64, k int, symmetric bool, perm []int) []float64 {
	out := make([]float64, len(v))
	var a, b, off int
	for a = 0; a < k; a++ {
		for b = 0; b < k; b++ {
			if a == b || (symmetric && b < a) {
				continue
			}
			out[off] = v[edgeOffset(perm[a], perm[b], k, symmetric)]
			off++
		}
	}

	return out
}
