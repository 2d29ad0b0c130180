// SPDX-License-Identifier: MIT
// Package: relnet/adjacency
//
// ttest.go — edge-wise one-sample t-test against zero across matrices.
//
// Modes:
//   - Analytic (default): t = mean/(sd/√n), p from Student-t with n-1 df.
//   - Sign-flip permutation (WithPermutations): each draw multiplies every
//     matrix by a random ±1 (the same sign for all of its edges) and records
//     the edge means; p = (#extreme + 1)/(draws + 1).

package adjacency

import (
	"fmt"

	"github.com/katalvlaran/relnet/matrix"
	"github.com/katalvlaran/relnet/stats"
)

// TTestResult holds edge-wise statistics as single-matrix Adjacencies.
type TTestResult struct {
	T *Adjacency
	P *Adjacency
}

// TTest tests every edge's mean across matrices against zero.
//
// Options: WithPermutations, WithSeed/WithRand, WithTail.
// Errors: ErrTooFewMatrices (Len() < 2).
// Complexity: O(n·e) analytic, O(draws·n·e) with permutations.
func (a *Adjacency) TTest(opts ...Option) (*TTestResult, error) {
	const op = "TTest"
	cfg := newCallConfig(opts)
	if a.Len() < 2 {
		return nil, opErrorf(op, fmt.Errorf("need 2 matrices, have %d: %w", a.Len(), ErrTooFewMatrices))
	}

	n, e := a.Shape()
	cols := make([][]float64, e)
	for j := range cols {
		cols[j], _ = a.data.Col(j)
	}

	tData, err := a.mapRows(1, func(_ int, dst []float64) error {
		var terr error
		for j, col := range cols {
			if dst[j], _, terr = stats.OneSampleT(col); terr != nil {
				return terr
			}
		}
		return nil
	})
	if err != nil {
		return nil, opErrorf(op, err)
	}
	tv, _ := tData.RowView(0)

	var pData *matrix.Dense
	if cfg.permSet {
		pData, err = a.signFlipP(cfg, cols)
	} else {
		df := float64(n - 1)
		pData, err = a.mapRows(1, func(_ int, dst []float64) error {
			for j := range dst {
				dst[j] = stats.StudentTP(tv[j], df, cfg.tail)
			}
			return nil
		})
	}
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return &TTestResult{T: a.derive(tData, a.mtype), P: a.derive(pData, a.mtype)}, nil
}

// signFlipP computes permutation p-values for edge means.
func (a *Adjacency) signFlipP(cfg callConfig, cols [][]float64) (*matrix.Dense, error) {
	n := a.Len()
	draws := cfg.permutations
	null := make([][]float64, len(cols))
	for j := range null {
		null[j] = make([]float64, draws)
	}
	signs := make([]float64, n)
	var d, i int
	var sum float64
	for d = 0; d < draws; d++ {
		for i = range signs {
			signs[i] = 1
			if cfg.rng.Intn(2) == 0 {
				signs[i] = -1
			}
		}
		for j, col := range cols {
			sum = 0
			for i = range col {
				sum += signs[i] * col[i]
			}
			null[j][d] = sum / float64(n)
		}
	}

	return a.mapRows(1, func(_ int, dst []float64) error {
		for j, col := range cols {
			dst[j] = stats.PermutationP(stats.Mean(col), null[j], cfg.tail)
		}
		return nil
	})
}
