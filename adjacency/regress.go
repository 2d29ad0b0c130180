// SPDX-License-Identifier: MIT
// Package: relnet/adjacency
//
// regress.go — ordinary least squares in two orientations.
//
//   - RegressAdjacency: edges are observations. One stored matrix is the
//     response and each matrix of X is a predictor.
//   - Regress: matrices are observations. Every edge is fitted separately
//     against a shared design with one row per stored matrix.
//
// No intercept is added in either case.

package adjacency

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/relnet/design"
	"github.com/katalvlaran/relnet/matrix"
	"github.com/katalvlaran/relnet/stats"
)

// RegressAdjacency regresses the receiver's single matrix on the matrices of X.
//
// Errors: ErrEmpty, ErrMultipleMatrices, ErrShapeMismatch,
// stats.ErrDegreesOfFreedom, matrix.ErrSingular.
func (a *Adjacency) RegressAdjacency(X *Adjacency) (stats.OLSResult, error) {
	const op = "RegressAdjacency"
	if err := a.requireSingle(op); err != nil {
		return stats.OLSResult{}, err
	}
	if err := X.requireData(op); err != nil {
		return stats.OLSResult{}, err
	}
	if X.Edges() != a.Edges() {
		xn, xe := X.Shape()
		return stats.OLSResult{}, shapeErrorf(op, xn, a.Edges(), xn, xe)
	}
	predictors, err := matrix.Transpose(X.data)
	if err != nil {
		return stats.OLSResult{}, opErrorf(op, err)
	}
	y, _ := a.data.Row(0)
	res, err := stats.OLS(predictors, y)
	if err != nil {
		return stats.OLSResult{}, opErrorf(op, err)
	}

	return res, nil
}

// RegressionResult holds per-edge fits. Beta, SE, T and P hold one matrix per
// predictor in design-column order; Residual holds one matrix per observation.
type RegressionResult struct {
	Predictors []string
	Beta       *Adjacency
	SE         *Adjacency
	T          *Adjacency
	P          *Adjacency
	Residual   *Adjacency
	DF         int
}

// Regress fits every edge against X, whose rows align with the stored matrices.
//
// Errors: ErrEmpty, ErrShapeMismatch (X.Rows() != Len()),
// stats.ErrDegreesOfFreedom (Len() <= predictors), matrix.ErrSingular.
// Complexity: O(n·p² + p³ + n·p·e).
func (a *Adjacency) Regress(X *design.Matrix) (*RegressionResult, error) {
	const op = "Regress"
	if err := a.requireData(op); err != nil {
		return nil, err
	}
	if X == nil {
		return nil, opErrorf(op, fmt.Errorf("nil design: %w", ErrShapeMismatch))
	}
	if X.Rows() != a.Len() {
		return nil, opErrorf(op, fmt.Errorf("design has %d rows for %d matrices: %w", X.Rows(), a.Len(), ErrShapeMismatch))
	}
	fit, err := stats.OLSMulti(X.Dense(), a.data)
	if err != nil {
		if errors.Is(err, stats.ErrLengthMismatch) {
			return nil, opErrorf(op, fmt.Errorf("%v: %w", err, ErrShapeMismatch))
		}
		return nil, opErrorf(op, err)
	}

	return &RegressionResult{
		Predictors: X.Columns(),
		Beta:       a.derive(fit.Beta, a.mtype),
		SE:         a.derive(fit.SE, a.mtype),
		T:          a.derive(fit.T, a.mtype),
		P:          a.derive(fit.P, a.mtype),
		Residual:   a.derive(fit.Residuals, a.mtype),
		DF:         fit.DF,
	}, nil
}

// Coefficient returns the single-matrix Adjacency of one predictor's betas.
func (r *RegressionResult) Coefficient(name string) (*Adjacency, error) {
	for i, p := range r.Predictors {
		if p == name {
			return r.Beta.At(i)
		}
	}

	return nil, fmt.Errorf("Coefficient %q: %w", name, design.ErrColumns)
}
