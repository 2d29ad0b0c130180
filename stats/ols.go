// SPDX-License-Identifier: MIT
// Package stats - ordinary least squares.
//
// Purpose:
//   - Fit Y = X·B + E for one or many responses that share the design X.
//   - Reuse the matrix kernels: B = (XᵀX)⁻¹ Xᵀ Y, one inverse for all responses.
//
// Notes:
//   - No intercept is added; prepend a column of ones when one is wanted.
//   - A perfect fit gives SE = 0, hence T = ±Inf (or NaN for 0/0) and P = 0/NaN.
//   - NaN in a response is not rejected; it turns that response's fit to NaN.

package stats

import (
	"math"

	"github.com/katalvlaran/relnet/matrix"
)

// OLSResult holds a single-response fit. Slices of length p except Residuals (n).
type OLSResult struct {
	Beta      []float64
	SE        []float64
	T         []float64
	P         []float64
	Residuals []float64
	DF        int
}

// MultiOLSResult holds m fits sharing one design.
// Beta/SE/T/P are p×m (one row per predictor); Residuals is n×m.
type MultiOLSResult struct {
	Beta      *matrix.Dense
	SE        *matrix.Dense
	T         *matrix.Dense
	P         *matrix.Dense
	Residuals *matrix.Dense
	DF        int
}

// OLS regresses y (length n) on the columns of X (n×p).
//
// Errors:
//   - ErrLengthMismatch (len(y) != n), ErrDegreesOfFreedom (n <= p),
//     matrix.ErrSingular for a rank-deficient design, including collinear
//     columns that only cancel up to rounding.
func OLS(X matrix.Matrix, y []float64) (OLSResult, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return OLSResult{}, statsErrorf("OLS", err)
	}
	if len(y) == 0 {
		return OLSResult{}, statsErrorf("OLS", ErrLengthMismatch)
	}
	// Filled through row views: a missing (NaN) response propagates to the fit.
	Y, err := matrix.NewDense(len(y), 1)
	if err != nil {
		return OLSResult{}, statsErrorf("OLS", err)
	}
	var cell []float64
	for i, v := range y {
		cell, _ = Y.RowView(i)
		cell[0] = v
	}
	res, err := OLSMulti(X, Y)
	if err != nil {
		return OLSResult{}, statsErrorf("OLS", err)
	}
	out := OLSResult{DF: res.DF}
	out.Beta, _ = res.Beta.Col(0)
	out.SE, _ = res.SE.Col(0)
	out.T, _ = res.T.Col(0)
	out.P, _ = res.P.Col(0)
	out.Residuals, _ = res.Residuals.Col(0)

	return out, nil
}

// OLSMulti fits every column of Y (n×m) against X (n×p).
//
// Implementation:
//   - Stage 1: validate shapes and residual degrees of freedom.
//   - Stage 2: G = (XᵀX)⁻¹, B = G·Xᵀ·Y.
//   - Stage 3: residuals E = Y - X·B; σ²_j = Σ E[:,j]² / (n-p).
//   - Stage 4: SE[k,j] = sqrt(G[k,k]·σ²_j), T = B/SE, P two-tailed Student-t.
//
// Complexity:
//   - Time O(n·p² + p³ + n·p·m), Space O(p·m + n·m).
func OLSMulti(X, Y matrix.Matrix) (*MultiOLSResult, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, statsErrorf("OLSMulti", err)
	}
	if err := matrix.ValidateNotNil(Y); err != nil {
		return nil, statsErrorf("OLSMulti", err)
	}
	n, p, m := X.Rows(), X.Cols(), Y.Cols()
	if Y.Rows() != n {
		return nil, statsErrorf("OLSMulti", ErrLengthMismatch)
	}
	if n <= p {
		return nil, statsErrorf("OLSMulti", ErrDegreesOfFreedom)
	}

	Xt, err := matrix.Transpose(X)
	if err != nil {
		return nil, statsErrorf("OLSMulti", err)
	}
	XtX, err := matrix.Mul(Xt, X)
	if err != nil {
		return nil, statsErrorf("OLSMulti", err)
	}
	G, err := matrix.Inverse(XtX)
	if err != nil {
		return nil, statsErrorf("OLSMulti", err)
	}
	GXt, err := matrix.Mul(G, Xt)
	if err != nil {
		return nil, statsErrorf("OLSMulti", err)
	}
	B, err := matrix.Mul(GXt, Y)
	if err != nil {
		return nil, statsErrorf("OLSMulti", err)
	}
	fitted, err := matrix.Mul(X, B)
	if err != nil {
		return nil, statsErrorf("OLSMulti", err)
	}
	E, err := matrix.Sub(Y, fitted)
	if err != nil {
		return nil, statsErrorf("OLSMulti", err)
	}

	beta, resid := B.(*matrix.Dense), E.(*matrix.Dense) // kernels always allocate *Dense
	df := n - p
	out := &MultiOLSResult{Beta: beta, Residuals: resid, DF: df}
	if out.SE, err = matrix.NewDense(p, m); err != nil {
		return nil, statsErrorf("OLSMulti", err)
	}
	if out.T, err = matrix.NewDense(p, m); err != nil {
		return nil, statsErrorf("OLSMulti", err)
	}
	if out.P, err = matrix.NewDense(p, m); err != nil {
		return nil, statsErrorf("OLSMulti", err)
	}

	sigma2 := make([]float64, m)
	var i, j, k int
	var row []float64
	for i = 0; i < n; i++ {
		row, _ = resid.RowView(i)
		for j = 0; j < m; j++ {
			sigma2[j] += row[j] * row[j]
		}
	}
	for j = 0; j < m; j++ {
		sigma2[j] /= float64(df)
	}

	var gkk float64
	var bRow, seRow, tRow, pRow []float64
	for k = 0; k < p; k++ {
		gkk, _ = G.At(k, k)
		bRow, _ = beta.RowView(k)
		seRow, _ = out.SE.RowView(k)
		tRow, _ = out.T.RowView(k)
		pRow, _ = out.P.RowView(k)
		for j = 0; j < m; j++ {
			seRow[j] = math.Sqrt(gkk * sigma2[j])
			tRow[j] = bRow[j] / seRow[j]
			pRow[j] = StudentTP(tRow[j], float64(df), TwoTailed)
		}
	}

	return out, nil
}
