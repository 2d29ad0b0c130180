// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics behind the relational containers: edge-wise means
//     and standard deviations across stored matrices, and the Pearson
//     correlation used for correlation distance between matrices.
//   - Composed from the canonical kernels (Transpose/Mul/Scale) and the ew*
//     micro-kernels so the hot loops live in one place.
//
// Exposed API:
//   - ColumnMeans(X)       -> means
//   - CenterColumns(X)     -> (Xc, means)
//   - ColumnStds(X, ddof)  -> (stds, means)
//   - Correlation(X)       -> (Corr, means, stds) // degenerate std=0 → zeroed row/col
//
// Correlation between observations stored as ROWS is Correlation(Transpose(X)).

package matrix

import "math"

const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opColumnStds    = "ColumnStds"
	opCorrelation   = "Correlation"
)

// ColumnMeans returns the arithmetic mean of every column.
// Complexity: O(r*c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	means := make([]float64, d.c)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			means[j] += d.data[base+j]
		}
	}
	inv := 1.0 / float64(d.r)
	for j = 0; j < d.c; j++ {
		means[j] *= inv
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: ColumnMeans in a deterministic pass.
//   - Stage 2: ewBroadcastSubCols produces the centered copy.
//
// Returns the centered copy and the column means (len = Cols).
// Complexity: O(r*c).
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// ColumnStds returns the per-column standard deviation with divisor r−ddof,
// together with the column means. NaN in a column yields a NaN std.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (ddof < 0 or r−ddof < 1).
//
// Complexity: O(r*c).
func ColumnStds(X Matrix, ddof int) ([]float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnStds, err)
	}
	if ddof < 0 || X.Rows()-ddof < 1 {
		return nil, nil, matrixErrorf(opColumnStds, ErrDimensionMismatch)
	}
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opColumnStds, err)
	}

	return centeredStds(Xc.(*Dense), ddof), means, nil
}

// centeredStds is sqrt(Σ x²/(r−ddof)) per column of an already centered Dense.
func centeredStds(d *Dense, ddof int) []float64 {
	stds := make([]float64, d.c)
	var i, j, base int
	var v float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			v = d.data[base+j]
			stds[j] += v * v
		}
	}
	inv := 1.0 / float64(d.r-ddof)
	for j = 0; j < d.c; j++ {
		stds[j] = math.Sqrt(stds[j] * inv)
	}

	return stds
}

// Correlation computes the Pearson correlation of columns via z-scoring:
// Corr = (Zᵀ Z)/(r-1) with Z = (X − mean) · diag(1/std).
//
// Implementation:
//   - Stage 1: validate, require r >= 2, center columns.
//   - Stage 2: sample std per column; invStd = 0 for degenerate columns.
//   - Stage 3: Z via ewScaleCols, then Corr through Transpose/Mul/Scale.
//
// Behavior highlights:
//   - Symmetric; diagonal is 1 for non-degenerate columns and 0 for std == 0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r < 2).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Correlation(X Matrix) (Matrix, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	stds := centeredStds(Xc.(*Dense), 1) // ewBroadcastSubCols always allocates a Dense
	invStd := make([]float64, c)
	var j int
	for j = 0; j < c; j++ {
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		}
	}

	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Zt, err := Transpose(Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	G, err := Mul(Zt, Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Corr, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return Corr, means, stds, nil
}
