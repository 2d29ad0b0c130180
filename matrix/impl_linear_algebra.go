// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise subtraction, scaling, matrix multiplication, transpose and
// the LU/Inverse pair used by the OLS kernels. All functions validate fail-fast and return wrapped sentinels.
//
// Purpose:
//   - Keep one flat-slice kernel per operation; non-Dense inputs are
//     materialized once through asDense so every kernel has a single hot loop.
//   - Define operation tags for uniform error reporting.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// PivotTolerance is the relative pivot bound in LU: a pivot whose magnitude
// does not exceed PivotTolerance times the largest |entry| of its source row
// is treated as zero.
const PivotTolerance = 1e-12

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opInverse   = "Inverse"
	opLU        = "LU"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read via At.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
// Complexity: O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	var idx int
	for idx = 0; idx < len(res.data); idx++ { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Sub returns a - b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha * m as a new matrix.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	var idx int
	for idx = 0; idx < len(res.data); idx++ {
		res.data[idx] = dm.data[idx] * alpha
	}

	return res, nil
}

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i-k-j loop over row-major buffers (streams rows of b), skipping zero a[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                          int
		av                               float64
		rowOffsetA, rowOffsetB, rowOffsR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new matrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// LU factors a square matrix into unit-lower L and upper U (Doolittle, no pivoting).
//
// Implementation:
//   - Stage 1: validate square input.
//   - Stage 2: for each i compute row i of U, guard the pivot, then column i of L.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (|pivot| <= PivotTolerance·max|row i|).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - No pivoting keeps the result deterministic; Gram matrices XᵀX of full-rank
//     designs are positive definite. Collinear designs leave a rounding-level
//     pivot instead of an exact zero, hence the relative bound.
//   - A NaN pivot fails the comparison and propagates into L and U.
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := src.r
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var i, j, k int
	var sum, pivot, scale float64
	for i = 0; i < n; i++ {
		L.data[i*n+i] = 1.0 // unit lower triangular
	}
	for i = 0; i < n; i++ {
		scale = ZeroSum
		for j = 0; j < n; j++ {
			scale = math.Max(scale, math.Abs(src.data[i*n+j]))
		}
		// Row i of U for j >= i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = src.data[i*n+j] - sum
		}
		pivot = U.data[i*n+i]
		if math.Abs(pivot) <= PivotTolerance*scale {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// Column i of L for j > i.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (src.data[j*n+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// Inverse returns m⁻¹ via LU and one forward/backward substitution per column.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n³).
func Inverse(m Matrix) (Matrix, error) {
	Lm, Um, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	L, U := Lm.(*Dense), Um.(*Dense)
	n := L.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += U.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / U.data[i*n+i] // pivots already guarded by LU
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
