// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Small private broadcast kernels (ew*) shared by the statistics helpers.
//   - AllClose, the public tolerance comparison used across the module's tests
//     and by callers that verify round-trips.
//
// Determinism & Performance:
//   - Fixed i→j loop order over row-major flat buffers.
//   - Each kernel allocates exactly one output Dense.

package matrix

import "math"

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Complexity: O(r*c).
func ewBroadcastSubCols(X Matrix, colMeans []float64) (Matrix, error) {
	return ewColumnwise(X, colMeans, "broadcastSubCols", func(v, b float64) float64 { return v - b })
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// Complexity: O(r*c).
func ewScaleCols(X Matrix, scale []float64) (Matrix, error) {
	return ewColumnwise(X, scale, "scaleCols", func(v, b float64) float64 { return v * b })
}

// ewColumnwise applies f(X[i,j], vec[j]) into a fresh Dense.
func ewColumnwise(X Matrix, vec []float64, tag string, f func(v, b float64) float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err = ValidateVecLen(vec, d.c); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			out.data[base+j] = f(d.data[base+j], vec[j])
		}
	}

	return out, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Shapes must match; negative tolerances are treated as their absolute value.
// Two NaNs at the same position compare equal.
//
// Errors:
//   - ErrNaNInf for a non-finite tolerance.
//   - ErrNilMatrix, ErrDimensionMismatch from the shape validators.
//
// Complexity: O(r*c), early exit on the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	var idx int
	var av, bv float64
	for idx = 0; idx < len(da.data); idx++ {
		av, bv = da.data[idx], db.data[idx]
		if math.IsNaN(av) || math.IsNaN(bv) {
			if math.IsNaN(av) && math.IsNaN(bv) {
				continue
			}
			return false, nil
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
