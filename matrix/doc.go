// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage and kernels behind relnet's
// relational containers.
//
// What is inside:
//
//   - Matrix: a minimal two-dimensional float64 interface (Rows/Cols/At/Set/Clone).
//   - Dense: a row-major implementation with bounds-checked accessors, live row
//     views for hot loops, and copy-based row/column selection (Induced).
//   - Validators: a single source of truth for nil/shape/square/symmetry checks.
//   - Linear algebra: Sub, Scale, Mul, Transpose, LU and Inverse.
//   - Column statistics: ColumnMeans, CenterColumns, ColumnStds and Correlation.
//
// Error policy:
//
//	Every failure is a package sentinel (ErrDimensionMismatch, ErrOutOfRange,
//	ErrNonSquare, ErrSingular, ...) wrapped with the operation name, so callers
//	match with errors.Is and still get readable context:
//
//	  Mul: ValidateMulCompatible: matrix: dimension mismatch
//
// Determinism:
//
//	All loops run in fixed i→j order; no map iteration and no randomness.
//
// Complexity quicksheet:
//
//	At/Set O(1); Clone O(r·c); Mul O(r·k·c); Inverse O(n³); Correlation O(r·c²).
package matrix
