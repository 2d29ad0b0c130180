// SPDX-License-Identifier: MIT
// Package matrix: numeric policy defaults.
//
// The defaults below are the single source of truth for tolerance-driven checks
// (symmetry, zero diagonal) and for the finite-value guard applied by Set and
// NewDenseFrom. They are constants so that behavior is reproducible across runs.

package matrix

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (ValidateSymmetric, IsZeroDiagonal) when callers do not supply one.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	// Kernels that legitimately produce NaN (e.g., 0/0 statistics) write through
	// RowView and are not affected.
	DefaultValidateNaNInf = true
)
