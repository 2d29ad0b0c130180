// SPDX-License-Identifier: MIT

package adjacency

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every failure wraps one of these with the operation name;
// match with errors.Is.
var (
	// ErrUnknownMatrixType indicates a matrix type outside the six supported names.
	ErrUnknownMatrixType = errors.New("adjacency: unknown matrix type")

	// ErrMatrixType indicates an operation that requires a different matrix type,
	// or a symmetric type given an asymmetric matrix.
	ErrMatrixType = errors.New("adjacency: wrong matrix type")

	// ErrNonSquare indicates a non-square matrix where a square one is required.
	ErrNonSquare = errors.New("adjacency: matrix is not square")

	// ErrShapeMismatch indicates operands with different shapes or node counts.
	ErrShapeMismatch = errors.New("adjacency: shape mismatch")

	// ErrInvalidEdgeCount indicates a condensed length that is not k(k-1)/2 (or k(k-1)).
	ErrInvalidEdgeCount = errors.New("adjacency: invalid condensed edge count")

	// ErrIndexOutOfRange indicates a matrix index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("adjacency: index out of range")

	// ErrInvalidThreshold indicates a malformed or missing cutoff.
	ErrInvalidThreshold = errors.New("adjacency: invalid threshold")

	// ErrMultipleMatrices indicates an operation that needs exactly one matrix.
	ErrMultipleMatrices = errors.New("adjacency: operation requires a single matrix")

	// ErrTooFewMatrices indicates an operation that needs at least two matrices.
	ErrTooFewMatrices = errors.New("adjacency: too few matrices")

	// ErrEmpty indicates an operation on an empty Adjacency.
	ErrEmpty = errors.New("adjacency: empty adjacency")

	// ErrUnknownMetric indicates an unsupported distance or correlation metric.
	ErrUnknownMetric = errors.New("adjacency: unknown metric")

	// ErrUnknownPermType indicates a permutation scheme other than none/1d/2d.
	ErrUnknownPermType = errors.New("adjacency: unknown permutation type")

	// ErrUnknownFunction indicates a bootstrap function other than mean/std.
	ErrUnknownFunction = errors.New("adjacency: unknown bootstrap function")

	// ErrClusterLength indicates a cluster label count different from the node count.
	ErrClusterLength = errors.New("adjacency: cluster labels do not match node count")

	// ErrLabels indicates a node label count different from the node count, or duplicates.
	ErrLabels = errors.New("adjacency: invalid node labels")

	// ErrLongFormat indicates malformed long-format input.
	ErrLongFormat = errors.New("adjacency: malformed long-format data")
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// shapeErrorf reports expected vs actual (matrices, edges) shapes.
func shapeErrorf(op string, wantN, wantE, gotN, gotE int) error {
	return fmt.Errorf("%s: expected shape (%d,%d), got (%d,%d): %w", op, wantN, wantE, gotN, gotE, ErrShapeMismatch)
}
