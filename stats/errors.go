// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates paired inputs of different lengths.
	ErrLengthMismatch = errors.New("stats: length mismatch")

	// ErrTooFewValues indicates a statistic needs more observations than given.
	ErrTooFewValues = errors.New("stats: too few values")

	// ErrDegreesOfFreedom indicates a regression with no residual degrees of freedom (n <= p).
	ErrDegreesOfFreedom = errors.New("stats: no residual degrees of freedom")

	// ErrUnknownMetric indicates an unsupported correlation metric name.
	ErrUnknownMetric = errors.New("stats: unknown correlation metric")

	// ErrUnknownTail indicates an unsupported tail specification.
	ErrUnknownTail = errors.New("stats: unknown tail")

	// ErrPercentile indicates a percentile outside [0, 100].
	ErrPercentile = errors.New("stats: percentile out of range")
)

// statsErrorf wraps err with an operation tag.
func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
