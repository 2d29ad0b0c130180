// SPDX-License-Identifier: MIT
// Package: relnet/simulate
//
// errors.go — sentinel errors for the simulate package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with %w and never panic at runtime; option
//     constructors (WithX) panic on meaningless values instead.

package simulate

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates a node or matrix count below the generator's minimum.
var ErrTooFewNodes = errors.New("simulate: parameter too small")

// ErrInvalidProbability indicates an edge density outside [0,1].
var ErrInvalidProbability = errors.New("simulate: probability out of range")

// ErrInvalidCorrelation indicates a target correlation outside [-1,1].
var ErrInvalidCorrelation = errors.New("simulate: correlation out of range")

// ErrBlockSpec indicates block sizes and block values of different lengths,
// or a non-positive block size.
var ErrBlockSpec = errors.New("simulate: invalid block specification")

// simErrorf wraps err with the generator name: "<Method>: <msg>: <err>".
func simErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
