// SPDX-License-Identifier: MIT
// Package: relnet/adjacency
//
// construct.go — building an Adjacency from squares or condensed vectors.
//
// Type resolution:
//   - WithMatrixType given: the base of that type is stored; symmetric types
//     require symmetric squares (ErrMatrixType otherwise).
//   - Squares without a type: symmetric with zero diagonal ⇒ Distance,
//     symmetric ⇒ Similarity, anything else ⇒ Directed. With several squares
//     the weakest classification wins.
//   - Vectors without a type: Similarity.
//
// Values are copied; NaN is accepted as "missing" and propagates through
// every later operation.

package adjacency

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/relnet/matrix"
)

const (
	opFromMatrices = "FromMatrices"
	opFromVectors  = "FromVectors"
)

// FromSquare builds a single-matrix Adjacency from a k×k row slice.
func FromSquare(rows [][]float64, opts ...BuildOption) (*Adjacency, error) {
	return New([][][]float64{rows}, opts...)
}

// New builds an Adjacency from several k×k row slices.
func New(squares [][][]float64, opts ...BuildOption) (*Adjacency, error) {
	ms := make([]matrix.Matrix, len(squares))
	var err error
	for i, sq := range squares {
		if ms[i], err = denseFromRows(sq); err != nil {
			return nil, opErrorf(opFromMatrices, fmt.Errorf("square %d: %w", i, err))
		}
	}

	return FromMatrices(ms, opts...)
}

// FromMatrices builds an Adjacency from one or more square matrices of equal size.
//
// Errors:
//   - ErrEmpty (no matrices), ErrNonSquare, ErrShapeMismatch (sizes differ),
//     ErrInvalidEdgeCount (k < 2), ErrUnknownMatrixType, ErrMatrixType, ErrLabels.
//
// Complexity:
//   - Time O(n·k²), Space O(n·k²).
func FromMatrices(ms []matrix.Matrix, opts ...BuildOption) (*Adjacency, error) {
	cfg := newBuildConfig(opts)
	if len(ms) == 0 {
		return nil, opErrorf(opFromMatrices, ErrEmpty)
	}
	if cfg.mtype != "" {
		if err := cfg.mtype.Validate(); err != nil {
			return nil, opErrorf(opFromMatrices, err)
		}
	}

	// Stage 1: shapes.
	k := -1
	for i, m := range ms {
		if err := matrix.ValidateSquare(m); err != nil {
			return nil, opErrorf(opFromMatrices, fmt.Errorf("matrix %d: %v: %w", i, err, ErrNonSquare))
		}
		if k >= 0 && m.Rows() != k {
			return nil, opErrorf(opFromMatrices, fmt.Errorf("matrix %d is %d×%d, want %d×%d: %w",
				i, m.Rows(), m.Rows(), k, k, ErrShapeMismatch))
		}
		k = m.Rows()
	}
	if k < 2 {
		return nil, opErrorf(opFromMatrices, fmt.Errorf("k=%d: %w", k, ErrInvalidEdgeCount))
	}

	// Stage 2: type.
	mtype, err := resolveSquareType(ms, cfg)
	if err != nil {
		return nil, opErrorf(opFromMatrices, err)
	}

	// Stage 3: condense.
	sym := mtype.IsSymmetric()
	data, err := matrix.NewDense(len(ms), EdgeCount(k, sym))
	if err != nil {
		return nil, opErrorf(opFromMatrices, err)
	}
	var row, v []float64
	for i, m := range ms {
		if v, err = Condense(m, sym); err != nil {
			return nil, opErrorf(opFromMatrices, err)
		}
		row, _ = data.RowView(i)
		copy(row, v)
	}

	return finish(opFromMatrices, data, mtype, k, cfg.labels)
}

// FromVector builds a single-matrix Adjacency from a condensed vector.
func FromVector(v []float64, opts ...BuildOption) (*Adjacency, error) {
	return FromVectors([][]float64{v}, opts...)
}

// FromVectors builds an Adjacency from condensed vectors of equal length.
// The length must be k(k-1)/2 for symmetric types and k(k-1) for Directed.
//
// Errors:
//   - ErrEmpty, ErrShapeMismatch (ragged), ErrInvalidEdgeCount,
//     ErrUnknownMatrixType, ErrLabels.
func FromVectors(vs [][]float64, opts ...BuildOption) (*Adjacency, error) {
	cfg := newBuildConfig(opts)
	if len(vs) == 0 {
		return nil, opErrorf(opFromVectors, ErrEmpty)
	}
	mtype := Similarity
	if cfg.mtype != "" {
		if err := cfg.mtype.Validate(); err != nil {
			return nil, opErrorf(opFromVectors, err)
		}
		mtype = cfg.mtype.Base()
	}
	e := len(vs[0])
	k, err := SideFromEdges(e, mtype.IsSymmetric())
	if err != nil {
		return nil, opErrorf(opFromVectors, err)
	}
	data, err := matrix.NewDense(len(vs), e)
	if err != nil {
		return nil, opErrorf(opFromVectors, err)
	}
	var row []float64
	for i, v := range vs {
		if len(v) != e {
			return nil, opErrorf(opFromVectors, shapeErrorf("vector", 1, e, 1, len(v)))
		}
		row, _ = data.RowView(i)
		copy(row, v)
	}

	return finish(opFromVectors, data, mtype, k, cfg.labels)
}

// resolveSquareType applies the type rules from the file header.
func resolveSquareType(ms []matrix.Matrix, cfg buildConfig) (MatrixType, error) {
	allSym, allZeroDiag := true, true
	for _, m := range ms {
		if err := matrix.ValidateSymmetric(m, cfg.tol); err != nil {
			if !errors.Is(err, matrix.ErrAsymmetry) {
				return "", err
			}
			allSym = false
		}
		zero, err := matrix.IsZeroDiagonal(m, cfg.tol)
		if err != nil {
			return "", err
		}
		allZeroDiag = allZeroDiag && zero
	}

	if cfg.mtype != "" {
		t := cfg.mtype.Base()
		if t.IsSymmetric() && !allSym {
			return "", fmt.Errorf("%s requires symmetric input: %w", t, ErrMatrixType)
		}
		return t, nil
	}
	switch {
	case allSym && allZeroDiag:
		return Distance, nil
	case allSym:
		return Similarity, nil
	default:
		return Directed, nil
	}
}

// finish validates labels and assembles the result.
func finish(op string, data *matrix.Dense, t MatrixType, k int, labels []string) (*Adjacency, error) {
	if err := validateLabels(labels, k); err != nil {
		return nil, opErrorf(op, err)
	}
	out := &Adjacency{data: data, mtype: t, side: k}
	if len(labels) > 0 {
		out.labels = append([]string(nil), labels...)
	}

	return out, nil
}

// validateLabels accepts nil or exactly k distinct labels.
func validateLabels(labels []string, k int) error {
	if len(labels) == 0 {
		return nil
	}
	if len(labels) != k {
		return fmt.Errorf("%d labels for %d nodes: %w", len(labels), k, ErrLabels)
	}
	seen := make(map[string]struct{}, k)
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return fmt.Errorf("duplicate label %q: %w", l, ErrLabels)
		}
		seen[l] = struct{}{}
	}

	return nil
}

// denseFromRows copies rows into a Dense without the finite-value policy.
func denseFromRows(rows [][]float64) (*matrix.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrNonSquare)
	}
	d, err := matrix.NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	var dst []float64
	for i, r := range rows {
		if len(r) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(r), len(rows[0]), ErrNonSquare)
		}
		dst, _ = d.RowView(i)
		copy(dst, r)
	}

	return d, nil
}

// WithLabelsOf is a BuildOption copying another Adjacency's labels.
func WithLabelsOf(other *Adjacency) BuildOption {
	if other == nil || other.labels == nil {
		return func(*buildConfig) {}
	}

	return WithLabels(other.labels)
}
