// SPDX-License-Identifier: MIT

package adjacency

import (
	"fmt"

	"github.com/katalvlaran/relnet/matrix"
)

// At returns matrix i as a single-matrix Adjacency.
func (a *Adjacency) At(i int) (*Adjacency, error) {
	return a.Select(i)
}

// Slice returns matrices [lo, hi).
// Errors: ErrIndexOutOfRange for an empty or out-of-bounds window.
func (a *Adjacency) Slice(lo, hi int) (*Adjacency, error) {
	if lo < 0 || hi > a.Len() || lo >= hi {
		return nil, opErrorf("Slice", fmt.Errorf("[%d,%d) of %d: %w", lo, hi, a.Len(), ErrIndexOutOfRange))
	}
	idx := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		idx = append(idx, i)
	}

	return a.Select(idx...)
}

// Select returns the listed matrices in the given order (repeats allowed).
func (a *Adjacency) Select(idx ...int) (*Adjacency, error) {
	if len(idx) == 0 {
		return nil, opErrorf("Select", ErrIndexOutOfRange)
	}
	for _, i := range idx {
		if i < 0 || i >= a.Len() {
			return nil, opErrorf("Select", fmt.Errorf("index %d of %d: %w", i, a.Len(), ErrIndexOutOfRange))
		}
	}
	data, err := a.data.SelectRows(idx)
	if err != nil {
		return nil, opErrorf("Select", err)
	}

	return a.derive(data, a.mtype), nil
}

// Squareform expands every stored matrix to its k×k square. Symmetric types
// are mirrored; Distance and Similarity alike get a zero diagonal.
func (a *Adjacency) Squareform() ([]*matrix.Dense, error) {
	if err := a.requireData("Squareform"); err != nil {
		return nil, err
	}
	out := make([]*matrix.Dense, a.Len())
	var row []float64
	var err error
	for i := range out {
		row, _ = a.data.RowView(i)
		if out[i], err = Expand(row, a.IsSymmetric()); err != nil {
			return nil, opErrorf("Squareform", err)
		}
	}

	return out, nil
}

// Append stacks other's matrices after the receiver's. Either side may be
// empty; otherwise node counts and symmetry must agree. The receiver's type
// and labels are kept.
func (a *Adjacency) Append(other *Adjacency) (*Adjacency, error) {
	switch {
	case other.IsEmpty() && a.IsEmpty():
		return Empty(), nil
	case a.IsEmpty():
		return other.derive(other.data.Clone().(*matrix.Dense), other.mtype), nil
	case other.IsEmpty():
		return a.derive(a.data.Clone().(*matrix.Dense), a.mtype), nil
	}
	if err := a.sameLayout("Append", other); err != nil {
		return nil, err
	}
	data, err := matrix.StackRows(a.data, other.data)
	if err != nil {
		return nil, opErrorf("Append", err)
	}

	return a.derive(data, a.mtype), nil
}

// Equal reports whether both hold the same type, node count and values within tol.
// NaN matches NaN.
func (a *Adjacency) Equal(other *Adjacency, tol float64) bool {
	if a.IsEmpty() || other.IsEmpty() {
		return a.IsEmpty() && other.IsEmpty()
	}
	if a.mtype != other.mtype || a.side != other.side || a.Len() != other.Len() {
		return false
	}
	ok, err := matrix.AllClose(a.data, other.data, 0, tol)

	return err == nil && ok
}

// sameLayout requires equal node count and symmetry.
func (a *Adjacency) sameLayout(op string, other *Adjacency) error {
	if other.IsEmpty() {
		return opErrorf(op, ErrEmpty)
	}
	if a.side != other.side || a.IsSymmetric() != other.IsSymmetric() {
		return opErrorf(op, fmt.Errorf("%s vs %s: %w", a, other, ErrShapeMismatch))
	}

	return nil
}
