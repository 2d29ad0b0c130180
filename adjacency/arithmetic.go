// SPDX-License-Identifier: MIT
// Package: relnet/adjacency
//
// arithmetic.go — element-wise arithmetic on condensed data.
//
// Contract:
//   - Binary operations require identical (matrices, edges) shapes and the same
//     symmetry; the receiver's type and labels carry over.
//   - Scalar operations apply to every stored edge; the implicit diagonal is
//     never touched.
//   - IEEE semantics: NaN propagates, division by zero is not an error.

package adjacency

import (
	"gonum.org/v1/gonum/floats"
)

// Add returns a + b element-wise.
func (a *Adjacency) Add(b *Adjacency) (*Adjacency, error) {
	return a.binary("Add", b, floats.AddTo)
}

// Sub returns a - b element-wise.
func (a *Adjacency) Sub(b *Adjacency) (*Adjacency, error) {
	return a.binary("Sub", b, floats.SubTo)
}

// Mul returns the element-wise (Hadamard) product a ∘ b.
func (a *Adjacency) Mul(b *Adjacency) (*Adjacency, error) {
	return a.binary("Mul", b, floats.MulTo)
}

// AddScalar returns a + c.
func (a *Adjacency) AddScalar(c float64) (*Adjacency, error) {
	return a.unary("AddScalar", func(dst []float64) { floats.AddConst(c, dst) })
}

// SubScalar returns a - c.
func (a *Adjacency) SubScalar(c float64) (*Adjacency, error) {
	return a.unary("SubScalar", func(dst []float64) { floats.AddConst(-c, dst) })
}

// MulScalar returns c · a.
func (a *Adjacency) MulScalar(c float64) (*Adjacency, error) {
	return a.unary("MulScalar", func(dst []float64) { floats.Scale(c, dst) })
}

// Map applies f to every stored edge and keeps the receiver's type.
func (a *Adjacency) Map(f func(v float64) float64) (*Adjacency, error) {
	return a.unary("Map", func(dst []float64) {
		for j, v := range dst {
			dst[j] = f(v)
		}
	})
}

func (a *Adjacency) binary(op string, b *Adjacency, kernel func(dst, s, t []float64) []float64) (*Adjacency, error) {
	if err := a.requireData(op); err != nil {
		return nil, err
	}
	if err := a.sameLayout(op, b); err != nil {
		return nil, err
	}
	if a.Len() != b.Len() {
		n, e := a.Shape()
		bn, be := b.Shape()
		return nil, shapeErrorf(op, n, e, bn, be)
	}
	data, err := a.mapRows(a.Len(), func(i int, dst []float64) error {
		s, _ := a.data.RowView(i)
		t, _ := b.data.RowView(i)
		kernel(dst, s, t)
		return nil
	})
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return a.derive(data, a.mtype), nil
}

func (a *Adjacency) unary(op string, f func(dst []float64)) (*Adjacency, error) {
	if err := a.requireData(op); err != nil {
		return nil, err
	}
	data, err := a.mapRows(a.Len(), func(i int, dst []float64) error {
		src, _ := a.data.RowView(i)
		copy(dst, src)
		f(dst)
		return nil
	})
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return a.derive(data, a.mtype), nil
}
