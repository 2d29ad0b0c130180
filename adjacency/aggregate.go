// SPDX-License-Identifier: MIT

package adjacency

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/relnet/matrix"
	"github.com/katalvlaran/relnet/stats"
)

// Mean averages across matrices, edge by edge, into a single-matrix Adjacency.
func (a *Adjacency) Mean() (*Adjacency, error) {
	return a.columnStat("Mean", func(m matrix.Matrix) ([]float64, error) {
		return matrix.ColumnMeans(m)
	})
}

// Std is the population standard deviation (ddof 0) across matrices, edge by edge.
func (a *Adjacency) Std() (*Adjacency, error) {
	return a.columnStat("Std", func(m matrix.Matrix) ([]float64, error) {
		stds, _, err := matrix.ColumnStds(m, 0)
		return stds, err
	})
}

// Sum adds across matrices, edge by edge.
func (a *Adjacency) Sum() (*Adjacency, error) {
	return a.acrossMatrices("Sum", floats.Sum)
}

// RowMeans returns one mean per matrix over its stored edges.
func (a *Adjacency) RowMeans() ([]float64, error) {
	return a.perMatrix("RowMeans", stats.Mean)
}

// RowStds returns one population standard deviation per matrix.
func (a *Adjacency) RowStds() ([]float64, error) {
	return a.perMatrix("RowStds", stats.PopStd)
}

// RowSums returns one sum per matrix.
func (a *Adjacency) RowSums() ([]float64, error) {
	return a.perMatrix("RowSums", floats.Sum)
}

// columnStat stores one reduction over the matrix axis as a single matrix.
func (a *Adjacency) columnStat(op string, f func(matrix.Matrix) ([]float64, error)) (*Adjacency, error) {
	if err := a.requireData(op); err != nil {
		return nil, err
	}
	col, err := f(a.data)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	data, err := a.mapRows(1, func(_ int, dst []float64) error {
		copy(dst, col)
		return nil
	})
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return a.derive(data, a.mtype), nil
}

// acrossMatrices reduces every edge column with f.
func (a *Adjacency) acrossMatrices(op string, f func([]float64) float64) (*Adjacency, error) {
	if err := a.requireData(op); err != nil {
		return nil, err
	}
	data, err := a.mapRows(1, func(_ int, dst []float64) error {
		var col []float64
		for j := range dst {
			col, _ = a.data.Col(j)
			dst[j] = f(col)
		}
		return nil
	})
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return a.derive(data, a.mtype), nil
}

// perMatrix reduces every stored matrix with f.
func (a *Adjacency) perMatrix(op string, f func([]float64) float64) ([]float64, error) {
	if err := a.requireData(op); err != nil {
		return nil, err
	}
	out := make([]float64, a.Len())
	var row []float64
	for i := range out {
		row, _ = a.data.RowView(i)
		out[i] = f(row)
	}

	return out, nil
}
