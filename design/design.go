// SPDX-License-Identifier: MIT

// Package design provides the tabular design matrix used as regression input:
// labeled numeric columns with one row per observation.
//
// A design matrix is immutable after construction; every helper returns a new
// value. Rows align with the matrices of an adjacency.Adjacency when used by
// Adjacency.Regress.
package design

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/relnet/matrix"
)

// InterceptColumn is the label given to the column of ones added by Intercept
// and AddIntercept.
const InterceptColumn = "Intercept"

var (
	// ErrEmpty indicates a design with no rows or no columns.
	ErrEmpty = errors.New("design: empty design matrix")

	// ErrColumns indicates missing, duplicate or miscounted column labels.
	ErrColumns = errors.New("design: invalid column labels")

	// ErrShape indicates ragged rows or a column of the wrong length.
	ErrShape = errors.New("design: shape mismatch")

	// ErrParse indicates a malformed CSV cell.
	ErrParse = errors.New("design: parse error")
)

// Matrix is an n×p design: p labeled predictor columns over n observations.
type Matrix struct {
	columns []string
	data    *matrix.Dense
}

// New builds a design from column labels and row-major observations.
//
// Errors:
//   - ErrEmpty for no rows/columns, ErrColumns for empty or duplicate labels or
//     a label count different from the row width, ErrShape for ragged rows,
//     matrix.ErrNaNInf for non-finite values.
func New(columns []string, rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(columns) == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmpty)
	}
	if err := validateColumns(columns); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	var i int
	for i = range rows {
		if len(rows[i]) != len(columns) {
			return nil, fmt.Errorf("New: row %d has %d values for %d columns: %w", i, len(rows[i]), len(columns), ErrShape)
		}
	}
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Matrix{columns: cols, data: d}, nil
}

// FromColumn builds a single-predictor design.
func FromColumn(name string, values []float64) (*Matrix, error) {
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = []float64{v}
	}

	return New([]string{name}, rows)
}

// Intercept returns an n×1 design of ones labeled InterceptColumn.
func Intercept(n int) (*Matrix, error) {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	return FromColumn(InterceptColumn, ones)
}

// AddIntercept returns a copy with a leading InterceptColumn of ones.
// A design that already has an InterceptColumn is returned as a copy unchanged.
func (m *Matrix) AddIntercept() (*Matrix, error) {
	if m.HasColumn(InterceptColumn) {
		return m.clone(), nil
	}
	n, p := m.Shape()
	rows := make([][]float64, n)
	var i int
	for i = 0; i < n; i++ {
		src, _ := m.data.RowView(i)
		row := make([]float64, 0, p+1)
		row = append(row, 1)
		rows[i] = append(row, src...)
	}

	return New(append([]string{InterceptColumn}, m.columns...), rows)
}

// AddColumn returns a copy with an extra trailing column.
func (m *Matrix) AddColumn(name string, values []float64) (*Matrix, error) {
	n, p := m.Shape()
	if len(values) != n {
		return nil, fmt.Errorf("AddColumn %q: %d values for %d rows: %w", name, len(values), n, ErrShape)
	}
	rows := make([][]float64, n)
	var i int
	for i = 0; i < n; i++ {
		src, _ := m.data.RowView(i)
		row := make([]float64, 0, p+1)
		row = append(row, src...)
		rows[i] = append(row, values[i])
	}
	cols := append(append([]string{}, m.columns...), name)

	return New(cols, rows)
}

// Shape returns (rows, columns).
func (m *Matrix) Shape() (rows, cols int) { return m.data.Rows(), m.data.Cols() }

// Rows returns the number of observations.
func (m *Matrix) Rows() int { return m.data.Rows() }

// Columns returns a copy of the column labels.
func (m *Matrix) Columns() []string {
	out := make([]string, len(m.columns))
	copy(out, m.columns)

	return out
}

// HasColumn reports whether a column with this label exists.
func (m *Matrix) HasColumn(name string) bool {
	for _, c := range m.columns {
		if c == name {
			return true
		}
	}

	return false
}

// Column returns a copy of the named column.
func (m *Matrix) Column(name string) ([]float64, error) {
	for j, c := range m.columns {
		if c == name {
			return m.data.Col(j)
		}
	}

	return nil, fmt.Errorf("Column %q: %w", name, ErrColumns)
}

// Dense returns a copy of the numeric data (n×p).
func (m *Matrix) Dense() *matrix.Dense {
	return m.data.Clone().(*matrix.Dense)
}

func (m *Matrix) clone() *Matrix {
	return &Matrix{columns: m.Columns(), data: m.Dense()}
}

// validateColumns rejects empty and duplicate labels.
func validateColumns(columns []string) error {
	seen := make(map[string]struct{}, len(columns))
	for i, c := range columns {
		if c == "" {
			return fmt.Errorf("column %d is unnamed: %w", i, ErrColumns)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("column %q repeated: %w", c, ErrColumns)
		}
		seen[c] = struct{}{}
	}

	return nil
}
