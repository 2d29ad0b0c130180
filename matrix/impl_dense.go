// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy row views (RowView) and copy-based submatrix extraction (Induced).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Use RowView(i) to read or write a row without copies; mutations reflect in the base matrix.
//   - Use Induced(rows, cols) to materialize a submatrix (copy) for independent lifetime/shape.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RowView: O(1); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"           // method tag used in error wrappers
	ctxSet     = "Set"          // method tag used in error wrappers
	ctxRowView = "RowView"      // method tag used in error wrappers
	ctxInduce  = "Induced"      // ctor/tag for Dense.Induced
	ctxFrom    = "NewDenseFrom" // ctor tag for NewDenseFrom/NewDenseFromRows
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>=0; zero allowed only for internal zero-OK constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFrom builds an r×c matrix from a row-major slice.
// The slice is copied, so the caller keeps ownership of data.
//
// Implementation:
//   - Stage 1: validate shape (rows>0, cols>0) and len(data) == rows*cols.
//   - Stage 2: enforce the numeric policy (finite values only).
//   - Stage 3: copy into a fresh buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: len=%d want %d: %w", ctxFrom, len(data), rows*cols, ErrDimensionMismatch)
	}
	var k int
	for k = 0; k < len(data); k++ {
		if math.IsNaN(data[k]) || math.IsInf(data[k], 0) {
			return nil, denseErrorf(ctxFrom, k/cols, k%cols, ErrNaNInf)
		}
	}
	copy(m.data, data)

	return m, nil
}

// NewDenseFromRows builds a matrix from a slice of equal-length rows.
// Ragged input returns ErrDimensionMismatch; empty input returns ErrInvalidDimensions.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxFrom, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		flat = append(flat, rows[i]...)
	}

	return NewDenseFrom(r, c, flat)
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf maps (row, col) to the flat offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the element at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange for bad indices, ErrNaNInf when the numeric policy rejects v.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy that preserves the numeric policy.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// RowView returns the live backing slice of row i (no copy).
// Writes through the returned slice bypass the numeric policy and mutate m.
//
// AI-Hints:
//   - Use for tight per-row loops in statistics kernels; use Row when the caller
//     must own the data.
//
// Complexity: O(1).
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	v, err := m.RowView(i)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out, nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxAt, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Induced materializes the submatrix selected by rowsIdx × colsIdx (copy).
// Indices may repeat and appear in any order; the result follows the given order.
//
// Errors:
//   - ErrOutOfRange for any index outside the base matrix.
//   - ErrInvalidDimensions when either index list is empty.
//
// Complexity:
//   - Time O(len(rowsIdx)*len(colsIdx)), Space the same.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols

	// Allocate the result with the strict constructor.
	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, err)
	}
	// Preserve numeric policy from the base.
	res.validateNaNInf = m.validateNaNInf

	// Deterministic double loop; direct offset math in both matrices.
	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// SelectRows copies the listed rows (all columns) into a new matrix.
// Complexity: O(len(rowsIdx)*c).
func (m *Dense) SelectRows(rowsIdx []int) (*Dense, error) {
	cols := make([]int, m.c)
	var j int
	for j = 0; j < m.c; j++ {
		cols[j] = j
	}

	return m.Induced(rowsIdx, cols)
}

// Apply replaces every element with f(i, j, v) in row-major order.
// The numeric policy is enforced on the produced values.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, off int
	var nv float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			off = i*m.c + j
			nv = f(i, j, m.data[off])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf("Apply", i, j, ErrNaNInf)
			}
			m.data[off] = nv
		}
	}

	return nil
}

// StackRows concatenates the rows of a and b (a first) into a new matrix.
// Column counts must match.
// Complexity: O((ra+rb)*c).
func StackRows(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("StackRows: %w", ErrNilMatrix)
	}
	if a.c != b.c {
		return nil, fmt.Errorf("StackRows: cols %d vs %d: %w", a.c, b.c, ErrDimensionMismatch)
	}
	res, err := NewDense(a.r+b.r, a.c)
	if err != nil {
		return nil, fmt.Errorf("StackRows: %w", err)
	}
	res.validateNaNInf = a.validateNaNInf
	copy(res.data, a.data)
	copy(res.data[len(a.data):], b.data)

	return res, nil
}
