// SPDX-License-Identifier: MIT

package adjacency

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/relnet/matrix"
)

// MatrixType names the relational semantics of the stored matrices.
type MatrixType string

const (
	// Distance is symmetric with a zero diagonal.
	Distance MatrixType = "distance"
	// Similarity is symmetric.
	Similarity MatrixType = "similarity"
	// Directed is asymmetric; both off-diagonal halves are stored.
	Directed MatrixType = "directed"

	// DistanceFlat marks input that is already condensed distance data.
	DistanceFlat MatrixType = "distance_flat"
	// SimilarityFlat marks input that is already condensed similarity data.
	SimilarityFlat MatrixType = "similarity_flat"
	// DirectedFlat marks input that is already condensed directed data.
	DirectedFlat MatrixType = "directed_flat"
)

// ParseMatrixType maps a case-insensitive name to a MatrixType.
func ParseMatrixType(name string) (MatrixType, error) {
	t := MatrixType(strings.ToLower(strings.TrimSpace(name)))
	if err := t.Validate(); err != nil {
		return "", err
	}

	return t, nil
}

// Validate reports ErrUnknownMatrixType for unsupported names.
func (t MatrixType) Validate() error {
	switch t {
	case Distance, Similarity, Directed, DistanceFlat, SimilarityFlat, DirectedFlat:
		return nil
	default:
		return fmt.Errorf("matrix type %q: %w", string(t), ErrUnknownMatrixType)
	}
}

// Base strips the _flat hint: DistanceFlat → Distance, and so on.
func (t MatrixType) Base() MatrixType {
	return MatrixType(strings.TrimSuffix(string(t), "_flat"))
}

// IsFlat reports whether t is one of the _flat input hints.
func (t MatrixType) IsFlat() bool { return strings.HasSuffix(string(t), "_flat") }

// IsSymmetric reports whether t stores one triangle (distance or similarity).
func (t MatrixType) IsSymmetric() bool { return t.Base() != Directed }

// Adjacency stores one or more square relational matrices over the same k
// nodes, each condensed into one row of data:
//
//   - symmetric types keep the strict upper triangle, row-major: k(k-1)/2 edges;
//   - Directed keeps every off-diagonal entry, row-major: k(k-1) edges.
//
// Operations never mutate the receiver; each returns a new Adjacency that owns
// its buffer. The zero value is the empty Adjacency.
type Adjacency struct {
	data   *matrix.Dense // n_matrices × n_edges; nil when empty
	mtype  MatrixType    // always a base type
	side   int           // k
	labels []string      // nil means "0".."k-1"
}

// Empty returns an Adjacency with no matrices. Only Append, Len, Shape and
// IsEmpty are meaningful on it.
func Empty() *Adjacency { return &Adjacency{} }

// Len returns the number of stored matrices.
func (a *Adjacency) Len() int {
	if a == nil || a.data == nil {
		return 0
	}

	return a.data.Rows()
}

// IsEmpty reports whether no matrix is stored.
func (a *Adjacency) IsEmpty() bool { return a.Len() == 0 }

// Shape returns (number of matrices, edges per matrix); (0,0) when empty.
func (a *Adjacency) Shape() (matrices, edges int) {
	if a.IsEmpty() {
		return 0, 0
	}

	return a.data.Rows(), a.data.Cols()
}

// Edges returns the condensed length of one matrix.
func (a *Adjacency) Edges() int {
	_, e := a.Shape()

	return e
}

// MatrixType returns the stored (base) type; "" when empty.
func (a *Adjacency) MatrixType() MatrixType { return a.mtype }

// IsSymmetric reports whether the stored matrices are distance or similarity.
func (a *Adjacency) IsSymmetric() bool { return a.mtype != "" && a.mtype.IsSymmetric() }

// SquareShape returns the (k, k) shape implied by the edge count.
func (a *Adjacency) SquareShape() (rows, cols int) { return a.side, a.side }

// Labels returns the node labels, defaulting to "0".."k-1".
func (a *Adjacency) Labels() []string {
	out := make([]string, a.side)
	if a.labels != nil {
		copy(out, a.labels)
		return out
	}
	for i := range out {
		out[i] = strconv.Itoa(i)
	}

	return out
}

// Data returns a copy of the n×e condensed data; nil when empty.
func (a *Adjacency) Data() *matrix.Dense {
	if a.IsEmpty() {
		return nil
	}

	return a.data.Clone().(*matrix.Dense)
}

// Row returns a copy of the condensed vector of matrix i.
func (a *Adjacency) Row(i int) ([]float64, error) {
	if i < 0 || i >= a.Len() {
		return nil, opErrorf("Row", fmt.Errorf("index %d of %d: %w", i, a.Len(), ErrIndexOutOfRange))
	}

	return a.data.Row(i)
}

// String renders a short description such as "Adjacency(similarity, 3 × 45 edges, 10 nodes)".
func (a *Adjacency) String() string {
	if a.IsEmpty() {
		return "Adjacency(empty)"
	}
	n, e := a.Shape()

	return fmt.Sprintf("Adjacency(%s, %d × %d edges, %d nodes)", a.mtype, n, e, a.side)
}

// derive wraps data (owned by the caller) with the receiver's node layout.
func (a *Adjacency) derive(data *matrix.Dense, t MatrixType) *Adjacency {
	out := &Adjacency{data: data, mtype: t, side: a.side}
	if a.labels != nil {
		out.labels = append([]string(nil), a.labels...)
	}

	return out
}

// mapRows builds rows×Edges() data by filling each output row from fill.
// Rows are written through RowView so kernels may legitimately produce NaN/Inf.
func (a *Adjacency) mapRows(rows int, fill func(i int, dst []float64) error) (*matrix.Dense, error) {
	out, err := matrix.NewDense(rows, a.Edges())
	if err != nil {
		return nil, err
	}
	var i int
	var dst []float64
	for i = 0; i < rows; i++ {
		dst, _ = out.RowView(i)
		if err = fill(i, dst); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// requireData fails with ErrEmpty for an empty receiver.
func (a *Adjacency) requireData(op string) error {
	if a.IsEmpty() {
		return opErrorf(op, ErrEmpty)
	}

	return nil
}

// requireSingle fails unless exactly one matrix is stored.
func (a *Adjacency) requireSingle(op string) error {
	if err := a.requireData(op); err != nil {
		return err
	}
	if a.Len() != 1 {
		return opErrorf(op, fmt.Errorf("have %d matrices: %w", a.Len(), ErrMultipleMatrices))
	}

	return nil
}
