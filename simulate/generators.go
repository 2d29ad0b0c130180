// SPDX-License-Identifier: MIT
// Package: relnet/simulate
//
// generators.go — seeded fixtures for relational matrices.
//
// Models:
//   • Distance: Euclidean distances between k points drawn from N(0, I_dims).
//   • Similarity: exp(-d/σ) of such a Distance fixture.
//   • Directed: each ordered pair (i,j), i≠j, is present with probability
//     density and weighted uniformly in (0,1].
//   • Multiple: one base fixture plus independent Gaussian noise per copy.
//   • BlockDiagonal: constant within-block similarity, zero between blocks.
//   • CorrelatedPair: two condensed similarity vectors with target correlation.
//
// Determinism:
//   • Stable trial order: nodes i asc, then j asc, exactly as stored.
//   • Fixed seed ⇒ identical fixture.

package simulate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/relnet/adjacency"
)

const (
	methodDistance       = "Distance"
	methodSimilarity     = "Similarity"
	methodDirected       = "Directed"
	methodMultiple       = "Multiple"
	methodBlockDiagonal  = "BlockDiagonal"
	methodCorrelatedPair = "CorrelatedPair"
	minNodes             = 2
)

// Distance samples a k-node distance matrix.
func Distance(k int, opts ...Option) (*adjacency.Adjacency, error) {
	cfg := newConfig(opts...)

	return distance(k, cfg)
}

func distance(k int, cfg config) (*adjacency.Adjacency, error) {
	if k < minNodes {
		return nil, simErrorf(methodDistance, "k=%d < min=%d", ErrTooFewNodes, k, minNodes)
	}
	points := make([][]float64, k)
	for i := range points {
		points[i] = make([]float64, cfg.dims)
		for d := range points[i] {
			points[i][d] = cfg.rng.NormFloat64()
		}
	}
	v := make([]float64, 0, adjacency.EdgeCount(k, true))
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			v = append(v, floats.Distance(points[i], points[j], 2))
		}
	}
	a, err := adjacency.FromVector(v, adjacency.WithMatrixType(adjacency.Distance), adjacency.WithLabels(cfg.labels(k)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistance, err)
	}

	return a, nil
}

// Similarity samples a k-node similarity matrix.
func Similarity(k int, opts ...Option) (*adjacency.Adjacency, error) {
	cfg := newConfig(opts...)

	return similarity(k, cfg)
}

func similarity(k int, cfg config) (*adjacency.Adjacency, error) {
	d, err := distance(k, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSimilarity, err)
	}
	s, err := d.DistanceToSimilarity(1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSimilarity, err)
	}

	return s, nil
}

// Directed samples a k-node directed matrix (see WithDensity).
func Directed(k int, opts ...Option) (*adjacency.Adjacency, error) {
	cfg := newConfig(opts...)

	return directed(k, cfg)
}

func directed(k int, cfg config) (*adjacency.Adjacency, error) {
	if k < minNodes {
		return nil, simErrorf(methodDirected, "k=%d < min=%d", ErrTooFewNodes, k, minNodes)
	}
	v := make([]float64, 0, adjacency.EdgeCount(k, false))
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			w := 0.0
			if cfg.rng.Float64() < cfg.density {
				w = 1 - cfg.rng.Float64()
			}
			v = append(v, w)
		}
	}
	a, err := adjacency.FromVector(v, adjacency.WithMatrixType(adjacency.Directed), adjacency.WithLabels(cfg.labels(k)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDirected, err)
	}

	return a, nil
}

// Multiple returns n noisy copies (see WithNoise) of one base fixture of type t.
// The _flat hint of t is ignored.
func Multiple(n, k int, t adjacency.MatrixType, opts ...Option) (*adjacency.Adjacency, error) {
	cfg := newConfig(opts...)
	if n < 1 {
		return nil, simErrorf(methodMultiple, "n=%d < 1", ErrTooFewNodes, n)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodMultiple, err)
	}
	var base *adjacency.Adjacency
	var err error
	switch t.Base() {
	case adjacency.Distance:
		base, err = distance(k, cfg)
	case adjacency.Similarity:
		base, err = similarity(k, cfg)
	default:
		base, err = directed(k, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMultiple, err)
	}
	row, err := base.Row(0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMultiple, err)
	}
	vs := make([][]float64, n)
	for m := range vs {
		vs[m] = make([]float64, len(row))
		for j, v := range row {
			vs[m][j] = v + cfg.noise*cfg.rng.NormFloat64()
		}
	}
	out, err := adjacency.FromVectors(vs, adjacency.WithMatrixType(t.Base()), adjacency.WithLabelsOf(base))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMultiple, err)
	}

	return out, nil
}

// BlockDiagonal builds one similarity matrix whose nodes form consecutive
// blocks: sizes[b] nodes valued values[b] (plus noise) within block b, and 0
// between blocks. It also returns the cluster label of every node
// ("Group1", "Group2", ...).
func BlockDiagonal(sizes []int, values []float64, opts ...Option) (*adjacency.Adjacency, []string, error) {
	cfg := newConfig(opts...)
	if len(sizes) == 0 || len(sizes) != len(values) {
		return nil, nil, simErrorf(methodBlockDiagonal, "%d sizes, %d values", ErrBlockSpec, len(sizes), len(values))
	}
	var clusters []string
	for b, s := range sizes {
		if s < 1 {
			return nil, nil, simErrorf(methodBlockDiagonal, "block %d has size %d", ErrBlockSpec, b, s)
		}
		for i := 0; i < s; i++ {
			clusters = append(clusters, fmt.Sprintf("Group%d", b+1))
		}
	}
	k := len(clusters)
	if k < minNodes {
		return nil, nil, simErrorf(methodBlockDiagonal, "k=%d < min=%d", ErrTooFewNodes, k, minNodes)
	}
	block := make([]int, 0, k)
	for b, s := range sizes {
		for i := 0; i < s; i++ {
			block = append(block, b)
		}
	}
	v := make([]float64, 0, adjacency.EdgeCount(k, true))
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			w := 0.0
			if block[i] == block[j] {
				w = values[block[i]] + cfg.noise*cfg.rng.NormFloat64()
			}
			v = append(v, w)
		}
	}
	a, err := adjacency.FromVector(v, adjacency.WithMatrixType(adjacency.Similarity), adjacency.WithLabels(cfg.labels(k)))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodBlockDiagonal, err)
	}

	return a, clusters, nil
}

// CorrelatedPair samples two k-node similarity matrices whose condensed edges
// are standard normal with population correlation rho.
func CorrelatedPair(k int, rho float64, opts ...Option) (x, y *adjacency.Adjacency, err error) {
	cfg := newConfig(opts...)
	if k < minNodes {
		return nil, nil, simErrorf(methodCorrelatedPair, "k=%d < min=%d", ErrTooFewNodes, k, minNodes)
	}
	if math.IsNaN(rho) || rho < -1 || rho > 1 {
		return nil, nil, simErrorf(methodCorrelatedPair, "rho=%v", ErrInvalidCorrelation, rho)
	}
	e := adjacency.EdgeCount(k, true)
	xv, yv := make([]float64, e), make([]float64, e)
	resid := math.Sqrt(1 - rho*rho)
	var z1, z2 float64
	for j := 0; j < e; j++ {
		z1, z2 = cfg.rng.NormFloat64(), cfg.rng.NormFloat64()
		xv[j] = z1
		yv[j] = rho*z1 + resid*z2
	}
	labels := adjacency.WithLabels(cfg.labels(k))
	if x, err = adjacency.FromVector(xv, adjacency.WithMatrixType(adjacency.Similarity), labels); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodCorrelatedPair, err)
	}
	if y, err = adjacency.FromVector(yv, adjacency.WithMatrixType(adjacency.Similarity), labels); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodCorrelatedPair, err)
	}

	return x, y, nil
}
