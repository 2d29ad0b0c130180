// SPDX-License-Identifier: MIT
// Package: relnet/adjacency
//
// convert.go — distance/similarity conversions and Fisher transforms.
//
// AI-Hints:
//   - Distance treats every stored matrix as one observation and returns a
//     single distance matrix whose nodes are those observations.
//   - DistanceToSimilarity normalizes by each matrix's own spread, so matrices
//     on different scales map to comparable similarities.

package adjacency

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/relnet/matrix"
	"github.com/katalvlaran/relnet/stats"
)

// DistanceMetric names a pairwise distance between condensed rows.
type DistanceMetric string

const (
	// CorrelationDistance is 1 − Pearson r.
	CorrelationDistance DistanceMetric = "correlation"
	// Euclidean is the L2 distance.
	Euclidean DistanceMetric = "euclidean"
	// Cityblock is the L1 distance.
	Cityblock DistanceMetric = "cityblock"
	// Cosine is 1 − cos(angle).
	Cosine DistanceMetric = "cosine"
)

// ParseDistanceMetric maps a case-insensitive name; "" means correlation.
func ParseDistanceMetric(name string) (DistanceMetric, error) {
	switch m := DistanceMetric(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return CorrelationDistance, nil
	case CorrelationDistance, Euclidean, Cityblock, Cosine:
		return m, nil
	default:
		return "", fmt.Errorf("distance metric %q: %w", name, ErrUnknownMetric)
	}
}

// Distance computes pairwise distances between the stored matrices and returns
// them as a single Distance matrix with Len() nodes.
//
// A constant row has no defined correlation or direction; its correlation and
// cosine distances are 1.
//
// Errors: ErrTooFewMatrices (Len() < 2), ErrUnknownMetric.
// Complexity: O(n²·e).
func (a *Adjacency) Distance(metric DistanceMetric) (*Adjacency, error) {
	const op = "Distance"
	if a.Len() < 2 {
		return nil, opErrorf(op, fmt.Errorf("need 2 matrices, have %d: %w", a.Len(), ErrTooFewMatrices))
	}
	if metric == "" {
		metric = CorrelationDistance
	}
	var dist func(x, y []float64) float64
	switch metric {
	case CorrelationDistance:
		return a.correlationDistance(op)
	case Euclidean:
		dist = func(x, y []float64) float64 { return floats.Distance(x, y, 2) }
	case Cityblock:
		dist = func(x, y []float64) float64 { return floats.Distance(x, y, 1) }
	case Cosine:
		dist = func(x, y []float64) float64 {
			nx, ny := floats.Norm(x, 2), floats.Norm(y, 2)
			if nx == 0 || ny == 0 {
				return 1
			}
			return 1 - floats.Dot(x, y)/(nx*ny)
		}
	default:
		return nil, opErrorf(op, fmt.Errorf("%q: %w", metric, ErrUnknownMetric))
	}

	n := a.Len()
	out := make([]float64, 0, EdgeCount(n, true))
	var x, y []float64
	for i := 0; i < n; i++ {
		x, _ = a.data.RowView(i)
		for j := i + 1; j < n; j++ {
			y, _ = a.data.RowView(j)
			out = append(out, dist(x, y))
		}
	}

	return FromVector(out, WithMatrixType(Distance))
}

// correlationDistance is 1 − r for every pair of stored matrices, with r taken
// from the column correlation of the edge-by-matrix transpose. Fewer than two
// edges leave r undefined, as do constant or non-finite rows: those pairs get
// distance 1.
func (a *Adjacency) correlationDistance(op string) (*Adjacency, error) {
	n := a.Len()
	out := make([]float64, 0, EdgeCount(n, true))
	if a.Edges() < 2 {
		for len(out) < cap(out) {
			out = append(out, 1)
		}
		return FromVector(out, WithMatrixType(Distance))
	}
	obs, err := matrix.Transpose(a.data)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	corr, _, _, err := matrix.Correlation(obs)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	var r float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r, _ = corr.At(i, j)
			r = math.Max(-1, math.Min(1, orZero(r)))
			out = append(out, 1-r)
		}
	}

	return FromVector(out, WithMatrixType(Distance))
}

// DistanceToSimilarity maps d to exp(-beta·d/σ) where σ is the population
// std of each matrix's edges; when σ is 0 the unscaled exp(-beta·d) is used.
//
// Errors: ErrMatrixType unless the type is Distance.
func (a *Adjacency) DistanceToSimilarity(beta float64) (*Adjacency, error) {
	const op = "DistanceToSimilarity"
	if err := a.requireType(op, Distance); err != nil {
		return nil, err
	}
	data, err := a.mapRows(a.Len(), func(i int, dst []float64) error {
		src, _ := a.data.RowView(i)
		sd := stats.PopStd(src)
		if sd == 0 || math.IsNaN(sd) {
			sd = 1
		}
		for j, d := range src {
			dst[j] = math.Exp(-beta * d / sd)
		}
		return nil
	})
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return a.derive(data, Similarity), nil
}

// SimilarityToDistance maps s to 1 - s.
//
// Errors: ErrMatrixType unless the type is Similarity.
func (a *Adjacency) SimilarityToDistance() (*Adjacency, error) {
	const op = "SimilarityToDistance"
	if err := a.requireType(op, Similarity); err != nil {
		return nil, err
	}
	out, err := a.unary(op, func(dst []float64) {
		floats.Scale(-1, dst)
		floats.AddConst(1, dst)
	})
	if err != nil {
		return nil, err
	}
	out.mtype = Distance

	return out, nil
}

// RToZ applies the Fisher transform atanh(r) to every edge. |r| = 1 maps to ±Inf.
func (a *Adjacency) RToZ() (*Adjacency, error) {
	return a.unary("RToZ", func(dst []float64) {
		for j, r := range dst {
			dst[j] = stats.FisherZ(r)
		}
	})
}

// ZToR inverts RToZ.
func (a *Adjacency) ZToR() (*Adjacency, error) {
	return a.unary("ZToR", func(dst []float64) {
		for j, z := range dst {
			dst[j] = stats.FisherR(z)
		}
	})
}

func (a *Adjacency) requireType(op string, want MatrixType) error {
	if err := a.requireData(op); err != nil {
		return err
	}
	if a.mtype != want {
		return opErrorf(op, fmt.Errorf("have %s, want %s: %w", a.mtype, want, ErrMatrixType))
	}

	return nil
}

func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	return v
}
