// SPDX-License-Identifier: MIT
// Package: relnet/adjacency
//
// similarity.go — correlating each stored matrix with a reference matrix,
// optionally with a permutation test.
//
// Permutation schemes:
//   - 1d: the reference's condensed edges are shuffled; ignores node structure.
//   - 2d: the reference's nodes are relabeled, i.e. rows and columns of its
//     square are permuted jointly. This preserves the dependence between
//     edges that share a node and is the appropriate null for network data.
//
// p = (#{draws at least as extreme} + 1) / (draws + 1).
//
// One parent seed is drawn from the call's generator; stored matrix i takes
// its draws from substream i of that parent.

package adjacency

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/relnet/stats"
)

// ParsePermType maps a case-insensitive name; "" means PermNone.
func ParsePermType(name string) (PermType, error) {
	switch p := PermType(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return PermNone, nil
	case PermNone, Perm1D, Perm2D:
		return p, nil
	default:
		return "", fmt.Errorf("perm type %q: %w", name, ErrUnknownPermType)
	}
}

// SimilarityResult describes one stored matrix against the reference.
type SimilarityResult struct {
	Correlation float64
	P           float64   // NaN without a permutation test
	Permuted    []float64 // null draws; only with WithSamples
}

// Similarity correlates every stored matrix with other, which must hold a
// single matrix with the same edge count and symmetry.
//
// Options: WithMetric, WithPermType, WithPermutations, WithSeed/WithRand,
// WithTail, WithSamples.
//
// Errors:
//   - ErrEmpty, ErrMultipleMatrices (other), ErrShapeMismatch,
//     ErrUnknownMetric, ErrUnknownPermType.
//
// Complexity:
//   - O(n·e) without permutations; O(n·draws·e) for 1d/2d (Kendall adds a factor e).
func (a *Adjacency) Similarity(other *Adjacency, opts ...Option) ([]SimilarityResult, error) {
	const op = "Similarity"
	cfg := newCallConfig(opts)
	if err := a.requireData(op); err != nil {
		return nil, err
	}
	if err := other.requireSingle(op); err != nil {
		return nil, err
	}
	if err := a.sameLayout(op, other); err != nil {
		return nil, err
	}
	metric, err := stats.ParseMetric(string(cfg.metric))
	if err != nil {
		return nil, opErrorf(op, fmt.Errorf("%v: %w", err, ErrUnknownMetric))
	}
	permType, err := ParsePermType(string(cfg.permType))
	if err != nil {
		return nil, opErrorf(op, err)
	}

	ref, _ := other.data.Row(0)
	out := make([]SimilarityResult, a.Len())
	var parent int64
	if permType != PermNone {
		parent = cfg.rng.Int63()
	}
	var x, null []float64
	for i := range out {
		x, _ = a.data.RowView(i)
		if out[i].Correlation, err = stats.Correlate(metric, x, ref); err != nil {
			return nil, opErrorf(op, err)
		}
		out[i].P = math.NaN()
		if permType == PermNone {
			continue
		}
		rng := stats.DeriveRand(parent, uint64(i))
		if null, err = a.similarityNull(cfg, rng, metric, permType, x, ref); err != nil {
			return nil, opErrorf(op, err)
		}
		out[i].P = stats.PermutationP(out[i].Correlation, null, cfg.tail)
		if cfg.samples {
			out[i].Permuted = null
		}
	}

	return out, nil
}

// similarityNull draws the permutation distribution for one stored matrix
// from that matrix's own substream.
func (a *Adjacency) similarityNull(cfg callConfig, rng *rand.Rand, metric stats.Metric, pt PermType, x, ref []float64) ([]float64, error) {
	null := make([]float64, cfg.permutations)
	shuffled := make([]float64, len(ref))
	var perm []int
	var err error
	for d := range null {
		switch pt {
		case Perm1D:
			perm = stats.Perm(len(ref), rng)
			for j, p := range perm {
				shuffled[j] = ref[p]
			}
		case Perm2D:
			perm = stats.Perm(a.side, rng)
			shuffled = permuteCondensed(ref, a.side, a.IsSymmetric(), perm)
		}
		if null[d], err = stats.Correlate(metric, x, shuffled); err != nil {
			return nil, err
		}
	}

	return null, nil
}
