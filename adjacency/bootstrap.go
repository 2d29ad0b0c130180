// SPDX-License-Identifier: MIT

package adjacency

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/relnet/stats"
)

// BootstrapFunc names the statistic recomputed on every resample.
type BootstrapFunc string

const (
	// BootstrapMean resamples the edge-wise mean.
	BootstrapMean BootstrapFunc = "mean"
	// BootstrapStd resamples the edge-wise population std.
	BootstrapStd BootstrapFunc = "std"
)

// BootstrapResult summarizes n resamples, edge by edge. Every field except
// Samples holds one matrix; Samples holds one matrix per draw and is set
// only with WithSamples.
type BootstrapResult struct {
	Mean    *Adjacency
	Std     *Adjacency
	Z       *Adjacency
	P       *Adjacency
	CILower *Adjacency
	CIUpper *Adjacency
	Samples *Adjacency
}

// Bootstrap resamples the stored matrices with replacement n times and
// summarizes the distribution of fn for every edge: mean, std, Z = mean/std,
// a two-tailed normal p for Z and the 2.5/97.5 percentile interval.
//
// Options: WithSeed/WithRand, WithSamples.
// Errors: ErrEmpty, ErrUnknownFunction, ErrTooFewMatrices (n < 1).
// Complexity: O(n·Len()·e).
func (a *Adjacency) Bootstrap(fn BootstrapFunc, n int, opts ...Option) (*BootstrapResult, error) {
	const op = "Bootstrap"
	cfg := newCallConfig(opts)
	if err := a.requireData(op); err != nil {
		return nil, err
	}
	var stat func([]float64) float64
	switch BootstrapFunc(strings.ToLower(string(fn))) {
	case BootstrapMean:
		stat = stats.Mean
	case BootstrapStd:
		stat = stats.PopStd
	default:
		return nil, opErrorf(op, fmt.Errorf("%q: %w", fn, ErrUnknownFunction))
	}
	if n < 1 {
		return nil, opErrorf(op, fmt.Errorf("need at least one draw, got %d: %w", n, ErrTooFewMatrices))
	}

	rows := a.Len()
	col := make([]float64, rows)
	draws, err := a.mapRows(n, func(_ int, dst []float64) error {
		idx := stats.Resample(rows, cfg.rng)
		var v []float64
		for j := range dst {
			for r, src := range idx {
				v, _ = a.data.RowView(src)
				col[r] = v[j]
			}
			dst[j] = stat(col)
		}
		return nil
	})
	if err != nil {
		return nil, opErrorf(op, err)
	}

	summaries := make([]stats.BootstrapSummary, a.Edges())
	var d []float64
	for j := range summaries {
		d, _ = draws.Col(j)
		if summaries[j], err = stats.Summarize(d); err != nil {
			return nil, opErrorf(op, err)
		}
	}
	field := func(get func(s stats.BootstrapSummary) float64) (*Adjacency, error) {
		data, err := a.mapRows(1, func(_ int, dst []float64) error {
			for j := range dst {
				dst[j] = get(summaries[j])
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return a.derive(data, a.mtype), nil
	}

	res := &BootstrapResult{}
	targets := []struct {
		dst **Adjacency
		get func(s stats.BootstrapSummary) float64
	}{
		{&res.Mean, func(s stats.BootstrapSummary) float64 { return s.Mean }},
		{&res.Std, func(s stats.BootstrapSummary) float64 { return s.Std }},
		{&res.Z, func(s stats.BootstrapSummary) float64 { return s.Z }},
		{&res.P, func(s stats.BootstrapSummary) float64 { return s.P }},
		{&res.CILower, func(s stats.BootstrapSummary) float64 { return s.CILower }},
		{&res.CIUpper, func(s stats.BootstrapSummary) float64 { return s.CIUpper }},
	}
	for _, t := range targets {
		if *t.dst, err = field(t.get); err != nil {
			return nil, opErrorf(op, err)
		}
	}
	if cfg.samples {
		res.Samples = a.derive(draws, a.mtype)
	}

	return res, nil
}
