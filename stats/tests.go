// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Tail selects one- or two-sided p-values.
type Tail int

const (
	// TwoTailed compares magnitudes: |null| >= |observed|.
	TwoTailed Tail = 2
	// OneTailed compares in the direction of the observed statistic:
	// null >= observed when observed >= 0, null <= observed otherwise.
	OneTailed Tail = 1
)

// Validate reports ErrUnknownTail for anything other than OneTailed/TwoTailed.
func (t Tail) Validate() error {
	if t != OneTailed && t != TwoTailed {
		return fmt.Errorf("tail %d: %w", int(t), ErrUnknownTail)
	}

	return nil
}

// OneSampleT tests mean(x) against 0 and returns the t statistic and the
// degrees of freedom n-1. A zero sample spread yields ±Inf (or NaN for an
// all-zero sample), not an error.
//
// Errors:
//   - ErrTooFewValues when len(x) < 2.
func OneSampleT(x []float64) (t float64, df float64, err error) {
	if len(x) < 2 {
		return 0, 0, statsErrorf("OneSampleT", ErrTooFewValues)
	}
	n := float64(len(x))
	se := SampleStd(x) / math.Sqrt(n)

	return Mean(x) / se, n - 1, nil
}

// StudentTP returns the p-value of t under a Student-t with df degrees of
// freedom. OneTailed follows the sign of t. NaN propagates.
func StudentTP(t, df float64, tail Tail) float64 {
	if math.IsNaN(t) {
		return math.NaN()
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	return tailP(dist.CDF, t, tail)
}

// NormalP returns the p-value of z under the standard normal distribution.
func NormalP(z float64, tail Tail) float64 {
	if math.IsNaN(z) {
		return math.NaN()
	}

	return tailP(distuv.UnitNormal.CDF, z, tail)
}

// tailP turns a symmetric CDF into a one- or two-sided p-value.
func tailP(cdf func(float64) float64, v float64, tail Tail) float64 {
	upper := 1 - cdf(math.Abs(v)) // survival of |v|
	if tail == OneTailed {
		return upper
	}

	return math.Min(1, 2*upper)
}

// PermutationP returns the empirical p-value of observed against null draws:
// (count of draws at least as extreme + 1) / (len(null) + 1).
//
// Extremeness:
//   - TwoTailed: |d| >= |observed|.
//   - OneTailed: d >= observed when observed >= 0, d <= observed otherwise.
//
// NaN draws are never counted as extreme. NaN observed returns NaN.
// Complexity: O(len(null)).
func PermutationP(observed float64, null []float64, tail Tail) float64 {
	if math.IsNaN(observed) {
		return math.NaN()
	}
	var count int
	var d float64
	for _, d = range null {
		switch {
		case math.IsNaN(d):
			continue
		case tail == OneTailed && observed >= 0:
			if d >= observed {
				count++
			}
		case tail == OneTailed:
			if d <= observed {
				count++
			}
		default:
			if math.Abs(d) >= math.Abs(observed) {
				count++
			}
		}
	}

	return float64(count+1) / float64(len(null)+1)
}

// BootstrapSummary describes a bootstrap distribution of one statistic.
type BootstrapSummary struct {
	Mean    float64
	Std     float64 // population std of the draws
	Z       float64 // Mean / Std; 0 when Std == 0
	P       float64 // two-tailed normal p-value of Z
	CILower float64 // 2.5th percentile
	CIUpper float64 // 97.5th percentile
}

// Summarize reduces bootstrap draws to a BootstrapSummary.
// Errors: ErrTooFewValues for no draws.
func Summarize(draws []float64) (BootstrapSummary, error) {
	if len(draws) == 0 {
		return BootstrapSummary{}, statsErrorf("Summarize", ErrTooFewValues)
	}
	var s BootstrapSummary
	s.Mean = Mean(draws)
	s.Std = PopStd(draws)
	if s.Std == 0 {
		s.Z, s.P = 0, 1
	} else {
		s.Z = s.Mean / s.Std
		s.P = NormalP(s.Z, TwoTailed)
	}
	// Percentile only fails on empty input or a bad q.
	s.CILower, _ = Percentile(draws, 2.5)
	s.CIUpper, _ = Percentile(draws, 97.5)

	return s, nil
}
