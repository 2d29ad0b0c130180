// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean; NaN for empty input.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	return stat.Mean(x, nil)
}

// PopStd returns the population standard deviation (ddof 0); NaN for empty input.
func PopStd(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	return math.Sqrt(stat.PopVariance(x, nil))
}

// SampleStd returns the sample standard deviation (ddof 1); NaN when len(x) < 2.
func SampleStd(x []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}

	return stat.StdDev(x, nil)
}

// Percentile returns the q-th percentile (q in [0,100]) of x using linear
// interpolation between the two closest ranks: with sorted s and
// h = (n-1)·q/100, the result is s[⌊h⌋] + (h-⌊h⌋)·(s[⌊h⌋+1]-s[⌊h⌋]).
//
// gonum's stat.Quantile offers only the empirical and LinInterp (Hazen-style)
// estimators, which disagree with the closest-ranks rule on small samples.
//
// Errors:
//   - ErrTooFewValues for empty x, ErrPercentile for q outside [0,100].
//
// Complexity:
//   - Time O(n log n) (sorts a copy), Space O(n).
func Percentile(x []float64, q float64) (float64, error) {
	if len(x) == 0 {
		return 0, statsErrorf("Percentile", ErrTooFewValues)
	}
	if math.IsNaN(q) || q < 0 || q > 100 {
		return 0, statsErrorf("Percentile", ErrPercentile)
	}
	s := make([]float64, len(x))
	copy(s, x)
	sort.Float64s(s)

	h := float64(len(s)-1) * q / 100
	lo := int(math.Floor(h))
	if lo >= len(s)-1 {
		return s[len(s)-1], nil
	}
	frac := h - float64(lo)

	return s[lo] + frac*(s[lo+1]-s[lo]), nil
}

// FisherZ maps a correlation r in (-1,1) to z = atanh(r).
func FisherZ(r float64) float64 { return math.Atanh(r) }

// FisherR is the inverse of FisherZ: r = tanh(z).
func FisherR(z float64) float64 { return math.Tanh(z) }
