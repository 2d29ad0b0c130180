// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Metric names a correlation statistic.
type Metric string

const (
	// Pearson is the linear product-moment correlation.
	Pearson Metric = "pearson"
	// Spearman is the Pearson correlation of average ranks.
	Spearman Metric = "spearman"
	// Kendall is Kendall's tau-b (tie-corrected).
	Kendall Metric = "kendall"
)

// ParseMetric maps a case-insensitive name to a Metric; "" means Pearson.
func ParseMetric(name string) (Metric, error) {
	switch m := Metric(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return Pearson, nil
	case Pearson, Spearman, Kendall:
		return m, nil
	default:
		return "", fmt.Errorf("ParseMetric %q: %w", name, ErrUnknownMetric)
	}
}

// Correlate dispatches to the statistic named by m.
//
// Errors:
//   - ErrLengthMismatch, ErrTooFewValues (< 2 pairs), ErrUnknownMetric.
//
// Degenerate inputs (a constant vector) yield NaN, never an error.
func Correlate(m Metric, x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, statsErrorf("Correlate", ErrLengthMismatch)
	}
	if len(x) < 2 {
		return 0, statsErrorf("Correlate", ErrTooFewValues)
	}
	switch m {
	case Pearson, "":
		return PearsonR(x, y), nil
	case Spearman:
		return SpearmanRho(x, y), nil
	case Kendall:
		return KendallTau(x, y), nil
	default:
		return 0, statsErrorf("Correlate", ErrUnknownMetric)
	}
}

// PearsonR returns the Pearson correlation of equal-length x and y.
func PearsonR(x, y []float64) float64 {
	return stat.Correlation(x, y, nil)
}

// SpearmanRho returns the Pearson correlation of the average ranks of x and y.
// Complexity: O(n log n).
func SpearmanRho(x, y []float64) float64 {
	return stat.Correlation(Ranks(x), Ranks(y), nil)
}

// Ranks returns 1-based ranks of x; tied values receive the mean of their ranks.
// Complexity: O(n log n).
func Ranks(x []float64) []float64 {
	n := len(x)
	idx := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	ranks := make([]float64, n)
	var j, k int
	for i = 0; i < n; i = j {
		j = i + 1
		for j < n && x[idx[j]] == x[idx[i]] {
			j++
		}
		avg := float64(i+j+1) / 2 // mean of 1-based ranks i+1..j
		for k = i; k < j; k++ {
			ranks[idx[k]] = avg
		}
	}

	return ranks
}

// KendallTau returns Kendall's tau-b:
//
//	(C - D) / sqrt((n0 - n1)(n0 - n2))
//
// with C/D the concordant/discordant pair counts, n0 = n(n-1)/2 and n1, n2 the
// pairs tied in x and in y. Returns NaN when either vector is constant.
// Complexity: O(n²).
func KendallTau(x, y []float64) float64 {
	n := len(x)
	var (
		i, j               int
		conc, disc, tx, ty float64
		dx, dy             float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = x[i] - x[j]
			dy = y[i] - y[j]
			switch {
			case dx == 0 && dy == 0:
				tx++
				ty++
			case dx == 0:
				tx++
			case dy == 0:
				ty++
			case (dx > 0) == (dy > 0):
				conc++
			default:
				disc++
			}
		}
	}
	n0 := float64(n) * float64(n-1) / 2
	den := math.Sqrt((n0 - tx) * (n0 - ty))
	if den == 0 {
		return math.NaN()
	}

	return (conc - disc) / den
}
