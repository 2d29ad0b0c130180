// SPDX-License-Identifier: MIT
// Package: relnet/adjacency
//
// threshold.go — zeroing edges outside a cutoff window and binarization.
//
// Contract:
//   - Upper keeps values >= cutoff and zeroes those below it.
//   - Lower keeps values <= cutoff and zeroes those above it.
//   - A percentile cutoff is resolved per matrix over its condensed edges with
//     linear interpolation between closest ranks.
//   - Binarize runs last and maps every surviving non-zero to 1. NaN never
//     survives a cutoff.

package adjacency

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/relnet/stats"
)

// Cutoff is an absolute value or a percentile in [0,100]. The zero value is unset.
type Cutoff struct {
	value   float64
	percent bool
	set     bool
}

// Absolute returns a fixed cutoff.
func Absolute(v float64) Cutoff { return Cutoff{value: v, set: true} }

// Percentile returns a per-matrix percentile cutoff; p is validated on use.
func Percentile(p float64) Cutoff { return Cutoff{value: p, percent: true, set: true} }

// ParseCutoff reads "0.8" as an absolute cutoff and "70%" as a percentile.
// Errors: ErrInvalidThreshold for empty, non-numeric, NaN or out-of-range input.
func ParseCutoff(s string) (Cutoff, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	num := strings.TrimSpace(strings.TrimSuffix(s, "%"))
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) {
		return Cutoff{}, fmt.Errorf("ParseCutoff %q: %w", s, ErrInvalidThreshold)
	}
	if percent {
		if v < 0 || v > 100 {
			return Cutoff{}, fmt.Errorf("ParseCutoff %q: percentile outside [0,100]: %w", s, ErrInvalidThreshold)
		}
		return Percentile(v), nil
	}

	return Absolute(v), nil
}

// IsSet reports whether the cutoff was configured.
func (c Cutoff) IsSet() bool { return c.set }

// IsPercentile reports whether the cutoff is relative.
func (c Cutoff) IsPercentile() bool { return c.percent }

// Value returns the raw number (a percentile when IsPercentile).
func (c Cutoff) Value() float64 { return c.value }

// String renders the cutoff the way ParseCutoff reads it.
func (c Cutoff) String() string {
	if !c.set {
		return ""
	}
	s := strconv.FormatFloat(c.value, 'g', -1, 64)
	if c.percent {
		return s + "%"
	}

	return s
}

// resolve returns the absolute cutoff for one matrix.
func (c Cutoff) resolve(edges []float64) (float64, error) {
	if !c.percent {
		return c.value, nil
	}
	v, err := stats.Percentile(edges, c.value)
	if err != nil {
		return 0, fmt.Errorf("percentile %v: %v: %w", c.value, err, ErrInvalidThreshold)
	}

	return v, nil
}

// Thresholds configures Threshold. At least one of Upper or Lower must be set.
type Thresholds struct {
	Upper    Cutoff
	Lower    Cutoff
	Binarize bool
}

// Threshold zeroes edges outside the configured window, matrix by matrix.
//
// Errors: ErrEmpty, ErrInvalidThreshold (no cutoff, bad percentile).
// Complexity: O(n·e log e) with percentiles, O(n·e) otherwise.
func (a *Adjacency) Threshold(th Thresholds) (*Adjacency, error) {
	const op = "Threshold"
	if err := a.requireData(op); err != nil {
		return nil, err
	}
	if !th.Upper.IsSet() && !th.Lower.IsSet() {
		return nil, opErrorf(op, fmt.Errorf("no cutoff: %w", ErrInvalidThreshold))
	}
	data, err := a.mapRows(a.Len(), func(i int, dst []float64) error {
		src, _ := a.data.RowView(i)
		copy(dst, src)
		if th.Upper.IsSet() {
			cut, err := th.Upper.resolve(src)
			if err != nil {
				return err
			}
			for j, v := range dst {
				if !(v >= cut) {
					dst[j] = 0
				}
			}
		}
		if th.Lower.IsSet() {
			cut, err := th.Lower.resolve(src)
			if err != nil {
				return err
			}
			for j, v := range dst {
				if !(v <= cut) {
					dst[j] = 0
				}
			}
		}
		if th.Binarize {
			for j, v := range dst {
				if v != 0 {
					dst[j] = 1
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return a.derive(data, a.mtype), nil
}
