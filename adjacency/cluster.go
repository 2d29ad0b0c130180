// SPDX-License-Identifier: MIT

package adjacency

import (
	"fmt"
	"math"
)

// WithinClusterMean averages, per cluster label, the off-diagonal entries whose
// two endpoints share that label. A singleton cluster has no such entry and
// maps to NaN.
//
// Errors: ErrEmpty, ErrMultipleMatrices, ErrClusterLength.
func (a *Adjacency) WithinClusterMean(clusters []string) (map[string]float64, error) {
	return a.ClusterSummary(clusters, true)
}

// ClusterSummary averages, per cluster label, either the within-cluster entries
// (both endpoints in the cluster) or the between-cluster entries (exactly one
// endpoint in the cluster). Labels without any qualifying entry map to NaN.
//
// Errors: ErrEmpty, ErrMultipleMatrices, ErrClusterLength.
// Complexity: O(k²).
func (a *Adjacency) ClusterSummary(clusters []string, within bool) (map[string]float64, error) {
	const op = "ClusterSummary"
	if err := a.requireSingle(op); err != nil {
		return nil, err
	}
	if len(clusters) != a.side {
		return nil, opErrorf(op, fmt.Errorf("%d labels for %d nodes: %w", len(clusters), a.side, ErrClusterLength))
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, c := range clusters {
		sums[c] += 0
	}
	row, _ := a.data.RowView(0)
	sym := a.IsSymmetric()
	var off int
	var ci, cj string
	var v float64
	for i := 0; i < a.side; i++ {
		for j := 0; j < a.side; j++ {
			if i == j || (sym && j < i) {
				continue
			}
			v = row[off]
			off++
			ci, cj = clusters[i], clusters[j]
			switch {
			case within && ci == cj:
				sums[ci] += v
				counts[ci]++
			case !within && ci != cj:
				sums[ci] += v
				counts[ci]++
				sums[cj] += v
				counts[cj]++
			}
		}
	}

	out := make(map[string]float64, len(sums))
	for c, s := range sums {
		if counts[c] == 0 {
			out[c] = math.NaN()
			continue
		}
		out[c] = s / float64(counts[c])
	}

	return out, nil
}
