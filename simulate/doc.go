// SPDX-License-Identifier: MIT

// Package simulate generates seeded relational fixtures as adjacency values:
// random distance, similarity and directed matrices, noisy stacks of one
// base matrix, block-diagonal similarity matrices with their cluster labels,
// and pairs of similarity matrices with a target edge correlation.
//
// Every generator is deterministic for a fixed WithSeed/WithRand; without
// either it uses the default seed. Option constructors panic on meaningless
// values; generators return sentinel errors (ErrTooFewNodes, ErrBlockSpec, ...).
//
//	x, y, _ := simulate.CorrelatedPair(20, 0.6, simulate.WithSeed(7))
//	res, _ := x.Similarity(y, adjacency.WithPermType(adjacency.Perm2D))
package simulate
