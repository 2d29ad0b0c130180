// SPDX-License-Identifier: MIT

// Package relnet works with stacks of relational matrices: pairwise
// distances, similarities and directed connectivity between the same set of
// nodes, measured once per subject, trial or condition.
//
// The module is organized as:
//
//	adjacency/  — the Adjacency container: condensed storage, arithmetic,
//	              thresholding, t-tests, permutation similarity, bootstrap,
//	              regression, cluster summaries, long-format CSV I/O
//	matrix/     — dense row-major matrices, validators, linear algebra
//	stats/      — seeded RNG streams, moments, correlations, tests, OLS
//	design/     — labelled design matrices for regression
//	core/       — thread-safe weighted graphs (Adjacency.ToGraph)
//	bfs/        — breadth-first search and connected components
//	simulate/   — seeded fixtures (distance, similarity, directed, blocks)
//	cmd/relnet  — command-line front end
//
// Quick example:
//
//	a, _ := adjacency.FromSquare([][]float64{
//		{0, 1, 2},
//		{1, 0, 3},
//		{2, 3, 0},
//	})
//	fmt.Println(a) // Adjacency(distance, 1 × 3 edges, 3 nodes)
package relnet
