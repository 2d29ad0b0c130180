// SPDX-License-Identifier: MIT

// Package stats is the statistics collaborator behind relnet's relational
// containers.
//
// What is inside:
//
//   - Correlation metrics: Pearson, Spearman (average ranks) and Kendall tau-b,
//     selected by Metric and dispatched through Correlate.
//   - Moments: Mean, PopStd (ddof 0), SampleStd (ddof 1) and Percentile with
//     linear interpolation between closest ranks.
//   - Tests: OneSampleT with Student-t p-values, PermutationP for empirical
//     p-values, and Summarize for bootstrap distributions.
//   - Regression: OLS and OLSMulti (many responses sharing one design) built on
//     the matrix package's Transpose/Mul/Inverse kernels.
//   - Randomness: NewRand/DeriveRand/Perm/ShuffleInts; every stochastic routine
//     takes an explicit *rand.Rand so results are reproducible per seed.
//   - Fisher transform: FisherZ / FisherR.
//
// Distributions (Student-t, standard normal) and moments come from gonum's
// stat and stat/distuv packages.
//
// Error policy:
//
//	Sentinels (ErrLengthMismatch, ErrTooFewValues, ErrDegreesOfFreedom, ...)
//	wrapped with the operation name; match with errors.Is.
package stats
