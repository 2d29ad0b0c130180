// SPDX-License-Identifier: MIT

// Package adjacency stores collections of square relational matrices
// (distance, similarity or directed connectivity between the same k nodes)
// in condensed form and runs network statistics over them.
//
// Storage:
//
//	One row per matrix. Symmetric types (Distance, Similarity) keep the
//	strict upper triangle row-major, k(k-1)/2 values; Directed keeps every
//	off-diagonal entry row-major, k(k-1) values. The diagonal is implicit
//	and always expands to 0. The _flat types only tell constructors and
//	readers that the input is already condensed.
//
// What is inside:
//
//   - Construction: New, FromSquare, FromMatrices, FromVector, FromVectors,
//     ReadLong and Load, with type inference for square input.
//   - Shape and indexing: Len, Shape, At, Slice, Select, Squareform, Append.
//   - Arithmetic: Add, Sub, Mul and their scalar forms; Map.
//   - Aggregation: Mean, Std, Sum across matrices; RowMeans, RowStds, RowSums.
//   - Conversion: Distance, DistanceToSimilarity, SimilarityToDistance,
//     RToZ, ZToR, Threshold, ToGraph, Components.
//   - Statistics: TTest, Similarity (1d/2d permutation tests), Bootstrap,
//     RegressAdjacency, Regress, WithinClusterMean, ClusterSummary.
//   - I/O: WriteLong and WriteFile (long-format CSV).
//
// Every operation returns a new Adjacency; the receiver is never modified.
// Randomized operations draw from an explicit stream (WithSeed, WithRand) and
// default to a fixed seed, so repeated calls give identical results.
//
// Errors are package sentinels wrapped with the operation name:
//
//	Add: expected shape (3,45), got (2,45): adjacency: shape mismatch
package adjacency
