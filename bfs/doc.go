// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph.
//
// Edges are counted as hops; weights are ignored, so the thresholded,
// weighted graphs built from adjacency matrices can be walked directly.
// On directed graphs the walk follows outgoing edges unless WithUndirected
// is given, in which case incoming edges are followed too.
//
// Components partitions every vertex into (weakly) connected components.
package bfs
