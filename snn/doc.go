// SPDX-License-Identifier: MIT

// Package snn builds shared-nearest-neighbor (SNN) graphs from ranked
// nearest-neighbor tables.
//
// 🚀 What is an SNN graph?
//
//	Two points are linked when their K-nearest-neighbor lists overlap. The
//	edge weight is the Jaccard similarity of the two neighbor sets,
//	|S(i)∩S(j)| / |S(i)∪S(j)|, and edges at or below a prune threshold are
//	dropped. SNN graphs are the usual input of graph clustering
//	(Louvain/Leiden) in single-cell analysis.
//
// ✨ Key features:
//   - strongly typed input (NeighborRank) validated at the boundary:
//     0- or 1-based identifiers, int rows or float64 host matrices
//   - direct candidates (j in S(i), O(N·K)) or every pair sharing a
//     neighbor, via a roaring-bitmap inverted index
//   - parallel scoring on an errgroup; single-threaded deterministic assembly
//   - symmetric CSC output with an empty diagonal and weights in (prune, 1]
//   - Edges exports the graph as an undirected (From, To, Weight) list
//
// ⚙️ Usage:
//
//	nr, err := snn.NewNeighborRank(knn) // knn[i] = K nearest of point i
//	if err != nil {
//	  // errors.Is(err, snn.ErrInvalidInput)
//	}
//	g, err := snn.Compute(nr, snn.DefaultPrune, snn.WithWorkers(4))
//
// Performance:
//
//   - Time:   O(N·K²) for direct candidates
//   - Memory: O(N·K) plus the retained edges
package snn
