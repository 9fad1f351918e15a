// SPDX-License-Identifier: MIT

// Package snngraph is an in-memory toolkit for the graph-building step of
// single-cell style analyses: shared-nearest-neighbor graphs plus the sparse
// column statistics that usually surround them.
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — Dense and CSC storage, TripletBuilder, column utilities
//	          (ColSumByFactor, ColMeanVar, WinsorizeColumns), validators
//	snn/    — NeighborRank input and the SNN graph builder (Compute)
//
// Quick example:
//
//	nr, _ := snn.NewNeighborRank([][]int{{1, 2}, {0, 2}, {0, 1}, {0, 1}})
//	g, _ := snn.Compute(nr, 0)
//	w, _ := g.At(0, 1) // 1/3
//
// Pure Go, no cgo; every routine is a deterministic function of its inputs.
package snngraph
