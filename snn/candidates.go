// SPDX-License-Identifier: MIT

package snn

import "github.com/RoaringBitmap/roaring/v2"

// scoreDirect scores pairs (i,j) with j ∈ S(i) for i in [lo,hi).
//
// Ownership rule: the pair {i,j} is emitted by i when i<j, or when j<i and
// i ∉ S(j) (j will never see i as a candidate). Otherwise j emits it.
func scoreDirect(nr *NeighborRank, lo, hi int, prune float64) chunkResult {
	var res chunkResult
	for i := lo; i < hi; i++ {
		si := nr.set(i)
		for _, j := range si {
			if j == i {
				continue
			}
			if j < i && nr.contains(j, i) {
				continue
			}
			res.candidates++
			if w := Jaccard(si, nr.set(j)); w > prune {
				res.edges = append(res.edges, edge{i: i, j: j, w: w})
			}
		}
	}

	return res
}

// sharedIndex maps a neighbor identifier to the points listing it.
type sharedIndex struct {
	postings []*roaring.Bitmap
}

// newSharedIndex inverts the neighbor sets of nr.
// Complexity: O(N·K) inserts.
func newSharedIndex(nr *NeighborRank) *sharedIndex {
	idx := &sharedIndex{postings: make([]*roaring.Bitmap, nr.n)}
	for i := 0; i < nr.n; i++ {
		for _, v := range nr.set(i) {
			if idx.postings[v] == nil {
				idx.postings[v] = roaring.New()
			}
			idx.postings[v].Add(uint32(i))
		}
	}
	for _, b := range idx.postings {
		if b != nil {
			b.RunOptimize()
		}
	}

	return idx
}

// scoreShared scores every j > i sharing at least one neighbor with i.
// The index is read-only here, so workers share it without locking.
func scoreShared(nr *NeighborRank, idx *sharedIndex, lo, hi int, prune float64) chunkResult {
	var res chunkResult
	lists := make([]*roaring.Bitmap, 0, nr.k)
	for i := lo; i < hi; i++ {
		si := nr.set(i)
		lists = lists[:0]
		for _, v := range si {
			lists = append(lists, idx.postings[v])
		}
		cand := roaring.FastOr(lists...)
		it := cand.Iterator()
		it.AdvanceIfNeeded(uint32(i) + 1)
		for it.HasNext() {
			j := int(it.Next())
			res.candidates++
			if w := Jaccard(si, nr.set(j)); w > prune {
				res.edges = append(res.edges, edge{i: i, j: j, w: w})
			}
		}
	}

	return res
}
