// SPDX-License-Identifier: MIT

package matrix

import "container/heap"

const opWinsorizeColumns = "WinsorizeColumns"

// WinsorizeColumns caps, in every column of Y, the n largest stored values
// down to the (n+1)-th largest stored value.
// Implementation:
//   - Stage 1: validate Y and n.
//   - Stage 2: per column with at least n+2 stored entries, keep a bounded
//     min-heap of the n+1 largest (value, position) pairs.
//   - Stage 3: the heap root is the cap; every other heap member is
//     overwritten with it.
//
// Behavior highlights:
//   - Mutates Y in place: only the value buffer changes; the sparsity
//     structure is untouched and implicit zeros are never materialized.
//     Slices previously obtained from Y.Values or Y.Column observe the change.
//   - Columns with fewer than n+2 stored entries are left as they are, so a
//     column always keeps at least one value below the cap.
//   - Equal values are ordered by storage position, the later position
//     counting as larger.
//
// Returns:
//   - The number of entries whose value actually changed.
//
// Errors (joined with ErrInvalidInput):
//   - ErrNilMatrix if Y is nil, ErrNegativeCount if n < 0.
//
// Complexity:
//   - Time O(nnz log n), Space O(n).
func WinsorizeColumns(Y *CSC, n int) (int, error) {
	// Stage 1 (Validate)
	if Y == nil {
		return 0, invalidf(opWinsorizeColumns, ErrNilMatrix)
	}
	if n < 0 {
		return 0, invalidf(opWinsorizeColumns, ErrNegativeCount)
	}

	changed := 0
	h := &topHeap{vals: Y.values}
	var j, p, lo, hi int
	for j = 0; j < Y.c; j++ {
		lo, hi = Y.colPtr[j], Y.colPtr[j+1]
		if hi-lo-2 < n { // fewer than n+2 stored entries
			continue
		}

		// Stage 2 (Select): bounded heap of the n+1 largest entries.
		h.pos = h.pos[:0]
		for p = lo; p < hi; p++ {
			heap.Push(h, p)
			if h.Len() > n+1 {
				heap.Pop(h)
			}
		}

		// Stage 3 (Cap)
		limit := Y.values[heap.Pop(h).(int)]
		for _, q := range h.pos {
			if Y.values[q] != limit {
				Y.values[q] = limit
				changed++
			}
		}
	}

	return changed, nil
}

// topHeap is a min-heap of storage positions keyed by (value, position).
type topHeap struct {
	vals []float64
	pos  []int
}

func (h *topHeap) Len() int { return len(h.pos) }
func (h *topHeap) Less(a, b int) bool {
	va, vb := h.vals[h.pos[a]], h.vals[h.pos[b]]
	if va != vb {
		return va < vb
	}

	return h.pos[a] < h.pos[b]
}
func (h *topHeap) Swap(a, b int) { h.pos[a], h.pos[b] = h.pos[b], h.pos[a] }
func (h *topHeap) Push(x any)   { h.pos = append(h.pos, x.(int)) }
func (h *topHeap) Pop() any {
	last := h.pos[len(h.pos)-1]
	h.pos = h.pos[:len(h.pos)-1]

	return last
}
