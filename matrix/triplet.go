// SPDX-License-Identifier: MIT

package matrix

import "sort"

// TripletBuilder accumulates (i, j, v) entries in any order and assembles
// them into a canonical CSC in one single-threaded pass.
//
// Duplicate (i, j) entries are summed; entries whose final value is exactly
// zero are dropped. A builder is not safe for concurrent use: parallel
// producers collect their own triplet slices and hand them to one builder.
type TripletBuilder struct {
	r, c int
	rows []int
	cols []int
	vals []float64
	opts Options
}

// NewTripletBuilder returns an empty builder for a rows×cols matrix.
func NewTripletBuilder(rows, cols int, opts ...Option) (*TripletBuilder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, invalidf("NewTripletBuilder", ErrBadShape)
	}

	return &TripletBuilder{r: rows, c: cols, opts: gatherOptions(opts...)}, nil
}

// Grow reserves room for n more triplets.
func (b *TripletBuilder) Grow(n int) {
	if n <= 0 {
		return
	}
	if cap(b.rows)-len(b.rows) < n {
		b.rows = append(make([]int, 0, len(b.rows)+n), b.rows...)
		b.cols = append(make([]int, 0, len(b.cols)+n), b.cols...)
		b.vals = append(make([]float64, 0, len(b.vals)+n), b.vals...)
	}
}

// Add records v at (i, j).
// Errors: ErrOutOfRange for indices outside the shape, ErrNaNInf for
// non-finite v under the default policy (both joined with ErrInvalidInput).
func (b *TripletBuilder) Add(i, j int, v float64) error {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return invalidf("TripletBuilder.Add", ErrOutOfRange)
	}
	if err := checkFinite(v, b.opts); err != nil {
		return invalidf("TripletBuilder.Add", err)
	}
	b.rows = append(b.rows, i)
	b.cols = append(b.cols, j)
	b.vals = append(b.vals, v)

	return nil
}

// Len returns the number of recorded triplets (duplicates included).
func (b *TripletBuilder) Len() int { return len(b.vals) }

// Build assembles the recorded triplets into a CSC.
// Implementation:
//   - Stage 1: count entries per column and prefix-sum into pointers.
//   - Stage 2: scatter triplets into their columns (insertion order kept).
//   - Stage 3: sort each column by row, sum duplicates, drop zeros, compact.
//
// Complexity:
//   - Time O(nnz log(nnz/c) + c), Space O(nnz + c).
//
// Notes:
//   - The builder stays usable; Build may be called again after more Adds.
func (b *TripletBuilder) Build() *CSC {
	nnz := len(b.vals)
	colPtr := make([]int, b.c+1)
	for _, j := range b.cols {
		colPtr[j+1]++
	}
	for j := 0; j < b.c; j++ {
		colPtr[j+1] += colPtr[j]
	}
	next := append([]int(nil), colPtr[:b.c]...)
	rowIdx := make([]int, nnz)
	values := make([]float64, nnz)
	var t, q int
	for t = 0; t < nnz; t++ {
		q = next[b.cols[t]]
		rowIdx[q] = b.rows[t]
		values[q] = b.vals[t]
		next[b.cols[t]]++
	}

	// Stage 3: in-place compaction; w is the write cursor, never ahead of p.
	w := 0
	for j := 0; j < b.c; j++ {
		lo, hi := colPtr[j], colPtr[j+1]
		sort.Stable(columnSorter{rows: rowIdx[lo:hi], vals: values[lo:hi]})
		colStart := w
		for p := lo; p < hi; p++ {
			if w > colStart && rowIdx[w-1] == rowIdx[p] {
				values[w-1] += values[p]
				continue
			}
			rowIdx[w] = rowIdx[p]
			values[w] = values[p]
			w++
		}
		// drop entries that summed to zero
		kept := colStart
		for p := colStart; p < w; p++ {
			if values[p] != 0 {
				rowIdx[kept] = rowIdx[p]
				values[kept] = values[p]
				kept++
			}
		}
		w = kept
		colPtr[j] = colStart
	}
	colPtr[b.c] = w

	return &CSC{r: b.r, c: b.c, colPtr: colPtr, rowIdx: rowIdx[:w:w], values: values[:w:w]}
}

// columnSorter orders one column's entries by row, moving values along.
type columnSorter struct {
	rows []int
	vals []float64
}

func (s columnSorter) Len() int           { return len(s.rows) }
func (s columnSorter) Less(a, b int) bool { return s.rows[a] < s.rows[b] }
func (s columnSorter) Swap(a, b int) {
	s.rows[a], s.rows[b] = s.rows[b], s.rows[a]
	s.vals[a], s.vals[b] = s.vals[b], s.vals[a]
}
