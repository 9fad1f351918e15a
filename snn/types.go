// SPDX-License-Identifier: MIT

package snn

import (
	"math"
	"sort"

	"github.com/katalvlaran/snngraph/matrix"
)

// NeighborRank is an immutable N×K table: row i lists the identifiers of the
// K nearest neighbors of point i, nearest first. Identifiers are stored
// 0-based regardless of the input convention.
//
// Each row is also kept as a neighbor set: sorted, duplicates removed. Rank
// order does not influence set membership, so ties in rank need no policy
// beyond keeping the input order in Row.
type NeighborRank struct {
	n, k   int
	ids    []int // row-major n*k, 0-based
	setPtr []int // len n+1; set of row i is setIDs[setPtr[i]:setPtr[i+1]]
	setIDs []int
}

// NewNeighborRank copies rows into a NeighborRank.
// Implementation:
//   - Stage 1: validate shape (non-empty, rectangular, declared N).
//   - Stage 2: rebase identifiers (WithOneBased) and range-check them.
//   - Stage 3: build the deduplicated, sorted neighbor set of every row.
//
// Errors (joined with ErrInvalidInput):
//   - ErrBadShape for no rows or empty rows.
//   - ErrDimensionMismatch for ragged rows or a WithNumPoints mismatch.
//   - ErrOutOfRange for an identifier outside [0,N) after rebasing.
//
// Complexity:
//   - Time O(N·K log K), Space O(N·K).
func NewNeighborRank(rows [][]int, opts ...Option) (*NeighborRank, error) {
	const op = "NewNeighborRank"
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, invalidf(op, ErrBadShape)
	}
	o := gatherOptions(opts...)
	n, k := len(rows), len(rows[0])
	if o.numPoints != 0 && o.numPoints != n {
		return nil, invalidf(op, ErrDimensionMismatch)
	}
	shift := 0
	if o.oneBased {
		shift = 1
	}

	ids := make([]int, n*k)
	for i, row := range rows {
		if len(row) != k {
			return nil, invalidf(op, ErrDimensionMismatch)
		}
		for j, id := range row {
			id -= shift
			if id < 0 || id >= n {
				return nil, invalidf(op, ErrOutOfRange)
			}
			ids[i*k+j] = id
		}
	}

	return newNeighborRank(n, k, ids), nil
}

// NeighborRankFromMatrix reads a neighbor table held as float64 values, the
// form numeric hosts hand over. Every value must be a finite integer.
//
// Errors (joined with ErrInvalidInput):
//   - ErrNilRank for a nil matrix, ErrBadShape for an empty one.
//   - ErrNonIntegerID for NaN, ±Inf or fractional values.
//   - ErrDimensionMismatch and ErrOutOfRange as in NewNeighborRank.
func NeighborRankFromMatrix(m matrix.Matrix, opts ...Option) (*NeighborRank, error) {
	const op = "NeighborRankFromMatrix"
	if m == nil {
		return nil, invalidf(op, ErrNilRank)
	}
	n, k := m.Rows(), m.Cols()
	if n <= 0 || k <= 0 {
		return nil, invalidf(op, ErrBadShape)
	}
	o := gatherOptions(opts...)
	if o.numPoints != 0 && o.numPoints != n {
		return nil, invalidf(op, ErrDimensionMismatch)
	}
	shift := 0.0
	if o.oneBased {
		shift = 1
	}

	ids := make([]int, n*k)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, invalidf(op, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
				return nil, invalidf(op, ErrNonIntegerID)
			}
			v -= shift
			if v < 0 || v >= float64(n) {
				return nil, invalidf(op, ErrOutOfRange)
			}
			ids[i*k+j] = int(v)
		}
	}

	return newNeighborRank(n, k, ids), nil
}

// newNeighborRank builds the per-row neighbor sets over validated ids.
func newNeighborRank(n, k int, ids []int) *NeighborRank {
	nr := &NeighborRank{n: n, k: k, ids: ids, setPtr: make([]int, n+1), setIDs: make([]int, 0, n*k)}
	scratch := make([]int, k)
	for i := 0; i < n; i++ {
		copy(scratch, ids[i*k:(i+1)*k])
		sort.Ints(scratch)
		for j, id := range scratch {
			if j > 0 && id == scratch[j-1] {
				continue // a row is a set, not a multiset
			}
			nr.setIDs = append(nr.setIDs, id)
		}
		nr.setPtr[i+1] = len(nr.setIDs)
	}

	return nr
}

// N returns the number of points (rows).
func (nr *NeighborRank) N() int { return nr.n }

// K returns the number of neighbors per point (columns).
func (nr *NeighborRank) K() int { return nr.k }

// Row returns a copy of row i in rank order (0-based identifiers).
// Returns nil when i is out of range.
func (nr *NeighborRank) Row(i int) []int {
	if i < 0 || i >= nr.n {
		return nil
	}

	return append([]int(nil), nr.ids[i*nr.k:(i+1)*nr.k]...)
}

// Set returns a copy of the neighbor set of point i: sorted, without
// duplicates. Returns nil when i is out of range.
func (nr *NeighborRank) Set(i int) []int {
	if i < 0 || i >= nr.n {
		return nil
	}

	return append([]int(nil), nr.set(i)...)
}

// set returns the neighbor set of i without copying.
func (nr *NeighborRank) set(i int) []int {
	return nr.setIDs[nr.setPtr[i]:nr.setPtr[i+1]]
}

// contains reports whether id is in the neighbor set of i.
func (nr *NeighborRank) contains(i, id int) bool {
	s := nr.set(i)
	p := sort.SearchInts(s, id)

	return p < len(s) && s[p] == id
}
