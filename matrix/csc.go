// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide CSC, a compressed sparse column matrix: the layout numeric hosts
//     use for large, mostly-zero count matrices (column pointers p, row
//     indices i, values x).
//   - Keep the structure immutable after construction; only the value buffer
//     may be mutated in place (WinsorizeColumns) and only through the
//     documented aliasing contract of Column/Values.
//
// Determinism & Performance:
//   - Row indices are strictly increasing inside each column, so At is a
//     binary search and column scans visit rows in ascending order.
//   - Transpose is a counting sort: O(nnz + rows + cols).
//
// AI-Hints:
//   - Build CSC from arbitrary (i,j,v) triplets via TripletBuilder; use
//     NewCSC only when the three arrays are already canonical.

package matrix

import (
	"math"
	"sort"
)

// CSC is a compressed sparse column matrix of float64 values.
// Column j stores its entries at positions colPtr[j]..colPtr[j+1]-1 of
// rowIdx and values. Absent positions are implicit zeros.
type CSC struct {
	r, c   int       // shape
	colPtr []int     // len c+1, colPtr[0]==0, non-decreasing
	rowIdx []int     // len nnz, strictly increasing inside a column
	values []float64 // len nnz
}

// NewCSC adopts canonical compressed-column arrays without copying them.
// Implementation:
//   - Stage 1: validate shape and slice lengths.
//   - Stage 2: validate pointer monotonicity and bounds over the whole of
//     colPtr, then per-column row order/range.
//   - Stage 3: validate finite values under the numeric policy.
//
// Behavior highlights:
//   - Ownership of the three slices passes to the CSC; the caller may keep
//     reading values (it is the in-place buffer) but must not resize them.
//
// Errors (all joined with ErrInvalidInput):
//   - ErrBadShape for rows<=0 or cols<=0.
//   - ErrMalformedCSC for inconsistent lengths, pointers or row order.
//   - ErrOutOfRange for a row index outside [0,rows).
//   - ErrNaNInf for non-finite values under the default policy.
//
// Complexity:
//   - Time O(cols + nnz), Space O(1).
func NewCSC(rows, cols int, colPtr, rowIdx []int, values []float64, opts ...Option) (*CSC, error) {
	const op = "NewCSC"
	if rows <= 0 || cols <= 0 {
		return nil, invalidf(op, ErrBadShape)
	}
	if len(colPtr) != cols+1 || colPtr[0] != 0 || len(rowIdx) != len(values) || colPtr[cols] != len(rowIdx) {
		return nil, invalidf(op, ErrMalformedCSC)
	}
	o := gatherOptions(opts...)
	var j, p int
	// Pointers first: every row scan below relies on colPtr[j+1] <= nnz.
	for j = 0; j < cols; j++ {
		if colPtr[j+1] < colPtr[j] || colPtr[j+1] > colPtr[cols] {
			return nil, invalidf(op, ErrMalformedCSC)
		}
	}
	for j = 0; j < cols; j++ {
		for p = colPtr[j]; p < colPtr[j+1]; p++ {
			if rowIdx[p] < 0 || rowIdx[p] >= rows {
				return nil, invalidf(op, ErrOutOfRange)
			}
			if p > colPtr[j] && rowIdx[p] <= rowIdx[p-1] {
				return nil, invalidf(op, ErrMalformedCSC)
			}
			if err := checkFinite(values[p], o); err != nil {
				return nil, invalidf(op, err)
			}
		}
	}

	return &CSC{r: rows, c: cols, colPtr: colPtr, rowIdx: rowIdx, values: values}, nil
}

// FromDense compresses any Matrix into CSC, skipping exact zeros.
// *CSC input is cloned as stored; *Dense input is read from its backing array;
// any other Matrix goes through At.
// Complexity: O(r*c), O(nnz) for *CSC.
func FromDense(m Matrix, opts ...Option) (*CSC, error) {
	const op = "FromDense"
	if m == nil {
		return nil, invalidf(op, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	switch t := m.(type) {
	case *CSC:
		if t == nil {
			return nil, invalidf(op, ErrNilMatrix)
		}
		for _, v := range t.values {
			if err := checkFinite(v, o); err != nil {
				return nil, invalidf(op, err)
			}
		}

		return t.Clone(), nil
	case *Dense:
		if t == nil {
			return nil, invalidf(op, ErrNilMatrix)
		}

		return compressColumns(op, t.r, t.c, func(i, j int) (float64, error) {
			return t.data[i*t.c+j], nil
		}, o)
	}

	return compressColumns(op, m.Rows(), m.Cols(), m.At, o)
}

// compressColumns scans an r×c source column by column through at.
func compressColumns(op string, r, c int, at func(i, j int) (float64, error), o Options) (*CSC, error) {
	if r <= 0 || c <= 0 {
		return nil, invalidf(op, ErrBadShape)
	}
	colPtr := make([]int, c+1)
	var rowIdx []int
	var values []float64
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			v, err := at(i, j)
			if err != nil {
				return nil, matrixErrorf(op, err)
			}
			if err = checkFinite(v, o); err != nil {
				return nil, invalidf(op, err)
			}
			if v != 0 {
				rowIdx = append(rowIdx, i)
				values = append(values, v)
			}
		}
		colPtr[j+1] = len(rowIdx)
	}

	return &CSC{r: r, c: c, colPtr: colPtr, rowIdx: rowIdx, values: values}, nil
}

// Rows returns the number of rows.
func (m *CSC) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CSC) Cols() int { return m.c }

// NNZ returns the number of stored entries.
func (m *CSC) NNZ() int { return len(m.values) }

// At retrieves the element at (i, j); absent entries read as 0.
// Complexity: O(log nnz(col j)).
func (m *CSC) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, invalidf("CSC.At", ErrOutOfRange)
	}
	if p, ok := m.find(i, j); ok {
		return m.values[p], nil
	}

	return 0, nil
}

// find locates (i,j) in storage. Assumes valid indices.
func (m *CSC) find(i, j int) (int, bool) {
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	k := sort.SearchInts(m.rowIdx[lo:hi], i)
	if lo+k < hi && m.rowIdx[lo+k] == i {
		return lo + k, true
	}

	return 0, false
}

// Column returns the row indices and values stored in column j.
// Both slices alias the matrix storage: writes to vals mutate the matrix,
// rows must be treated as read-only.
func (m *CSC) Column(j int) (rows []int, vals []float64, err error) {
	if j < 0 || j >= m.c {
		return nil, nil, invalidf("CSC.Column", ErrOutOfRange)
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]

	return m.rowIdx[lo:hi:hi], m.values[lo:hi:hi], nil
}

// ColPtr returns the column pointer array (read-only alias).
func (m *CSC) ColPtr() []int { return m.colPtr }

// RowIdx returns the row index array (read-only alias).
func (m *CSC) RowIdx() []int { return m.rowIdx }

// Values returns the value buffer. It aliases the matrix storage.
func (m *CSC) Values() []float64 { return m.values }

// Clone returns a deep copy.
func (m *CSC) Clone() *CSC {
	return &CSC{
		r:      m.r,
		c:      m.c,
		colPtr: append([]int(nil), m.colPtr...),
		rowIdx: append([]int(nil), m.rowIdx...),
		values: append([]float64(nil), m.values...),
	}
}

// ToDense expands the matrix into a row-major Dense.
// Complexity: O(r*c) memory, O(nnz) writes.
func (m *CSC) ToDense() *Dense {
	d := &Dense{r: m.r, c: m.c, data: make([]float64, m.r*m.c), opts: gatherOptions()}
	for j := 0; j < m.c; j++ {
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			d.data[m.rowIdx[p]*m.c+j] = m.values[p]
		}
	}

	return d
}

// Transpose returns mᵀ as a new CSC.
// Implementation:
//   - Stage 1: count entries per row of m (= per column of mᵀ).
//   - Stage 2: prefix-sum into column pointers.
//   - Stage 3: scatter in column order of m, which keeps rows of mᵀ sorted.
//
// Complexity:
//   - Time O(nnz + r + c), Space O(nnz + r).
func (m *CSC) Transpose() *CSC {
	nnz := len(m.values)
	colPtr := make([]int, m.r+1)
	for _, i := range m.rowIdx {
		colPtr[i+1]++
	}
	for i := 0; i < m.r; i++ {
		colPtr[i+1] += colPtr[i]
	}
	next := append([]int(nil), colPtr[:m.r]...)
	rowIdx := make([]int, nnz)
	values := make([]float64, nnz)
	for j := 0; j < m.c; j++ {
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			q := next[m.rowIdx[p]]
			rowIdx[q] = j
			values[q] = m.values[p]
			next[m.rowIdx[p]]++
		}
	}

	return &CSC{r: m.c, c: m.r, colPtr: colPtr, rowIdx: rowIdx, values: values}
}

// Equal reports whether m and o have the same shape and every entry differs
// by at most eps (WithEpsilon, default DefaultEpsilon). Implicit zeros take
// part in the comparison.
// Complexity: O(nnz(m) + nnz(o) + c).
func (m *CSC) Equal(o *CSC, opts ...Option) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	eps := gatherOptions(opts...).eps
	for j := 0; j < m.c; j++ {
		p, pe := m.colPtr[j], m.colPtr[j+1]
		q, qe := o.colPtr[j], o.colPtr[j+1]
		for p < pe || q < qe {
			var a, b float64
			switch {
			case q >= qe || (p < pe && m.rowIdx[p] < o.rowIdx[q]):
				a = m.values[p]
				p++
			case p >= pe || o.rowIdx[q] < m.rowIdx[p]:
				b = o.values[q]
				q++
			default:
				a, b = m.values[p], o.values[q]
				p++
				q++
			}
			if math.Abs(a-b) > eps {
				return false
			}
		}
	}

	return true
}
