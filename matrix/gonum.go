// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum expands m into a gonum *mat.Dense for downstream linear algebra.
// Complexity: O(r*c) memory, O(nnz) writes.
func (m *CSC) ToGonum() *mat.Dense {
	out := mat.NewDense(m.r, m.c, nil)
	for j := 0; j < m.c; j++ {
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			out.Set(m.rowIdx[p], j, m.values[p])
		}
	}

	return out
}

// ToGonum copies d into a gonum *mat.Dense (both are row-major).
func (d *Dense) ToGonum() *mat.Dense {
	return mat.NewDense(d.r, d.c, append([]float64(nil), d.data...))
}

// FromGonum compresses any gonum matrix into CSC, skipping exact zeros.
// Errors: ErrBadShape for an empty matrix, ErrNaNInf for non-finite values
// under the default policy (both joined with ErrInvalidInput).
// Complexity: O(r*c).
func FromGonum(a mat.Matrix, opts ...Option) (*CSC, error) {
	const op = "FromGonum"
	if a == nil {
		return nil, invalidf(op, ErrNilMatrix)
	}
	r, c := a.Dims()
	if r <= 0 || c <= 0 {
		return nil, invalidf(op, ErrBadShape)
	}
	o := gatherOptions(opts...)
	colPtr := make([]int, c+1)
	var rowIdx []int
	var values []float64
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			v := a.At(i, j)
			if err := checkFinite(v, o); err != nil {
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
