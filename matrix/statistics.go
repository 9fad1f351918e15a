// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide per-column statistics over sparse count matrices as single
//     linear scans of the stored entries; implicit zeros are accounted for
//     arithmetically and never materialized.
//
// Exposed API:
//   - ColSumByFactor(Y, factor)  -> Dense (levels × cols)   // grouped column sums
//   - ColMeanVar(Y, rowSel)      -> ColumnStats             // streaming mean / sample variance
//
// Determinism & Performance:
//   - Fixed column-major traversal following CSC storage.
//   - O(nnz + cols) time; O(cols) extra space (plus the output).
//
// AI-Hints:
//   - Use ColSumByFactor to pseudo-bulk cells by cluster label.
//   - Pass rowSel to ColMeanVar to restrict statistics to a cell subset
//     without slicing the matrix.

package matrix

// Operation name constants for unified error wrapping.
const (
	opColSumByFactor = "ColSumByFactor"
	opColMeanVar     = "ColMeanVar"
)

// ColumnStats holds per-column mean, sample variance and the number of
// stored (non-zero) observations that fell into the row selection.
type ColumnStats struct {
	Mean []float64
	Var  []float64
	NObs []float64
}

// ColSumByFactor sums the columns of Y separately for every factor level.
// Implementation:
//   - Stage 1: validate Y and len(factor)==Y.Rows(); find the largest level
//     and bound it by the row count.
//   - Stage 2: allocate a (levels)×(cols) Dense of zeros.
//   - Stage 3: scan stored entries; add Y[i,j] into out[factor[i], j].
//
// Behavior highlights:
//   - Levels are the non-negative values of factor; row L of the output holds
//     the sums for level L. Levels that never occur keep a zero row.
//   - A negative factor value marks a missing label: the row is skipped.
//
// Inputs:
//   - Y: sparse r×c matrix.
//   - factor: one level per row of Y.
//
// Returns:
//   - *Dense of shape (max(factor)+1)×c.
//
// Errors (joined with ErrInvalidInput):
//   - ErrNilMatrix if Y is nil.
//   - ErrDimensionMismatch if len(factor) != Y.Rows().
//   - ErrNoLevels if factor has no non-negative value.
//   - ErrOutOfRange if a level is >= len(factor); levels are dense codes,
//     so more levels than rows cannot occur.
//
// Complexity:
//   - Time O(nnz + r), Space O(levels*c).
func ColSumByFactor(Y *CSC, factor []int) (*Dense, error) {
	// Stage 1 (Validate)
	if Y == nil {
		return nil, invalidf(opColSumByFactor, ErrNilMatrix)
	}
	if len(factor) != Y.r {
		return nil, invalidf(opColSumByFactor, ErrDimensionMismatch)
	}
	maxLevel := -1
	for _, f := range factor {
		if f > maxLevel {
			maxLevel = f
		}
	}
	if maxLevel < 0 {
		return nil, invalidf(opColSumByFactor, ErrNoLevels)
	}
	if maxLevel >= len(factor) {
		return nil, invalidf(opColSumByFactor, ErrOutOfRange)
	}

	// Stage 2 (Prepare)
	levels, c := maxLevel+1, Y.c
	out := &Dense{r: levels, c: c, data: make([]float64, levels*c), opts: gatherOptions()}

	// Stage 3 (Execute): column-major scan of stored entries.
	var j, p, f int
	for j = 0; j < c; j++ {
		for p = Y.colPtr[j]; p < Y.colPtr[j+1]; p++ {
			f = factor[Y.rowIdx[p]]
			if f < 0 {
				continue // missing label
			}
			out.data[f*c+j] += Y.values[p]
		}
	}

	return out, nil
}

// ColMeanVar computes per-column mean and sample variance over the selected
// rows of Y, implicit zeros included.
// Implementation:
//   - Stage 1: validate Y and rowSel; count selected rows n.
//   - Stage 2: per column, run Welford's update over the selected stored
//     entries (count a, mean μa, sum of squared deviations M2a).
//   - Stage 3: merge the stored block with the block of z = n-a implicit
//     zeros (mean 0, M2 0) using the pairwise combine of Chan et al.:
//     μ = μa·a/n,  M2 = M2a + μa²·a·z/n,  var = M2/(n-1).
//
// Behavior highlights:
//   - Single pass over stored values; numerically stable for large counts.
//   - Fewer than two selected rows yields variance 0; no selected rows yields
//     mean 0 as well (degenerate inputs never divide by zero).
//
// Inputs:
//   - Y: sparse r×c matrix.
//   - rowSel: nil to select every row, else one flag per row of Y.
//
// Returns:
//   - ColumnStats with len(Mean)==len(Var)==len(NObs)==c.
//
// Errors (joined with ErrInvalidInput):
//   - ErrNilMatrix if Y is nil.
//   - ErrDimensionMismatch if rowSel != nil and len(rowSel) != Y.Rows().
//
// Complexity:
//   - Time O(nnz + c + r), Space O(c).
func ColMeanVar(Y *CSC, rowSel []bool) (ColumnStats, error) {
	// Stage 1 (Validate)
	if Y == nil {
		return ColumnStats{}, invalidf(opColMeanVar, ErrNilMatrix)
	}
	if rowSel != nil && len(rowSel) != Y.r {
		return ColumnStats{}, invalidf(opColMeanVar, ErrDimensionMismatch)
	}
	n := Y.r
	if rowSel != nil {
		n = 0
		for _, s := range rowSel {
			if s {
				n++
			}
		}
	}

	c := Y.c
	st := ColumnStats{
		Mean: make([]float64, c),
		Var:  make([]float64, c),
		NObs: make([]float64, c),
	}
	if n == 0 {
		return st, nil
	}
	nf := float64(n)

	var (
		j, p      int
		a         float64 // selected stored entries seen so far
		mean, m2  float64 // Welford accumulators over stored entries
		delta, zs float64
	)
	for j = 0; j < c; j++ {
		// Stage 2 (Stream): Welford over stored entries of column j.
		a, mean, m2 = 0, 0, 0
		for p = Y.colPtr[j]; p < Y.colPtr[j+1]; p++ {
			if rowSel != nil && !rowSel[Y.rowIdx[p]] {
				continue
			}
			a++
			delta = Y.values[p] - mean
			mean += delta / a
			m2 += delta * (Y.values[p] - mean)
		}

		// Stage 3 (Merge): fold in the implicit zeros.
		zs = nf - a
		st.NObs[j] = a
		st.Mean[j] = mean * a / nf
		if n > 1 {
			st.Var[j] = (m2 + mean*mean*a*zs/nf) / (nf - 1)
		}
	}

	return st, nil
}
