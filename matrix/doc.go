// SPDX-License-Identifier: MIT

// Package matrix provides the storage types and column utilities behind the
// SNN graph builder.
//
// The matrix package provides:
//
//   - Dense: row-major float64 matrix with bounds-checked At/Set.
//   - CSC: compressed sparse column matrix (p / i / x layout), plus
//     TripletBuilder for assembling CSC from unordered (i, j, v) entries.
//   - Column utilities over CSC, each a single linear scan:
//     ColSumByFactor (grouped column sums), ColMeanVar (streaming mean and
//     sample variance with implicit zeros), WinsorizeColumns (in-place
//     capping of the largest stored values per column).
//   - Validators (ValidateSymmetric, ValidateZeroDiagonal) and gonum
//     interop (ToGonum, FromGonum).
//
// Every user-triggered failure matches ErrInvalidInput through errors.Is,
// together with a more precise sentinel (ErrOutOfRange, ErrBadShape, ...).
//
// Quick example:
//
//	Y, _ := matrix.FromDense(dense)
//	sums, _ := matrix.ColSumByFactor(Y, []int{0, 0, 1})
//	stats, _ := matrix.ColMeanVar(Y, nil)
//	changed, _ := matrix.WinsorizeColumns(Y, 1)
package matrix
