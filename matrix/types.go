// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types shared by Dense and CSC.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "math"

// Matrix represents a two-dimensional array of float64 values.
// Both *Dense and *CSC satisfy it; FromDense takes Matrix and uses a type
// switch for storage-specific fast paths.
//
// Complexity notes: Rows/Cols are O(1); At is O(1) for Dense and
// O(log nnz(col)) for CSC.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// checkFinite returns ErrNaNInf for NaN/±Inf when the policy requires it.
func checkFinite(v float64, o Options) error {
	if o.validateNaNInf && isNonFinite(v) {
		return ErrNaNInf
	}

	return nil
}
