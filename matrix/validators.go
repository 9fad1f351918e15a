// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks on
//    sparse results (graph adjacency matrices in particular).
//  - Return sentinel errors labeled with the validator name so call sites
//    can match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - ValidateSymmetric is O(nnz + n): one transpose plus one merge scan.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the sparse matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *CSC) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSymmetric checks m[i,j] == m[j,i] within eps for every entry.
// Implementation:
//   - Stage 1: NotNil → Square.
//   - Stage 2: compare m with its transpose under the configured eps.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry.
//
// Complexity:
//   - Time O(nnz + n), Space O(nnz + n).
func ValidateSymmetric(m *CSC, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSymmetric", ErrDimensionMismatch)
	}
	if !m.Equal(m.Transpose(), opts...) {
		return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
	}

	return nil
}

// ValidateZeroDiagonal checks that no diagonal entry is stored with a
// non-zero value.
// Complexity: O(n log k) where k is the mean column fill.
func ValidateZeroDiagonal(m *CSC) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}
	n := min(m.r, m.c)
	for i := 0; i < n; i++ {
		if p, ok := m.find(i, i); ok && m.values[p] != 0 {
			return validatorErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}
