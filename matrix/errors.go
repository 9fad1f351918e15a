// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All routines MUST return these sentinels and tests MUST check them
// via errors.Is. No routine should panic on user-triggered error conditions.
// Panics are reserved for nonsensical Option constructor arguments.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & CLASSES
// ------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// ErrInvalidInput is the class root: every user-triggered failure is joined
// with it at the return site (see invalidf), so callers may match either the
// class (errors.Is(err, ErrInvalidInput)) or the precise sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> index range -> NaN/Inf -> domain.

var (
	// ErrInvalidInput is the class of all caller errors: wrong shapes, out of
	// range indices, parameters outside their valid domain.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a factor vector whose length differs from the row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrMalformedCSC signals inconsistent compressed-column structure
	// (pointer monotonicity, row order inside a column, slice lengths).
	ErrMalformedCSC = errors.New("matrix: malformed compressed column structure")

	// ErrNoLevels is returned by ColSumByFactor when the factor has no
	// non-negative level.
	ErrNoLevels = errors.New("matrix: factor has no levels")

	// ErrNegativeCount is returned by WinsorizeColumns for n < 0.
	ErrNegativeCount = errors.New("matrix: count must be non-negative")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a stored diagonal entry where none is allowed.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")
)

// invalidf joins a specific sentinel with ErrInvalidInput and labels it with
// the operation name, e.g. "ColMeanVar: matrix: invalid input: matrix: dimension mismatch".
func invalidf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, err)
}

// matrixErrorf labels an already classified error with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
