// SPDX-License-Identifier: MIT

package snn

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/snngraph/matrix"
)

// Sentinel errors. The shared ones alias the matrix sentinels so a single
// errors.Is check works across both packages.
var (
	// ErrInvalidInput is the class of every caller error (alias of matrix.ErrInvalidInput).
	ErrInvalidInput = matrix.ErrInvalidInput

	// ErrBadShape is returned for an empty neighbor table (N==0 or K==0).
	ErrBadShape = matrix.ErrBadShape

	// ErrDimensionMismatch is returned for ragged rows or a declared point
	// count that differs from the row count.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrOutOfRange is returned for a neighbor identifier outside [0,N)
	// after rebasing.
	ErrOutOfRange = matrix.ErrOutOfRange

	// ErrNilRank indicates a nil *NeighborRank or nil source matrix.
	ErrNilRank = errors.New("snn: nil neighbor rank")

	// ErrInvalidPrune is returned when prune is NaN or outside [0,1].
	ErrInvalidPrune = errors.New("snn: prune must be within [0,1]")

	// ErrNonIntegerID is returned when a floating-point neighbor table holds a
	// value that is not a finite integer.
	ErrNonIntegerID = errors.New("snn: neighbor identifier is not an integer")
)

// invalidf joins err with ErrInvalidInput and tags it with the operation.
func invalidf(op string, err error) error {
	return fmt.Errorf("snn: %s: %w: %w", op, ErrInvalidInput, err)
}
