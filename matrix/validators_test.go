// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snngraph/matrix"
)

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := mustCSC(t, [][]float64{
		{0, 0.5, 0},
		{0.5, 0, 0.25},
		{0, 0.25, 0},
	})
	require.NoError(t, matrix.ValidateSymmetric(sym))
	require.NoError(t, matrix.ValidateZeroDiagonal(sym))

	asym := mustCSC(t, [][]float64{
		{0, 0.5},
		{0, 0},
	})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym), matrix.ErrAsymmetry)

	nonSquare := mustCSC(t, [][]float64{{1, 2}})
	require.ErrorIs(t, matrix.ValidateSymmetric(nonSquare), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil), matrix.ErrNilMatrix)
}

func TestValidateSymmetric_Epsilon(t *testing.T) {
	t.Parallel()

	near := mustCSC(t, [][]float64{
		{0, 0.5},
		{0.5001, 0},
	})
	require.ErrorIs(t, matrix.ValidateSymmetric(near), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(near, matrix.WithEpsilon(1e-3)))
}

func TestValidateZeroDiagonal(t *testing.T) {
	t.Parallel()

	m := mustCSC(t, [][]float64{
		{0, 1},
		{1, 2},
	})
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(m), matrix.ErrNonZeroDiagonal)
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(nil), matrix.ErrNilMatrix)
}
