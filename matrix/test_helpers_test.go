// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for CSC/Dense tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snngraph/matrix"
)

// mustCSC builds a CSC from dense rows or fails the test.
func mustCSC(t testing.TB, rows [][]float64) *matrix.CSC {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	m, err := matrix.FromDense(d)
	require.NoError(t, err)

	return m
}

// denseRows reads m back into [][]float64.
func denseRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// sliceClose asserts element-wise |got-want| <= tol.
func sliceClose(t testing.TB, got, want []float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.LessOrEqualf(t, math.Abs(got[i]-want[i]), tol, "index %d: got %g want %g", i, got[i], want[i])
	}
}

// randomSparseRows returns r×c rows where roughly density of the entries are
// non-zero small integers. Deterministic for a given seed.
func randomSparseRows(r, c int, density float64, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			if rng.Float64() < density {
				rows[i][j] = float64(1 + rng.Intn(20))
			}
		}
	}

	return rows
}
