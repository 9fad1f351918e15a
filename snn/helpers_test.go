// SPDX-License-Identifier: MIT

package snn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snngraph/matrix"
	"github.com/katalvlaran/snngraph/snn"
)

// scenarioRows is the four-point, K=2 table used across tests:
// points 0,1,2 list each other; point 3 lists 0 and 1 but nobody lists 3.
var scenarioRows = [][]int{
	{1, 2},
	{0, 2},
	{0, 1},
	{0, 1},
}

// randomRows draws an n×k table of identifiers in [0,n). Rows may repeat
// identifiers and may contain the point itself.
func randomRows(n, k int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, k)
		for j := range rows[i] {
			rows[i][j] = rng.Intn(n)
		}
	}

	return rows
}

// mustRank wraps NewNeighborRank for tests and benchmarks.
func mustRank(t testing.TB, rows [][]int, opts ...snn.Option) *snn.NeighborRank {
	t.Helper()
	nr, err := snn.NewNeighborRank(rows, opts...)
	require.NoError(t, err)

	return nr
}

// at reads g[i,j] or fails the test.
func at(t testing.TB, g *matrix.CSC, i, j int) float64 {
	t.Helper()
	v, err := g.At(i, j)
	require.NoError(t, err)

	return v
}

// bruteForce scores pairs by definition, without candidate tricks.
// direct=true restricts to pairs where one lists the other.
func bruteForce(t testing.TB, nr *snn.NeighborRank, prune float64, direct bool) *matrix.CSC {
	t.Helper()
	n := nr.N()
	tb, err := matrix.NewTripletBuilder(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if direct && !contains(nr.Set(i), j) && !contains(nr.Set(j), i) {
				continue
			}
			if w := snn.Jaccard(nr.Set(i), nr.Set(j)); w > prune {
				require.NoError(t, tb.Add(i, j, w))
				require.NoError(t, tb.Add(j, i, w))
			}
		}
	}

	return tb.Build()
}

func contains(set []int, v int) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}

	return false
}
