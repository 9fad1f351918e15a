// SPDX-License-Identifier: MIT

package snn_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/snngraph/matrix"
	"github.com/katalvlaran/snngraph/snn"
)

// TestGraphInvariants checks the structural guarantees of Compute on random
// neighbor tables: these must hold for every valid input.
func TestGraphInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	build := func(seed int64, n, k int, prune float64, shared bool) *matrix.CSC {
		nr, err := snn.NewNeighborRank(randomRows(n, k, seed))
		if err != nil {
			return nil
		}
		p := snn.CandidatesDirect
		if shared {
			p = snn.CandidatesShared
		}
		g, err := snn.Compute(nr, prune, snn.WithCandidates(p), snn.WithWorkers(3))
		if err != nil {
			return nil
		}

		return g
	}

	properties.Property("output is symmetric", prop.ForAll(
		func(seed int64, n, k int, prune float64, shared bool) bool {
			g := build(seed, n, k, prune, shared)
			return g != nil && matrix.ValidateSymmetric(g, matrix.WithEpsilon(0)) == nil
		},
		gen.Int64(), gen.IntRange(1, 40), gen.IntRange(1, 8), gen.Float64Range(0, 1), gen.Bool(),
	))

	properties.Property("diagonal is empty", prop.ForAll(
		func(seed int64, n, k int, prune float64, shared bool) bool {
			g := build(seed, n, k, prune, shared)
			if g == nil {
				return false
			}
			for i := 0; i < n; i++ {
				if v, _ := g.At(i, i); v != 0 {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 40), gen.IntRange(1, 8), gen.Float64Range(0, 1), gen.Bool(),
	))

	properties.Property("weights lie in (prune, 1]", prop.ForAll(
		func(seed int64, n, k int, prune float64, shared bool) bool {
			g := build(seed, n, k, prune, shared)
			if g == nil {
				return false
			}
			for _, w := range g.Values() {
				if w <= prune || w > 1 {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 40), gen.IntRange(1, 8), gen.Float64Range(0, 1), gen.Bool(),
	))

	properties.Property("shared candidates contain direct candidates", prop.ForAll(
		func(seed int64, n, k int, prune float64) bool {
			direct := build(seed, n, k, prune, false)
			shared := build(seed, n, k, prune, true)
			if direct == nil || shared == nil {
				return false
			}
			for j := 0; j < n; j++ {
				rows, vals, _ := direct.Column(j)
				for p, i := range rows {
					if v, _ := shared.At(i, j); v != vals[p] {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 40), gen.IntRange(1, 8), gen.Float64Range(0, 1),
	))

	properties.Property("jaccard is commutative", prop.ForAll(
		func(seed int64, n, k int) bool {
			nr, err := snn.NewNeighborRank(randomRows(n, k, seed))
			if err != nil {
				return false
			}
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if snn.Jaccard(nr.Set(i), nr.Set(j)) != snn.Jaccard(nr.Set(j), nr.Set(i)) {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 20), gen.IntRange(1, 6),
	))

	properties.TestingRun(t)
}
