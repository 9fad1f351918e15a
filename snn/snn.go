// SPDX-License-Identifier: MIT

package snn

import (
	"context"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/snngraph/matrix"
)

const opCompute = "Compute"

// edge is one retained unordered pair; assembly writes both orientations.
type edge struct {
	i, j int
	w    float64
}

// chunkResult is what one worker hands back: only its own slice is written.
type chunkResult struct {
	edges      []edge
	candidates int
}

// Compute builds the shared-nearest-neighbor graph of nr.
// Implementation:
//   - Stage 1: validate nr, prune and the declared point count.
//   - Stage 2: split points into contiguous chunks; each errgroup worker
//     enumerates the candidate pairs of its points, scores them with Jaccard
//     and keeps those with weight > prune. Every unordered pair is emitted by
//     exactly one point, so no pair is produced twice.
//   - Stage 3: single-threaded assembly: chunk results, in chunk order, go
//     into one TripletBuilder as (i,j,w) and (j,i,w), then Build.
//
// Behavior highlights:
//   - Output is N×N, symmetric, with an empty diagonal whether or not rows
//     list the point itself; every stored weight lies in (prune, 1].
//   - prune=0 keeps every pair with non-zero weight; prune=1 keeps none.
//   - The result is identical for every worker count.
//
// Inputs:
//   - nr: neighbor table (see NewNeighborRank / NeighborRankFromMatrix).
//   - prune: threshold in [0,1]; DefaultPrune is the customary 1/15.
//   - opts: WithCandidates, WithWorkers, WithNumPoints, WithLogger.
//
// Errors (joined with ErrInvalidInput):
//   - ErrNilRank for nil nr, ErrInvalidPrune for prune outside [0,1] or NaN,
//     ErrDimensionMismatch for a WithNumPoints mismatch.
//
// Complexity:
//   - CandidatesDirect: Time O(N·K²), Space O(N·K) for the result.
//   - CandidatesShared: Time O(C·K) for C shared-neighbor pairs.
func Compute(nr *NeighborRank, prune float64, opts ...Option) (*matrix.CSC, error) {
	// Stage 1 (Validate)
	if nr == nil {
		return nil, invalidf(opCompute, ErrNilRank)
	}
	if math.IsNaN(prune) || prune < 0 || prune > 1 {
		return nil, invalidf(opCompute, ErrInvalidPrune)
	}
	o := gatherOptions(opts...)
	if o.numPoints != 0 && o.numPoints != nr.n {
		return nil, invalidf(opCompute, ErrDimensionMismatch)
	}
	if o.candidates == CandidatesShared && uint64(nr.n) > math.MaxUint32 {
		return nil, invalidf(opCompute, ErrOutOfRange)
	}

	// Stage 2 (Score in parallel)
	workers := o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, nr.n)
	chunk := (nr.n + workers - 1) / workers

	var idx *sharedIndex
	if o.candidates == CandidatesShared {
		idx = newSharedIndex(nr)
	}

	results := make([]chunkResult, workers)
	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, nr.n)
		if lo >= hi {
			continue
		}
		w := w
		g.Go(func() error {
			if idx != nil {
				results[w] = scoreShared(nr, idx, lo, hi, prune)
			} else {
				results[w] = scoreDirect(nr, lo, hi, prune)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stage 3 (Assemble): one pass, each pair written once per orientation.
	tb, err := matrix.NewTripletBuilder(nr.n, nr.n)
	if err != nil {
		return nil, err
	}
	edges, candidates := 0, 0
	for _, r := range results {
		edges += len(r.edges)
		candidates += r.candidates
	}
	tb.Grow(2 * edges)
	for _, r := range results {
		for _, e := range r.edges {
			if err = tb.Add(e.i, e.j, e.w); err != nil {
				return nil, err
			}
			if err = tb.Add(e.j, e.i, e.w); err != nil {
				return nil, err
			}
		}
	}
	out := tb.Build()

	o.logger.LogAttrs(context.Background(), slog.LevelDebug, "snn graph built",
		slog.Int("n", nr.n),
		slog.Int("k", nr.k),
		slog.Float64("prune", prune),
		slog.String("candidates", o.candidates.String()),
		slog.Int("scored", candidates),
		slog.Int("edges", edges),
		slog.Int("workers", workers),
	)

	return out, nil
}

// Jaccard returns |a∩b| / |a∪b| for two sorted, duplicate-free sets.
// An empty union yields 0.
// Complexity: O(len(a)+len(b)).
func Jaccard(a, b []int) float64 {
	inter := intersectCount(a, b)
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}

// intersectCount merges two sorted sets.
func intersectCount(a, b []int) int {
	var p, q, n int
	for p < len(a) && q < len(b) {
		switch {
		case a[p] < b[q]:
			p++
		case a[p] > b[q]:
			q++
		default:
			n++
			p++
			q++
		}
	}

	return n
}
