// SPDX-License-Identifier: MIT

// Package snn: functional options shared by NewNeighborRank,
// NeighborRankFromMatrix and Compute.
//
// Design goals:
//   - Deterministic behavior: the result never depends on worker count.
//   - Safe by construction: WithX panics only on nonsensical values.
package snn

import (
	"io"
	"log/slog"
)

// CandidatePolicy selects which point pairs are scored.
type CandidatePolicy int

const (
	// CandidatesDirect scores pairs (i,j) where j is one of i's K neighbors
	// (or i one of j's). O(N·K) candidates.
	CandidatesDirect CandidatePolicy = iota

	// CandidatesShared scores every pair that shares at least one neighbor,
	// i.e. every pair whose weight can be non-zero. Candidates are found
	// through an inverted neighbor index; cost grows with neighbor hubness.
	CandidatesShared
)

// String implements fmt.Stringer.
func (p CandidatePolicy) String() string {
	switch p {
	case CandidatesDirect:
		return "direct"
	case CandidatesShared:
		return "shared"
	default:
		return "unknown"
	}
}

const (
	// DefaultPrune is the customary single-cell SNN threshold (1/15).
	DefaultPrune = 1.0 / 15.0

	// DefaultOneBased: identifiers are 0-based unless WithOneBased is given.
	DefaultOneBased = false

	// DefaultCandidates is the candidate policy used when none is given.
	DefaultCandidates = CandidatesDirect

	// DefaultWorkers of 0 means runtime.GOMAXPROCS(0).
	DefaultWorkers = 0
)

const (
	panicNumPointsInvalid  = "snn: WithNumPoints: n must be > 0"
	panicWorkersInvalid    = "snn: WithWorkers: n must be >= 0"
	panicCandidatesInvalid = "snn: WithCandidates: unknown policy"
)

// Option mutates internal options. Last writer wins.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; use WithX.
type Options struct {
	oneBased   bool
	numPoints  int // 0 = not declared
	candidates CandidatePolicy
	workers    int
	logger     *slog.Logger
}

// WithOneBased accepts 1-based identifiers (as produced by R/Matlab style
// hosts); every identifier is shifted down by one before validation.
func WithOneBased() Option {
	return func(o *Options) { o.oneBased = true }
}

// WithZeroBased restores the default 0-based identifiers.
func WithZeroBased() Option {
	return func(o *Options) { o.oneBased = false }
}

// WithNumPoints declares N. Construction and Compute fail with
// ErrDimensionMismatch when the neighbor table has a different row count.
// Panics if n <= 0.
func WithNumPoints(n int) Option {
	if n <= 0 {
		panic(panicNumPointsInvalid)
	}

	return func(o *Options) { o.numPoints = n }
}

// WithCandidates selects the candidate policy. Panics on an unknown value.
func WithCandidates(p CandidatePolicy) Option {
	if p != CandidatesDirect && p != CandidatesShared {
		panic(panicCandidatesInvalid)
	}

	return func(o *Options) { o.candidates = p }
}

// WithWorkers bounds the number of goroutines scoring candidates.
// 0 selects runtime.GOMAXPROCS(0); 1 runs everything on one goroutine.
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes builder diagnostics to l. A nil l discards them.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// discardLogger is used when no logger is configured.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func gatherOptions(user ...Option) Options {
	o := Options{
		oneBased:   DefaultOneBased,
		candidates: DefaultCandidates,
		workers:    DefaultWorkers,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.logger == nil {
		o.logger = discardLogger
	}

	return o
}
