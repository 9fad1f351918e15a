// SPDX-License-Identifier: MIT

package snn

import "github.com/katalvlaran/snngraph/matrix"

// Edge is one undirected SNN edge with From < To.
type Edge struct {
	From, To int
	Weight   float64
}

// Edges exports a graph built by Compute as an undirected edge list, the form
// community-detection code downstream consumes.
// Implementation:
//   - Stage 1: validate g (square, symmetric within eps, empty diagonal).
//   - Stage 2: walk column i and emit every stored row j > i as (i, j, g[j,i]).
//
// Behavior highlights:
//   - Output is ordered by (From, To); each undirected pair appears once.
//   - Stored zeros are skipped.
//
// Errors (joined with ErrInvalidInput):
//   - matrix.ErrNilMatrix, ErrDimensionMismatch, matrix.ErrAsymmetry,
//     matrix.ErrNonZeroDiagonal.
//
// Complexity:
//   - Time O(nnz + n), Space O(nnz/2) for the result.
func Edges(g *matrix.CSC, opts ...matrix.Option) ([]Edge, error) {
	const op = "Edges"
	// Stage 1 (Validate)
	if err := matrix.ValidateSymmetric(g, opts...); err != nil {
		return nil, invalidf(op, err)
	}
	if err := matrix.ValidateZeroDiagonal(g); err != nil {
		return nil, invalidf(op, err)
	}

	// Stage 2 (Export): symmetry makes column i the neighbor list of i.
	edges := make([]Edge, 0, g.NNZ()/2)
	var rows []int
	var vals []float64
	var err error
	for i := 0; i < g.Cols(); i++ {
		if rows, vals, err = g.Column(i); err != nil {
			return nil, invalidf(op, err)
		}
		for p, j := range rows {
			if j <= i || vals[p] == 0 {
				continue
			}
			edges = append(edges, Edge{From: i, To: j, Weight: vals[p]})
		}
	}

	return edges, nil
}
