// SPDX-License-Identifier: MIT

package snn_test

import (
	"fmt"

	"github.com/katalvlaran/snngraph/matrix"
	"github.com/katalvlaran/snngraph/snn"
)

// ExampleCompute builds the SNN graph of four points with K=2.
func ExampleCompute() {
	nr, err := snn.NewNeighborRank([][]int{
		{1, 2},
		{0, 2},
		{0, 1},
		{0, 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	g, _ := snn.Compute(nr, 0)
	w01, _ := g.At(0, 1)
	w23, _ := g.At(2, 3)
	fmt.Printf("edges=%d w(0,1)=%.3f w(2,3)=%.3f\n", g.NNZ()/2, w01, w23)

	g, _ = snn.Compute(nr, 0, snn.WithCandidates(snn.CandidatesShared))
	w23, _ = g.At(2, 3)
	fmt.Printf("edges=%d w(2,3)=%.3f\n", g.NNZ()/2, w23)
	// Output:
	// edges=5 w(0,1)=0.333 w(2,3)=0.000
	// edges=6 w(2,3)=1.000
}

// ExampleNeighborRankFromMatrix reads 1-based identifiers from a float64
// host table.
func ExampleNeighborRankFromMatrix() {
	d, _ := matrix.NewDenseFromRows([][]float64{{2, 3}, {1, 3}, {1, 2}})
	nr, err := snn.NeighborRankFromMatrix(d, snn.WithOneBased())
	fmt.Println(nr.Row(0), err)

	bad, _ := matrix.NewDenseFromRows([][]float64{{1}, {3}})
	_, err = snn.NeighborRankFromMatrix(bad, snn.WithOneBased())
	fmt.Println(err)
	// Output:
	// [1 2] <nil>
	// snn: NeighborRankFromMatrix: matrix: invalid input: matrix: index out of range
}
