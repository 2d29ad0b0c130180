// SPDX-License-Identifier: MIT

package adjacency_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/relnet/adjacency"
)

// ExampleFromSquare shows type inference and condensed storage.
func ExampleFromSquare() {
	a, err := adjacency.FromSquare([][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	row, _ := a.Row(0)
	fmt.Println(a)
	fmt.Println(row)
	// Output:
	// Adjacency(distance, 1 × 3 edges, 3 nodes)
	// [1 2 3]
}

// ExampleAdjacency_Threshold keeps the strongest edges and binarizes them.
func ExampleAdjacency_Threshold() {
	a, _ := adjacency.FromVector([]float64{0.1, 0.9, 0.4, 0.7, 0.2, 0.8})
	upper, _ := adjacency.ParseCutoff("0.5")
	out, err := a.Threshold(adjacency.Thresholds{Upper: upper, Binarize: true})
	if err != nil {
		fmt.Println(err)
		return
	}
	row, _ := out.Row(0)
	fmt.Println(row)
	// Output:
	// [0 1 0 1 0 1]
}

// ExampleAdjacency_WriteLong prints a labelled matrix as an edge list.
func ExampleAdjacency_WriteLong() {
	a, _ := adjacency.FromVector([]float64{0.25, 0.5, 1},
		adjacency.WithLabels([]string{"V1", "V2", "V3"}))
	if err := a.WriteLong(os.Stdout); err != nil {
		fmt.Println(err)
	}
	// Output:
	// Source,Target,Value
	// V1,V2,0.25
	// V1,V3,0.5
	// V2,V3,1
}
