// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/relnet/bfs"
	"github.com/katalvlaran/relnet/core"
)

// ExampleComponents splits a weighted graph into connected pieces.
func ExampleComponents() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("v1", "v2", 0.8)
	_, _ = g.AddEdge("v3", "v4", 0.6)
	_ = g.AddVertex("v5")

	comps, _ := bfs.Components(g)
	fmt.Println(comps)
	// Output:
	// [[v1 v2] [v3 v4] [v5]]
}
