package core_test

import (
	"fmt"

	"github.com/katalvlaran/relnet/core"
)

// ExampleGraph demonstrates a small weighted similarity graph.
func ExampleGraph() {
	g := core.NewGraph(core.WithWeighted())

	_, _ = g.AddEdge("A", "B", 0.8)
	_, _ = g.AddEdge("B", "C", 0.3)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge C→B exists?", g.HasEdge("C", "B"))
	in, _, _ := g.Strength("B")
	fmt.Printf("Strength(B): %.1f\n", in)

	// Output:
	// Vertices: [A B C]
	// Edge C→B exists? true
	// Strength(B): 1.1
}
