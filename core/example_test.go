package core_test

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// ExampleGraph demonstrates basic creation and queries on a weighted triangle.
func ExampleGraph() {
	g := core.NewGraph(core.WithWeighted())

	// Adding an edge auto-adds its endpoints.
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 10)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge C→A exists?", g.HasEdge("C", "A"))

	nbs, _ := g.Neighbors("A")
	for _, e := range nbs {
		fmt.Printf("%s—%s w=%d\n", "A", e.Other("A"), e.Weight)
	}

	// Output:
	// Vertices: [A B C]
	// Edge C→A exists? true
	// A—B w=1
	// A—C w=10
}

// ExampleGraph_AddEdge shows the simple-graph guards.
func ExampleGraph_AddEdge() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 3)

	_, err := g.AddEdge("B", "A", 5)
	fmt.Println(err)
	_, err = g.AddEdge("A", "A", 1)
	fmt.Println(err)

	// Output:
	// core: multi-edges not allowed
	// core: self-loop not allowed
}
