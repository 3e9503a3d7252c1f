package builder_test

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/builder"
)

// ExampleGenerate builds the default seven-node graph and shows its shape.
func ExampleGenerate() {
	g, err := builder.Generate(builder.DefaultNodes(), 0, builder.DefaultWeightRange, builder.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// vertices: [A B C D E F G]
	// edges: 6
}

// ExampleGenerate_error shows a rejected probability.
func ExampleGenerate_error() {
	_, err := builder.Generate([]string{"A", "B"}, 2, builder.DefaultWeightRange)
	fmt.Println(err)
	// Output:
	// Generate: p=2.000000 not in [0.0,1.0]: builder: invalid configuration: probability out of range
}

// ExamplePath builds a lettered path.
func ExamplePath() {
	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(4))
	for _, e := range g.Edges() {
		fmt.Printf("%s—%s\n", e.From, e.To)
	}
	// Output:
	// A—B
	// B—C
	// C—D
}
