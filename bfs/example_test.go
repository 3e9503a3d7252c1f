package bfs_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathtrace/bfs"
	"github.com/katalvlaran/pathtrace/core"
)

// ExampleBFS walks a small network level by level.
//
//	A ── B ── D
//	│         │
//	C ─────── E ── F
func ExampleBFS() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}, {"D", "E"}, {"E", "F"}} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	hops := make([]string, len(res.Order))
	for i, id := range res.Order {
		hops[i] = fmt.Sprintf("%s@%d", id, res.Depth[id])
	}
	fmt.Println(strings.Join(hops, " "))
	// Output:
	// A@0 B@1 C@1 D@2 E@2 F@3
}

// ExampleFewestHops contrasts hop count with weight: the one-hop route is
// the heaviest.
func ExampleFewestHops() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 10)

	path, err := bfs.FewestHops(g, "A", "C")
	fmt.Println(path, err)
	// Output:
	// [A C] <nil>
}

// ExampleBFS_followEdge blocks one directed edge so Y is reached the long way.
func ExampleBFS_followEdge() {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"U", "V"}, {"V", "W"}, {"W", "X"}, {"X", "Y"}, {"W", "Y"}} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	res, _ := bfs.BFS(g, "U", bfs.WithFollowEdge(func(from string, e *core.Edge) bool {
		return !(from == "W" && e.To == "Y")
	}))
	fmt.Println(res.Order)
	fmt.Println("depth(Y) =", res.Depth["Y"])
	// Output:
	// [U V W X Y]
	// depth(Y) = 4
}

// ExampleComponents lists the pieces of a split graph.
func ExampleComponents() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("C", "D", 2)
	_ = g.AddVertex("E")

	connected, _ := bfs.Connected(g)
	fmt.Println("connected:", connected)
	fmt.Println(bfs.Components(g))
	// Output:
	// connected: false
	// [[A B] [C D] [E]]
}

// ExampleWithContext stops a walk from inside a hook.
func ExampleWithContext() {
	g := core.NewGraph()
	for i := 0; i < 6; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1), 0)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, err := bfs.BFS(g, "n0", bfs.WithContext(ctx), bfs.WithOnVisit(func(_ string, d int) error {
		if d == 3 {
			cancel()
		}
		return nil
	}))
	fmt.Println(res.Order, err)
	// Output:
	// [n0 n1 n2 n3] context canceled
}
