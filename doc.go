// Package pathtrace generates random connected weighted graphs and traces
// Dijkstra's shortest-path search over them one observable step at a time.
//
// 🚀 What is pathtrace?
//
//	A small, thread-safe graph toolkit plus the viewer built on it:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Generator: seeded random connected graphs with uniform weights
//		• Traversals: BFS (levels, connectivity), DFS (order, simple paths)
//		• Shortest paths: Dijkstra, all-targets or as a step-by-step Trace
//
// Packages:
//
//	core/      — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	builder/   — Generate (random connected graph), Path, ID and weight schemes
//	bfs/       — breadth-first traversal, Connected, Components
//	dfs/       — depth-first traversal, WalkSimplePaths, Cheapest
//	dijkstra/  — Dijkstra (all targets), NewTrace / SearchState / PathResult
//	cmd/pathtrace — generate, trace, distances and tui commands
//
// Quick example:
//
//	g, _ := builder.GenerateDefault(builder.WithSeed(7))
//	tr, _ := dijkstra.NewTrace(g, "A", "F")
//	for s := range tr.States() {
//		fmt.Println(s.Seq, s.Kind, s.Current)
//	}
//	res, _ := tr.Result()
//	fmt.Println(res) // A → … → F (distance N)
//
//	go install github.com/katalvlaran/pathtrace/cmd/pathtrace@latest
package pathtrace
