// Package core provides a thread-safe in-memory simple graph with a
// minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Constant-time edge membership via nested maps: adjacency[from][to] = edgeID
//   - Monotonic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Graphs are always simple: self-loops return ErrLoopNotAllowed and a second
// edge between the same endpoints returns ErrMultiEdgeNotAllowed. Negative
// weights are rejected with ErrBadWeight.
//
// Determinism:
//
//	Vertices()    – sorted by ID
//	Edges()       – insertion order
//	Neighbors(id) – insertion order
//	NeighborIDs() – sorted by ID
//
// Core Methods:
//
//	AddVertex(id string) error                              // O(1)
//	HasVertex(id string) bool                               // O(1)
//	AddEdge(from, to string, weight int64) (string, error)  // O(1)
//	HasEdge(from, to string) bool                           // O(1)
//	EdgeBetween(from, to string) (*Edge, error)             // O(1)
//	Neighbors(id string) ([]*Edge, error)                   // O(d log d)
//	Vertices() []string                                     // O(V log V)
//	Edges() []*Edge                                         // O(E log E)
//	Stats() *GraphStats                                     // O(E)
//
// Example:
//
//	g := core.NewGraph(core.WithWeighted())
//	_, _ = g.AddEdge("A", "B", 1)
//	_, _ = g.AddEdge("B", "C", 2)
//	nbs, _ := g.NeighborIDs("B") // [A C]
package core
