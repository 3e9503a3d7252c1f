// Package dijkstra provides an observable implementation of Dijkstra's
// shortest-path algorithm on graphs with non-negative edge weights.
//
// Overview:
//
//   - NewTrace runs a goal-directed search one step at a time. Every step
//     yields a SearchState snapshot (tentative distances, visited set,
//     frontier, examined edge) and the run ends with a PathResult.
//   - Dijkstra computes distances from a single source to every vertex,
//     with optional path reconstruction, distance caps and “impassable”
//     edge thresholds.
//   - Both share one runner: a min-heap ordered by (distance, vertex ID)
//     with lazy deletion of stale entries and strict-improvement relaxation.
//
// Trace protocol:
//
//  1. StepStart: before any pop; the start vertex is alone in the frontier.
//  2. StepVisit: a vertex was popped and finalised. The search stops right
//     after the goal's StepVisit.
//  3. StepExamine: one edge from the current vertex to an unvisited
//     neighbour was relaxed; Improved reports whether it lowered the
//     neighbour's distance.
//
// Neighbours are examined in edge insertion order. Among equal-cost paths the
// one discovered first wins, so tests should only pin a path when costs do
// not tie.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), plus O(V) per snapshot for the copies.
//   - Space: O(V + E); each snapshot owns O(V) memory.
//
// Error handling (sentinel errors, all match ErrInvalidArgument):
//
//   - ErrEmptySource:    Dijkstra called without Source.
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: source, start or goal missing from the graph.
//   - ErrNegativeWeight: negative edge weight found by the O(E) pre-scan.
//
// An unreachable goal is not an error: Found is false in the PathResult.
//
// API reference:
//
//	func NewTrace(g *core.Graph, start, goal string) (*Trace, error)
//	func (t *Trace) Next() (SearchState, bool)
//	func (t *Trace) States() iter.Seq[SearchState]
//	func (t *Trace) Result() (PathResult, bool)
//	func (t *Trace) Run() PathResult
//	func ShortestPath(g *core.Graph, start, goal string) (PathResult, error)
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//
// Thread safety:
//
//   - A Trace is owned by one goroutine. Several traces may read the same
//     *core.Graph concurrently; mutating the graph during a trace is not supported.
package dijkstra
