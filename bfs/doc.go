// Package bfs provides breadth-first search over a core.Graph: hop-count
// depths, parent links, visit order and connectivity.
//
// What:
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing hop count
//     and returns a Result with Order, Depth and Parent. Edge weights are
//     ignored.
//   - FewestHops(g, start, goal) returns a path with the fewest edges, the
//     unweighted counterpart of a Dijkstra shortest path.
//   - Connected and Components report connectivity ignoring edge
//     direction. Generated graphs are checked with Connected.
//
// Determinism:
//
//	Neighbors are expanded in edge insertion order and components are
//	seeded from the smallest unseen vertex ID, so every result is
//	reproducible.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked per visited vertex.
//   - WithMaxDepth(d)      stop expanding at depth d (0 = no limit; panics on d < 0).
//   - WithFollowEdge(fn)   skip edges for which fn(from, e) is false.
//   - WithOnVisit(fn)      hook per visited vertex; an error aborts the search.
//
// Errors:
//
//   - ErrGraphNil             nil graph.
//   - ErrStartVertexNotFound  start vertex missing.
//   - ErrUnreached            PathTo / FewestHops target not reached.
//   - ctx.Err()               cancellation.
//   - wrapped OnVisit errors.
//
// Complexity: Time O(V + E), Memory O(V).
package bfs
