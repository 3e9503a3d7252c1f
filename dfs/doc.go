// Package dfs implements depth-first traversal and exhaustive simple-path
// search on a core.Graph.
//
// What:
//
//   - DFS explores as far as possible along each branch before
//     backtracking, recording post-order, depths and parents. It supports
//     pre- and post-order hooks, cancellation, depth limits, neighbor
//     filtering and forest traversal.
//   - WalkSimplePaths enumerates every simple path between two vertices
//     with its total weight.
//   - Cheapest reduces that enumeration to the cheapest path. pathtrace
//     uses it to cross-check traced Dijkstra results on small graphs.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - WalkSimplePaths: Time O(V!) worst case, Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrGoalVertexNotFound   goal vertex ID not in graph
//   - context.Canceled        walk cancelled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
