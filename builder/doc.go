// Package builder generates graphs for the shortest-path tracer using
// “functional-options” building blocks: a single BuildGraph orchestrator,
// composable Constructors, and an explicit, seedable random source.
//
// The package offers the following key components:
//
//   - Generator:
//     – Generate:          random connected weighted graph over a node set.
//     – RandomConnected:   the same algorithm as a composable Constructor.
//     – Path:              deterministic simple path P_n.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme and weight function.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//   - Edge weights:
//     – WeightRange:       closed integer interval [Min,Max], Min ≥ 1.
//     – UniformIntWeightFn, ConstantWeightFn.
//
// Generation algorithm (RandomConnected):
//
//  1. Shuffle the node set with the configured RNG.
//  2. Join consecutive shuffled nodes with an edge (spanning path), so the
//     result is connected no matter what happens next.
//  3. For every unordered pair not yet joined, add an edge with probability p.
//
// Every edge weight is drawn uniformly from the WeightRange.
//
// Guarantees:
//
//   - Result is simple, undirected and connected; k-1 ≤ |E| ≤ k(k-1)/2.
//   - Determinism: same nodes, parameters and seed ⇒ identical graph.
//   - Invalid parameters fail before any graph is produced, with errors
//     that match ErrConfiguration under errors.Is.
//   - Option constructors panic on meaningless inputs; constructors never panic.
package builder
