// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only configuration getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Weighted reports whether non-zero weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether edges are one-way.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	VertexCount int
	EdgeCount   int
	MinWeight   int64 // 0 when the graph has no edges
	MaxWeight   int64 // 0 when the graph has no edges
	TotalWeight int64
}

// Stats produces a read-only snapshot of configuration flags, catalog sizes
// and weight bounds.
//
// Implementation:
//   - Stage 1: Snapshot flags and vertex count under muVert.RLock.
//   - Stage 2: Scan edges under muEdgeAdj.RLock.
//
// Complexity: O(V+E) worst case; O(E) scan. Concurrency: read locks, taken in order.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	st := &GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	st.EdgeCount = len(g.edges)
	first := true
	for _, e := range g.edges {
		st.TotalWeight += e.Weight
		if first || e.Weight < st.MinWeight {
			st.MinWeight = e.Weight
		}
		if first || e.Weight > st.MaxWeight {
			st.MaxWeight = e.Weight
		}
		first = false
	}

	return st
}
