// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() returns edges in insertion order.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - muVert then muEdgeAdj read locks, same order as mutators.

package core

import "sort"

// Neighbors returns the edges leaving id: every incident edge when the
// graph is undirected, only edges with From == id when it is directed.
//
// Behavior highlights:
//   - Deterministic ordering by insertion sequence.
//   - Returns pointers to live catalog edges (read-only by convention).
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := g.adjacency[id]
	out := make([]*Edge, 0, len(bucket))
	for _, eid := range bucket {
		if e := g.edges[eid]; e != nil {
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the vertex IDs reachable from id over one edge,
// sorted lexicographically ascending.
//
// Errors: propagated from Neighbors.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.Other(id))
	}
	sort.Strings(ids)

	return ids, nil
}
