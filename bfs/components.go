package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// Connected reports whether every vertex of g is reachable from every other,
// ignoring edge direction. Graphs with zero or one vertex are connected.
// Returns ErrGraphNil for a nil graph.
func Connected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	comps, err := components(g)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}

// Components returns the connected components of g, ignoring edge direction.
// Each component lists its vertices in BFS visit order from its smallest ID;
// components are ordered by that smallest ID. A nil graph yields nil, and
// so does a graph Connected reports an error for.
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	comps, _ := components(g)

	return comps
}

// components seeds a BFS from each unseen vertex in ascending ID order.
func components(g *core.Graph) ([][]string, error) {
	if g.Directed() {
		u, err := undirectedView(g)
		if err != nil {
			return nil, err
		}
		g = u
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// undirectedView copies g's topology into an unweighted undirected graph.
// Antiparallel directed edges collapse into one.
func undirectedView(g *core.Graph) (*core.Graph, error) {
	u := core.NewGraph()
	for _, id := range g.Vertices() {
		if err := u.AddVertex(id); err != nil {
			return nil, fmt.Errorf("bfs: undirected view: %w", err)
		}
	}
	for _, e := range g.Edges() {
		if _, err := u.AddEdge(e.From, e.To, 0); err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
			return nil, fmt.Errorf("bfs: undirected view of %s→%s: %w", e.From, e.To, err)
		}
	}

	return u, nil
}
