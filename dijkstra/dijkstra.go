package dijkstra

import "github.com/katalvlaran/pathtrace/core"

// Dijkstra computes the distance from the Source option to every vertex
// of g. Unreached vertices map to Infinity. With WithReturnPath the second
// map holds prev[v] = u for every reached v other than the source; it is
// nil otherwise.
//
// Arguments are checked in this order: ErrEmptySource, ErrNilGraph,
// ErrVertexNotFound, ErrNegativeWeight. Runs in O((V+E) log V).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if err := validateGraph(g, cfg.Source); err != nil {
		return nil, nil, err
	}

	r := newRunner(g, cfg)
	for {
		u, ok := r.popNext()
		if !ok {
			break
		}
		for _, e := range r.edgesFrom(u) {
			v := e.Other(u)
			if r.visited[v] || !r.passable(e) {
				continue
			}
			r.relax(u, v, e.Weight)
		}
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}
