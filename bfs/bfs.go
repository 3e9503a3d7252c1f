package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// BFS walks g breadth-first from start and records visit order, hop depth
// and parents. Edge weights are ignored. Neighbors are taken in edge
// insertion order, the same order the Dijkstra tracer examines them, so
// runs are reproducible. Directed graphs are followed From→To.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ctx.Err() on cancellation
// and wrapped OnVisit errors. On error the partial result is returned.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  map[string]int{start: 0},
		Parent: make(map[string]string, n),
	}
	queue := make([]string, 1, n)
	queue[0] = start

	for head := 0; head < len(queue); head++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		u := queue[head]
		d := res.Depth[u]
		res.Order = append(res.Order, u)
		if o.OnVisit != nil {
			if err := o.OnVisit(u, d); err != nil {
				return res, fmt.Errorf("bfs: OnVisit at %q: %w", u, err)
			}
		}
		if o.MaxDepth > 0 && d >= o.MaxDepth {
			continue
		}

		edges, err := g.Neighbors(u)
		if err != nil {
			return res, fmt.Errorf("bfs: neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			if o.FollowEdge != nil && !o.FollowEdge(u, e) {
				continue
			}
			v := e.Other(u)
			if res.Reached(v) {
				continue
			}
			res.Depth[v] = d + 1
			res.Parent[v] = u
			queue = append(queue, v)
		}
	}

	return res, nil
}

// FewestHops returns a path from start to goal with the fewest edges,
// ignoring weights. ErrUnreached reports that goal cannot be reached.
func FewestHops(g *core.Graph, start, goal string) ([]string, error) {
	if g != nil && !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: %q", ErrUnreached, goal)
	}
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.PathTo(goal)
}
