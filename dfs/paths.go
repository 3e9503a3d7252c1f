package dfs

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathtrace/core"
)

// errStop ends a walk early without reporting an error.
var errStop = errors.New("dfs: stop")

// pathWalker enumerates simple paths by backtracking.
type pathWalker struct {
	graph *core.Graph
	opts  DFSOptions
	goal  string
	path  []string
	on    map[string]bool
	fn    func(path []string, cost int64) bool
}

// WalkSimplePaths calls fn for every simple path from start to goal, in
// depth-first order with neighbors taken in edge insertion order. The path
// slice is reused between calls; copy it to keep it. Returning false from
// fn stops the walk.
//
// Directed graphs are walked From→To only. When start == goal, fn sees the
// single path [start] with cost 0. OnVisit and OnExit fire each time a
// vertex enters or leaves the current path; MaxDepth caps the path length
// in edges.
//
// The number of simple paths grows exponentially with graph density; use
// it as an oracle on small graphs.
func WalkSimplePaths(g *core.Graph, start, goal string, fn func(path []string, cost int64) bool, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasVertex(goal) {
		return fmt.Errorf("%w: %q", ErrGoalVertexNotFound, goal)
	}

	w := &pathWalker{
		graph: g,
		opts:  resolve(opts),
		goal:  goal,
		on:    make(map[string]bool, g.VertexCount()),
		fn:    fn,
	}
	err := w.walk(start, 0)
	if errors.Is(err, errStop) {
		return nil
	}

	return err
}

func (w *pathWalker) walk(id string, cost int64) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.path = append(w.path, id)
	w.on[id] = true
	defer func() {
		w.path = w.path[:len(w.path)-1]
		w.on[id] = false
	}()

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	if id == w.goal {
		if !w.fn(w.path, cost) {
			return errStop
		}
	} else if w.opts.MaxDepth < 0 || len(w.path)-1 < w.opts.MaxDepth {
		nbs, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
		}
		for _, e := range nbs {
			nid := e.Other(id)
			if w.on[nid] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.opts.SkippedNeighbors++
				continue
			}
			if e.Weight > math.MaxInt64-cost {
				continue
			}
			if err = w.walk(nid, cost+e.Weight); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	return nil
}

// Cheapest enumerates every simple path from start to goal and returns the
// one of least total weight. Among equal costs the first path enumerated
// wins. It is an exhaustive check for shortest-path results, not a
// replacement for them.
func Cheapest(g *core.Graph, start, goal string, opts ...Option) (PathResult, error) {
	var best PathResult
	err := WalkSimplePaths(g, start, goal, func(path []string, cost int64) bool {
		best.Explored++
		if !best.Found || cost < best.Cost {
			best.Found = true
			best.Cost = cost
			best.Path = append(best.Path[:0], path...)
		}
		return true
	}, opts...)
	if err != nil {
		return PathResult{}, err
	}

	return best, nil
}
