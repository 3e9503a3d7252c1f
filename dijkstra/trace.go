package dijkstra

import (
	"iter"

	"github.com/katalvlaran/pathtrace/core"
)

// phase is the position of a Trace in its state machine.
type phase int

const (
	phaseStart   phase = iota // initial snapshot not yet emitted
	phasePop                  // next step pops the heap
	phaseExamine              // walking the edges of current
	phaseEnd                  // goal visited; next call reports the end
	phaseDone                 // result available
)

// Trace is a single goal-directed Dijkstra run that can be observed one
// step at a time. Each call to Next advances the search by exactly one
// observable step and returns a snapshot of it.
//
// A Trace is not safe for concurrent use and cannot be rewound; call
// NewTrace again for a fresh run. Dropping a Trace part-way needs no cleanup.
type Trace struct {
	r      *runner
	goal   string
	phase  phase
	seq    int
	cur    string
	edges  []*core.Edge
	next   int
	result PathResult
}

// NewTrace validates the arguments and prepares a run from start to goal.
// All errors match ErrInvalidArgument and are returned before any snapshot
// exists: ErrNilGraph, ErrVertexNotFound (start or goal), ErrNegativeWeight.
//
// Directed graphs are walked From→To only; undirected edges both ways.
func NewTrace(g *core.Graph, start, goal string) (*Trace, error) {
	if err := validateGraph(g, start, goal); err != nil {
		return nil, err
	}

	return &Trace{
		r:    newRunner(g, DefaultOptions(start)),
		goal: goal,
	}, nil
}

// Start returns the start vertex.
func (t *Trace) Start() string { return t.r.options.Source }

// Goal returns the goal vertex.
func (t *Trace) Goal() string { return t.goal }

// Next advances the search by one step and returns its snapshot. The
// sequence is:
//
//  1. one StepStart snapshot with the start vertex alone in the frontier;
//  2. for every vertex popped and finalised, one StepVisit snapshot;
//  3. unless that vertex is the goal, one StepExamine snapshot per edge to
//     an unvisited neighbour, taken after the relaxation.
//
// ok is false once the search has ended; Done and Result switch over on
// that same call, so the goal's StepVisit is followed by exactly one more
// call returning ok == false.
func (t *Trace) Next() (s SearchState, ok bool) {
	for {
		switch t.phase {
		case phaseStart:
			t.phase = phasePop
			return t.emit(StepStart, nil, 0, false), true

		case phasePop:
			u, popped := t.r.popNext()
			if !popped {
				t.finish()
				return SearchState{}, false
			}
			t.cur = u
			if u == t.goal {
				t.phase = phaseEnd
			} else {
				t.edges = t.r.edgesFrom(u)
				t.next = 0
				t.phase = phaseExamine
			}
			return t.emit(StepVisit, nil, 0, false), true

		case phaseExamine:
			for t.next < len(t.edges) {
				e := t.edges[t.next]
				t.next++
				v := e.Other(t.cur)
				if t.r.visited[v] || !t.r.passable(e) {
					continue
				}
				alt, improved := t.r.relax(t.cur, v, e.Weight)
				ref := &EdgeRef{ID: e.ID, From: t.cur, To: v, Weight: e.Weight}
				return t.emit(StepExamine, ref, alt, improved), true
			}
			t.edges = nil
			t.phase = phasePop

		case phaseEnd:
			t.finish()
			return SearchState{}, false

		default:
			return SearchState{}, false
		}
	}
}

// States returns the remaining snapshots as a range-over-func sequence.
// It shares the underlying run: ranging twice does not restart the search.
func (t *Trace) States() iter.Seq[SearchState] {
	return func(yield func(SearchState) bool) {
		for {
			s, ok := t.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Done reports whether Next has returned ok == false.
func (t *Trace) Done() bool { return t.phase == phaseDone }

// Result returns the final result. ok is false while snapshots remain.
func (t *Trace) Result() (PathResult, bool) {
	if t.phase != phaseDone {
		return PathResult{}, false
	}
	return t.result, true
}

// Run drains the remaining snapshots and returns the result.
func (t *Trace) Run() PathResult {
	for {
		if _, ok := t.Next(); !ok {
			break
		}
	}
	return t.result
}

// finish records the result once the goal was visited or the heap ran dry.
func (t *Trace) finish() {
	t.phase = phaseDone
	t.result = t.resultFor(t.goal)
}

func (t *Trace) resultFor(goal string) PathResult {
	if !t.r.visited[goal] {
		return PathResult{}
	}
	return PathResult{Found: true, Distance: t.r.dist[goal], Path: t.r.pathTo(goal)}
}

func (t *Trace) emit(kind StepKind, edge *EdgeRef, candidate int64, improved bool) SearchState {
	dist, visited, frontier := t.r.snapshot()
	s := SearchState{
		Seq:       t.seq,
		Kind:      kind,
		Current:   t.cur,
		Distance:  dist,
		Visited:   visited,
		Frontier:  frontier,
		Edge:      edge,
		Candidate: candidate,
		Improved:  improved,
	}
	t.seq++

	return s
}

// ShortestPath runs a full trace from start to goal and returns its result.
func ShortestPath(g *core.Graph, start, goal string) (PathResult, error) {
	t, err := NewTrace(g, start, goal)
	if err != nil {
		return PathResult{}, err
	}

	return t.Run(), nil
}
