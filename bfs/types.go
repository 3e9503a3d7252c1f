package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrUnreached is returned by PathTo and FewestHops for a vertex the
	// search never reached.
	ErrUnreached = errors.New("bfs: vertex not reached")
)

// Panic messages of option constructors.
const (
	errNegativeDepth = "bfs: WithMaxDepth(%d): depth must be ≥ 0"
)

// Option configures a search.
type Option func(*Options)

// Options holds the knobs of one search.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued vertex.
	Ctx context.Context

	// OnVisit runs when a vertex is dequeued. A non-nil error aborts the
	// search and is returned wrapped.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 stops expansion at that many edges; 0 means no limit.
	MaxDepth int

	// FollowEdge, if non-nil, decides whether the walk may cross e from
	// the vertex from.
	FollowEdge func(from string, e *core.Edge) bool
}

// DefaultOptions returns a background context, no hook, no depth limit
// and no edge filter.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a hook run for each visited vertex.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth bounds the search to depth d edges; 0 removes the bound.
// Panics if d < 0.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf(errNegativeDepth, d))
	}
	return func(o *Options) {
		o.MaxDepth = d
	}
}

// WithFollowEdge restricts the walk to edges for which fn returns true.
func WithFollowEdge(fn func(from string, e *core.Edge) bool) Option {
	return func(o *Options) {
		o.FollowEdge = fn
	}
}

// Result holds the outcome of a search.
type Result struct {
	// Order lists vertices in visit sequence.
	Order []string
	// Depth maps every reached vertex to its hop count from the start.
	Depth map[string]int
	// Parent maps every reached vertex except the start to its BFS-tree
	// predecessor.
	Parent map[string]string
}

// Reached reports whether id was reached.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo returns the BFS-tree path from the start to dest inclusive.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrUnreached, dest)
	}
	path := make([]string, r.Depth[dest]+1)
	cur := dest
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
