package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Infinity is the distance of a vertex that has not been reached.
const Infinity int64 = math.MaxInt64

// ErrInvalidArgument is the class of every error returned before a search
// starts. No snapshot or distance map is produced when it is returned.
var ErrInvalidArgument = errors.New("dijkstra: invalid argument")

var (
	// ErrEmptySource is returned by Dijkstra when no Source option was given.
	ErrEmptySource = fmt.Errorf("%w: source vertex ID is empty", ErrInvalidArgument)

	// ErrNilGraph is returned for a nil *core.Graph.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidArgument)

	// ErrVertexNotFound is wrapped with the ID of the missing endpoint.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found in graph", ErrInvalidArgument)

	// ErrNegativeWeight is wrapped with the first offending edge.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight encountered", ErrInvalidArgument)

	// ErrBadMaxDistance is the panic value of WithMaxDistance(<0).
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold is the panic value of WithInfEdgeThreshold(≤0).
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures an all-targets Dijkstra run. A Trace always uses
// DefaultOptions for its start vertex.
type Options struct {
	Source           string // vertex the distances are measured from
	ReturnPath       bool   // return the predecessor map as well
	MaxDistance      int64  // vertices farther than this stay at Infinity
	InfEdgeThreshold int64  // edges with weight ≥ this are never walked; Infinity disables it
}

// Option mutates Options.
type Option func(*Options)

// Source selects the vertex the distances are measured from. Required.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath makes Dijkstra return the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance stops relaxation past max. Panics on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold turns every edge with weight ≥ threshold into a
// wall. Panics on a zero or negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions returns the options for source with no distance cap, no
// walls and no predecessor map. source is validated by the caller.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
