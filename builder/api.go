// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - One facade: Generate(nodes, p, wr, opts...) for the random connected graph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathtrace/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately together with a nil graph.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Generate builds a random connected, undirected, weighted simple graph over
// nodes. Every pair outside the random spanning path is joined with
// probability p; every weight is uniform over wr.
//
// Parameters are validated before any graph is allocated. When opts carry no
// RNG (WithSeed/WithRand), Generate seeds one with DefaultSeed, so the result
// is a pure function of its arguments.
//
// Errors (all match ErrConfiguration):
//   - ErrTooFewVertices     - len(nodes) < 2.
//   - ErrDuplicateVertex    - empty or repeated ID.
//   - ErrInvalidProbability - p ∉ [0,1].
//   - ErrBadWeightRange     - wr.Min < 1 or wr.Min > wr.Max.
func Generate(nodes []string, p float64, wr WeightRange, opts ...BuilderOption) (*core.Graph, error) {
	if err := validateGenerator(MethodGenerate, nodes, p, wr); err != nil {
		return nil, err
	}

	bopts := make([]BuilderOption, 0, len(opts)+1)
	bopts = append(bopts, WithRand(rand.New(rand.NewSource(DefaultSeed))))
	bopts = append(bopts, opts...)

	return BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		bopts,
		RandomConnected(nodes, p, wr),
	)
}

// GenerateDefault is Generate over DefaultNodes with
// DefaultExtraEdgeProbability and DefaultWeightRange.
func GenerateDefault(opts ...BuilderOption) (*core.Graph, error) {
	return Generate(DefaultNodes(), DefaultExtraEdgeProbability, DefaultWeightRange, opts...)
}
