// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// impl_random_connected.go - implementation of RandomConnected(nodes, p, wr).
//
// Contract:
//   - len(nodes) ≥ 2, IDs non-empty and unique, 0 ≤ p ≤ 1, 1 ≤ wr.Min ≤ wr.Max.
//   - Requires cfg.rng != nil (ErrNeedRandSource otherwise).
//   - Graph must be weighted and undirected; mode mismatches surface as core errors.
//
// RNG consumption order (fixed, so a seed reproduces the graph):
//  1. rng.Shuffle over a copy of nodes.
//  2. One weight draw per spanning-path edge, in shuffled order.
//  3. For each pair (i<j) in the caller's order: one Float64 draw; on success
//     and only if the pair is not yet joined, one weight draw.
//
// Complexity:
//   - Time: O(k²) pair checks.
//   - Space: O(k) for the shuffled copy.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// RandomConnected returns a Constructor that adds the given nodes to g and
// joins them into a connected simple graph: a random spanning path plus
// each remaining pair with probability p. Weights are uniform over wr.
func RandomConnected(nodes []string, p float64, wr WeightRange) Constructor {
	// Capture a private copy; later caller mutations must not leak in.
	ids := append([]string(nil), nodes...)

	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateGenerator(MethodRandomConnected, ids, p, wr); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomConnected, "%w", ErrNeedRandSource)
		}

		for _, id := range ids {
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodRandomConnected, id, err)
			}
		}

		// 1) Spanning path over a shuffled order.
		order := append([]string(nil), ids...)
		cfg.rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		for i := 1; i < len(order); i++ {
			u, v := order[i-1], order[i]
			w := wr.draw(cfg.rng)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s, w=%d): %w", MethodRandomConnected, u, v, w, err)
			}
		}

		// 2) Extra edges; the coin is tossed before the existence check.
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if cfg.rng.Float64() >= p || g.HasEdge(ids[i], ids[j]) {
					continue
				}
				w := wr.draw(cfg.rng)
				if _, err := g.AddEdge(ids[i], ids[j], w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s—%s, w=%d): %w", MethodRandomConnected, ids[i], ids[j], w, err)
				}
			}
		}

		return nil
	}
}
