// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import "math"

// validateMin ensures that got ≥ min, returning ErrTooFewVertices otherwise.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "n=%d < min=%d: %w", got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability ensures p ∈ [MinProbability, MaxProbability]. NaN is rejected.
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return builderErrorf(method, "p=%.6f not in [%.1f,%.1f]: %w",
			p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateNodeSet rejects empty and repeated IDs.
func validateNodeSet(method string, nodes []string) error {
	seen := make(map[string]struct{}, len(nodes))
	for i, id := range nodes {
		if id == "" {
			return builderErrorf(method, "node %d is empty: %w", i, ErrDuplicateVertex)
		}
		if _, dup := seen[id]; dup {
			return builderErrorf(method, "node %q repeated: %w", id, ErrDuplicateVertex)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// validateGenerator runs every RandomConnected precondition in priority order:
// size, node set, probability, weight range.
func validateGenerator(method string, nodes []string, p float64, wr WeightRange) error {
	if err := validateMin(method, len(nodes), MinConnectedNodes); err != nil {
		return err
	}
	if err := validateNodeSet(method, nodes); err != nil {
		return err
	}
	if err := validateProbability(method, p); err != nil {
		return err
	}
	if err := wr.Validate(); err != nil {
		return builderErrorf(method, "%w", err)
	}

	return nil
}
