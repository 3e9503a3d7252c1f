// Package builder provides internal helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// WeightRange is a closed integer interval of edge weights.
type WeightRange struct {
	Min int64
	Max int64
}

// Validate reports ErrBadWeightRange unless MinEdgeWeight ≤ Min ≤ Max.
func (wr WeightRange) Validate() error {
	if wr.Min < MinEdgeWeight || wr.Min > wr.Max {
		return fmt.Errorf("%w: [%d,%d]", ErrBadWeightRange, wr.Min, wr.Max)
	}

	return nil
}

// Contains reports whether w lies within the range.
func (wr WeightRange) Contains(w int64) bool {
	return w >= wr.Min && w <= wr.Max
}

// String renders the range as "[min,max]".
func (wr WeightRange) String() string {
	return fmt.Sprintf("[%d,%d]", wr.Min, wr.Max)
}

// draw returns a uniform integer in [Min,Max]. Min is returned for a nil rng.
func (wr WeightRange) draw(rng *rand.Rand) int64 {
	if rng == nil || wr.Max == wr.Min {
		return wr.Min
	}

	return wr.Min + rng.Int63n(wr.Max-wr.Min+1)
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformIntWeightFn returns a WeightFn sampling uniformly in [wr.Min, wr.Max].
// Panics on an invalid range. With a nil rng it yields wr.Min.
func UniformIntWeightFn(wr WeightRange) WeightFn {
	if err := wr.Validate(); err != nil {
		panic(fmt.Sprintf("UniformIntWeightFn: %v", err))
	}

	return wr.draw
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U{min..max} via UniformIntWeightFn.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(WeightRange{Min: min, Max: max}))
}
