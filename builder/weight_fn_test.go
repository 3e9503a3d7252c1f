// Package builder_test contains unit tests for the WeightFn implementations
// and WeightRange, covering both correct behavior and panic conditions.
package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathtrace/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformIntWeightFn_minZero", func() builder.WeightFn {
			return builder.UniformIntWeightFn(builder.WeightRange{Min: 0, Max: 5})
		}},
		{"UniformIntWeightFn_maxLessThanMin", func() builder.WeightFn {
			return builder.UniformIntWeightFn(builder.WeightRange{Min: 5, Max: 4})
		}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	if w := builder.ConstantWeightFn(7)(rng); w != 7 {
		t.Errorf("ConstantWeightFn(7): got %d", w)
	}

	wr := builder.WeightRange{Min: 3, Max: 6}
	uni := builder.UniformIntWeightFn(wr)
	if w := uni(nil); w != wr.Min {
		t.Errorf("UniformIntWeightFn(nil rng): expected %d, got %d", wr.Min, w)
	}
	seen := make(map[int64]bool)
	for i := 0; i < 500; i++ {
		w := uni(rng)
		if !wr.Contains(w) {
			t.Fatalf("UniformIntWeightFn: %d outside %s", w, wr)
		}
		seen[w] = true
	}
	if len(seen) != 4 {
		t.Errorf("UniformIntWeightFn: expected all 4 values in 500 draws, saw %v", seen)
	}
}

// TestWeightRangeValidate checks the accepted and rejected ranges.
func TestWeightRangeValidate(t *testing.T) {
	t.Parallel()

	valid := []builder.WeightRange{{1, 1}, {1, 10}, {5, 5}}
	for _, wr := range valid {
		if err := wr.Validate(); err != nil {
			t.Errorf("Validate(%s) = %v; want nil", wr, err)
		}
	}
	invalid := []builder.WeightRange{{0, 10}, {-3, 2}, {5, 4}}
	for _, wr := range invalid {
		err := wr.Validate()
		if !errors.Is(err, builder.ErrBadWeightRange) || !errors.Is(err, builder.ErrConfiguration) {
			t.Errorf("Validate(%s) = %v; want ErrBadWeightRange", wr, err)
		}
	}
}
