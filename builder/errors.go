// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Every validation sentinel wraps ErrConfiguration, so callers can branch
//     on the class (errors.Is(err, ErrConfiguration)) or the exact cause.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the class of all invalid-parameter errors returned by
// the generator. No graph is produced when it is returned.
var ErrConfiguration = errors.New("builder: invalid configuration")

// ErrTooFewVertices indicates fewer vertices than the constructor needs
// (two for RandomConnected and Path).
var ErrTooFewVertices = fmt.Errorf("%w: too few vertices", ErrConfiguration)

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = fmt.Errorf("%w: probability out of range", ErrConfiguration)

// ErrBadWeightRange indicates a weight range with Min < 1 or Min > Max.
var ErrBadWeightRange = fmt.Errorf("%w: bad weight range", ErrConfiguration)

// ErrDuplicateVertex indicates an empty or repeated vertex ID in a node set.
var ErrDuplicateVertex = fmt.Errorf("%w: empty or duplicate vertex", ErrConfiguration)

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (WithSeed/WithRand not set when calling BuildGraph directly).
var ErrNeedRandSource = fmt.Errorf("%w: rng is required", ErrConfiguration)

// ErrConstructFailed indicates that the core graph rejected a mutation the
// constructor expected to succeed, or that BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the constructor name.
// Use %w in format to keep the sentinel visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
