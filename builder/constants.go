// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodRandomConnected is the canonical name for the RandomConnected constructor.
	MethodRandomConnected = "RandomConnected"
	// MethodGenerate is the canonical name for the Generate facade.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinConnectedNodes is the smallest node set RandomConnected accepts.
// A single vertex has no pair to join.
const MinConnectedNodes = 2

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the weight used by Path when no weight function is set.
const DefaultEdgeWeight int64 = 1

// MinProbability and MaxProbability bound the extra-edge probability, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// MinEdgeWeight is the smallest weight a WeightRange may produce.
const MinEdgeWeight int64 = 1

// DefaultSeed seeds Generate when the caller supplies no RNG, keeping the
// facade pure given its inputs.
const DefaultSeed int64 = 1

// DefaultExtraEdgeProbability is the chance of each extra edge.
const DefaultExtraEdgeProbability = 0.25

// DefaultNodeCount is the size of DefaultNodes.
const DefaultNodeCount = 7

// DefaultWeightRange bounds edge weights when none is configured.
var DefaultWeightRange = WeightRange{Min: 1, Max: 10}

// DefaultNodes returns the default node set A..G.
func DefaultNodes() []string {
	return Alphabet(DefaultNodeCount, SymbolIDFn)
}
