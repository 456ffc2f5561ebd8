// Package builder defines shared constants used by expression generators,
// ensuring consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBaseKernels is the canonical name for the BaseKernels generator.
	MethodBaseKernels = "BaseKernels"
	// MethodRandom is the canonical name for the Random generator.
	MethodRandom = "Random"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinOperands is the smallest expression Random can build: a single base kernel.
const MinOperands = 1

// MinDims is the smallest number of input dimensions a kernel can be active on.
const MinDims = 1

// MinArity is the smallest number of parts a generated combinator holds.
const MinArity = 2

//-----------------------------------------------------------------------------
// Defaults and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultProductProbability is the chance that a generated combinator is a
// Product rather than a Sum.
const DefaultProductProbability = 0.5

// MinProbability is the lower bound for probability parameters, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for probability parameters, inclusive.
const MaxProbability = 1.0
