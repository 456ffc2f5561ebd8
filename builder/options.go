// SPDX-License-Identifier: MIT
// Package: kernelexpr/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for stochastic generators

	"github.com/katalvlaran/kernelexpr/kernel"
)

// BuilderOption customizes a generator by mutating a builderConfig instance
// before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Seed 0 maps to a fixed non-zero default seed.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRegistry selects the base-kernel vocabulary. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithRegistry(reg *kernel.Registry) BuilderOption {
	if reg == nil {
		panic("builder: WithRegistry(nil)")
	}
	return func(c *builderConfig) {
		c.reg = reg
	}
}

// WithCodes restricts generators to the given codes, in the given order.
// Panics when no code is given. Unknown codes surface as errors from the
// generator, wrapping kernel.ErrUnknownCode.
// Complexity: O(len(codes)) time and space.
func WithCodes(codes ...kernel.Code) BuilderOption {
	if len(codes) == 0 {
		panic("builder: WithCodes()")
	}
	cp := make([]kernel.Code, len(codes))
	copy(cp, codes)
	return func(c *builderConfig) {
		c.codes = cp
	}
}

// WithDims sets the number of input dimensions leaves are drawn from (≥1).
// Panics on n < MinDims.
// Complexity: O(1) time, O(1) space.
func WithDims(n int) BuilderOption {
	if n < MinDims {
		panic("builder: WithDims(n<1)")
	}
	return func(c *builderConfig) {
		c.dims = n
	}
}

// WithProductProbability sets the chance that a generated combinator is a
// Product. Out-of-range values are reported by the generator as
// ErrInvalidProbability rather than panicking, mirroring how probabilities
// are validated at run time.
// Complexity: O(1) time, O(1) space.
func WithProductProbability(p float64) BuilderOption {
	return func(c *builderConfig) {
		c.productProb = p
	}
}

// WithMaxArity caps the number of parts per generated combinator (≥2).
// Panics on k < MinArity.
// Complexity: O(1) time, O(1) space.
func WithMaxArity(k int) BuilderOption {
	if k < MinArity {
		panic("builder: WithMaxArity(k<2)")
	}
	return func(c *builderConfig) {
		c.maxArity = k
	}
}
