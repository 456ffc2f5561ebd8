// SPDX-License-Identifier: MIT
// Package: kernelexpr/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil                      (stochastic generators require WithSeed/WithRand)
//   • reg         = kernel.DefaultRegistry() (SE, RQ, LIN, PER)
//   • codes       = nil                      (all registry codes, registry order)
//   • dims        = 1
//   • productProb = DefaultProductProbability
//   • maxArity    = MinArity                 (binary combinators)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/kernelexpr/kernel"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Base-kernel vocabulary.
	reg *kernel.Registry
	// Codes to draw from; nil means every registry code.
	codes []kernel.Code
	// Number of input dimensions leaves are drawn from.
	dims int
	// Chance that a combinator is a Product.
	productProb float64
	// Upper bound on parts per combinator.
	maxArity int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		reg:         kernel.DefaultRegistry(),
		codes:       nil,
		dims:        MinDims,
		productProb: DefaultProductProbability,
		maxArity:    MinArity,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// resolveCodes returns the configured codes, or every registry code, after
// checking that each one is registered.
// Complexity: O(len(codes)).
func (c builderConfig) resolveCodes(method string) ([]kernel.Code, error) {
	if c.codes == nil {
		return c.reg.Codes(), nil
	}
	for _, code := range c.codes {
		if !c.reg.Has(code) {
			return nil, builderErrorf(method, "code %q: %w", code, kernel.ErrUnknownCode)
		}
	}
	return c.codes, nil
}
