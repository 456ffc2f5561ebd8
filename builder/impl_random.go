// SPDX-License-Identifier: MIT
// Package: kernelexpr/builder
//
// impl_random.go - implementation of Random(nOperands).
//
// Canonical model:
//   - Draw nOperands leaves: code ~ U(codes), dim ~ U[0, dims).
//   - While more than one expression remains in the pool: choose a run
//     length k ~ U[2, min(maxArity, len(pool))], a start ~ U[0, len(pool)-k],
//     an operator (Product with prob p, else Sum) and replace the run by
//     the combinator over it.
//
// Determinism:
//   - Fixed draw order (leaves first, then merges left to right in time),
//     so a fixed seed reproduces the same expression.

package builder

import "github.com/katalvlaran/kernelexpr/kernel"

func randomExpr(cfg builderConfig, nOperands int) (kernel.Expr, error) {
	// 1) Validate parameters early (fail fast, no RNG draws on invalid input).
	if err := validateMin(MethodRandom, nOperands, MinOperands, ErrTooFewOperands); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodRandom, cfg.productProb); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandom, "%w", ErrNeedRandSource)
	}
	codes, err := cfg.resolveCodes(MethodRandom)
	if err != nil {
		return nil, err
	}

	rng := cfg.rng

	// 2) Leaves.
	pool := make([]kernel.Expr, 0, nOperands)
	for i := 0; i < nOperands; i++ {
		code := codes[rng.Intn(len(codes))]
		k, err := cfg.reg.New(code, rng.Intn(cfg.dims))
		if err != nil {
			return nil, builderErrorf(MethodRandom, "leaf %d: %w", i, err)
		}
		pool = append(pool, k)
	}

	// 3) Merge adjacent runs until a single root remains.
	for len(pool) > 1 {
		hi := cfg.maxArity
		if hi > len(pool) {
			hi = len(pool)
		}
		k := MinArity + rng.Intn(hi-MinArity+1)
		start := rng.Intn(len(pool) - k + 1)

		run := make([]kernel.Expr, k)
		copy(run, pool[start:start+k])

		var merged kernel.Expr
		if rng.Float64() < cfg.productProb {
			merged = kernel.NewProduct(run...)
		} else {
			merged = kernel.NewSum(run...)
		}

		pool[start] = merged
		pool = append(pool[:start+1], pool[start+k:]...)
	}

	return pool[0], nil
}
