// SPDX-License-Identifier: MIT
// Package: kernelexpr/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - All public generators are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical expressions.
//   - Safety: never panic at run time; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kernelexpr/kernel"
)

// BaseKernels returns every configured base kernel on every single input
// dimension in [0, nDims): for each code (registry order, or WithCodes order)
// dims ascending. The result has len(codes)*nDims kernels.
//
// Errors:
//   - ErrTooFewDims if nDims < MinDims.
//   - kernel.ErrUnknownCode if WithCodes names an unregistered code.
//
// Complexity: O(len(codes) * nDims).
func BaseKernels(nDims int, opts ...BuilderOption) ([]kernel.Kernel, error) {
	cfg := newBuilderConfig(opts...)
	out, err := baseKernels(cfg, nDims)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBaseKernels, err)
	}
	return out, nil
}

// Random returns a random combination kernel over nOperands base-kernel
// leaves. Leaves draw their code uniformly from the configured codes and
// their dimension uniformly from [0, WithDims). Adjacent runs of 2..maxArity
// expressions are then merged into Sum or Product combinators until one
// expression remains. nOperands == 1 yields a single base kernel.
//
// Errors:
//   - ErrTooFewOperands if nOperands < MinOperands.
//   - ErrInvalidProbability if WithProductProbability is outside [0,1].
//   - ErrNeedRandSource without WithSeed/WithRand.
//   - kernel.ErrUnknownCode if WithCodes names an unregistered code.
//
// Complexity: O(nOperands) draws, O(nOperands²) worst-case slice moves.
func Random(nOperands int, opts ...BuilderOption) (kernel.Expr, error) {
	cfg := newBuilderConfig(opts...)
	expr, err := randomExpr(cfg, nOperands)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRandom, err)
	}
	return expr, nil
}
