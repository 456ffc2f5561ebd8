// Package builder provides deterministic, “functional-options”-style
// generators of kernel expressions for the kernel search: the full set of
// one-dimensional base kernels, and seeded random Sum/Product trees used to
// initialise populations and to drive encoder tests and benchmarks.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:          a function that mutates builderConfig before use.
//     – builderConfig:          holds RNG, registry, codes, dims, operator bias.
//   - Generators:
//     – BaseKernels(nDims):     every registered code on every dimension,
//     codes in registry order, dims ascending.
//     – Random(nOperands):      a random n-ary combination over nOperands leaves.
//   - RNG helpers:
//     – rngFromSeed, deriveRNG: reproducible streams for parallel restarts.
//   - Validation helpers:
//     – validateMin:            ensure integer ≥ minimum.
//     – validateProbability:    ensure p ∈ [0.0,1.0].
//
// Guarantees:
//
//   - Determinism: same options, same seed ⇒ identical expressions.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping package sentinels for errors.Is.
//
// Example:
//
//	expr, err := builder.Random(6, builder.WithSeed(7), builder.WithDims(2))
//	if err != nil {
//		// handle error
//	}
//	tree, err := encoding.Encode(expr)
package builder
