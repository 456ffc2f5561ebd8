// SPDX-License-Identifier: MIT
// Package: kernelexpr/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewOperands indicates that a generator was asked for fewer leaves
// than it can produce (e.g., Random(0)).
// Usage: if errors.Is(err, ErrTooFewOperands) { /* report invalid size */ }.
var ErrTooFewOperands = errors.New("builder: too few operands")

// ErrTooFewDims indicates a non-positive number of input dimensions.
// Usage: if errors.Is(err, ErrTooFewDims) { /* report invalid dims */ }.
var ErrTooFewDims = errors.New("builder: too few input dimensions")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] (WithProductProbability).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic generator requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>".
// Use %w in format to keep a sentinel reachable through errors.Is.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
