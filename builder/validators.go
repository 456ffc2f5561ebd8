// Package builder provides validation helpers to enforce
// parameter contracts in generators.
//
// Each function returns a formatted error via builderErrorf
// when its precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: <sentinel>" otherwise.
//
// Parameters:
//   - method:   generator name constant, e.g. MethodRandom.
//   - got:      actual value supplied by user.
//   - min:      minimal acceptable value.
//   - sentinel: error class to wrap.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int, sentinel error) error {
	if got < min {
		// wrap with builderErrorf to maintain uniform error prefix
		return builderErrorf(method, "parameter must be ≥ %d, got %d: %w", min, got, sentinel)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Returns "<Method>: probability must be in [0.0,1.0], got <p>" if out of range.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, "probability must be in [%.1f,%.1f], got %f: %w",
			MinProbability, MaxProbability, p, ErrInvalidProbability)
	}

	return nil
}
