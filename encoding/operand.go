package encoding

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/kernelexpr/kernel"
)

// CodeMatcher is the part of a kernel registry needed to label operands.
// *kernel.Registry satisfies it.
type CodeMatcher interface {
	Codes() []kernel.Code
	Matches(code kernel.Code, k kernel.Kernel) bool
}

var defaultRegistry CodeMatcher = kernel.DefaultRegistry()

// Label derives the display label "<code><dim>" of a base kernel, e.g. "SE0".
// Exactly one registry code must match k; zero or several matches fail with
// ErrUnmatchedOperandType. Only the first active dimension is used.
func Label(reg CodeMatcher, k kernel.Kernel) (string, error) {
	if k == nil {
		return "", fmt.Errorf("Label: nil operand: %w", ErrUnmatchedOperandType)
	}
	if reg == nil {
		reg = defaultRegistry
	}

	var (
		found kernel.Code
		n     int
	)
	for _, code := range reg.Codes() {
		if reg.Matches(code, k) {
			if n == 0 {
				found = code
			}
			n++
		}
	}
	if n != 1 {
		return "", fmt.Errorf("Label(%T): %d matching codes: %w", k, n, ErrUnmatchedOperandType)
	}

	return string(found) + strconv.Itoa(k.ActiveDimension()), nil
}

// tokenLabel is the label stored on tree nodes: the symbol for operators,
// the registry label for operands.
func tokenLabel(reg CodeMatcher, t Token) (string, error) {
	switch t.kind {
	case KindOperator:
		return string(t.sym), nil
	case KindOperand:
		return Label(reg, t.operand)
	}
	return "", fmt.Errorf("token %q: %w", t.String(), ErrInvalidToken)
}
