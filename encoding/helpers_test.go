package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kernelexpr/encoding"
	"github.com/katalvlaran/kernelexpr/kernel"
)

var (
	se0  = kernel.NewRBF(0)
	rq1  = kernel.NewRatQuad(1)
	lin2 = kernel.NewLinear(2)
	per0 = kernel.NewStdPeriodic(0)
)

// op wraps a base kernel as an operand token.
func op(k kernel.Kernel) encoding.Token { return encoding.NewOperand(k) }

// text renders tokens with the default registry.
func text(t *testing.T, tokens []encoding.Token) string {
	t.Helper()
	s, err := encoding.TokensString(tokens, nil)
	require.NoError(t, err)
	return s
}

// sample is SE0 + (RQ1 * PER0) + LIN2.
func sample() kernel.Expr {
	return kernel.NewSum(se0, kernel.NewProduct(rq1, per0), lin2)
}

// mustEncode runs the full pipeline and fails the test on error.
func mustEncode(t *testing.T, e kernel.Expr) *encoding.Tree {
	t.Helper()
	tree, err := encoding.Encode(e)
	require.NoError(t, err)
	return tree
}

// labelsOf returns the labels of nodes.
func labelsOf(nodes []*encoding.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Label()
	}
	return out
}
