package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kernelexpr/encoding"
)

func TestInfixToPostfix(t *testing.T) {
	var (
		a, b, c       = op(se0), op(rq1), op(lin2)
		add, mul      = encoding.Add, encoding.Mul
		open, closeTk = encoding.Open, encoding.Close
	)

	tests := []struct {
		name  string
		infix []encoding.Token
		want  []encoding.Token
	}{
		{"single operand", []encoding.Token{a}, []encoding.Token{a}},
		{"precedence", []encoding.Token{a, add, b, mul, c}, []encoding.Token{a, b, c, mul, add}},
		{"precedence reversed", []encoding.Token{a, mul, b, add, c}, []encoding.Token{a, b, mul, c, add}},
		{"left assoc sum", []encoding.Token{a, add, b, add, c}, []encoding.Token{a, b, add, c, add}},
		{"left assoc product", []encoding.Token{a, mul, b, mul, c}, []encoding.Token{a, b, mul, c, mul}},
		{"grouping", []encoding.Token{open, a, add, b, closeTk, mul, c}, []encoding.Token{a, b, add, c, mul}},
		{"nested groups", []encoding.Token{open, open, a, closeTk, closeTk}, []encoding.Token{a}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := encoding.InfixToPostfix(tc.infix)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInfixToPostfix_FromKernel(t *testing.T) {
	infix, err := encoding.FlattenToInfix(sample())
	require.NoError(t, err)
	postfix, err := encoding.InfixToPostfix(infix)
	require.NoError(t, err)
	assert.Equal(t, "SE0 RQ1 PER0 * + LIN2 +", text(t, postfix))
}

func TestInfixToPostfix_Errors(t *testing.T) {
	a := op(se0)

	_, err := encoding.InfixToPostfix([]encoding.Token{a, encoding.Close})
	assert.ErrorIs(t, err, encoding.ErrUnbalancedParens)

	_, err = encoding.InfixToPostfix([]encoding.Token{encoding.Open, a})
	assert.ErrorIs(t, err, encoding.ErrUnbalancedParens)

	_, err = encoding.InfixToPostfix([]encoding.Token{a, {}})
	assert.ErrorIs(t, err, encoding.ErrInvalidToken)

	got, err := encoding.InfixToPostfix(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
