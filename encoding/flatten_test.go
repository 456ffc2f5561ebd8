package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kernelexpr/encoding"
	"github.com/katalvlaran/kernelexpr/kernel"
)

func TestLabel(t *testing.T) {
	l, err := encoding.Label(kernel.DefaultRegistry(), kernel.NewRBF(2))
	require.NoError(t, err)
	assert.Equal(t, "SE2", l)

	l, err = encoding.Label(nil, kernel.NewStdPeriodic(11))
	require.NoError(t, err)
	assert.Equal(t, "PER11", l)
}

func TestLabel_Unmatched(t *testing.T) {
	// Registry that knows nothing.
	_, err := encoding.Label(kernel.NewRegistry(), se0)
	assert.ErrorIs(t, err, encoding.ErrUnmatchedOperandType)

	// Registry where two codes claim the same type.
	reg := kernel.NewRegistry()
	isRBF := func(k kernel.Kernel) bool {
		_, ok := k.(*kernel.RBF)
		return ok
	}
	ctor := func(d int) kernel.Kernel { return kernel.NewRBF(d) }
	require.NoError(t, reg.Register("SE", ctor, isRBF))
	require.NoError(t, reg.Register("RBF", ctor, isRBF))
	_, err = encoding.Label(reg, se0)
	assert.ErrorIs(t, err, encoding.ErrUnmatchedOperandType)

	_, err = encoding.Label(nil, nil)
	assert.ErrorIs(t, err, encoding.ErrUnmatchedOperandType)
}

func TestFlatten_Nested(t *testing.T) {
	seq, err := encoding.Flatten(sample())
	require.NoError(t, err)
	require.Len(t, seq, 5)

	assert.Equal(t, op(se0), seq[0].Token())
	assert.Equal(t, encoding.Add, seq[1].Token())
	require.True(t, seq[2].IsGroup())
	assert.Equal(t, []encoding.Element{
		encoding.TokenElement(op(rq1)),
		encoding.TokenElement(encoding.Mul),
		encoding.TokenElement(op(per0)),
	}, seq[2].Group())
	assert.Equal(t, encoding.Add, seq[3].Token())
	assert.Equal(t, op(lin2), seq[4].Token())
}

func TestFlatten_OperandRoot(t *testing.T) {
	seq, err := encoding.Flatten(se0)
	require.NoError(t, err)
	assert.Equal(t, []encoding.Element{encoding.TokenElement(op(se0))}, seq)
}

func TestFlatten_SingleChild(t *testing.T) {
	seq, err := encoding.Flatten(kernel.NewProduct(rq1))
	require.NoError(t, err)
	assert.Equal(t, []encoding.Element{encoding.TokenElement(op(rq1))}, seq)

	// A nested single-child combinator still forms a group.
	tokens, err := encoding.FlattenToInfix(kernel.NewSum(kernel.NewProduct(rq1), se0))
	require.NoError(t, err)
	assert.Equal(t, "( RQ1 ) + SE0", text(t, tokens))
}

func TestFlatten_FreshAccumulator(t *testing.T) {
	// Repeated calls must not share state.
	a, err := encoding.FlattenToInfix(sample())
	require.NoError(t, err)
	b, err := encoding.FlattenToInfix(sample())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, b, 9)
}

func TestFlatten_Errors(t *testing.T) {
	_, err := encoding.Flatten(nil)
	assert.ErrorIs(t, err, encoding.ErrNilExpr)

	_, err = encoding.Flatten(kernel.NewSum())
	assert.ErrorIs(t, err, encoding.ErrEmptyExpression)

	_, err = encoding.FlattenToInfix(kernel.NewSum(se0, kernel.NewProduct()))
	assert.ErrorIs(t, err, encoding.ErrEmptyExpression)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		expr kernel.Expr
		want string
	}{
		{"operand", se0, "SE0"},
		{"flat sum", kernel.NewSum(se0, rq1, lin2), "SE0 + RQ1 + LIN2"},
		{"nested", sample(), "SE0 + ( RQ1 * PER0 ) + LIN2"},
		{
			"deep",
			kernel.NewProduct(kernel.NewSum(se0, kernel.NewProduct(rq1, lin2)), per0),
			"( SE0 + ( RQ1 * LIN2 ) ) * PER0",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := encoding.FlattenToInfix(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, text(t, tokens))
		})
	}
}

func TestTokenize_HandBuiltGroups(t *testing.T) {
	seq := []encoding.Element{
		encoding.GroupElement([]encoding.Element{
			encoding.TokenElement(op(se0)),
			encoding.TokenElement(encoding.Add),
			encoding.GroupElement([]encoding.Element{encoding.TokenElement(op(rq1))}),
		}),
		encoding.TokenElement(encoding.Mul),
		encoding.TokenElement(op(per0)),
	}
	assert.Equal(t, []encoding.Token{
		encoding.Open, op(se0), encoding.Add, encoding.Open, op(rq1), encoding.Close, encoding.Close,
		encoding.Mul, op(per0),
	}, encoding.Tokenize(seq))
}

func TestTokensString_Invalid(t *testing.T) {
	_, err := encoding.TokensString([]encoding.Token{{}}, nil)
	assert.ErrorIs(t, err, encoding.ErrInvalidToken)

	_, err = encoding.TokensString([]encoding.Token{op(se0)}, kernel.NewRegistry())
	assert.ErrorIs(t, err, encoding.ErrUnmatchedOperandType)
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "+", encoding.Add.String())
	assert.Equal(t, ")", encoding.Close.String())
	assert.Equal(t, "RQ1", op(rq1).String())
	assert.Equal(t, "<invalid>", encoding.Token{}.String())
}
