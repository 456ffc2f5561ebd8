// File: builder_impl_test.go
// Package builder_test contains functional tests for the generators,
// verifying counts, ordering, determinism and error classes.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kernelexpr/builder"
	"github.com/katalvlaran/kernelexpr/encoding"
	"github.com/katalvlaran/kernelexpr/kernel"
)

// labels returns the default-registry labels of ks.
func labels(t *testing.T, ks []kernel.Kernel) []string {
	t.Helper()
	out := make([]string, len(ks))
	for i, k := range ks {
		l, err := encoding.Label(nil, k)
		require.NoError(t, err)
		out[i] = l
	}
	return out
}

// leaves collects the base kernels of e left to right.
func leaves(e kernel.Expr) []kernel.Kernel {
	var out []kernel.Kernel
	kernel.Walk(e, func(k kernel.Kernel) { out = append(out, k) })
	return out
}

func TestBaseKernels_Order(t *testing.T) {
	t.Parallel()

	ks, err := builder.BaseKernels(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"SE0", "SE1", "RQ0", "RQ1", "LIN0", "LIN1", "PER0", "PER1"}, labels(t, ks))

	ks, err = builder.BaseKernels(3, builder.WithCodes(kernel.PER, kernel.SE))
	require.NoError(t, err)
	assert.Equal(t, []string{"PER0", "PER1", "PER2", "SE0", "SE1", "SE2"}, labels(t, ks))
}

func TestBaseKernels_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.BaseKernels(0)
	assert.ErrorIs(t, err, builder.ErrTooFewDims)

	_, err = builder.BaseKernels(1, builder.WithCodes("MAT"))
	assert.ErrorIs(t, err, kernel.ErrUnknownCode)
}

func TestRandom_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		opts []builder.BuilderOption
		want error
	}{
		{"zero operands", 0, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewOperands},
		{"no rng", 3, nil, builder.ErrNeedRandSource},
		{"bad probability", 3, []builder.BuilderOption{builder.WithSeed(1), builder.WithProductProbability(1.5)}, builder.ErrInvalidProbability},
		{"unknown code", 3, []builder.BuilderOption{builder.WithSeed(1), builder.WithCodes("MAT")}, kernel.ErrUnknownCode},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			expr, err := builder.Random(tc.n, tc.opts...)
			assert.Nil(t, expr)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandom_SingleOperand(t *testing.T) {
	t.Parallel()

	expr, err := builder.Random(1, builder.WithSeed(5))
	require.NoError(t, err)
	_, ok := expr.(kernel.Kernel)
	assert.True(t, ok, "a single operand must be a base kernel, got %T", expr)
}

func TestRandom_LeafCountAndDims(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 50; seed++ {
		expr, err := builder.Random(9, builder.WithSeed(seed), builder.WithDims(3), builder.WithMaxArity(4))
		require.NoError(t, err)

		ls := leaves(expr)
		require.Len(t, ls, 9)
		for _, k := range ls {
			assert.GreaterOrEqual(t, k.ActiveDimension(), 0)
			assert.Less(t, k.ActiveDimension(), 3)
		}
	}
}

func TestRandom_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.Random(12, builder.WithSeed(99), builder.WithMaxArity(3))
	require.NoError(t, err)
	b, err := builder.Random(12, builder.WithSeed(99), builder.WithMaxArity(3))
	require.NoError(t, err)

	ta, err := encoding.Encode(a)
	require.NoError(t, err)
	tb, err := encoding.Encode(b)
	require.NoError(t, err)
	assert.Equal(t, ta.Infix(), tb.Infix())
}

func TestRandom_OperatorBias(t *testing.T) {
	t.Parallel()

	// p=1 builds products only, p=0 sums only.
	prod, err := builder.Random(6, builder.WithSeed(3), builder.WithProductProbability(1))
	require.NoError(t, err)
	sum, err := builder.Random(6, builder.WithSeed(3), builder.WithProductProbability(0))
	require.NoError(t, err)

	tp, err := encoding.Encode(prod)
	require.NoError(t, err)
	ts, err := encoding.Encode(sum)
	require.NoError(t, err)

	assert.NotContains(t, tp.Infix(), "+")
	assert.NotContains(t, ts.Infix(), "*")
}

func TestRandom_CodesRestricted(t *testing.T) {
	t.Parallel()

	expr, err := builder.Random(20, builder.WithSeed(11), builder.WithCodes(kernel.LIN))
	require.NoError(t, err)
	for _, k := range leaves(expr) {
		assert.IsType(t, &kernel.Linear{}, k)
	}
}
