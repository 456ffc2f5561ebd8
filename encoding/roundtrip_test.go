package encoding_test

import (
	"hash/fnv"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kernelexpr/builder"
	"github.com/katalvlaran/kernelexpr/encoding"
	"github.com/katalvlaran/kernelexpr/kernel"
)

// leafValue maps a label to a pseudo-random ring element.
func leafValue(t *testing.T, k kernel.Kernel) uint64 {
	t.Helper()
	l, err := encoding.Label(nil, k)
	require.NoError(t, err)
	h := fnv.New64a()
	_, _ = h.Write([]byte(l))
	return h.Sum64() | 1
}

// evalExpr evaluates e over uint64 with wrap-around; + and * stay
// commutative and associative, so equal values mean equal structure
// modulo bracketing.
func evalExpr(t *testing.T, e kernel.Expr) uint64 {
	switch n := e.(type) {
	case *kernel.Sum:
		var acc uint64
		for _, p := range n.Parts() {
			acc += evalExpr(t, p)
		}
		return acc
	case *kernel.Product:
		acc := uint64(1)
		for _, p := range n.Parts() {
			acc *= evalExpr(t, p)
		}
		return acc
	case kernel.Kernel:
		return leafValue(t, n)
	}
	t.Fatalf("unexpected expression %T", e)
	return 0
}

func evalNode(t *testing.T, n *encoding.Node) uint64 {
	v := n.Value()
	if v.IsOperand() {
		return leafValue(t, v.Operand())
	}
	l, r := evalNode(t, n.Left()), evalNode(t, n.Right())
	if v.Symbol() == encoding.SymMul {
		return l * r
	}
	return l + r
}

func TestRoundTrip_RandomExpressions(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		nOperands := 1 + int(seed%13)
		expr, err := builder.Random(nOperands,
			builder.WithSeed(seed), builder.WithDims(3), builder.WithMaxArity(4))
		require.NoError(t, err)

		tree, err := encoding.Encode(expr)
		require.NoError(t, err, "seed %d", seed)

		// Strict binary shape.
		require.NoError(t, tree.Validate(), "seed %d", seed)
		nodes := tree.Postorder()
		require.Len(t, nodes, 2*nOperands-1, "seed %d", seed)
		for _, n := range nodes {
			assert.Equal(t, n.Left() == nil, n.Right() == nil)
			assert.Equal(t, n.Value().IsOperator(), !n.IsLeaf())
		}

		// Postorder selection enumerates the reference order.
		for i, want := range nodes {
			got, err := tree.SelectPostorder(i)
			require.NoError(t, err)
			require.Same(t, want, got, "seed %d index %d", seed, i)
		}
		_, err = tree.SelectPostorder(len(nodes))
		require.ErrorIs(t, err, encoding.ErrIndexOutOfRange)

		// Same multiset of operand labels.
		var wantLabels, gotLabels []string
		kernel.Walk(expr, func(k kernel.Kernel) {
			l, _ := encoding.Label(nil, k)
			wantLabels = append(wantLabels, l)
		})
		for _, n := range nodes {
			if n.IsLeaf() {
				gotLabels = append(gotLabels, n.Label())
			}
		}
		sort.Strings(wantLabels)
		sort.Strings(gotLabels)
		assert.Equal(t, wantLabels, gotLabels, "seed %d", seed)

		// Same meaning as an operator expression.
		assert.Equal(t, evalExpr(t, expr), evalNode(t, tree.Root()), "seed %d: %s", seed, tree.Infix())

		// Decoding and re-encoding is stable.
		back, err := tree.Expr()
		require.NoError(t, err)
		assert.Equal(t, evalExpr(t, expr), evalExpr(t, back))
	}
}
