package encoding

import (
	"fmt"

	"github.com/katalvlaran/kernelexpr/kernel"
)

// Expr decodes t into a kernel expression. Every operator node becomes a
// two-part kernel.Sum or kernel.Product (left part first); no flattening
// of same-operator chains is performed.
func (t *Tree) Expr() (kernel.Expr, error) {
	if t.root == nil {
		return nil, fmt.Errorf("Expr: %w", ErrEmptyExpression)
	}
	return decodeNode(t.root)
}

func decodeNode(n *Node) (kernel.Expr, error) {
	switch n.value.kind {
	case KindOperand:
		return n.value.operand, nil
	case KindOperator:
		if n.left == nil || n.right == nil {
			return nil, fmt.Errorf("Expr: operator %q lacks a child: %w", n.label, ErrMalformedPostfix)
		}
		l, err := decodeNode(n.left)
		if err != nil {
			return nil, err
		}
		r, err := decodeNode(n.right)
		if err != nil {
			return nil, err
		}
		if n.value.sym == SymMul {
			return kernel.NewProduct(l, r), nil
		}
		return kernel.NewSum(l, r), nil
	}
	return nil, fmt.Errorf("Expr: %w", ErrInvalidToken)
}
