package encoding

import (
	"fmt"

	"github.com/katalvlaran/kernelexpr/kernel"
)

// BuildTree builds a strict binary expression tree from postfix tokens.
//
// The last token becomes the root. The remaining tokens are consumed from
// second-to-last to first: the cursor climbs parent links until it reaches
// an operator with a free slot, the new node fills that operator's right
// slot if empty and its left slot otherwise, and the cursor moves to the
// new node. Right slots therefore fill before left slots.
//
// Errors:
//   - ErrEmptyExpression   if postfix is empty.
//   - ErrMalformedPostfix  if the cursor climbs past the root, if an operator
//     is left without two children, or if postfix holds a parenthesis.
//   - ErrUnmatchedOperandType if an operand cannot be labelled.
func BuildTree(postfix []Token, opts ...Option) (*Tree, error) {
	// 1. Validate input
	if len(postfix) == 0 {
		return nil, fmt.Errorf("BuildTree: %w", ErrEmptyExpression)
	}

	// 2. Apply options
	o := resolveOptions(opts)

	// 3. Root from the last token
	last := len(postfix) - 1
	root, err := newTreeNode(postfix[last], last, o.Registry)
	if err != nil {
		return nil, err
	}
	tree := &Tree{root: root, reg: o.Registry}

	// 4. Attach remaining tokens right to left
	cur := root
	for i := last - 1; i >= 0; i-- {
		for !cur.value.IsOperator() || (cur.left != nil && cur.right != nil) {
			if cur.parent == nil {
				return nil, fmt.Errorf("BuildTree: token %d has no free operand slot: %w", i, ErrMalformedPostfix)
			}
			cur = cur.parent
		}

		node, err := newTreeNode(postfix[i], i, o.Registry)
		if err != nil {
			return nil, err
		}
		node.parent = cur
		if cur.right == nil {
			cur.right = node
		} else {
			cur.left = node
		}
		cur = node
	}

	// 5. Reject operators left short of children
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("BuildTree: %w", err)
	}

	return tree, nil
}

func newTreeNode(t Token, pos int, reg CodeMatcher) (*Node, error) {
	if t.kind == KindParen {
		return nil, fmt.Errorf("BuildTree: token %d is %q: %w", pos, t.sym, ErrMalformedPostfix)
	}
	n, err := newNode(t, reg)
	if err != nil {
		return nil, fmt.Errorf("BuildTree: token %d: %w", pos, err)
	}
	return n, nil
}

// Encode runs the whole pipeline on expr: flatten, tokenize, convert to
// postfix and build the binary tree.
func Encode(expr kernel.Expr, opts ...Option) (*Tree, error) {
	infix, err := FlattenToInfix(expr)
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}
	postfix, err := InfixToPostfix(infix)
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}
	tree, err := BuildTree(postfix, opts...)
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}
	return tree, nil
}
