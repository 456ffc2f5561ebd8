package encoding

import (
	"fmt"
	"strings"
)

// Node is one unit of a binary expression tree. Operator nodes own exactly
// two children once construction completes; operand nodes own none.
//
// parent is a non-owning back-reference used only for upward walks
// (tree construction, splicing). Children are owned by their parent.
type Node struct {
	value  Token
	label  string
	left   *Node
	right  *Node
	parent *Node
	reg    CodeMatcher
}

// newNode returns a detached node holding t, its label already derived.
func newNode(t Token, reg CodeMatcher) (*Node, error) {
	label, err := tokenLabel(reg, t)
	if err != nil {
		return nil, err
	}
	return &Node{value: t, label: label, reg: reg}, nil
}

// Value returns the token stored at n.
func (n *Node) Value() Token { return n.value }

// Label returns the display label of n: "+", "*" or "<code><dim>".
func (n *Node) Label() string { return n.label }

// Left returns the left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil.
func (n *Node) Right() *Node { return n.right }

// Parent returns the parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// String returns the label of n.
func (n *Node) String() string { return n.label }

// SetValue replaces the token held by n and recomputes its label.
// The token kind must fit the node's shape: operators on nodes with two
// children, operands on leaves. On error n is left unchanged.
func (n *Node) SetValue(t Token) error {
	if n == nil {
		return ErrNilNode
	}
	switch {
	case t.IsOperator() && (n.left == nil || n.right == nil):
		return fmt.Errorf("SetValue: operator %q on a leaf: %w", t.sym, ErrInvalidToken)
	case t.IsOperand() && !n.IsLeaf():
		return fmt.Errorf("SetValue: operand on an inner node: %w", ErrInvalidToken)
	}
	label, err := tokenLabel(n.reg, t)
	if err != nil {
		return fmt.Errorf("SetValue: %w", err)
	}
	n.value, n.label = t, label
	return nil
}

// Tree is a strict binary expression tree. The zero Tree is empty.
type Tree struct {
	root *Node
	reg  CodeMatcher
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of nodes in t.
func (t *Tree) Len() int { return countNodes(t.root) }

func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

// Infix renders t as "(<left><label><right>)". Only operator nodes are
// parenthesized; an empty tree renders as "".
func (t *Tree) Infix() string {
	var sb strings.Builder
	writeInfix(&sb, t.root)
	return sb.String()
}

// String is Infix.
func (t *Tree) String() string { return t.Infix() }

func writeInfix(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	op := n.value.IsOperator()
	if op {
		sb.WriteByte('(')
	}
	writeInfix(sb, n.left)
	sb.WriteString(n.label)
	writeInfix(sb, n.right)
	if op {
		sb.WriteByte(')')
	}
}

// SelectPostorder returns the node at 0-based postorder position index
// (left subtree, right subtree, self). The walk is iterative and stops as
// soon as the position is reached. Indices outside [0, Len()) fail with
// ErrIndexOutOfRange.
func (t *Tree) SelectPostorder(index int) (*Node, error) {
	if index < 0 {
		return nil, fmt.Errorf("SelectPostorder(%d): %w", index, ErrIndexOutOfRange)
	}

	var (
		node  = t.root
		stack []*Node
		last  *Node
		i     int
	)
	for len(stack) != 0 || node != nil {
		if node != nil {
			stack = append(stack, node)
			node = node.left
			continue
		}
		peek := stack[len(stack)-1]
		if peek.right != nil && last != peek.right {
			node = peek.right
			continue
		}
		if i == index {
			return peek, nil
		}
		last = peek
		stack = stack[:len(stack)-1]
		i++
	}

	return nil, fmt.Errorf("SelectPostorder(%d): tree has %d nodes: %w", index, i, ErrIndexOutOfRange)
}

// Postorder returns every node of t in postorder.
func (t *Tree) Postorder() []*Node {
	out := make([]*Node, 0, t.Len())
	return appendPostorder(out, t.root)
}

func appendPostorder(acc []*Node, n *Node) []*Node {
	if n == nil {
		return acc
	}
	acc = appendPostorder(acc, n.left)
	acc = appendPostorder(acc, n.right)
	return append(acc, n)
}

// Validate checks the strict binary shape: every operator node has two
// children, every operand node has none, and parent links are consistent.
func (t *Tree) Validate() error {
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("Validate: root has a parent: %w", ErrMalformedPostfix)
	}
	for i, n := range t.Postorder() {
		switch {
		case n.value.IsOperator() && (n.left == nil || n.right == nil):
			return fmt.Errorf("Validate: node %d (%s) lacks a child: %w", i, n.label, ErrMalformedPostfix)
		case n.value.IsOperand() && !n.IsLeaf():
			return fmt.Errorf("Validate: operand node %d (%s) has children: %w", i, n.label, ErrMalformedPostfix)
		case !n.value.IsOperator() && !n.value.IsOperand():
			return fmt.Errorf("Validate: node %d: %w", i, ErrInvalidToken)
		}
		if (n.left != nil && n.left.parent != n) || (n.right != nil && n.right.parent != n) {
			return fmt.Errorf("Validate: node %d (%s) has a stale parent link: %w", i, n.label, ErrMalformedPostfix)
		}
	}
	return nil
}
