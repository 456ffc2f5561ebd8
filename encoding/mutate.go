package encoding

import "fmt"

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	return &Tree{root: copySubtree(t.root, nil), reg: t.reg}
}

// Subtree returns a deep copy of the subtree rooted at n as a standalone
// tree. n must belong to t.
func (t *Tree) Subtree(n *Node) (*Tree, error) {
	if err := t.owns(n); err != nil {
		return nil, fmt.Errorf("Subtree: %w", err)
	}
	return &Tree{root: copySubtree(n, nil), reg: n.reg}, nil
}

// Replace splices a deep copy of sub in place of the subtree rooted at n
// and returns the root of the inserted copy. n must belong to t; sub must
// be a non-empty, valid tree. Replacing the root replaces the whole tree.
// The detached subtree is released.
func (t *Tree) Replace(n *Node, sub *Tree) (*Node, error) {
	if err := t.owns(n); err != nil {
		return nil, fmt.Errorf("Replace: %w", err)
	}
	if sub == nil || sub.root == nil {
		return nil, fmt.Errorf("Replace: %w", ErrEmptyExpression)
	}
	if err := sub.Validate(); err != nil {
		return nil, fmt.Errorf("Replace: %w", err)
	}

	parent := n.parent
	repl := copySubtree(sub.root, parent)
	switch {
	case parent == nil:
		t.root = repl
	case parent.left == n:
		parent.left = repl
	default:
		parent.right = repl
	}
	n.parent = nil

	return repl, nil
}

// owns reports, as an error, whether n is a node of t.
func (t *Tree) owns(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	top := n
	for top.parent != nil {
		top = top.parent
	}
	if top != t.root {
		return ErrForeignNode
	}
	return nil
}

// copySubtree deep-copies n, attaching the copy to parent.
func copySubtree(n, parent *Node) *Node {
	if n == nil {
		return nil
	}
	c := &Node{value: n.value, label: n.label, parent: parent, reg: n.reg}
	c.left = copySubtree(n.left, c)
	c.right = copySubtree(n.right, c)
	return c
}
