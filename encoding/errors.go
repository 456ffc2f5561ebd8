package encoding

import "errors"

var (
	// ErrUnmatchedOperandType indicates that an operand matched no registry
	// code, or more than one.
	ErrUnmatchedOperandType = errors.New("encoding: operand matches no single base kernel code")

	// ErrUnbalancedParens indicates an infix sequence with a closing
	// parenthesis that has no opening partner, or the reverse.
	ErrUnbalancedParens = errors.New("encoding: unbalanced parentheses")

	// ErrEmptyExpression indicates an empty token stream or a combinator with no parts.
	ErrEmptyExpression = errors.New("encoding: empty expression")

	// ErrMalformedPostfix indicates a postfix stream whose operator and
	// operand counts do not form a single binary tree.
	ErrMalformedPostfix = errors.New("encoding: malformed postfix expression")

	// ErrIndexOutOfRange indicates a postorder index outside [0, node count).
	ErrIndexOutOfRange = errors.New("encoding: postorder index out of range")

	// ErrNilExpr indicates a nil kernel expression.
	ErrNilExpr = errors.New("encoding: kernel expression is nil")

	// ErrNilNode indicates a nil *Node argument.
	ErrNilNode = errors.New("encoding: node is nil")

	// ErrForeignNode indicates a node that does not belong to the receiving tree.
	ErrForeignNode = errors.New("encoding: node does not belong to tree")

	// ErrInvalidToken indicates a zero Token, or a token kind not allowed at
	// its position (e.g. a parenthesis stored in a tree node).
	ErrInvalidToken = errors.New("encoding: invalid token")
)
