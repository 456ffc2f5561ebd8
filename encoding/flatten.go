package encoding

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/kernelexpr/kernel"
)

// Element is one entry of an inorder flattening: a single token or a
// nested group produced by a nested combinator.
type Element struct {
	tok    Token
	group  []Element
	nested bool
}

// TokenElement wraps a single token.
func TokenElement(t Token) Element { return Element{tok: t} }

// GroupElement wraps a nested sequence.
func GroupElement(seq []Element) Element { return Element{group: seq, nested: true} }

// IsGroup reports whether e is a nested sequence.
func (e Element) IsGroup() bool { return e.nested }

// Token returns the wrapped token; zero for groups.
func (e Element) Token() Token { return e.tok }

// Group returns the nested sequence; nil for tokens.
func (e Element) Group() []Element { return e.group }

// Flatten walks root in order and returns its operands interleaved with
// operator tokens. Children of a combinator are joined by the combinator's
// own operator ("+" for Sum, "*" for Product); a child that is itself a
// combinator is flattened recursively and kept as one nested group.
//
// A base kernel root yields the single-element sequence [operand]. A
// combinator with one part yields no operator. A combinator without parts
// fails with ErrEmptyExpression.
func Flatten(root kernel.Expr) ([]Element, error) {
	// Every top-level call starts from a fresh accumulator.
	return flattenInto(nil, root)
}

func flattenInto(acc []Element, root kernel.Expr) ([]Element, error) {
	switch n := root.(type) {
	case *kernel.Sum:
		return flattenParts(acc, n.Parts(), Add)
	case *kernel.Product:
		return flattenParts(acc, n.Parts(), Mul)
	case kernel.Kernel:
		return append(acc, TokenElement(NewOperand(n))), nil
	}
	return nil, ErrNilExpr
}

func flattenParts(acc []Element, parts []kernel.Expr, op Token) ([]Element, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("Flatten: combinator %q without parts: %w", op.String(), ErrEmptyExpression)
	}

	children := make([]Element, 0, len(parts))
	for _, part := range parts {
		switch c := part.(type) {
		case *kernel.Sum, *kernel.Product:
			group, err := flattenInto(nil, c)
			if err != nil {
				return nil, err
			}
			children = append(children, GroupElement(group))
		case kernel.Kernel:
			children = append(children, TokenElement(NewOperand(c)))
		default:
			return nil, ErrNilExpr
		}
	}

	return append(acc, joinElements(children, op)...), nil
}

// joinElements inserts op between every adjacent pair of elems.
func joinElements(elems []Element, op Token) []Element {
	if len(elems) == 0 {
		return nil
	}
	out := make([]Element, 0, 2*len(elems)-1)
	for i, e := range elems {
		if i > 0 {
			out = append(out, TokenElement(op))
		}
		out = append(out, e)
	}
	return out
}

// Tokenize expands a flattening into a flat infix token sequence, wrapping
// each nested group in "(" and ")".
func Tokenize(seq []Element) []Token {
	return tokenizeInto(make([]Token, 0, len(seq)), seq)
}

func tokenizeInto(acc []Token, seq []Element) []Token {
	for _, e := range seq {
		if e.nested {
			acc = append(acc, Open)
			acc = tokenizeInto(acc, e.group)
			acc = append(acc, Close)
			continue
		}
		acc = append(acc, e.tok)
	}
	return acc
}

// FlattenToInfix returns the fully parenthesized infix tokens of root.
func FlattenToInfix(root kernel.Expr) ([]Token, error) {
	seq, err := Flatten(root)
	if err != nil {
		return nil, err
	}
	return Tokenize(seq), nil
}

// TokensString joins token texts with single spaces, e.g. "( SE0 + RQ1 ) * PER0".
// Operands are labelled with reg; a nil reg selects the default registry.
func TokensString(tokens []Token, reg CodeMatcher) (string, error) {
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch t.kind {
		case KindOperand:
			l, err := Label(reg, t.operand)
			if err != nil {
				return "", fmt.Errorf("TokensString: token %d: %w", i, err)
			}
			sb.WriteString(l)
		case KindOperator, KindParen:
			sb.WriteByte(t.sym)
		default:
			return "", fmt.Errorf("TokensString: token %d: %w", i, ErrInvalidToken)
		}
	}
	return sb.String(), nil
}
