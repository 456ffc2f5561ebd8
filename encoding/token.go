package encoding

import (
	"fmt"

	"github.com/katalvlaran/kernelexpr/kernel"
)

// Kind tags the variant held by a Token.
type Kind uint8

const (
	// KindInvalid is the zero Kind; the zero Token carries it.
	KindInvalid Kind = iota
	// KindOperand marks a base-kernel operand.
	KindOperand
	// KindOperator marks "+" or "*".
	KindOperator
	// KindParen marks "(" or ")".
	KindParen
)

// Operator and parenthesis symbols.
const (
	SymAdd   byte = '+'
	SymMul   byte = '*'
	SymOpen  byte = '('
	SymClose byte = ')'
)

// Token is the exchange unit between tokenizer, precedence parser and tree
// builder: an operator, a parenthesis, or a base-kernel operand.
type Token struct {
	kind    Kind
	sym     byte
	operand kernel.Kernel
}

// Predefined operator and parenthesis tokens.
var (
	Add   = Token{kind: KindOperator, sym: SymAdd}
	Mul   = Token{kind: KindOperator, sym: SymMul}
	Open  = Token{kind: KindParen, sym: SymOpen}
	Close = Token{kind: KindParen, sym: SymClose}
)

// NewOperand wraps a base kernel into an operand token.
func NewOperand(k kernel.Kernel) Token {
	return Token{kind: KindOperand, operand: k}
}

// Kind returns the token variant.
func (t Token) Kind() Kind { return t.kind }

// Symbol returns the operator or parenthesis byte, or 0 for operands.
func (t Token) Symbol() byte { return t.sym }

// Operand returns the wrapped base kernel, or nil for non-operands.
func (t Token) Operand() kernel.Kernel { return t.operand }

// IsOperand reports whether t wraps a base kernel.
func (t Token) IsOperand() bool { return t.kind == KindOperand }

// IsOperator reports whether t is "+" or "*".
func (t Token) IsOperator() bool { return t.kind == KindOperator }

// IsOpen reports whether t is "(".
func (t Token) IsOpen() bool { return t.kind == KindParen && t.sym == SymOpen }

// IsClose reports whether t is ")".
func (t Token) IsClose() bool { return t.kind == KindParen && t.sym == SymClose }

// String renders operators and parentheses as their symbol and operands
// with the default registry label. Operands the default registry cannot
// label render as their Go type.
func (t Token) String() string {
	switch t.kind {
	case KindOperator, KindParen:
		return string(t.sym)
	case KindOperand:
		if l, err := Label(defaultRegistry, t.operand); err == nil {
			return l
		}
		return fmt.Sprintf("%T", t.operand)
	}
	return "<invalid>"
}
