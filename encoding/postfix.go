package encoding

import "fmt"

// precedence is the shunting-yard table. "(" is the floor that stops
// operator pops at a group boundary.
var precedence = map[byte]int{
	SymMul:  3,
	SymAdd:  1,
	SymOpen: 0,
}

// InfixToPostfix converts infix tokens to postfix (reverse Polish) order
// using the shunting-yard algorithm.
//
// Operators pop every stacked operator of greater or equal precedence
// before being pushed, so "*" binds tighter than "+" and chains of one
// operator stay left-associative: A + B + C ⇒ A B + C +.
//
// A ")" with no matching "(" on the stack, or a "(" still open at the end
// of input, fails with ErrUnbalancedParens.
func InfixToPostfix(infix []Token) ([]Token, error) {
	var (
		stack = make([]Token, 0, len(infix)/2+1)
		out   = make([]Token, 0, len(infix))
	)

	for i, tok := range infix {
		switch {
		case tok.IsOperand():
			out = append(out, tok)

		case tok.IsOperator():
			for len(stack) != 0 && precedence[stack[len(stack)-1].sym] >= precedence[tok.sym] {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case tok.IsOpen():
			stack = append(stack, tok)

		case tok.IsClose():
			for {
				if len(stack) == 0 {
					return nil, fmt.Errorf("InfixToPostfix: token %d: unmatched %q: %w", i, SymClose, ErrUnbalancedParens)
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.IsOpen() {
					break
				}
				out = append(out, top)
			}

		default:
			return nil, fmt.Errorf("InfixToPostfix: token %d: %w", i, ErrInvalidToken)
		}
	}

	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.IsOpen() {
			return nil, fmt.Errorf("InfixToPostfix: unclosed %q: %w", SymOpen, ErrUnbalancedParens)
		}
		out = append(out, top)
	}

	return out, nil
}
