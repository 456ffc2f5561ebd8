// Package encoding converts n-ary kernel expressions into the tokenized and
// strict-binary forms an evolutionary kernel search mutates and recombines.
//
// Pipeline:
//
//	kernel.Expr ──Flatten──▶ []Element ──Tokenize──▶ infix []Token
//	            ──InfixToPostfix──▶ postfix []Token ──BuildTree──▶ *Tree
//
// Key features:
//   - Flatten: inorder walk of Sum/Product combinators; siblings are joined by
//     the combinator's operator, nested combinators become nested groups.
//   - Tokenize: groups become explicit "(" ... ")" tokens.
//   - InfixToPostfix: shunting-yard with precedence "*"=3, "+"=1, "("=0;
//     chains of the same operator stay left-associative.
//   - BuildTree: right-to-left walk over postfix tokens; each operator fills
//     its right slot before its left slot.
//   - Tree: infix rendering, postorder-indexed selection, subtree extraction
//     and replacement for mutation/crossover, DOT export, decoding back to
//     a kernel.Expr.
//
// Labels:
//
//	Operands render as "<code><dim>", e.g. "SE0", where code is the single
//	registry code the base kernel matches. Operator nodes render as "+"/"*".
//	A node's label is recomputed whenever its value changes.
//
// Complexity:
//
//   - Flatten, Tokenize, InfixToPostfix: O(T) for T tokens.
//   - BuildTree: O(T) amortized; each node is climbed past at most once.
//   - SelectPostorder: O(i + h) for index i and tree height h, no allocation
//     beyond the walk stack.
//
// Errors:
//
//   - ErrUnmatchedOperandType  operand matches zero or several registry codes.
//   - ErrUnbalancedParens      ")" without "(" or "(" never closed.
//   - ErrEmptyExpression       no tokens, or a combinator without parts.
//   - ErrMalformedPostfix      operator/operand count mismatch in postfix input.
//   - ErrIndexOutOfRange       postorder index outside [0, Len()).
//   - ErrNilExpr, ErrNilNode, ErrForeignNode, ErrInvalidToken for misuse.
//
// The package holds no shared mutable state. A *Tree is owned by its caller
// and must not be mutated concurrently.
package encoding
