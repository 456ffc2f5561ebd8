package encoding_test

import (
	"fmt"

	"github.com/katalvlaran/kernelexpr/encoding"
	"github.com/katalvlaran/kernelexpr/kernel"
)

// ExampleEncode walks SE0 + (RQ1 * PER0) + LIN2 through every stage.
func ExampleEncode() {
	expr := kernel.NewSum(
		kernel.NewRBF(0),
		kernel.NewProduct(kernel.NewRatQuad(1), kernel.NewStdPeriodic(0)),
		kernel.NewLinear(2),
	)

	infix, err := encoding.FlattenToInfix(expr)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	postfix, err := encoding.InfixToPostfix(infix)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tree, err := encoding.BuildTree(postfix)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	in, _ := encoding.TokensString(infix, nil)
	post, _ := encoding.TokensString(postfix, nil)
	fmt.Println(in)
	fmt.Println(post)
	fmt.Println(tree.Infix())

	// Output:
	// SE0 + ( RQ1 * PER0 ) + LIN2
	// SE0 RQ1 PER0 * + LIN2 +
	// ((SE0+(RQ1*PER0))+LIN2)
}

// ExampleTree_SelectPostorder lists nodes by postorder index, the index
// space mutation operators draw from.
func ExampleTree_SelectPostorder() {
	tree, err := encoding.Encode(kernel.NewProduct(kernel.NewLinear(0), kernel.NewRBF(1)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < tree.Len(); i++ {
		n, _ := tree.SelectPostorder(i)
		fmt.Println(i, n.Label())
	}

	// Output:
	// 0 LIN0
	// 1 SE1
	// 2 *
}
