// Package kernelexpr is the representation layer of an evolutionary search
// over composite Gaussian-process kernels: it turns sums and products of
// base kernels into token sequences and strict binary trees that mutation
// and crossover operators can index into and splice.
//
// 🚀 What is inside?
//
//	• kernel/: base kernels (SE, RQ, LIN, PER), Sum/Product combinators, code registry
//	• encoding/: flatten → infix tokens → postfix (shunting-yard) → binary tree,
//	           postorder selection, subtree replace, DOT export
//	• builder/: seeded generators for all 1-D base kernels, random combination trees
//	• config/: YAML expression files
//	• cmd/kernelexpr: CLI printing every encoding stage
//
// Quick example:
//
//	expr := kernel.NewSum(kernel.NewRBF(0), kernel.NewProduct(kernel.NewRatQuad(1), kernel.NewStdPeriodic(0)))
//	tree, _ := encoding.Encode(expr)
//	fmt.Println(tree.Infix()) // (SE0+(RQ1*PER0))
//
//	go get github.com/katalvlaran/kernelexpr
package kernelexpr
