// Package kernel is a small in-memory model of a Gaussian-process kernel
// library: base kernels (squared-exponential, rational-quadratic, linear,
// periodic) bound to active input dimensions, and the Sum/Product
// combinators that compose them into n-ary kernel expressions.
//
// The package does not evaluate covariances. It exists so that expression
// encoders and search operators have a concrete, typed vocabulary to work on.
//
// Key types:
//
//   - Code       short family code ("SE", "RQ", "LIN", "PER").
//   - Kernel     a base kernel; RBF, RatQuad, Linear and StdPeriodic implement it.
//   - Expr       closed variant: a Kernel, a *Sum or a *Product.
//   - Registry   ordered code → constructor/matcher table (extensible).
//
// Example:
//
//	reg := kernel.DefaultRegistry()
//	se, _ := reg.New(kernel.SE, 0)
//	per, _ := reg.New(kernel.PER, 0)
//	expr := kernel.NewSum(se, kernel.NewProduct(per, kernel.NewLinear(1)))
//
// Errors:
//
//   - ErrUnknownCode     code is not registered.
//   - ErrDuplicateCode   Register called twice with the same code.
//   - ErrEmptyCode       Register called with "".
//   - ErrNilConstructor  Register called with a nil constructor or matcher.
//   - ErrBadLabel        ParseLabel input is not "<code><dim>".
//   - ErrBadDimension    negative active dimension.
package kernel
