package kernel

// Code is the short family code of a base kernel, e.g. "SE".
type Code string

// Built-in base kernel codes, in registry order.
const (
	SE  Code = "SE"  // squared-exponential (RBF)
	RQ  Code = "RQ"  // rational-quadratic
	LIN Code = "LIN" // linear
	PER Code = "PER" // standard periodic
)

// Expr is a kernel expression: a base Kernel, a *Sum or a *Product.
// The set of implementations is closed; type switches over Expr only need
// those three cases.
type Expr interface {
	expr()
}

// Kernel is a base (non-combination) kernel bound to its active input dimensions.
type Kernel interface {
	Expr

	// ActiveDims returns a copy of the active input dimensions.
	ActiveDims() []int

	// ActiveDimension returns the first active dimension. Kernels built by
	// this package always have exactly one.
	ActiveDimension() int
}

// base carries the active dimensions shared by all base kernels.
type base struct {
	dims []int
}

func (base) expr() {}

func (b base) ActiveDims() []int {
	out := make([]int, len(b.dims))
	copy(out, b.dims)
	return out
}

func (b base) ActiveDimension() int {
	if len(b.dims) == 0 {
		return 0
	}
	return b.dims[0]
}

// RBF is the squared-exponential kernel (code SE).
type RBF struct{ base }

// RatQuad is the rational-quadratic kernel (code RQ).
type RatQuad struct{ base }

// Linear is the linear kernel (code LIN).
type Linear struct{ base }

// StdPeriodic is the standard periodic kernel (code PER).
type StdPeriodic struct{ base }

// NewRBF returns a squared-exponential kernel on dimension dim.
func NewRBF(dim int) *RBF { return &RBF{base{dims: []int{dim}}} }

// NewRatQuad returns a rational-quadratic kernel on dimension dim.
func NewRatQuad(dim int) *RatQuad { return &RatQuad{base{dims: []int{dim}}} }

// NewLinear returns a linear kernel on dimension dim.
func NewLinear(dim int) *Linear { return &Linear{base{dims: []int{dim}}} }

// NewStdPeriodic returns a standard periodic kernel on dimension dim.
func NewStdPeriodic(dim int) *StdPeriodic { return &StdPeriodic{base{dims: []int{dim}}} }
