package kernel

// Sum is an n-ary additive combination of kernel expressions.
type Sum struct {
	parts []Expr
}

// Product is an n-ary multiplicative combination of kernel expressions.
type Product struct {
	parts []Expr
}

func (*Sum) expr()     {}
func (*Product) expr() {}

// NewSum returns the sum of parts in the given order. Nil parts are dropped.
func NewSum(parts ...Expr) *Sum {
	return &Sum{parts: compact(parts)}
}

// NewProduct returns the product of parts in the given order. Nil parts are dropped.
func NewProduct(parts ...Expr) *Product {
	return &Product{parts: compact(parts)}
}

// Parts returns the children of s in insertion order.
// The returned slice is a copy; the children themselves are shared.
func (s *Sum) Parts() []Expr { return clonePartList(s.parts) }

// Parts returns the children of p in insertion order.
// The returned slice is a copy; the children themselves are shared.
func (p *Product) Parts() []Expr { return clonePartList(p.parts) }

// Len reports the number of direct children.
func (s *Sum) Len() int { return len(s.parts) }

// Len reports the number of direct children.
func (p *Product) Len() int { return len(p.parts) }

func compact(parts []Expr) []Expr {
	out := make([]Expr, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func clonePartList(parts []Expr) []Expr {
	out := make([]Expr, len(parts))
	copy(out, parts)
	return out
}

// Walk calls fn for every base kernel reachable from e, in left-to-right
// order. Combinators are descended, not reported.
func Walk(e Expr, fn func(Kernel)) {
	switch n := e.(type) {
	case *Sum:
		for _, p := range n.parts {
			Walk(p, fn)
		}
	case *Product:
		for _, p := range n.parts {
			Walk(p, fn)
		}
	case Kernel:
		fn(n)
	}
}
