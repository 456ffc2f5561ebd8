package kernel

import (
	"fmt"
	"strconv"
	"strings"
)

// Constructor builds a base kernel active on dimension dim.
type Constructor func(dim int) Kernel

// Matcher reports whether k belongs to a base-kernel family.
type Matcher func(k Kernel) bool

// entry binds a code to its constructor and type matcher.
type entry struct {
	code  Code
	ctor  Constructor
	match Matcher
}

// Registry is an ordered table of base-kernel families. Order is
// registration order and is the order in which codes are reported and
// matched. A Registry is not safe for concurrent mutation.
type Registry struct {
	entries []entry
	index   map[Code]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[Code]int)}
}

// DefaultRegistry returns a registry holding the built-in vocabulary
// SE, RQ, LIN, PER, in that order.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	// The built-in codes are distinct and non-empty; errors are impossible.
	_ = r.Register(SE, func(d int) Kernel { return NewRBF(d) }, isType[*RBF])
	_ = r.Register(RQ, func(d int) Kernel { return NewRatQuad(d) }, isType[*RatQuad])
	_ = r.Register(LIN, func(d int) Kernel { return NewLinear(d) }, isType[*Linear])
	_ = r.Register(PER, func(d int) Kernel { return NewStdPeriodic(d) }, isType[*StdPeriodic])
	return r
}

func isType[T Kernel](k Kernel) bool {
	_, ok := k.(T)
	return ok
}

// Register appends a new family to the registry.
func (r *Registry) Register(code Code, ctor Constructor, match Matcher) error {
	if code == "" {
		return ErrEmptyCode
	}
	if ctor == nil || match == nil {
		return fmt.Errorf("Register(%s): %w", code, ErrNilConstructor)
	}
	if _, ok := r.index[code]; ok {
		return fmt.Errorf("Register(%s): %w", code, ErrDuplicateCode)
	}
	r.index[code] = len(r.entries)
	r.entries = append(r.entries, entry{code: code, ctor: ctor, match: match})
	return nil
}

// Codes returns the registered codes in registration order.
func (r *Registry) Codes() []Code {
	out := make([]Code, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.code
	}
	return out
}

// Has reports whether code is registered.
func (r *Registry) Has(code Code) bool {
	_, ok := r.index[code]
	return ok
}

// Matches reports whether k belongs to the family registered under code.
// Unknown codes never match.
func (r *Registry) Matches(code Code, k Kernel) bool {
	i, ok := r.index[code]
	if !ok || k == nil {
		return false
	}
	return r.entries[i].match(k)
}

// New builds the base kernel registered under code on dimension dim.
func (r *Registry) New(code Code, dim int) (Kernel, error) {
	i, ok := r.index[code]
	if !ok {
		return nil, fmt.Errorf("New(%s): %w", code, ErrUnknownCode)
	}
	if dim < 0 {
		return nil, fmt.Errorf("New(%s, %d): %w", code, dim, ErrBadDimension)
	}
	return r.entries[i].ctor(dim), nil
}

// ParseLabel reads a leaf label such as "SE0" or "PER12" and builds the
// matching kernel. The longest registered code that prefixes label wins, so
// a registry may hold both "R" and "RQ".
func (r *Registry) ParseLabel(label string) (Kernel, error) {
	var best Code
	for _, e := range r.entries {
		if strings.HasPrefix(label, string(e.code)) && len(e.code) > len(best) {
			best = e.code
		}
	}
	if best == "" {
		return nil, fmt.Errorf("ParseLabel(%q): %w", label, ErrUnknownCode)
	}

	digits := label[len(best):]
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return nil, fmt.Errorf("ParseLabel(%q): dimension must be a decimal integer: %w", label, ErrBadLabel)
	}
	dim, err := strconv.Atoi(digits)
	if err != nil {
		return nil, fmt.Errorf("ParseLabel(%q): %v: %w", label, err, ErrBadLabel)
	}

	return r.New(best, dim)
}
