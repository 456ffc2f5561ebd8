package encoding

// Option configures tree construction and encoding.
// Use with BuildTree(postfix, opts...) or Encode(expr, opts...).
type Option func(*Options)

// Options holds the knobs shared by BuildTree and Encode.
type Options struct {
	// Registry labels operand nodes; defaults to kernel.DefaultRegistry().
	Registry CodeMatcher
}

// DefaultOptions returns Options labelling operands with the built-in
// SE/RQ/LIN/PER registry.
func DefaultOptions() Options {
	return Options{Registry: defaultRegistry}
}

// WithRegistry returns an Option that labels operands with reg.
// Passing nil has no effect.
func WithRegistry(reg CodeMatcher) Option {
	return func(o *Options) {
		if reg != nil {
			o.Registry = reg
		}
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
