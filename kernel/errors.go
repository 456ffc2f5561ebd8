package kernel

import "errors"

var (
	// ErrUnknownCode indicates a base-kernel code missing from the registry.
	ErrUnknownCode = errors.New("kernel: unknown base kernel code")

	// ErrDuplicateCode indicates an attempt to register a code twice.
	ErrDuplicateCode = errors.New("kernel: duplicate base kernel code")

	// ErrEmptyCode indicates an attempt to register an empty code.
	ErrEmptyCode = errors.New("kernel: empty base kernel code")

	// ErrNilConstructor indicates Register was given a nil constructor or matcher.
	ErrNilConstructor = errors.New("kernel: nil constructor or matcher")

	// ErrBadLabel indicates a leaf label that is not of the form "<code><dim>".
	ErrBadLabel = errors.New("kernel: malformed kernel label")

	// ErrBadDimension indicates a negative active dimension.
	ErrBadDimension = errors.New("kernel: negative active dimension")
)
