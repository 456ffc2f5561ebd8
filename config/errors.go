package config

import "errors"

var (
	// ErrInvalidConfig indicates a file that parses but fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrBadNode indicates an expression node that is neither a label nor
	// a single-key sum/product mapping.
	ErrBadNode = errors.New("config: malformed expression node")
)
