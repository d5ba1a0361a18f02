package ast

import "errors"

var (
	// ErrKindMismatch reports a payload access, literal construction,
	// or indexing operation inconsistent with a node's kind.
	ErrKindMismatch = errors.New("kind mismatch")

	// ErrOutOfRange reports indexing a child sequence at or beyond its
	// length.
	ErrOutOfRange = errors.New("child index out of range")
)
