package engine

import "errors"

var (
	// ErrInvalidOperand is returned (or panicked with) when an operation
	// receives something that is neither a Value nor a real number.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrNotLeaf is returned when trying to overwrite the data of a node
	// that was produced by an operation.
	ErrNotLeaf = errors.New("value is not a leaf")
)
