package nn

import "errors"

var (
	// ErrInvalidInput is returned when an input sequence does not match a
	// module's expected arity.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingParameter is returned by LoadStateDict when a key is absent.
	ErrMissingParameter = errors.New("missing parameter")
)
