package vectors

import "errors"

// Sentinel errors for package vectors.
var (
	ErrMismatch    = errors.New("derived hash does not match expected value")
	ErrUnknownMode = errors.New("unknown vector mode")
	ErrEmptySet    = errors.New("vector set is empty")
)
