package dhash

import "errors"

// Sentinel errors for package dhash.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Parameter errors
	ErrInvalidStride = errors.New("stride must be greater than zero")
	ErrInvalidRepeat = errors.New("repeat must not be negative")

	// Path errors
	ErrMalformedPathSegment = errors.New("malformed path segment")

	// Algorithm errors
	ErrUnknownAlgorithm = errors.New("unknown digest algorithm")
)
