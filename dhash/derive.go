package dhash

import (
	"encoding/hex"
	"fmt"
)

// Derive computes the iterative derivation of input with alg.
//
// The input is digested and hex-encoded, then repeat more times every
// stride-th hex character is removed and the shortened text is digested and
// hex-encoded again. A repeat of zero returns the plain hex digest.
// The stride is validated before any digest is computed, even when repeat is
// zero, and a stride of zero or less returns ErrInvalidStride.
func Derive(alg Algorithm, input []byte, stride, repeat int) (DerivedHash, error) {
	if !alg.valid() {
		return DerivedHash{}, ErrUnknownAlgorithm
	}
	if stride <= 0 {
		return DerivedHash{}, invalidStride(stride)
	}
	if repeat < 0 {
		return DerivedHash{}, fmt.Errorf("%w: got %d", ErrInvalidRepeat, repeat)
	}
	return newDerivedHash(derive(alg, input, stride, repeat)), nil
}

// derive assumes validated arguments.
func derive(alg Algorithm, input []byte, stride, repeat int) string {
	current := hex.EncodeToString(alg.Sum(input))
	for range repeat {
		current = strideDelete(current, stride)
		current = hex.EncodeToString(alg.Sum([]byte(current)))
	}
	return current
}

// Derive256 runs Derive with SHA-256 over the bytes of input.
func Derive256(input string, stride, repeat int) (DerivedHash, error) {
	return Derive(SHA256, []byte(input), stride, repeat)
}

// Derive512 runs Derive with SHA-512 over the bytes of input.
func Derive512(input string, stride, repeat int) (DerivedHash, error) {
	return Derive(SHA512, []byte(input), stride, repeat)
}
