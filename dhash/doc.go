// Package dhash implements delium's iterative hash derivation.
//
// A derivation starts from an ordinary digest of the input, hex-encodes it,
// and then repeatedly removes every n-th character (counting from 1) of the
// hex text before digesting that text again. The result is reproducible
// across implementations byte for byte, so every step follows a fixed order:
//
//	raw bytes -> digest -> hex -> (stride delete -> digest -> hex)*
//
// Path derivations chain the same step over a "/" separated list of
// "addon#stride" segments. Each segment appends its addon to the current hex
// hash and runs exactly one delete-and-digest round with its own stride:
//
//	h, err := dhash.DerivePath256([]byte("input"), "2h4usk#5/73uytg#9/#4")
//
// Key Components:
//
// Algorithms:
//   - SHA-256 and SHA-512, the two widths of the scheme
//   - SHA-512/256, SHA3, BLAKE2b and BLAKE3 as drop-in digest capabilities
//   - Lookup by canonical name with AlgorithmByName
//
// Derivation:
//   - StrideDelete for the character removal step
//   - Derive for the flat repeat-count form
//   - DerivePath and ParsePath for the segment chain
//
// Everything in this package is a pure function of its arguments and is safe
// for concurrent use. Nothing here logs or touches the filesystem.
package dhash
