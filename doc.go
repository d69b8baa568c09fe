// Package main provides the delium command-line interface.
//
// delium derives hashes by digesting an input, removing every n-th character
// of the hex digest and digesting the remainder again, optionally chained
// over a path of "addon#stride" segments. The derivation itself lives in the
// dhash package; this binary wraps it together with vector generation and
// verification.
//
// The main binary supports multiple subcommands:
//   - derive: Derive a hash from an input or standard input
//   - path: Validate a derivation path and list its segments
//   - seed: Generate a vector file from random inputs
//   - verify: Verify a vector file or the built-in reference vectors
//   - algorithms: List supported digest algorithms
package main
