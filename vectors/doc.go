// Package vectors manages reproducibility vectors for delium derivations.
//
// A vector records one derivation (algorithm, input, stride and repeat or a
// derivation path) together with the hex hash it must produce. Vector sets
// are stored as JSON files with a small metadata sidecar, can be generated
// from random UUID inputs, and are verified concurrently against the dhash
// package. Sets produced by one implementation of the scheme are meant to be
// checked by another.
//
// Key Components:
//   - Vector and Set, the JSON-persisted vector collection
//   - Reference, the canonical vectors every implementation must reproduce
//   - Seed, random vector generation
//   - Verify, bounded concurrent checking with per-vector failures
//   - Metadata, a summary written next to each vector file
package vectors
