package dhash

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"slices"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Canonical algorithm names.
const (
	NameSHA256     = "sha-256"
	NameSHA512     = "sha-512"
	NameSHA512_256 = "sha-512/256"
	NameSHA3_256   = "sha3-256"
	NameSHA3_512   = "sha3-512"
	NameBLAKE2b256 = "blake2b-256"
	NameBLAKE2b512 = "blake2b-512"
	NameBLAKE3     = "blake3"
)

// Algorithm is the digest capability a derivation runs on. It turns a byte
// sequence into a fixed-length digest. The zero value is not usable.
type Algorithm struct {
	name    string
	size    int
	newHash func() hash.Hash
}

var (
	// SHA256 and SHA512 are the two widths the derivation scheme is defined for.
	SHA256 = Algorithm{name: NameSHA256, size: sha256.Size, newHash: sha256.New}
	SHA512 = Algorithm{name: NameSHA512, size: sha512.Size, newHash: sha512.New}

	SHA512_256 = Algorithm{name: NameSHA512_256, size: sha512.Size256, newHash: sha512.New512_256}
	SHA3_256   = Algorithm{name: NameSHA3_256, size: 32, newHash: sha3.New256}
	SHA3_512   = Algorithm{name: NameSHA3_512, size: 64, newHash: sha3.New512}
	BLAKE2b256 = Algorithm{name: NameBLAKE2b256, size: blake2b.Size256, newHash: func() hash.Hash {
		h, _ := blake2b.New256(nil) // only fails for keys over 64 bytes
		return h
	}}
	BLAKE2b512 = Algorithm{name: NameBLAKE2b512, size: blake2b.Size, newHash: func() hash.Hash {
		h, _ := blake2b.New512(nil)
		return h
	}}
	BLAKE3 = Algorithm{name: NameBLAKE3, size: 32, newHash: func() hash.Hash { return blake3.New() }}
)

var registry = map[string]Algorithm{
	NameSHA256:     SHA256,
	NameSHA512:     SHA512,
	NameSHA512_256: SHA512_256,
	NameSHA3_256:   SHA3_256,
	NameSHA3_512:   SHA3_512,
	NameBLAKE2b256: BLAKE2b256,
	NameBLAKE2b512: BLAKE2b512,
	NameBLAKE3:     BLAKE3,
}

var aliases = map[string]string{
	"256":    NameSHA256,
	"sha256": NameSHA256,
	"d256":   NameSHA256,
	"512":    NameSHA512,
	"sha512": NameSHA512,
	"d512":   NameSHA512,
}

// AlgorithmByName resolves a canonical algorithm name such as "sha-256" or
// one of the short aliases ("256", "sha512", ...). Matching ignores case and
// surrounding whitespace.
func AlgorithmByName(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	alg, ok := registry[key]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

// Algorithms returns the canonical names of all built-in algorithms, sorted.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Name returns the canonical name of the algorithm.
func (a Algorithm) Name() string { return a.name }

// Size returns the digest length in bytes.
func (a Algorithm) Size() int { return a.size }

// HexLen returns the length of a hex-encoded digest.
func (a Algorithm) HexLen() int { return 2 * a.size }

// Sum digests data in one shot.
func (a Algorithm) Sum(data []byte) []byte {
	h := a.newHash()
	h.Write(data)
	return h.Sum(nil)
}

func (a Algorithm) valid() bool { return a.newHash != nil }

func (a Algorithm) String() string { return a.name }
