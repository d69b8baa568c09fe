package dhash

import "github.com/taigrr/colorhash"

// DerivedHash is the result of a derivation: the final digest as lowercase
// hex text. It is an immutable value; Bytes hands out a fresh copy so the
// text and its ASCII bytes cannot drift apart.
type DerivedHash struct {
	text string
}

func newDerivedHash(text string) DerivedHash {
	return DerivedHash{text: text}
}

// String returns the lowercase hex text of the hash.
func (h DerivedHash) String() string { return h.text }

// Bytes returns the ASCII bytes of the hex text, one byte per character.
func (h DerivedHash) Bytes() []byte { return []byte(h.text) }

// Len returns the number of hex characters.
func (h DerivedHash) Len() int { return len(h.text) }

// IsZero reports whether h is the zero value rather than a derivation result.
func (h DerivedHash) IsZero() bool { return h.text == "" }

// Equal reports whether both hashes carry the same hex text.
func (h DerivedHash) Equal(other DerivedHash) bool { return h.text == other.text }

// MarshalText implements encoding.TextMarshaler.
func (h DerivedHash) MarshalText() ([]byte, error) { return h.Bytes(), nil }

// Bucket maps the hash into [0, modulus) with a color hash of its hex text,
// the same spread used for content-addressed bucket directories.
// A modulus of zero or less always yields bucket 0.
func (h DerivedHash) Bucket(modulus int) int {
	if modulus <= 0 {
		return 0
	}
	b := int(colorhash.HashString(h.text)) % modulus
	if b < 0 {
		b += modulus
	}
	return b
}
