package vectors

import (
	"fmt"

	"github.com/dendrascience/delium/dhash"
)

// Mode selects which derivation a vector describes.
type Mode string

const (
	ModeFlat Mode = "flat" // dhash.Derive with stride and repeat
	ModePath Mode = "path" // dhash.DerivePath
)

// Vector is one recorded derivation and its expected result.
type Vector struct {
	Algorithm string `json:"algorithm"`
	Mode      Mode   `json:"mode"`
	Input     string `json:"input"`
	Stride    int    `json:"stride,omitempty"`
	Repeat    int    `json:"repeat,omitempty"`
	Path      string `json:"path,omitempty"`
	Want      string `json:"want"`
}

// EffectiveMode returns the vector's mode. Vectors written without a mode
// are path vectors when they carry a path and flat otherwise.
func (v Vector) EffectiveMode() Mode {
	if v.Mode != "" {
		return v.Mode
	}
	if v.Path != "" {
		return ModePath
	}
	return ModeFlat
}

// Compute runs the derivation described by v and ignores Want.
func Compute(v Vector) (dhash.DerivedHash, error) {
	alg, err := dhash.AlgorithmByName(v.Algorithm)
	if err != nil {
		return dhash.DerivedHash{}, err
	}
	switch mode := v.EffectiveMode(); mode {
	case ModeFlat:
		return dhash.Derive(alg, []byte(v.Input), v.Stride, v.Repeat)
	case ModePath:
		return dhash.DerivePath(alg, []byte(v.Input), v.Path)
	default:
		return dhash.DerivedHash{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Check computes v and compares the result with Want. It returns the hash
// that was derived along with ErrMismatch when the two differ.
func Check(v Vector) (dhash.DerivedHash, error) {
	h, err := Compute(v)
	if err != nil {
		return h, err
	}
	if h.String() != v.Want {
		return h, fmt.Errorf("%w: got %s, want %s", ErrMismatch, h, v.Want)
	}
	return h, nil
}

// Fill computes v and stores the result in Want.
func Fill(v Vector) (Vector, error) {
	h, err := Compute(v)
	if err != nil {
		return v, err
	}
	v.Want = h.String()
	return v, nil
}

func (v Vector) String() string {
	if v.EffectiveMode() == ModePath {
		return fmt.Sprintf("%s path(%q, %q)", v.Algorithm, v.Input, v.Path)
	}
	return fmt.Sprintf("%s derive(%q, stride=%d, repeat=%d)", v.Algorithm, v.Input, v.Stride, v.Repeat)
}
