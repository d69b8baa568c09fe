package dhash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	segmentSeparator = "/"
	strideSeparator  = "#"
)

// Segment is one "addon#stride" step of a derivation path.
type Segment struct {
	Addon  string
	Stride int
}

// String formats the segment the way it appears in a path.
func (s Segment) String() string {
	return s.Addon + strideSeparator + strconv.Itoa(s.Stride)
}

// ParsePath splits a derivation path into its segments without computing
// anything, so callers can reject a bad path up front. An empty path has no
// segments. The stride of a segment is not range checked here; a zero stride
// only fails once the segment is derived.
func ParsePath(path string) ([]Segment, error) {
	if path == "" {
		return nil, nil
	}
	parts := strings.Split(path, segmentSeparator)
	segments := make([]Segment, 0, len(parts))
	for i, part := range parts {
		seg, err := parseSegment(i, part)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// FormatPath joins segments back into a path string. Addons containing a
// separator cannot round trip and return ErrMalformedPathSegment.
func FormatPath(segments []Segment) (string, error) {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		if strings.ContainsAny(seg.Addon, strideSeparator+segmentSeparator) {
			return "", fmt.Errorf("%w: segment %d addon %q contains a separator", ErrMalformedPathSegment, i, seg.Addon)
		}
		if seg.Stride < 0 {
			return "", fmt.Errorf("%w: segment %d has negative stride %d", ErrMalformedPathSegment, i, seg.Stride)
		}
		parts[i] = seg.String()
	}
	return strings.Join(parts, segmentSeparator), nil
}

func parseSegment(index int, text string) (Segment, error) {
	addon, strideText, ok := strings.Cut(text, strideSeparator)
	if !ok {
		return Segment{}, fmt.Errorf("%w: segment %d %q has no %q", ErrMalformedPathSegment, index, text, strideSeparator)
	}
	stride, err := parseStride(strideText)
	if err != nil {
		return Segment{}, fmt.Errorf("%w: segment %d %q: %v", ErrMalformedPathSegment, index, text, err)
	}
	return Segment{Addon: addon, Stride: stride}, nil
}

// parseStride reads an unsigned decimal with an optional leading "+".
// Values above math.MaxInt are clamped: any such stride is longer than every
// hex string, so the derived output is the same.
func parseStride(text string) (int, error) {
	digits := strings.TrimPrefix(text, "+")
	if digits == "" {
		return 0, errors.New("missing stride")
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid stride %q", text)
	}
	if n > math.MaxInt {
		return math.MaxInt, nil
	}
	return int(n), nil
}

// DerivePath digests input with alg and then applies each segment of path in
// order: the segment's addon is appended to the current hex hash and the
// result goes through one Derive round with the segment's stride.
//
// Segments are parsed as they are reached. The first malformed segment
// returns ErrMalformedPathSegment and a zero stride returns ErrInvalidStride;
// either way no hash is returned. An empty path yields the plain hex digest.
func DerivePath(alg Algorithm, input []byte, path string) (DerivedHash, error) {
	if !alg.valid() {
		return DerivedHash{}, ErrUnknownAlgorithm
	}
	current := hex.EncodeToString(alg.Sum(input))
	if path == "" {
		return newDerivedHash(current), nil
	}
	for i, part := range strings.Split(path, segmentSeparator) {
		seg, err := parseSegment(i, part)
		if err != nil {
			return DerivedHash{}, err
		}
		current, err = applySegment(alg, current, i, seg)
		if err != nil {
			return DerivedHash{}, err
		}
	}
	return newDerivedHash(current), nil
}

// DeriveSegments is DerivePath for an already parsed path.
func DeriveSegments(alg Algorithm, input []byte, segments []Segment) (DerivedHash, error) {
	if !alg.valid() {
		return DerivedHash{}, ErrUnknownAlgorithm
	}
	current := hex.EncodeToString(alg.Sum(input))
	for i, seg := range segments {
		var err error
		current, err = applySegment(alg, current, i, seg)
		if err != nil {
			return DerivedHash{}, err
		}
	}
	return newDerivedHash(current), nil
}

func applySegment(alg Algorithm, current string, index int, seg Segment) (string, error) {
	if seg.Stride <= 0 {
		return "", fmt.Errorf("segment %d %q: %w", index, seg.String(), invalidStride(seg.Stride))
	}
	mixed := make([]byte, 0, len(current)+len(seg.Addon))
	mixed = append(mixed, current...)
	mixed = append(mixed, seg.Addon...)
	return derive(alg, mixed, seg.Stride, 1), nil
}

// DerivePath256 runs DerivePath with SHA-256 over the bytes of input.
func DerivePath256(input, path string) (DerivedHash, error) {
	return DerivePath(SHA256, []byte(input), path)
}

// DerivePath512 runs DerivePath with SHA-512 over the bytes of input.
func DerivePath512(input, path string) (DerivedHash, error) {
	return DerivePath(SHA512, []byte(input), path)
}
