package dhash

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// StrideDelete removes every stride-th character of s, counting positions
// from 1. Characters are UTF-8 code points; their bytes are copied verbatim.
// The result has utf8.RuneCountInString(s) - n/stride characters where n is
// that same count. A stride of zero or less returns ErrInvalidStride.
func StrideDelete(s string, stride int) (string, error) {
	if stride <= 0 {
		return "", invalidStride(stride)
	}
	return strideDelete(s, stride), nil
}

func strideDelete(s string, stride int) string {
	if stride > len(s) {
		// s has at most len(s) characters
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	pos := 0
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		pos++
		if pos%stride != 0 {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func invalidStride(stride int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidStride, stride)
}
