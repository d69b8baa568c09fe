package dhash

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStrideDelete(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		stride int
		want   string
	}{
		{name: "every third", input: "abcdefghij", stride: 3, want: "abdeghj"},
		{name: "stride one drops everything", input: "abcdef", stride: 1, want: ""},
		{name: "stride two keeps odd positions", input: "abcdef", stride: 2, want: "ace"},
		{name: "stride equals length", input: "abcd", stride: 4, want: "abc"},
		{name: "stride longer than input", input: "abcd", stride: 5, want: "abcd"},
		{name: "empty input", input: "", stride: 7, want: ""},
		{name: "multibyte characters", input: "héllo wörld", stride: 2, want: "hlowrd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StrideDelete(tt.input, tt.stride)
			if err != nil {
				t.Fatalf("StrideDelete(%q, %d) unexpected error = %v", tt.input, tt.stride, err)
			}
			if got != tt.want {
				t.Errorf("StrideDelete(%q, %d) = %q, want %q", tt.input, tt.stride, got, tt.want)
			}
		})
	}
}

func TestStrideDelete_InvalidStride(t *testing.T) {
	for _, stride := range []int{0, -1, -64} {
		for _, input := range []string{"", "abc"} {
			_, err := StrideDelete(input, stride)
			if !errors.Is(err, ErrInvalidStride) {
				t.Errorf("StrideDelete(%q, %d) error = %v, want ErrInvalidStride", input, stride, err)
			}
		}
	}
}

func TestStrideDelete_LengthLaw(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"0123456789abcdef",
		strings.Repeat("f", 64),
		strings.Repeat("0a", 64),
		"ünïcødé text",
	}
	for _, input := range inputs {
		n := utf8.RuneCountInString(input)
		for stride := 1; stride <= n+2; stride++ {
			got, err := StrideDelete(input, stride)
			if err != nil {
				t.Fatalf("StrideDelete(%q, %d) unexpected error = %v", input, stride, err)
			}
			if want := n - n/stride; utf8.RuneCountInString(got) != want {
				t.Errorf("StrideDelete(%q, %d) length = %d, want %d", input, stride, utf8.RuneCountInString(got), want)
			}
		}
	}
}

func TestStrideDelete_KeepsOrder(t *testing.T) {
	input := "0123456789abcdef0123456789abcdef"
	got, _ := StrideDelete(input, 4)
	var want strings.Builder
	for i, c := range input {
		if (i+1)%4 != 0 {
			want.WriteRune(c)
		}
	}
	if got != want.String() {
		t.Errorf("StrideDelete(%q, 4) = %q, want %q", input, got, want.String())
	}
}
