package dhash

import (
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

func TestDerive256(t *testing.T) {
	h, err := Derive256(alphabet, 3, 5)
	if err != nil {
		t.Fatalf("Derive256() error = %v", err)
	}
	want := "bdeeb2f01e7e2a0220bd2795f711f5a57fa1e3d103aa38185047b57be6faac93"
	if h.String() != want {
		t.Errorf("Derive256() = %s, want %s", h, want)
	}
}

func TestDerive512(t *testing.T) {
	h, err := Derive512(alphabet, 3, 5)
	if err != nil {
		t.Fatalf("Derive512() error = %v", err)
	}
	want := "e8a8973107efe6870290346983a70ab543c16b6d41c01070d7d913f02276df459b19c3d3721ce85c3af305c50ebf14ca0371bc13f8c5164de338d516a266e1fe"
	if h.String() != want {
		t.Errorf("Derive512() = %s, want %s", h, want)
	}
}

func TestDerive_Algorithms(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		want string
	}{
		{SHA512_256, "91d0ee89ec90c6d8552aeb38bd98cc89187b7ac31bfd67d5ac985b12f15fc766"},
		{SHA3_256, "ed15445153cecb3244d3189ccb9d9147e03541f241cbfdeeeb984b0b90619282"},
		{SHA3_512, "a43a9a348208e81ef4e289b6b0cca34753ead1540391066b63c4dd6481407fb812b4c8d1c7836ec47dfd5c03ae1f3af5c3159afaf8fff2ca186ac85e7f498b30"},
		{BLAKE2b256, "16a8f4489a9ea97ee3c2ad8ae538c9dd236690489c5517b3b50fbbdc9d8ad938"},
		{BLAKE2b512, "070dd5c4565cf6d48ec46755cd8a757dd159c7441ba363ab8e2320fffabff30600bcd8a3ab2b20ecde96c0381ae6712b07857138ac5bde32069dc391a04df0ac"},
	}

	for _, tt := range tests {
		t.Run(tt.alg.Name(), func(t *testing.T) {
			h, err := Derive(tt.alg, []byte(alphabet), 3, 5)
			if err != nil {
				t.Fatalf("Derive() error = %v", err)
			}
			if h.String() != tt.want {
				t.Errorf("Derive(%s) = %s, want %s", tt.alg, h, tt.want)
			}
		})
	}
}

func TestDerive_OtherInputs(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		stride int
		repeat int
		want   string
	}{
		{
			name:   "empty input no repeat",
			input:  "",
			stride: 1,
			repeat: 0,
			want:   "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			// stride 1 deletes the whole hex string, leaving the digest of ""
			name:   "stride one",
			input:  "hello",
			stride: 1,
			repeat: 1,
			want:   "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:   "stride beyond hex length",
			input:  "hello",
			stride: 100,
			repeat: 2,
			want:   "ecd26292b7f02970ca6909abb23e1aedd0dd57d0ee9ff40bf3f30c325e3e453a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Derive256(tt.input, tt.stride, tt.repeat)
			if err != nil {
				t.Fatalf("Derive256() error = %v", err)
			}
			if h.String() != tt.want {
				t.Errorf("Derive256(%q, %d, %d) = %s, want %s", tt.input, tt.stride, tt.repeat, h, tt.want)
			}
		})
	}
}

func TestDerive_ZeroRepeatIsPlainDigest(t *testing.T) {
	for _, name := range Algorithms() {
		alg, _ := AlgorithmByName(name)
		for _, stride := range []int{1, 3, 1000} {
			h, err := Derive(alg, []byte(alphabet), stride, 0)
			if err != nil {
				t.Fatalf("Derive(%s) error = %v", name, err)
			}
			want := hex.EncodeToString(alg.Sum([]byte(alphabet)))
			if h.String() != want {
				t.Errorf("Derive(%s, stride=%d, repeat=0) = %s, want %s", name, stride, h, want)
			}
		}
	}
}

func TestDerive_InvalidStride(t *testing.T) {
	for _, repeat := range []int{0, 1, 5} {
		_, err := Derive256(alphabet, 0, repeat)
		if !errors.Is(err, ErrInvalidStride) {
			t.Errorf("Derive256(stride=0, repeat=%d) error = %v, want ErrInvalidStride", repeat, err)
		}
		_, err = Derive512(alphabet, -3, repeat)
		if !errors.Is(err, ErrInvalidStride) {
			t.Errorf("Derive512(stride=-3, repeat=%d) error = %v, want ErrInvalidStride", repeat, err)
		}
	}
}

func TestDerive_InvalidRepeat(t *testing.T) {
	_, err := Derive256(alphabet, 3, -1)
	if !errors.Is(err, ErrInvalidRepeat) {
		t.Errorf("Derive256(repeat=-1) error = %v, want ErrInvalidRepeat", err)
	}
}

func TestDerive_ZeroAlgorithm(t *testing.T) {
	_, err := Derive(Algorithm{}, []byte(alphabet), 3, 1)
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Derive(zero algorithm) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	first, err := Derive512(alphabet, 7, 11)
	if err != nil {
		t.Fatalf("Derive512() error = %v", err)
	}
	for range 10 {
		again, _ := Derive512(alphabet, 7, 11)
		if !again.Equal(first) {
			t.Fatalf("Derive512() not deterministic: %s != %s", again, first)
		}
	}
}

func TestDerive_OutputShape(t *testing.T) {
	for _, name := range Algorithms() {
		alg, _ := AlgorithmByName(name)
		h, err := Derive(alg, []byte(alphabet), 2, 3)
		if err != nil {
			t.Fatalf("Derive(%s) error = %v", name, err)
		}
		if h.Len() != alg.HexLen() {
			t.Errorf("Derive(%s) length = %d, want %d", name, h.Len(), alg.HexLen())
		}
		if string(h.Bytes()) != h.String() {
			t.Errorf("Derive(%s) bytes %q differ from text %q", name, h.Bytes(), h.String())
		}
		if strings.Trim(h.String(), "0123456789abcdef") != "" {
			t.Errorf("Derive(%s) = %s, want lowercase hex only", name, h)
		}
	}
}

func TestDerive_Concurrent(t *testing.T) {
	want, _ := Derive256(alphabet, 3, 5)

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Derive256(alphabet, 3, 5)
			if err != nil || !got.Equal(want) {
				errs <- got.String()
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Derive256() = %s, want %s", got, want)
	}
}
