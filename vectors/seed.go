package vectors

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/dendrascience/delium/dhash"
	"github.com/google/uuid"
)

// SeedOptions controls random vector generation. Zero fields take the
// defaults noted on each field.
type SeedOptions struct {
	Count       int      // number of vectors, default 100
	Algorithms  []string // default sha-256 and sha-512
	MaxStride   int      // strides are drawn from [1, MaxStride], default 16
	MaxRepeat   int      // repeats are drawn from [0, MaxRepeat], default 8
	MaxSegments int      // path vectors get [1, MaxSegments] segments, default 4
}

func (o SeedOptions) withDefaults() SeedOptions {
	if o.Count <= 0 {
		o.Count = 100
	}
	if len(o.Algorithms) == 0 {
		o.Algorithms = []string{dhash.NameSHA256, dhash.NameSHA512}
	}
	if o.MaxStride <= 0 {
		o.MaxStride = 16
	}
	if o.MaxRepeat <= 0 {
		o.MaxRepeat = 8
	}
	if o.MaxSegments <= 0 {
		o.MaxSegments = 4
	}
	return o
}

// Seed generates random vectors with UUID inputs and fills in their expected
// hashes. Every algorithm name is resolved before anything is generated.
// Flat and path vectors alternate.
func Seed(opts SeedOptions) (Set, error) {
	opts = opts.withDefaults()
	for _, name := range opts.Algorithms {
		if _, err := dhash.AlgorithmByName(name); err != nil {
			return Set{}, err
		}
	}

	var s Set
	for i := range opts.Count {
		alg, _ := dhash.AlgorithmByName(opts.Algorithms[randInt(len(opts.Algorithms))])
		v := Vector{
			Algorithm: alg.Name(),
			Input:     uuid.New().String(),
		}
		if i%2 == 0 {
			v.Mode = ModeFlat
			v.Stride = 1 + randInt(opts.MaxStride)
			v.Repeat = randInt(opts.MaxRepeat + 1)
		} else {
			path, err := randomPath(opts)
			if err != nil {
				return Set{}, err
			}
			v.Mode = ModePath
			v.Path = path
		}
		v, err := Fill(v)
		if err != nil {
			return Set{}, fmt.Errorf("failed to fill vector %d: %w", i, err)
		}
		s.Add(v)
	}
	return s, nil
}

func randomPath(opts SeedOptions) (string, error) {
	segments := make([]dhash.Segment, 1+randInt(opts.MaxSegments))
	for i := range segments {
		addon := ""
		// one in four segments carries no addon
		if randInt(4) != 0 {
			addon = uuid.New().String()[:1+randInt(8)]
		}
		segments[i] = dhash.Segment{Addon: addon, Stride: 1 + randInt(opts.MaxStride)}
	}
	return dhash.FormatPath(segments)
}

// randInt returns a uniform value in [0, n).
func randInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return int(v.Int64())
}
