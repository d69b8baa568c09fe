package vectors

import (
	"cmp"
	"encoding/json"
	"slices"
)

// Set is an ordered collection of vectors.
type Set struct {
	entries []Vector
	sorted  bool
}

// NewSet returns a set holding vs in the given order.
func NewSet(vs ...Vector) Set {
	return Set{entries: slices.Clone(vs)}
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var aux struct {
		Vectors []Vector `json:"vectors"`
		Sorted  bool     `json:"sorted"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.entries = aux.Vectors
	s.sorted = aux.Sorted
	return nil
}

func (s Set) MarshalJSON() ([]byte, error) {
	vs := s.entries
	if vs == nil {
		vs = []Vector{}
	}
	return json.Marshal(struct {
		Vectors []Vector `json:"vectors"`
		Sorted  bool     `json:"sorted"`
	}{
		Vectors: vs,
		Sorted:  s.sorted,
	})
}

func (s Set) Iterate(yield func(Vector) bool) {
	for _, v := range s.entries {
		if !yield(v) {
			return
		}
	}
}

func (s *Set) Add(v Vector) {
	s.sorted = false
	s.entries = append(s.entries, v)
}

// Get returns the vector at index, or the zero Vector when out of range.
func (s Set) Get(index int) Vector {
	if index < 0 || index >= len(s.entries) {
		return Vector{}
	}
	return s.entries[index]
}

func (s Set) Len() int {
	return len(s.entries)
}

// Sorted reports whether the set is in Sort order.
func (s Set) Sorted() bool {
	return s.sorted
}

// Sort orders vectors by algorithm, mode, input and then parameters.
// The sort is stable, so equal vectors keep their insertion order.
func (s *Set) Sort() {
	slices.SortStableFunc(s.entries, func(a, b Vector) int {
		return cmp.Or(
			cmp.Compare(a.Algorithm, b.Algorithm),
			cmp.Compare(a.EffectiveMode(), b.EffectiveMode()),
			cmp.Compare(a.Input, b.Input),
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Stride, b.Stride),
			cmp.Compare(a.Repeat, b.Repeat),
		)
	})
	s.sorted = true
}

// Algorithms returns the distinct algorithm names used in the set, sorted.
func (s Set) Algorithms() []string {
	seen := make(map[string]bool)
	var names []string
	for v := range s.Iterate {
		if !seen[v.Algorithm] {
			seen[v.Algorithm] = true
			names = append(names, v.Algorithm)
		}
	}
	slices.Sort(names)
	return names
}

// CountMode returns how many vectors use mode m.
func (s Set) CountMode(m Mode) int {
	n := 0
	for v := range s.Iterate {
		if v.EffectiveMode() == m {
			n++
		}
	}
	return n
}
