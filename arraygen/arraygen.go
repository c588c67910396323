// Package arraygen produces the input arrays the benchmark sorts: uniformly
// random, already sorted in either direction, and arrays holding only the
// values 1, 2 and 3.
package arraygen

import (
	"math/rand"
	"slices"
)

// Generator draws arrays from its own seeded source, the same seed always
// yields the same sequence of arrays. A Generator is not safe for
// concurrent use.
type Generator struct {
	r *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{
		r: rand.New(rand.NewSource(seed)),
	}
}

// Unsorted returns n values drawn uniformly from [0, 1).
func (g *Generator) Unsorted(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = g.r.Float64()
	}
	return s
}

// Sorted returns n random values in ascending order, or descending when
// reverse is set.
func (g *Generator) Sorted(n int, reverse bool) []float64 {
	s := g.Unsorted(n)
	slices.Sort(s)
	if reverse {
		slices.Reverse(s)
	}
	return s
}

// OneTwoThree returns n values each picked from {1, 2, 3}.
func (g *Generator) OneTwoThree(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(g.r.Intn(3) + 1)
	}
	return s
}

// Shuffle permutes s in place.
func (g *Generator) Shuffle(s []float64) {
	g.r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
