package sort

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"

	"github.com/go-test/deep"
)

func reversed(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = n - i
	}
	return s
}

func ascending(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

func randomInts(r *rand.Rand, n, max int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = r.Intn(max) - max/2
	}
	return s
}

func TestAlgorithmsSort(t *testing.T) {
	tests := []struct {
		name     string
		unsorted []int
		expected []int
	}{
		{
			name:     "nil slice",
			unsorted: nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			unsorted: []int{},
			expected: []int{},
		},
		{
			name:     "valid slice with 1 element",
			unsorted: []int{7},
			expected: []int{7},
		},
		{
			name:     "valid slice with 2 elements",
			unsorted: []int{2, 1},
			expected: []int{1, 2},
		},
		{
			name:     "valid slice with duplicates and negatives",
			unsorted: []int{8, 1, 41, 1, 0, -1, 0},
			expected: []int{-1, 0, 0, 1, 1, 8, 41},
		},
		{
			name:     "reversed slice",
			unsorted: reversed(9),
			expected: ascending(9),
		},
		{
			name:     "many repetitions",
			unsorted: []int{3, 1, 2, 3, 3, 1, 2, 2, 1, 3},
			expected: []int{1, 1, 1, 2, 2, 2, 3, 3, 3, 3},
		},
	}

	for _, alg := range Algorithms[int]() {
		for _, tt := range tests {
			t.Run(alg.Name+"/"+tt.name, func(t *testing.T) {
				s := slices.Clone(tt.unsorted)
				alg.Func(s)
				if !reflect.DeepEqual(s, tt.expected) {
					t.Logf("Diffs: %+v", deep.Equal(s, tt.expected))
					t.Fatal("expected and computed result do not match")
				}
			})
		}
	}
}

func TestAlgorithmsRandomPermutations(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, alg := range Algorithms[int]() {
		t.Run(alg.Name, func(t *testing.T) {
			for n := 0; n < 200; n += 7 {
				in := randomInts(r, n, 50)
				expected := slices.Clone(in)
				slices.Sort(expected)
				got := slices.Clone(in)
				alg.Func(got)
				if diff := deep.Equal(got, expected); diff != nil {
					t.Fatalf("length %d: %+v", n, diff)
				}
			}
		})
	}
}

func TestAlgorithmsOtherOrderedTypes(t *testing.T) {
	for _, alg := range Algorithms[string]() {
		t.Run(alg.Name+"/strings", func(t *testing.T) {
			s := []string{"D", "A", "C", "B", "A"}
			alg.Func(s)
			if diff := deep.Equal(s, []string{"A", "A", "B", "C", "D"}); diff != nil {
				t.Errorf("%+v", diff)
			}
		})
	}
	for _, alg := range Algorithms[float64]() {
		t.Run(alg.Name+"/floats", func(t *testing.T) {
			s := []float64{0.5, -1.25, 3, 0.5, 2.75}
			alg.Func(s)
			if diff := deep.Equal(s, []float64{-1.25, 0.5, 0.5, 2.75, 3}); diff != nil {
				t.Errorf("%+v", diff)
			}
		})
	}
}

func TestDegenerateInputsMakeNoComparisons(t *testing.T) {
	for _, alg := range Algorithms[int]() {
		t.Run(alg.Name, func(t *testing.T) {
			if c := alg.Func(nil); c != 0 {
				t.Errorf("nil slice: expected 0 comparisons, got %d", c)
			}
			if c := alg.Func([]int{}); c != 0 {
				t.Errorf("empty slice: expected 0 comparisons, got %d", c)
			}
			if c := alg.Func([]int{5}); c != 0 {
				t.Errorf("single element: expected 0 comparisons, got %d", c)
			}
		})
	}
}

func TestDeterministicComparisons(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	in := randomInts(r, 300, 1000)
	for _, alg := range Algorithms[int]() {
		t.Run(alg.Name, func(t *testing.T) {
			first := slices.Clone(in)
			c1 := alg.Func(first)
			for i := 0; i < 5; i++ {
				again := slices.Clone(in)
				c := alg.Func(again)
				if c != c1 {
					t.Fatalf("run %d: expected %d comparisons, got %d", i, c1, c)
				}
				if diff := deep.Equal(again, first); diff != nil {
					t.Fatalf("run %d: %+v", i, diff)
				}
			}
		})
	}
}

func TestResortingSortedOutput(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	in := randomInts(r, 128, 100)
	for _, alg := range Algorithms[int]() {
		t.Run(alg.Name, func(t *testing.T) {
			s := slices.Clone(in)
			c1 := alg.Func(s)
			sorted := slices.Clone(s)
			c2 := alg.Func(s)
			if diff := deep.Equal(s, sorted); diff != nil {
				t.Fatalf("%+v", diff)
			}
			switch alg.Name {
			case "selection", "insertion":
				if c2 > c1 {
					t.Fatalf("second pass made %d comparisons, first pass %d", c2, c1)
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"selection", "insertion", "merge", "shell"} {
		a, err := Lookup[int](name)
		if err != nil {
			t.Fatalf("supposed to succeed but failed with error: %+v", err)
		}
		if a.Name != name {
			t.Fatalf("expected algorithm %s, got %s", name, a.Name)
		}
	}
	if _, err := Lookup[int]("bogo"); err != ErrUnknownAlgorithm {
		t.Fatalf("expected %v, got %v", ErrUnknownAlgorithm, err)
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		expect bool
	}{
		{name: "nil", input: nil, expect: true},
		{name: "single", input: []int{1}, expect: true},
		{name: "non-decreasing", input: []int{1, 1, 2, 5}, expect: true},
		{name: "unsorted", input: []int{1, 3, 2}, expect: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSorted(tt.input); got != tt.expect {
				t.Errorf("expected %t, got %t", tt.expect, got)
			}
		})
	}
}
