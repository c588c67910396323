package arraygen

import (
	"slices"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"
)

func TestUnsorted(t *testing.T) {
	s := New(1).Unsorted(1000)
	require.Len(t, s, 1000)
	for _, v := range s {
		if v < 0 || v >= 1 {
			t.Fatalf("value %f is out of [0, 1)", v)
		}
	}
	require.Empty(t, New(1).Unsorted(0))
}

func TestSorted(t *testing.T) {
	tests := []struct {
		name    string
		reverse bool
	}{
		{name: "ascending", reverse: false},
		{name: "descending", reverse: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(2).Sorted(500, tt.reverse)
			require.Len(t, s, 500)
			check := slices.Clone(s)
			if tt.reverse {
				slices.Reverse(check)
			}
			require.True(t, slices.IsSorted(check), "array is not sorted")
		})
	}
}

func TestOneTwoThree(t *testing.T) {
	s := New(3).OneTwoThree(3000)
	seen := map[float64]int{}
	for _, v := range s {
		seen[v]++
	}
	require.Len(t, seen, 3)
	for _, v := range []float64{1, 2, 3} {
		require.NotZero(t, seen[v], "value %v never generated", v)
	}
}

func TestShuffleKeepsValues(t *testing.T) {
	g := New(4)
	s := g.OneTwoThree(200)
	shuffled := slices.Clone(s)
	g.Shuffle(shuffled)
	slices.Sort(s)
	slices.Sort(shuffled)
	if diff := deep.Equal(s, shuffled); diff != nil {
		t.Fatalf("%+v", diff)
	}
}

func TestSameSeedSameArrays(t *testing.T) {
	a, b := New(99), New(99)
	if diff := deep.Equal(a.Unsorted(64), b.Unsorted(64)); diff != nil {
		t.Fatalf("%+v", diff)
	}
	if diff := deep.Equal(a.OneTwoThree(64), b.OneTwoThree(64)); diff != nil {
		t.Fatalf("%+v", diff)
	}
}
