// Package sort implements classical comparison sorts which, besides sorting
// a slice in place, report the exact number of element comparisons they made.
package sort

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Ordered is the set of element types the algorithms accept.
type Ordered interface {
	constraints.Ordered
}

// ErrUnknownAlgorithm is returned by Lookup for a name it does not know.
var ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

// Func sorts s in place and returns the number of comparisons between
// two elements of s it performed.
type Func[T Ordered] func(s []T) int

// Algorithm binds a sorting function to the name it is reported under.
type Algorithm[T Ordered] struct {
	Name  string
	Title string
	Func  Func[T]
}

// Algorithms returns selection, insertion, merge and shell sort in that order.
func Algorithms[T Ordered]() []Algorithm[T] {
	return []Algorithm[T]{
		{Name: "selection", Title: "Selection sort", Func: SelectionSort[T]},
		{Name: "insertion", Title: "Insertion sort", Func: InsertionSort[T]},
		{Name: "merge", Title: "Merge sort", Func: MergeSort[T]},
		{Name: "shell", Title: "Shellsort", Func: ShellSort[T]},
	}
}

// Lookup returns the algorithm registered under name.
func Lookup[T Ordered](name string) (Algorithm[T], error) {
	for _, a := range Algorithms[T]() {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm[T]{}, ErrUnknownAlgorithm
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
