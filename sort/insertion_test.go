package sort

import "testing"

func TestInsertionSortComparisons(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		expect int
	}{
		{name: "two ascending", input: []int{1, 2}, expect: 1},
		{name: "two descending", input: []int{2, 1}, expect: 1},
		{name: "ascending 10", input: ascending(10), expect: 9},
		{name: "descending 10", input: reversed(10), expect: 45},
		{name: "ascending 1000", input: ascending(1000), expect: 999},
		{name: "descending 1000", input: reversed(1000), expect: 499500},
		// 1:{3>1} 2:{3>2, 1>2} 3:{3>0,2>0,1>0}
		{name: "front insertions are free", input: []int{3, 1, 2, 0}, expect: 6},
		{name: "equal keys stop the shift", input: []int{2, 2, 2}, expect: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsertionSort(tt.input); got != tt.expect {
				t.Errorf("expected %d comparisons, got %d", tt.expect, got)
			}
			if !IsSorted(tt.input) {
				t.Errorf("result %v is not sorted", tt.input)
			}
		})
	}
}
