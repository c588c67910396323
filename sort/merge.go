package sort

// MergeSort sorts s in place. Each merge step works on copies of the two
// halves; a run that has been used up ends the comparisons for that step,
// so an element is never compared against the end of a run.
func MergeSort[T Ordered](s []T) int {
	return mergeSort(s, 0, len(s)-1)
}

// mergeSort sorts s[start:end+1] and returns the comparisons made by it and
// all of its sub-calls.
func mergeSort[T Ordered](s []T, start, end int) int {
	if end <= start {
		return 0
	}
	mid := (start + end) / 2
	compares := mergeSort(s, start, mid)
	compares += mergeSort(s, mid+1, end)
	return compares + merge(s, start, mid, end)
}

// merge combines the sorted runs s[start:mid+1] and s[mid+1:end+1].
func merge[T Ordered](s []T, start, mid, end int) int {
	left := make([]T, mid-start+1)
	copy(left, s[start:mid+1])
	right := make([]T, end-mid)
	copy(right, s[mid+1:end+1])

	compares := 0
	i, j := 0, 0
	for k := start; k <= end; k++ {
		switch {
		case i == len(left):
			s[k] = right[j]
			j++
		case j == len(right):
			s[k] = left[i]
			i++
		default:
			compares++
			if left[i] <= right[j] {
				s[k] = left[i]
				i++
			} else {
				s[k] = right[j]
				j++
			}
		}
	}
	return compares
}
