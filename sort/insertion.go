package sort

// InsertionSort sorts s in place. Only comparisons against a predecessor are
// counted; reaching the front of the slice ends the shift without one.
func InsertionSort[T Ordered](s []T) int {
	return gapInsertion(s, 1)
}

// gapInsertion runs one insertion pass over the elements h apart and
// returns the comparisons made.
func gapInsertion[T Ordered](s []T, h int) int {
	compares := 0
	for i := h; i < len(s); i++ {
		key := s[i]
		j := i
		for j >= h {
			compares++
			if !(s[j-h] > key) {
				break
			}
			s[j] = s[j-h]
			j -= h
		}
		s[j] = key
	}
	return compares
}
