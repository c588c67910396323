package sort

// SelectionSort sorts s in place. Every step of the scan for the minimum
// is a comparison, so the result is always n(n-1)/2 for a slice of length n.
func SelectionSort[T Ordered](s []T) int {
	compares := 0
	n := len(s)
	for i := 0; i < n-1; i++ {
		least := i
		for j := i + 1; j < n; j++ {
			compares++
			if s[j] < s[least] {
				least = j
			}
		}
		s[i], s[least] = s[least], s[i]
	}
	return compares
}
