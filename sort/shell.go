package sort

// ShellSort sorts s in place using Knuth's gaps 1, 4, 13, 40, ... The
// starting gap is the first one not below n/3.
func ShellSort[T Ordered](s []T) int {
	compares := 0
	for _, h := range Gaps(len(s)) {
		compares += gapInsertion(s, h)
	}
	return compares
}

// Gaps returns the decreasing gap sequence ShellSort uses for a slice of
// length n. It is empty when n is 0.
func Gaps(n int) []int {
	if n == 0 {
		return nil
	}
	h := 1
	// h < n/3 without truncating n/3
	for 3*h < n {
		h = 3*h + 1
	}
	var gaps []int
	for ; h >= 1; h /= 3 {
		gaps = append(gaps, h)
	}
	return gaps
}
