package report

import (
	"slices"

	"github.com/sbezverk/sortcount/experiment"
	"github.com/sbezverk/sortcount/sort"
)

// Order returns a copy of records sorted by experiment, then algorithm in
// their reporting order, then size.
func Order(records []*experiment.Record) []*experiment.Record {
	algRank := map[string]int{}
	for i, a := range sort.Algorithms[float64]() {
		algRank[a.Name] = i
	}
	rank := func(name string) int {
		if r, ok := algRank[name]; ok {
			return r
		}
		return len(algRank)
	}
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b *experiment.Record) int {
		switch {
		case a.Experiment != b.Experiment:
			return int(a.Experiment) - int(b.Experiment)
		case a.Algorithm != b.Algorithm:
			if d := rank(a.Algorithm) - rank(b.Algorithm); d != 0 {
				return d
			}
			if a.Algorithm < b.Algorithm {
				return -1
			}
			return 1
		}
		return a.Size - b.Size
	})
	return out
}
