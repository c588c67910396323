package experiment

import (
	"fmt"
	"time"

	"github.com/sbezverk/sortcount/sort"
	"github.com/sbezverk/sortcount/store"
)

// Result is what one or more sorting runs measured.
type Result struct {
	Elapsed     time.Duration
	Comparisons int
}

// Add returns the sum of r and o.
func (r Result) Add(o Result) Result {
	return Result{
		Elapsed:     r.Elapsed + o.Elapsed,
		Comparisons: r.Comparisons + o.Comparisons,
	}
}

// Div returns r averaged over n runs, comparisons are truncated.
func (r Result) Div(n int) Result {
	if n <= 0 {
		return r
	}
	return Result{
		Elapsed:     r.Elapsed / time.Duration(n),
		Comparisons: r.Comparisons / n,
	}
}

// RunSingle sorts s with alg and reports how long it took and how many
// comparisons it made.
func RunSingle(alg sort.Algorithm[float64], s []float64) Result {
	start := time.Now()
	c := alg.Func(s)
	return Result{
		Elapsed:     time.Since(start),
		Comparisons: c,
	}
}

// Record is one cell of the result table.
type Record struct {
	Experiment Kind
	Algorithm  string
	Title      string
	// Size is the exponent x of the array length 2^x.
	Size int
	Result
}

var _ store.Storable = &Record{}

// Key orders records by experiment, algorithm and size.
func (r *Record) Key() string {
	return RecordKey(r.Experiment, r.Algorithm, r.Size)
}

// RecordKey builds the store key of the record for the given cell.
func RecordKey(k Kind, algorithm string, size int) string {
	return fmt.Sprintf("%d/%s/%02d", k, algorithm, size)
}

// Records returns every Record held by st, ordered by key.
func Records(st store.Manager) []*Record {
	items := st.List()
	records := make([]*Record, 0, len(items))
	for _, it := range items {
		if r, ok := it.(*Record); ok {
			records = append(records, r)
		}
	}
	return records
}
