// Package experiment runs the sorting algorithms over generated arrays of
// growing size and records the elapsed time and comparison count of every
// (experiment, algorithm, size) cell.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/panjf2000/ants/v2"
	"github.com/sbezverk/sortcount/arraygen"
	"github.com/sbezverk/sortcount/sort"
	"github.com/sbezverk/sortcount/store"
)

const (
	// MaxSize is the largest accepted size exponent.
	MaxSize = 30

	defaultRandomRepeats      = 5
	defaultRepetitionsRepeats = 3
)

// ErrInvalidOptions wraps every problem found in Options.
var ErrInvalidOptions = errors.New("invalid experiment options")

// Options describes a benchmark run.
type Options struct {
	// Sizes are exponents, an array of size x holds 2^x elements.
	Sizes      []int
	Algorithms []sort.Algorithm[float64]
	Kinds      []Kind
	// RandomRepeats is the number of random arrays averaged per cell.
	RandomRepeats int
	// RepetitionsRepeats is the number of reshuffles averaged per cell.
	RepetitionsRepeats int
	Seed               int64
	// Workers is the number of cells run at the same time.
	Workers int
}

// DefaultOptions returns the parameters of the reference benchmark: sizes
// 2^7 to 2^15, all algorithms and experiments, one worker.
func DefaultOptions() Options {
	sizes := make([]int, 0, 9)
	for s := 7; s <= 15; s++ {
		sizes = append(sizes, s)
	}
	return Options{
		Sizes:              sizes,
		Algorithms:         sort.Algorithms[float64](),
		Kinds:              Kinds(),
		RandomRepeats:      defaultRandomRepeats,
		RepetitionsRepeats: defaultRepetitionsRepeats,
		Seed:               time.Now().UnixNano(),
		Workers:            1,
	}
}

// Validate checks that o describes a runnable benchmark.
func (o *Options) Validate() error {
	switch {
	case len(o.Sizes) == 0:
		return fmt.Errorf("%w: no sizes", ErrInvalidOptions)
	case len(o.Algorithms) == 0:
		return fmt.Errorf("%w: no algorithms", ErrInvalidOptions)
	case len(o.Kinds) == 0:
		return fmt.Errorf("%w: no experiments", ErrInvalidOptions)
	case o.RandomRepeats <= 0 || o.RepetitionsRepeats <= 0:
		return fmt.Errorf("%w: repeats must be positive", ErrInvalidOptions)
	case o.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive", ErrInvalidOptions)
	}
	sizes := make(map[int]bool, len(o.Sizes))
	for _, s := range o.Sizes {
		if s < 0 || s > MaxSize {
			return fmt.Errorf("%w: size %d is out of [0, %d]", ErrInvalidOptions, s, MaxSize)
		}
		if sizes[s] {
			return fmt.Errorf("%w: size %d listed twice", ErrInvalidOptions, s)
		}
		sizes[s] = true
	}
	algs := make(map[string]bool, len(o.Algorithms))
	for _, a := range o.Algorithms {
		if algs[a.Name] {
			return fmt.Errorf("%w: algorithm %s listed twice", ErrInvalidOptions, a.Name)
		}
		algs[a.Name] = true
	}
	kinds := make(map[Kind]bool, len(o.Kinds))
	for _, k := range o.Kinds {
		if _, ok := kindNames[k]; !ok {
			return fmt.Errorf("%w: %w: %d", ErrInvalidOptions, ErrUnknownKind, k)
		}
		if kinds[k] {
			return fmt.Errorf("%w: experiment %s listed twice", ErrInvalidOptions, k.Name())
		}
		kinds[k] = true
	}
	return nil
}

// Runner executes the cells of a benchmark and saves a Record per
// algorithm and cell into its store.
type Runner struct {
	opts  Options
	store store.Manager
}

// NewRunner validates opts and returns a Runner saving into st.
func NewRunner(opts Options, st store.Manager) (*Runner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		opts:  opts,
		store: st,
	}, nil
}

type cell struct {
	kind Kind
	size int
}

// seed derives the generator seed of a cell, so that a cell produces the
// same arrays whichever worker runs it.
func (c cell) seed(base int64) int64 {
	return base + int64(c.kind)*1000003 + int64(c.size)*7919
}

// Run executes every cell on a pool of Options.Workers goroutines. It stops
// scheduling cells once ctx is done and returns the first error met.
func (r *Runner) Run(ctx context.Context) error {
	pool, err := ants.NewPool(r.opts.Workers, ants.WithPanicHandler(func(v interface{}) {
		glog.Errorf("experiment worker panicked: %+v", v)
	}))
	if err != nil {
		return fmt.Errorf("failed to create worker pool with error: %w", err)
	}
	defer pool.Release()

	glog.Infof("Running %d experiments over %d sizes with %d algorithms, seed %d",
		len(r.opts.Kinds), len(r.opts.Sizes), len(r.opts.Algorithms), r.opts.Seed)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}
	for _, k := range r.opts.Kinds {
		for _, size := range r.opts.Sizes {
			if err := ctx.Err(); err != nil {
				setErr(err)
				break
			}
			c := cell{kind: k, size: size}
			wg.Add(1)
			if err := pool.Submit(func() {
				defer wg.Done()
				if err := r.runCell(ctx, c); err != nil {
					setErr(err)
				}
			}); err != nil {
				wg.Done()
				setErr(fmt.Errorf("failed to submit experiment %s size %d with error: %w", k, size, err))
			}
		}
	}
	wg.Wait()
	if firstErr != nil {
		return firstErr
	}
	glog.Infof("All experiments completed")

	return nil
}

func (r *Runner) runCell(ctx context.Context, c cell) error {
	n := 1 << c.size
	glog.V(5).Infof("Experiment %q: sorting arrays of %d elements", c.kind, n)
	gen := arraygen.New(c.seed(r.opts.Seed))

	var arrays [][]float64
	switch c.kind {
	case Random:
		for i := 0; i < r.opts.RandomRepeats; i++ {
			arrays = append(arrays, gen.Unsorted(n))
		}
	case Sorted, Reversed:
		arrays = append(arrays, gen.Sorted(n, c.kind == Reversed))
	case Repetitions:
		// every algorithm sorts the same shuffles
		arr := gen.OneTwoThree(n)
		for i := 0; i < r.opts.RepetitionsRepeats; i++ {
			gen.Shuffle(arr)
			arrays = append(arrays, slices.Clone(arr))
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, c.kind)
	}

	for _, alg := range r.opts.Algorithms {
		var res Result
		for _, arr := range arrays {
			if err := ctx.Err(); err != nil {
				return err
			}
			res = res.Add(RunSingle(alg, slices.Clone(arr)))
		}
		res = res.Div(len(arrays))
		glog.V(5).Infof("Experiment %q, %s, 2^%d elements: %v, %d comparisons",
			c.kind, alg.Title, c.size, res.Elapsed, res.Comparisons)
		rec := &Record{
			Experiment: c.kind,
			Algorithm:  alg.Name,
			Title:      alg.Title,
			Size:       c.size,
			Result:     res,
		}
		if err := r.store.Add(rec); err != nil {
			return fmt.Errorf("failed to save result %s with error: %w", rec.Key(), err)
		}
	}

	return nil
}
