package experiment

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by ParseKind for an unrecognized name.
var ErrUnknownKind = errors.New("unknown experiment")

// Kind selects how the arrays of an experiment are generated.
type Kind uint8

const (
	// Random sorts several uniformly random arrays and averages the results.
	Random Kind = iota + 1
	// Sorted sorts a single ascending array.
	Sorted
	// Reversed sorts a single descending array.
	Reversed
	// Repetitions sorts reshuffles of a single array of 1s, 2s and 3s and
	// averages the results.
	Repetitions
)

var kindNames = map[Kind]string{
	Random:      "random",
	Sorted:      "sorted",
	Reversed:    "reversed",
	Repetitions: "repetitions",
}

// Kinds returns all experiment kinds in reporting order.
func Kinds() []Kind {
	return []Kind{Random, Sorted, Reversed, Repetitions}
}

// Name is the short name used in configuration.
func (k Kind) Name() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// String returns the title an experiment is reported under.
func (k Kind) String() string {
	switch k {
	case Random:
		return "Random array"
	case Sorted:
		return "Sorted array"
	case Reversed:
		return "Reversed array"
	case Repetitions:
		return "Array with many repetitions"
	}
	return k.Name()
}

// ParseKind maps a configuration name onto its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownKind, name)
}
