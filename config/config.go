// Package config loads the TOML description of a benchmark run.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sbezverk/sortcount/experiment"
	"github.com/sbezverk/sortcount/sort"
)

// ErrUndecodedKeys is returned by Load when the file holds keys Config does
// not know about.
var ErrUndecodedKeys = errors.New("unknown configuration keys")

// Config is the on-disk form of a benchmark run.
type Config struct {
	Sizes              []int    `toml:"Sizes"`
	Algorithms         []string `toml:"Algorithms"`
	Experiments        []string `toml:"Experiments"`
	RandomRepeats      int      `toml:"RandomRepeats"`
	RepetitionsRepeats int      `toml:"RepetitionsRepeats"`
	// Seed 0 means a seed is taken from the clock.
	Seed      int64  `toml:"Seed"`
	Workers   int    `toml:"Workers"`
	OutputDir string `toml:"OutputDir"`
	Charts    bool   `toml:"Charts"`
	// CSV is the results file name inside OutputDir, empty disables it.
	CSV string `toml:"CSV"`
}

// Default returns the configuration of the reference benchmark.
func Default() *Config {
	o := experiment.DefaultOptions()
	c := &Config{
		Sizes:              o.Sizes,
		RandomRepeats:      o.RandomRepeats,
		RepetitionsRepeats: o.RepetitionsRepeats,
		Workers:            o.Workers,
		OutputDir:          ".",
		Charts:             true,
		CSV:                "results.csv",
	}
	for _, a := range o.Algorithms {
		c.Algorithms = append(c.Algorithms, a.Name)
	}
	for _, k := range o.Kinds {
		c.Experiments = append(c.Experiments, k.Name())
	}
	return c
}

// Load reads the TOML file fn over the defaults.
func Load(fn string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(fn, c)
	if err != nil {
		return nil, fmt.Errorf("failed to decode configuration file %s with error: %w", fn, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w in %s: %s", ErrUndecodedKeys, fn, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the configuration by building the run options from it.
func (c *Config) Validate() error {
	_, err := c.Options()
	return err
}

// Options converts c into the options of an experiment runner.
func (c *Config) Options() (experiment.Options, error) {
	o := experiment.Options{
		Sizes:              c.Sizes,
		RandomRepeats:      c.RandomRepeats,
		RepetitionsRepeats: c.RepetitionsRepeats,
		Seed:               c.Seed,
		Workers:            c.Workers,
	}
	if o.Seed == 0 {
		o.Seed = experiment.DefaultOptions().Seed
	}
	for _, name := range c.Algorithms {
		a, err := sort.Lookup[float64](name)
		if err != nil {
			return experiment.Options{}, fmt.Errorf("%w: %s", err, name)
		}
		o.Algorithms = append(o.Algorithms, a)
	}
	for _, name := range c.Experiments {
		k, err := experiment.ParseKind(name)
		if err != nil {
			return experiment.Options{}, err
		}
		o.Kinds = append(o.Kinds, k)
	}
	if err := o.Validate(); err != nil {
		return experiment.Options{}, err
	}

	return o, nil
}

// CSVPath returns where the results file goes, or "" when it is disabled.
func (c *Config) CSVPath() string {
	if c.CSV == "" {
		return ""
	}
	if filepath.IsAbs(c.CSV) {
		return c.CSV
	}
	return filepath.Join(c.OutputDir, c.CSV)
}
