package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/sbezverk/sortcount/config"
)

var (
	filePathPlaceholder = "[path]"
	// configurationFile defines a flag for the path to the toml configuration of the run
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the benchmark configuration file. When omitted the " +
			"reference benchmark is run.",
	}
	// sizes overrides the size exponents to benchmark
	sizes = cli.StringFlag{
		Name:  "sizes",
		Usage: "Comma separated size exponents, an array of size x holds 2^x elements, e.g. 7,8,9",
	}
	// algorithms overrides the algorithms to benchmark
	algorithms = cli.StringFlag{
		Name:  "algorithms",
		Usage: "Comma separated algorithms out of selection, insertion, merge, shell",
	}
	// experiments overrides the experiments to run
	experiments = cli.StringFlag{
		Name:  "experiments",
		Usage: "Comma separated experiments out of random, sorted, reversed, repetitions",
	}
	// seed defines the seed of the array generators
	seed = cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed of the array generators, 0 takes one from the clock",
	}
	// workers defines how many experiment cells run at the same time
	workers = cli.IntFlag{
		Name:  "workers",
		Usage: "Number of experiment cells run concurrently",
	}
	// outputDir defines where results are written
	outputDir = cli.StringFlag{
		Name:  "output-dir",
		Usage: "The `" + filePathPlaceholder + "` of the directory receiving the CSV file and the charts",
	}
	// csvFile defines the name of the results file
	csvFile = cli.StringFlag{
		Name:  "csv",
		Usage: "Name of the CSV results file inside the output directory, empty disables it",
	}
	// noCharts disables chart rendering
	noCharts = cli.BoolFlag{
		Name:  "no-charts",
		Usage: "Do not render charts",
	}
	// logLevel defines the verbosity of the logger
	logLevel = cli.IntFlag{
		Name:  "log-level",
		Usage: "Log verbosity, 5 reports every experiment cell",
		Value: 0,
	}
)

var appFlags = []cli.Flag{
	configurationFile,
	sizes,
	algorithms,
	experiments,
	seed,
	workers,
	outputDir,
	csvFile,
	noCharts,
	logLevel,
}

// loadConfig builds the run configuration from the optional file and the
// flags overriding it.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if fn := ctx.String(configurationFile.Name); fn != "" {
		var err error
		if cfg, err = config.Load(fn); err != nil {
			return nil, err
		}
	}
	if ctx.IsSet(sizes.Name) {
		s, err := parseInts(ctx.String(sizes.Name))
		if err != nil {
			return nil, fmt.Errorf("invalid --%s: %w", sizes.Name, err)
		}
		cfg.Sizes = s
	}
	if ctx.IsSet(algorithms.Name) {
		cfg.Algorithms = splitList(ctx.String(algorithms.Name))
	}
	if ctx.IsSet(experiments.Name) {
		cfg.Experiments = splitList(ctx.String(experiments.Name))
	}
	if ctx.IsSet(seed.Name) {
		cfg.Seed = ctx.Int64(seed.Name)
	}
	if ctx.IsSet(workers.Name) {
		cfg.Workers = ctx.Int(workers.Name)
	}
	if ctx.IsSet(outputDir.Name) {
		cfg.OutputDir = ctx.String(outputDir.Name)
	}
	if ctx.IsSet(csvFile.Name) {
		cfg.CSV = ctx.String(csvFile.Name)
	}
	if ctx.Bool(noCharts.Name) {
		cfg.Charts = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func splitList(s string) []string {
	var l []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			l = append(l, v)
		}
	}
	return l
}

func parseInts(s string) ([]int, error) {
	var l []int
	for _, v := range splitList(s) {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		l = append(l, i)
	}
	return l, nil
}
