package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/urfave/cli"

	"github.com/sbezverk/sortcount"
	"github.com/sbezverk/sortcount/config"
	"github.com/sbezverk/sortcount/experiment"
	"github.com/sbezverk/sortcount/report"
	"github.com/sbezverk/sortcount/store"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		glog.Errorf("sortbench failed with error: %+v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "sortbench"
	app.Version = "v0.1.0"
	app.Usage = "Benchmarks selection, insertion, merge and shell sort on generated arrays, " +
		"reporting elapsed time and number of comparisons"
	app.Flags = appFlags
	app.Action = run

	return app
}

// setupLogger points glog at stderr with the requested verbosity.
func setupLogger(level int) error {
	if err := flag.Set("logtostderr", "true"); err != nil {
		return err
	}
	if err := flag.Set("v", strconv.Itoa(level)); err != nil {
		return err
	}
	return flag.CommandLine.Parse(nil)
}

func run(c *cli.Context) error {
	if err := setupLogger(c.Int(logLevel.Name)); err != nil {
		return fmt.Errorf("failed to set up logging with error: %w", err)
	}
	defer glog.Flush()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	st := store.NewStore()
	defer st.Stop()
	runner, err := experiment.NewRunner(opts, st)
	if err != nil {
		return err
	}
	ctx, cancel := sortcount.StopContext(context.Background(), sortcount.SetupSignalHandler())
	defer cancel()
	if err := runner.Run(ctx); err != nil {
		return err
	}

	return writeReport(cfg, experiment.Records(st))
}

func writeReport(cfg *config.Config, records []*experiment.Record) error {
	table, err := report.Table(records)
	if err != nil {
		return err
	}
	fmt.Print(table)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s with error: %w", cfg.OutputDir, err)
	}
	if fn := cfg.CSVPath(); fn != "" {
		f, err := os.Create(fn)
		if err != nil {
			return fmt.Errorf("failed to create results file %s with error: %w", fn, err)
		}
		if err := report.WriteCSV(f, records); err != nil {
			f.Close()
			return fmt.Errorf("failed to write results file %s with error: %w", fn, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		glog.Infof("Results written to %s", fn)
	}
	if cfg.Charts {
		files, err := report.Charts(cfg.OutputDir, records)
		if err != nil {
			return err
		}
		glog.Infof("%d charts written to %s", len(files), cfg.OutputDir)
	}

	return nil
}
