package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"property-forecast/internal/forecast"
	"property-forecast/internal/recorder"
	"property-forecast/internal/report"
)

type sweepCmd struct {
	configPath string
	only       string
	outDir     string
	db         string
}

func (*sweepCmd) Name() string     { return "sweep" }
func (*sweepCmd) Synopsis() string { return "vary one assumption at a time and rank the outcomes" }
func (*sweepCmd) Usage() string {
	return `cli sweep [-config c.yaml] [-only name] [-out-dir dir] [-db runs.db]

  Runs every sweep in the config (or the built-in sweeps) and prints a
  ranking per sweep. With -out-dir, writes <sweep>.csv with the real value
  of each variant per month.
`
}

func (c *sweepCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "Path to YAML config")
	f.StringVar(&c.only, "only", "", "Run only the named sweep")
	f.StringVar(&c.outDir, "out-dir", "", "Optional: directory for one CSV per sweep")
	f.StringVar(&c.db, "db", "", "Optional: record every successful variant in this SQLite database")
}

func (c *sweepCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := newLogger()

	cfg, err := loadConfig(c.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	f, err := report.NewFormatter(cfg.Report.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var sweeps []forecast.Sweep
	if c.only != "" {
		s, err := cfg.Sweep(c.only)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		sweeps = append(sweeps, s)
	} else {
		for _, sc := range cfg.Sweeps {
			s, err := sc.ToSweep()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			sweeps = append(sweeps, s)
		}
	}
	if len(sweeps) == 0 {
		fmt.Fprintln(os.Stderr, "no sweeps configured")
		return subcommands.ExitUsageError
	}

	if c.outDir != "" {
		if err := os.MkdirAll(c.outDir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", c.outDir, err)
			return subcommands.ExitFailure
		}
	}
	rec, err := openRecorder(c.db, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", c.db, err)
		return subcommands.ExitFailure
	}
	defer rec.Close()

	engine := forecast.New(log, cfg.Options)
	for _, s := range sweeps {
		variants, err := s.Variants(cfg.Assumptions, f.Value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		results := engine.RunBatch(variants)

		if c.outDir != "" {
			path := filepath.Join(c.outDir, s.Name+".csv")
			if err := forecast.WriteSweepCSV(path, results); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
				return subcommands.ExitFailure
			}
			log.WithField("path", path).Info("sweep written")
		}
		if err := recordAll(rec, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording runs: %v\n", err)
			return subcommands.ExitFailure
		}

		printMarkdown(report.Sweep(s.Title, results, f))
	}
	return subcommands.ExitSuccess
}

func recordAll(rec recorder.Recorder, results []forecast.BatchResult) error {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if _, err := rec.RecordRun(r.Result); err != nil {
			return err
		}
	}
	return nil
}
