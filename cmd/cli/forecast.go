package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"property-forecast/internal/config"
	"property-forecast/internal/forecast"
	"property-forecast/internal/report"
)

type forecastCmd struct {
	configPath  string
	out         string
	db          string
	seedDeposit bool
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "compare buying a property against investing in an index fund" }
func (*forecastCmd) Usage() string {
	return `cli forecast [-config c.yaml] [-out series.csv] [-db runs.db] [-seed-deposit]

  Runs one comparison and prints a report. Without -config the built-in
  baseline is used.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "Path to YAML config")
	f.StringVar(&c.out, "out", "", "Optional: write the monthly series to this CSV file")
	f.StringVar(&c.db, "db", "", "Optional: record the run in this SQLite database")
	f.BoolVar(&c.seedDeposit, "seed-deposit", false, "Invest the deposit and closing costs in the fund at month 0")
}

func (c *forecastCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := newLogger()

	cfg, err := loadConfig(c.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.seedDeposit {
		cfg.Options.SeedFundWithDeposit = true
	}
	f, err := report.NewFormatter(cfg.Report.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res, err := forecast.New(log, cfg.Options).Run(cfg.Label, cfg.Assumptions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running forecast: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.out != "" {
		if err := forecast.WriteSeriesCSV(c.out, res); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.out, err)
			return subcommands.ExitFailure
		}
		log.WithField("path", c.out).Info("series written")
	}

	rec, err := openRecorder(c.db, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", c.db, err)
		return subcommands.ExitFailure
	}
	defer rec.Close()
	if _, err := rec.RecordRun(res); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording run: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(report.Forecast(res, f))
	return subcommands.ExitSuccess
}

// loadConfig reads path, or returns the built-in defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
