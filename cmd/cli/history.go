package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"property-forecast/internal/recorder"
	"property-forecast/internal/report"
)

type historyCmd struct {
	db       string
	limit    int
	currency string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list forecast runs recorded with -db" }
func (*historyCmd) Usage() string {
	return `cli history -db runs.db [-limit N]
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.db, "db", "", "SQLite database written by forecast or sweep")
	f.IntVar(&c.limit, "limit", 20, "Maximum number of runs to list")
	f.StringVar(&c.currency, "currency", "ZAR", "ISO 4217 currency code for display")
}

func (c *historyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.db == "" {
		fmt.Fprintln(os.Stderr, "-db is required")
		return subcommands.ExitUsageError
	}
	f, err := report.NewFormatter(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rec, err := recorder.NewSQLiteRecorder(c.db, newLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", c.db, err)
		return subcommands.ExitFailure
	}
	defer rec.Close()

	runs, err := rec.RecentRuns(c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(historyMarkdown(runs, f))
	return subcommands.ExitSuccess
}

func historyMarkdown(runs []recorder.RunSummary, f report.Formatter) string {
	var b strings.Builder
	b.WriteString("# Recorded runs\n\n")
	if len(runs) == 0 {
		b.WriteString("No runs recorded.\n")
		return b.String()
	}
	b.WriteString("| ID | Recorded | Label | Months | Property (real) | Fund (real) | Leader | Crossover |\n")
	b.WriteString("|---:|---|---|---:|---:|---:|---|---:|\n")
	for _, r := range runs {
		cross := "-"
		if r.CrossoverMonth != nil {
			cross = fmt.Sprint(*r.CrossoverMonth)
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %d | %s | %s | %s | %s |\n",
			r.ID, r.RecordedAt.Format("2006-01-02 15:04"), r.Label, r.HorizonMonths,
			f.Money(r.FinalPropertyReal), f.Money(r.FinalFundReal), r.Leader, cross)
	}
	return b.String()
}
