package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"property-forecast/internal/bond"
	"property-forecast/internal/forecast"
	"property-forecast/internal/model"
	"property-forecast/internal/report"
)

type scheduleCmd struct {
	principal float64
	rate      float64
	term      int
	horizon   int
	out       string
	currency  string
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "print a bond amortization schedule" }
func (*scheduleCmd) Usage() string {
	return `cli schedule -principal P -rate R -term Y [-horizon H] [-out schedule.csv]

  Amortizes a fixed-rate bond. The rate is an annual fraction (0.0975).
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", 0, "Amount borrowed")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate as a fraction")
	f.IntVar(&c.term, "term", 20, "Term in years")
	f.IntVar(&c.horizon, "horizon", 0, "Months to show (0 = full term)")
	f.StringVar(&c.out, "out", "", "Optional: write the schedule to this CSV file")
	f.StringVar(&c.currency, "currency", "ZAR", "ISO 4217 currency code for display")
}

func (c *scheduleCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.principal < 0 || c.term < 1 || c.term > model.MaxBondTerm {
		fmt.Fprintf(os.Stderr, "-principal must be >= 0 and -term within [1, %d]\n", model.MaxBondTerm)
		return subcommands.ExitUsageError
	}
	if c.horizon < 0 || c.horizon > model.MaxHorizonMonths {
		fmt.Fprintf(os.Stderr, "-horizon must be within [0, %d]\n", model.MaxHorizonMonths)
		return subcommands.ExitUsageError
	}
	if c.rate < model.MinRate || c.rate > model.MaxRate {
		fmt.Fprintf(os.Stderr, "-rate %v looks like a percentage; use a fraction such as 0.0975\n", c.rate)
		return subcommands.ExitUsageError
	}
	f, err := report.NewFormatter(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	horizon := c.horizon
	if horizon <= 0 {
		horizon = c.term * 12
	}
	s := bond.NewSchedule(c.principal, c.rate, c.term, horizon)

	if c.out != "" {
		if err := forecast.WriteScheduleCSV(c.out, s); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.out, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(scheduleMarkdown(s, f))
	return subcommands.ExitSuccess
}

func scheduleMarkdown(s bond.Schedule, f report.Formatter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Bond of %s over %d months\n\n", f.Money(s.Principal), s.TermMonths)
	fmt.Fprintf(&b, "Monthly instalment %s, interest over the schedule %s.\n\n", f.Money(s.Payment), f.Money(s.TotalInterest()))
	b.WriteString("| Month | Payment | Interest | Principal | Balance |\n|---:|---:|---:|---:|---:|\n")
	for _, r := range s.Rows {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			r.Month, f.Money(r.Payment), f.Money(r.Interest), f.Money(r.Principal), f.Money(r.Balance))
	}
	return b.String()
}
