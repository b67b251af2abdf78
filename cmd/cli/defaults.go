package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"property-forecast/internal/config"
	"property-forecast/internal/model"
	"property-forecast/internal/report"
)

type defaultsCmd struct {
	params bool
}

func (*defaultsCmd) Name() string     { return "defaults" }
func (*defaultsCmd) Synopsis() string { return "print the built-in config as YAML" }
func (*defaultsCmd) Usage() string {
	return `cli defaults [-params]

  Prints the baseline assumptions and standard sweeps, ready to edit and
  pass back with -config. With -params, lists the sweepable parameters.
`
}

func (c *defaultsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.params, "params", false, "List sweepable parameters instead")
}

func (c *defaultsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.Default()
	if c.params {
		f, err := report.NewFormatter(cfg.Report.Currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("| Parameter | Kind | Default | Description |")
		fmt.Println("|---|---|---:|---|")
		for _, p := range model.Params() {
			fmt.Printf("| %s | %s | %s | %s |\n", p.Name, p.Kind, f.Value(p.Kind, p.Get(cfg.Assumptions)), p.Description)
		}
		return subcommands.ExitSuccess
	}

	if err := cfg.Encode(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
