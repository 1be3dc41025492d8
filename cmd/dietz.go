package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quanterra/valuation"
)

// dietzCmd holds the flags for the 'dietz' subcommand.
type dietzCmd struct {
	from string
	to   string
}

func (*dietzCmd) Name() string     { return "dietz" }
func (*dietzCmd) Synopsis() string { return "compute the Modified Dietz return over a period" }
func (*dietzCmd) Usage() string {
	return `pvc dietz [-from <date>] [-to <date>]

  Compute the cash-flow-weighted Modified Dietz return between two snapshot
  dates. Defaults to the full snapshot history.
`
}

func (c *dietzCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start snapshot date. Defaults to the earliest snapshot.")
	f.StringVar(&c.to, "to", "", "End snapshot date. Defaults to the latest snapshot.")
}

func (c *dietzCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rs, err := DecodeRecordsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ix, err := rs.Index()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	period, err := periodFlags(ix, c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	begin, err := ix.Resolve(period.From)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	end, err := ix.Resolve(period.To)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// Only flows inside the period participate; flows outside it belong to
	// other periods, not to this calculation.
	var flows []valuation.CashFlow
	for _, flow := range rs.CashFlows {
		if period.Contains(flow.Date) {
			flows = append(flows, flow)
		}
	}

	r, err := valuation.ModifiedDietz(begin.Total(), end.Total(), flows, period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Modified Dietz return from %s to %s: %s\n", period.From, period.To, r)
	return subcommands.ExitSuccess
}
