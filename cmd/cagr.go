package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quanterra/valuation"
)

// cagrCmd holds the flags for the 'cagr' subcommand.
type cagrCmd struct {
	from string
	to   string
}

func (*cagrCmd) Name() string     { return "cagr" }
func (*cagrCmd) Synopsis() string { return "compute the annualized return over a period" }
func (*cagrCmd) Usage() string {
	return `pvc cagr [-from <date>] [-to <date>]

  Compute the compound annual growth rate between two snapshot dates.
  Defaults to the full snapshot history.
`
}

func (c *cagrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start snapshot date. Defaults to the earliest snapshot.")
	f.StringVar(&c.to, "to", "", "End snapshot date. Defaults to the latest snapshot.")
}

func (c *cagrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	r := valuation.AnnualizedReturn(begin.Total(), end.Total(), period)
	fmt.Printf("Annualized return from %s to %s: %s\n", period.From, period.To, r)
	return subcommands.ExitSuccess
}
