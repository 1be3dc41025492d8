package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// twrCmd holds the flags for the 'twr' subcommand.
type twrCmd struct {
	from string
	to   string
}

func (*twrCmd) Name() string     { return "twr" }
func (*twrCmd) Synopsis() string { return "compute the time-weighted return over a period" }
func (*twrCmd) Usage() string {
	return `pvc twr [-from <date>] [-to <date>]

  Compute the time-weighted return by chaining Modified Dietz sub-periods
  between consecutive snapshots. Defaults to the full snapshot history.
`
}

func (c *twrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start snapshot date. Defaults to the earliest snapshot.")
	f.StringVar(&c.to, "to", "", "End snapshot date. Defaults to the latest snapshot.")
}

func (c *twrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	r, err := ix.TimeWeightedReturn(rs.CashFlows, period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Time-weighted return from %s to %s: %s\n", period.From, period.To, r)
	return subcommands.ExitSuccess
}
