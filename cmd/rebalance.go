package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quanterra/valuation"
	"github.com/quanterra/valuation/renderer"
)

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	date string
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "suggest adjustments toward category targets" }
func (*rebalanceCmd) Usage() string {
	return `pvc rebalance [-d <date>]

  Compare category weights on a snapshot date against the targets declared
  in the records file, and suggest the amounts to buy or sell.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Snapshot date for the plan. Defaults to the latest snapshot.")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	on, err := reportDate(ix, c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	view, err := ix.Resolve(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	plan := valuation.Rebalance(view, rs.Categories)
	printMarkdown(renderer.RebalanceMarkdown(plan))
	return subcommands.ExitSuccess
}
