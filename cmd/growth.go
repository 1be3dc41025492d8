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

// growthCmd holds the flags for the 'growth' subcommand.
type growthCmd struct {
	date      string
	staleness int
}

func (*growthCmd) Name() string     { return "growth" }
func (*growthCmd) Synopsis() string { return "display lookback growth and overall returns" }
func (*growthCmd) Usage() string {
	return `pvc growth [-d <date>] [-staleness <days>]

  Display the 1 month, 3 months and 1 year growth rates on a snapshot date,
  together with the time-weighted return and the annualized return since the
  first snapshot.
`
}

func (c *growthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Snapshot date for the report. Defaults to the latest snapshot.")
	f.IntVar(&c.staleness, "staleness", valuation.DefaultStalenessDays, "Maximum age in days of a prior snapshot relative to the lookback date.")
}

func (c *growthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := valuation.NewPerformanceReport(ix, rs.CashFlows, on, c.staleness)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PerformanceMarkdown(report))
	return subcommands.ExitSuccess
}
