package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quanterra/valuation"
)

// validateCmd holds the flags for the 'validate' subcommand.
type validateCmd struct{}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check the records file for structural faults" }
func (*validateCmd) Usage() string {
	return `pvc validate

  Check the records file: the currency is known, snapshot dates are unique,
  every snapshot date resolves, and every cash flow falls inside the
  snapshot history.
`
}

func (*validateCmd) SetFlags(f *flag.FlagSet) {}

func (c *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rs, err := DecodeRecordsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if _, err := valuation.NewCurrencyTable(rs.Currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ix, err := rs.Index()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if ix.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Error: records file has no snapshots")
		return subcommands.ExitFailure
	}

	// Resolving every snapshot date exercises the carry-forward path over
	// the whole history.
	for _, err := range ix.Views(datesOf(ix)...) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	history := valuation.NewRange(ix.Earliest(), ix.Latest())
	var strayFlows int
	for _, flow := range rs.CashFlows {
		if !history.Contains(flow.Date) {
			fmt.Fprintf(os.Stderr, "Warning: cash flow on %s (%s) is outside the snapshot history %s to %s\n",
				flow.Date, flow.Amount, history.From, history.To)
			strayFlows++
		}
	}

	fmt.Printf("%d snapshots from %s to %s, %d platforms, %d cash flows: OK\n",
		ix.Len(), ix.Earliest(), ix.Latest(), len(ix.Platforms()), len(rs.CashFlows))
	if strayFlows > 0 {
		fmt.Printf("%d cash flows outside the snapshot history will be ignored by period calculations\n", strayFlows)
	}
	return subcommands.ExitSuccess
}

func datesOf(ix *valuation.RecordIndex) []valuation.Date {
	dates := make([]valuation.Date, 0, ix.Len())
	for on := range ix.Dates() {
		dates = append(dates, on)
	}
	return dates
}
