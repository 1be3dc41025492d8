// Package cmd implements the CLI application to inspect portfolio records.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/quanterra/valuation"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&viewCmd{}, "reports")
	c.Register(&growthCmd{}, "reports")
	c.Register(&rebalanceCmd{}, "reports")

	c.Register(&dietzCmd{}, "returns")
	c.Register(&twrCmd{}, "returns")
	c.Register(&cagrCmd{}, "returns")

	c.Register(&validateCmd{}, "records")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var recordsFile = flag.String("records", "records.json", "Path to the exported records file (JSON)")

// DecodeRecordsFile loads the record set from the app records file.
func DecodeRecordsFile() (*valuation.RecordSet, error) {
	f, err := os.Open(*recordsFile)
	if err != nil {
		return nil, fmt.Errorf("opening records file %q: %w", *recordsFile, err)
	}
	defer f.Close()
	return valuation.DecodeRecords(f)
}

// reportDate parses a -d flag value, defaulting to the latest snapshot.
func reportDate(ix *valuation.RecordIndex, flagValue string) (valuation.Date, error) {
	if flagValue == "" {
		if ix.Len() == 0 {
			return valuation.Date{}, fmt.Errorf("records file has no snapshots")
		}
		return ix.Latest(), nil
	}
	return valuation.ParseDate(flagValue)
}

// periodFlags parses -from and -to flag values, defaulting to the full
// snapshot history.
func periodFlags(ix *valuation.RecordIndex, from, to string) (valuation.Range, error) {
	if ix.Len() == 0 {
		return valuation.Range{}, fmt.Errorf("records file has no snapshots")
	}
	start, end := ix.Earliest(), ix.Latest()
	var err error
	if from != "" {
		if start, err = valuation.ParseDate(from); err != nil {
			return valuation.Range{}, fmt.Errorf("parsing -from: %w", err)
		}
	}
	if to != "" {
		if end, err = valuation.ParseDate(to); err != nil {
			return valuation.Range{}, fmt.Errorf("parsing -to: %w", err)
		}
	}
	return valuation.NewRange(start, end), nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be set up.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
