package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/quanterra/valuation/cmd"
)

func main() {
	// Shell completion runs first: when invoked by the shell completion
	// hook it prints candidates and exits.
	dateFlags := map[string]complete.Predictor{"d": predict.Something}
	periodFlags := map[string]complete.Predictor{"from": predict.Something, "to": predict.Something}
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"records": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"view":      {Flags: dateFlags},
			"growth":    {Flags: dateFlags},
			"rebalance": {Flags: dateFlags},
			"dietz":     {Flags: periodFlags},
			"twr":       {Flags: periodFlags},
			"cagr":      {Flags: periodFlags},
			"validate":  {},
			"topic":     {Args: predict.Something},
		},
	}
	completion.Complete("pvc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
