package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/folio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])

	// Shell completion. This is a no-op outside of completion mode.
	(&complete.Command{
		Sub: map[string]*complete.Command{
			"view":    {},
			"open":    {},
			"closed":  {},
			"summary": {},
			"rates":   {},
			"assist":  {},
			"topic":   {},
		},
		Flags: map[string]complete.Predictor{
			"store-file": predict.Files("*.json"),
		},
	}).Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
