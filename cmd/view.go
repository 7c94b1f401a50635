package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// viewCmd renders the full dashboard.
type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "full portfolio dashboard" }
func (*viewCmd) Usage() string {
	return `fv view

  Values the transaction store against current prices and exchange rates and
  renders the open positions, closed positions and portfolio summary.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := BuildReport()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.DashboardMarkdown(report))
	return subcommands.ExitSuccess
}
