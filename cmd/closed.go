package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// closedCmd renders the closed positions only.
type closedCmd struct{}

func (*closedCmd) Name() string     { return "closed" }
func (*closedCmd) Synopsis() string { return "closed positions with realized P/L" }
func (*closedCmd) Usage() string {
	return `fv closed

  Renders the fully sold positions with their average buy and sell prices,
  total costs and realized P/L. No market data is needed for this report.
`
}

func (c *closedCmd) SetFlags(f *flag.FlagSet) {}

func (c *closedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := BuildReport()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.ClosedMarkdown(report))
	return subcommands.ExitSuccess
}
