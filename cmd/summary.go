package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// summaryCmd renders the portfolio totals only.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "portfolio-level totals" }
func (*summaryCmd) Usage() string {
	return `fv summary

  Renders the portfolio totals: invested amount, unrealized and realized P/L,
  and the overall P/L percentage.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := BuildReport()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
