package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// openCmd renders the open positions only.
type openCmd struct{}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open positions with unrealized P/L" }
func (*openCmd) Usage() string {
	return `fv open

  Renders the currently held positions with their cost basis, market value,
  unrealized P/L and portfolio weight.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := BuildReport()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.OpenMarkdown(report))
	return subcommands.ExitSuccess
}
