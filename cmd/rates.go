package cmd

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

// ratesCmd fetches and displays the exchange rate table.
type ratesCmd struct {
	offline bool
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "exchange rates into the reporting currency" }
func (*ratesCmd) Usage() string {
	return `fv rates [-offline]

  Fetches and displays the conversion factors used to normalize local
  currencies into EUR. A currency whose rate cannot be fetched falls back to
  its built-in constant. With -offline, only the built-in constants are shown.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Skip fetching, show the built-in fallback constants")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var rates folio.Rates
	if c.offline {
		rates = folio.FallbackRates()
	} else {
		rates = folio.FetchRates(folio.NewYahoo(), folio.RateCurrencies)
	}

	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var b strings.Builder
	fmt.Fprintf(&b, "# Exchange Rates (1 unit in %s)\n\n", folio.ReportingCurrency)
	fmt.Fprintln(&b, "| Currency | Rate |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, code := range codes {
		fmt.Fprintf(&b, "| %s | %s |\n", code, rates[code])
	}
	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
