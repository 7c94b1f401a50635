// Package cmd implements the CLI application to view a valued portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&viewCmd{}, "reports")
	c.Register(&openCmd{}, "reports")
	c.Register(&closedCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&ratesCmd{}, "market")

	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", "transactions.json", "Path to the transaction store file (JSON)")

// DecodeStore loads and validates the transaction store file.
func DecodeStore() ([]folio.Transaction, error) {
	f, err := os.Open(*storeFile)
	if err != nil {
		return nil, fmt.Errorf("could not open transaction store %q: %w", *storeFile, err)
	}
	defer f.Close()
	return folio.DecodeTransactions(f)
}

// BuildReport runs the full pipeline: decode the store, aggregate positions,
// fetch prices and rates concurrently, and valuate. Market data failures
// degrade inside the pipeline; the returned error is a hard one (unreadable
// or empty store).
func BuildReport() (*folio.Report, error) {
	txs, err := DecodeStore()
	if err != nil {
		return nil, err
	}
	book := folio.Aggregate(txs)

	yahoo := folio.NewYahoo()
	open := book.Open()
	tickers := make([]string, 0, len(open))
	for _, pos := range open {
		tickers = append(tickers, pos.Ticker)
	}
	prices := folio.FetchPrices(yahoo, tickers)
	rates := folio.FetchRates(yahoo, folio.RateCurrencies)

	return folio.Valuate(book, prices, rates), nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail replaces the dashboard with a single descriptive error row.
func fail(err error) subcommands.ExitStatus {
	printMarkdown(renderer.ErrorMarkdown(err))
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
