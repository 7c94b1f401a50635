// Package renderer renders the engine's valuation records to markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/folio"
)

// DashboardMarkdown renders the full report: open positions, closed
// positions and the portfolio summary.
func DashboardMarkdown(report *folio.Report) string {
	var b strings.Builder
	b.WriteString("# Portfolio\n\n")
	b.WriteString(OpenMarkdown(report))
	b.WriteString("\n")
	b.WriteString(ClosedMarkdown(report))
	b.WriteString("\n")
	b.WriteString(SummaryMarkdown(report))
	return b.String()
}

// OpenMarkdown renders the open positions table. Metrics the engine could
// not compute render as n/a cells rather than suppressing the row.
func OpenMarkdown(report *folio.Report) string {
	var b strings.Builder
	fmt.Fprint(&b, "## Open Positions\n\n")
	if len(report.Open) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Ticker | Name | Quantity | Avg Buy | Price | Value | P/L | P/L % | Weight |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|---:|")
	for _, v := range report.Open {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			v.Ticker,
			v.Name,
			v.Quantity,
			v.AvgBuyPrice,
			moneyCell(v.CurrentPrice),
			moneyCell(v.CurrentValue),
			signedMoneyCell(v.PL),
			signedPercentCell(v.PLPercent),
			percentCell(v.Weight),
		)
	}
	return b.String()
}

// ClosedMarkdown renders the closed positions table.
func ClosedMarkdown(report *folio.Report) string {
	var b strings.Builder
	fmt.Fprint(&b, "## Closed Positions\n\n")
	if len(report.Closed) == 0 {
		fmt.Fprintln(&b, "No closed positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Ticker | Name | Qty Sold | Avg Buy | Avg Sell | Costs | Realized P/L |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|")
	for _, v := range report.Closed {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			v.Ticker,
			v.Name,
			v.QuantitySold,
			v.AvgBuyPrice,
			v.AvgSellPrice,
			v.TotalCosts,
			v.RealizedPL.SignedString(),
		)
	}
	return b.String()
}

// SummaryMarkdown renders the portfolio-level totals.
func SummaryMarkdown(report *folio.Report) string {
	var b strings.Builder
	s := report.Summary
	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Invested | %s |\n", s.TotalInvested)
	fmt.Fprintf(&b, "| Unrealized P/L | %s |\n", s.TotalUnrealizedPL.SignedString())
	fmt.Fprintf(&b, "| Realized P/L | %s |\n", s.TotalRealizedPL.SignedString())
	fmt.Fprintf(&b, "| **Total P/L** | **%s (%s)** |\n", s.TotalPL.SignedString(), s.TotalPLPercent.SignedString())
	return b.String()
}

// ErrorMarkdown renders a hard pipeline error as a single descriptive row,
// replacing the dashboard entirely.
func ErrorMarkdown(err error) string {
	return fmt.Sprintf("# Portfolio\n\n| error |\n|:---|\n| %v |\n", err)
}
