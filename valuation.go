package folio

// Prices holds the known current prices, keyed by ticker, each in the
// ticker's local currency. A ticker absent from the map has no known price;
// its valuation degrades to null metrics instead of failing.
type Prices map[string]Money

// OpenValuation is the valuation record of an open position. Pointer fields
// are nil when the current price is unknown (or a ratio is undefined) and
// marshal to JSON null, so a presentation layer can render "n/a" per cell.
type OpenValuation struct {
	Ticker       string   `json:"yahooTicker"`
	Name         string   `json:"name"`
	Quantity     Quantity `json:"quantity"`
	AvgBuyPrice  Money    `json:"avgBuyPrice"`
	Invested     Money    `json:"invested"`
	CurrentPrice *Money   `json:"currentPrice"`
	CurrentValue *Money   `json:"currentValue"`
	PL           *Money   `json:"pl"`
	PLPercent    *Percent `json:"plPercent"`
	Weight       *Percent `json:"portfolioPercent"`
}

// ClosedValuation is the valuation record of a closed position. All its
// metrics derive from the lots alone, so none of them can be unknown.
type ClosedValuation struct {
	Ticker       string   `json:"yahooTicker"`
	Name         string   `json:"name"`
	QuantitySold Quantity `json:"quantitySold"`
	AvgBuyPrice  Money    `json:"avgBuyPrice"`
	AvgSellPrice Money    `json:"avgSellPrice"`
	TotalCosts   Money    `json:"totalCosts"`
	RealizedPL   Money    `json:"realizedPl"`
}

// Summary aggregates the portfolio-level totals.
type Summary struct {
	TotalInvested     Money   `json:"totalInvested"`
	TotalUnrealizedPL Money   `json:"totalUnrealizedPl"` // over open positions with a known P/L
	TotalRealizedPL   Money   `json:"totalRealizedPl"`
	TotalPL           Money   `json:"totalPl"`
	TotalPLPercent    Percent `json:"totalPlPercent"`
}

// Report is the full output of the valuation engine.
type Report struct {
	Open    []OpenValuation   `json:"open"`
	Closed  []ClosedValuation `json:"closed"`
	Summary Summary           `json:"summary"`
}

// Valuate values the book against the given prices and rates. It never
// errors: every missing price or rate degrades into nil fields on the
// affected records. Records are ordered by ticker.
func Valuate(book Book, prices Prices, rates Rates) *Report {
	report := &Report{
		Open:   []OpenValuation{},
		Closed: []ClosedValuation{},
	}

	zero := M(0, ReportingCurrency)
	totalInvested := zero
	totalValue := zero
	totalUnrealized := zero

	// First pass over open positions: per-position metrics and the portfolio
	// total needed for the weights.
	for _, pos := range book.Open() {
		avg := pos.AvgBuyPrice()
		invested := avg.Mul(pos.Quantity)
		v := OpenValuation{
			Ticker:      pos.Ticker,
			Name:        pos.Name,
			Quantity:    pos.Quantity,
			AvgBuyPrice: avg,
			Invested:    invested,
		}

		if local, ok := prices[pos.Ticker]; ok {
			v.CurrentPrice = Convert(&local, rates)
			value := v.CurrentPrice.Mul(pos.Quantity)
			v.CurrentValue = &value
			pl := value.Sub(invested)
			v.PL = &pl
			if invested.IsPositive() {
				pct := pl.PercentOf(invested)
				v.PLPercent = &pct
			}
			totalValue = totalValue.Add(value)
			totalUnrealized = totalUnrealized.Add(pl)
		}

		totalInvested = totalInvested.Add(invested)
		report.Open = append(report.Open, v)
	}

	// Second pass: portfolio weights, now that the total is known.
	for i := range report.Open {
		if cv := report.Open[i].CurrentValue; cv != nil && totalValue.IsPositive() {
			w := cv.PercentOf(totalValue)
			report.Open[i].Weight = &w
		}
	}

	totalRealized := zero
	for _, pos := range book.Closed() {
		avgBuy := pos.AvgBuyPrice()
		avgSell := pos.AvgSellPrice()
		sold := pos.QuantitySold()
		// Buy-side costs are already embedded in the cost-inclusive average
		// buy price; sell-side costs are subtracted explicitly because the
		// sell proceeds are gross.
		realized := avgSell.Sub(avgBuy).Mul(sold).Sub(pos.sellCosts())
		report.Closed = append(report.Closed, ClosedValuation{
			Ticker:       pos.Ticker,
			Name:         pos.Name,
			QuantitySold: sold,
			AvgBuyPrice:  avgBuy,
			AvgSellPrice: avgSell,
			TotalCosts:   pos.TotalCosts(),
			RealizedPL:   realized,
		})
		totalRealized = totalRealized.Add(realized)
	}

	totalPL := totalUnrealized.Add(totalRealized)
	report.Summary = Summary{
		TotalInvested:     totalInvested,
		TotalUnrealizedPL: totalUnrealized,
		TotalRealizedPL:   totalRealized,
		TotalPL:           totalPL,
	}
	if totalInvested.IsPositive() {
		report.Summary.TotalPLPercent = totalPL.PercentOf(totalInvested)
	}

	return report
}
