package folio

import (
	"testing"
)

func TestValuate_ClosedPosition(t *testing.T) {
	// buy 10 for 1020 all-in, sell all 10 for 480 gross with 2 of costs.
	book := Aggregate([]Transaction{
		tx(KindBuy, "AAA", "Triple A", 10, 1000, 20, 1020),
		tx(KindSell, "AAA", "Triple A", 10, 480, 2, 478),
	})

	report := Valuate(book, Prices{}, FallbackRates())

	if len(report.Open) != 0 {
		t.Fatalf("got %d open positions, want none", len(report.Open))
	}
	if len(report.Closed) != 1 {
		t.Fatalf("got %d closed positions, want 1", len(report.Closed))
	}

	c := report.Closed[0]
	if !c.AvgBuyPrice.Equal(M(102, "EUR")) {
		t.Errorf("avg buy price = %s, want 102 EUR", c.AvgBuyPrice)
	}
	if !c.AvgSellPrice.Equal(M(48, "EUR")) {
		t.Errorf("avg sell price = %s, want 48 EUR", c.AvgSellPrice)
	}
	if !c.QuantitySold.Equal(Q(10)) {
		t.Errorf("quantity sold = %s, want 10", c.QuantitySold)
	}
	// (48 - 102) * 10 - 2
	if !c.RealizedPL.Equal(M(-542, "EUR")) {
		t.Errorf("realized P/L = %s, want -542 EUR", c.RealizedPL)
	}

	if !report.Summary.TotalRealizedPL.Equal(M(-542, "EUR")) {
		t.Errorf("total realized = %s, want -542 EUR", report.Summary.TotalRealizedPL)
	}
	if !report.Summary.TotalInvested.IsZero() {
		t.Errorf("total invested = %s, want 0 with no open positions", report.Summary.TotalInvested)
	}
	// no invested amount: the percentage is defined as 0, not a division error
	if !report.Summary.TotalPLPercent.Equal(0) {
		t.Errorf("total P/L percent = %s, want 0", report.Summary.TotalPLPercent)
	}
}

func TestValuate_OpenAtCostHasZeroPL(t *testing.T) {
	book := Aggregate([]Transaction{
		tx(KindBuy, "AAA", "Triple A", 4, 400, 8, 408),
	})
	// current price exactly at the all-in average buy price
	prices := Prices{"AAA": M(102, "USD")}
	rates := Rates{"USD": newDecimal(1.0)}

	report := Valuate(book, prices, rates)
	if len(report.Open) != 1 {
		t.Fatalf("got %d open positions, want 1", len(report.Open))
	}
	v := report.Open[0]

	if v.PL == nil || !v.PL.IsZero() {
		t.Errorf("pl = %v, want 0", v.PL)
	}
	if v.PLPercent == nil || !v.PLPercent.Equal(0) {
		t.Errorf("plPercent = %v, want 0", v.PLPercent)
	}
	if v.Weight == nil || !v.Weight.Equal(100) {
		t.Errorf("weight = %v, want 100%% for the only valued position", v.Weight)
	}
}

func TestValuate_UnknownPriceDegradesToNil(t *testing.T) {
	book := Aggregate([]Transaction{
		tx(KindBuy, "AAA", "Known", 10, 1000, 0, 1000),
		tx(KindBuy, "BBB", "Unknown", 5, 500, 0, 500),
	})
	prices := Prices{"AAA": M(110, "USD")} // no price for BBB
	rates := Rates{"USD": newDecimal(1.0)}

	report := Valuate(book, prices, rates)
	if len(report.Open) != 2 {
		t.Fatalf("got %d open positions, want 2", len(report.Open))
	}

	known, unknown := report.Open[0], report.Open[1]
	if known.Ticker != "AAA" || unknown.Ticker != "BBB" {
		t.Fatalf("open positions not sorted by ticker: %q, %q", known.Ticker, unknown.Ticker)
	}

	if unknown.CurrentPrice != nil || unknown.CurrentValue != nil || unknown.PL != nil ||
		unknown.PLPercent != nil || unknown.Weight != nil {
		t.Errorf("unpriced position must have all nullable metrics nil: %+v", unknown)
	}
	// invested is always defined, price known or not
	if !unknown.Invested.Equal(M(500, "EUR")) {
		t.Errorf("invested = %s, want 500 EUR", unknown.Invested)
	}

	if known.CurrentValue == nil || !known.CurrentValue.Equal(M(1100, "EUR")) {
		t.Errorf("current value = %v, want 1100 EUR", known.CurrentValue)
	}
	if known.PL == nil || !known.PL.Equal(M(100, "EUR")) {
		t.Errorf("pl = %v, want 100 EUR", known.PL)
	}
	if known.PLPercent == nil || !known.PLPercent.Equal(10) {
		t.Errorf("plPercent = %v, want 10%%", known.PLPercent)
	}
	// the only known value carries the full portfolio weight
	if known.Weight == nil || !known.Weight.Equal(100) {
		t.Errorf("weight = %v, want 100%%", known.Weight)
	}

	// totals: invested counts both, unrealized only the known one
	if !report.Summary.TotalInvested.Equal(M(1500, "EUR")) {
		t.Errorf("total invested = %s, want 1500 EUR", report.Summary.TotalInvested)
	}
	if !report.Summary.TotalUnrealizedPL.Equal(M(100, "EUR")) {
		t.Errorf("total unrealized = %s, want 100 EUR", report.Summary.TotalUnrealizedPL)
	}
}

func TestValuate_ZeroInvestedGuardsPercent(t *testing.T) {
	// free shares: a buy lot with a zero all-in total
	book := Aggregate([]Transaction{
		tx(KindBuy, "FREE", "Spin Off", 10, 0.0001, 0, 0),
	})
	prices := Prices{"FREE": M(3, "USD")}
	rates := Rates{"USD": newDecimal(1.0)}

	report := Valuate(book, prices, rates)
	v := report.Open[0]
	if v.PL == nil || !v.PL.Equal(M(30, "EUR")) {
		t.Errorf("pl = %v, want 30 EUR", v.PL)
	}
	if v.PLPercent != nil {
		t.Errorf("plPercent = %v, want nil when invested is 0", v.PLPercent)
	}
}

func TestValuate_Weights(t *testing.T) {
	book := Aggregate([]Transaction{
		tx(KindBuy, "AAA", "A", 10, 1000, 0, 1000),
		tx(KindBuy, "BBB", "B", 10, 1000, 0, 1000),
	})
	prices := Prices{
		"AAA": M(30, "USD"),
		"BBB": M(10, "USD"),
	}
	rates := Rates{"USD": newDecimal(1.0)}

	report := Valuate(book, prices, rates)
	a, b := report.Open[0], report.Open[1]
	if a.Weight == nil || !a.Weight.Equal(75) {
		t.Errorf("AAA weight = %v, want 75%%", a.Weight)
	}
	if b.Weight == nil || !b.Weight.Equal(25) {
		t.Errorf("BBB weight = %v, want 25%%", b.Weight)
	}
}

func TestValuate_PenceConversion(t *testing.T) {
	book := Aggregate([]Transaction{
		tx(KindBuy, "RIO.L", "Rio Tinto", 10, 500, 0, 500),
	})
	// 6000 pence = 60 GBP, times 1.2 = 72 EUR per share
	prices := Prices{"RIO.L": M(6000, PenceCurrency)}
	rates := Rates{"GBP": newDecimal(1.2)}

	report := Valuate(book, prices, rates)
	v := report.Open[0]
	if v.CurrentPrice == nil || !v.CurrentPrice.Equal(M(72, "EUR")) {
		t.Errorf("current price = %v, want 72 EUR", v.CurrentPrice)
	}
	if v.CurrentValue == nil || !v.CurrentValue.Equal(M(720, "EUR")) {
		t.Errorf("current value = %v, want 720 EUR", v.CurrentValue)
	}
}
