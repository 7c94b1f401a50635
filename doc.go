// Package folio computes portfolio holdings and profit/loss metrics from a
// flat ledger of buy/sell transactions, normalizing multi-currency prices
// into a single reporting currency (EUR).
//
// The pipeline is strictly three stages: transactions are decoded from the
// store document, folded into per-ticker positions, and valued against live
// prices and exchange rates. Missing prices or rates never abort the
// pipeline; they degrade into null metrics so a dashboard can render "n/a"
// instead of failing.
package folio
