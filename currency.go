package folio

import (
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// ReportingCurrency is the single currency all valuations are normalized into.
const ReportingCurrency = "EUR"

// PenceCurrency is the minor-unit code used by the London market: prices come
// in pence and must be divided by 100 before the GBP rate applies.
const PenceCurrency = "GBp"

// marketCurrencies maps a ticker's exchange suffix to the currency its
// prices are quoted in. Tickers without a recognized suffix trade in USD.
var marketCurrencies = map[string]string{
	".L":  PenceCurrency,
	".AS": "EUR",
	".DE": "EUR",
	".ST": "SEK",
	".WA": "PLN",
}

const defaultCurrency = "USD"

// RateCurrencies is the set of currency codes the rate source is asked for.
// FetchRates guarantees an entry for each of them, falling back to
// fallbackRates when a pair cannot be resolved.
var RateCurrencies = []string{"USD", "GBP", "SEK", "PLN"}

// fallbackRates are the documented conversion factors into EUR used when the
// rate source fails for a currency. Stale by definition, but they keep the
// rate table total so the dashboard degrades instead of failing.
var fallbackRates = map[string]float64{
	"USD": 0.92,
	"GBP": 1.17,
	"SEK": 0.088,
	"PLN": 0.23,
}

// CurrencyOf returns the currency code a ticker's prices are quoted in,
// derived from its exchange suffix. It is total: unknown suffixes default to
// USD rather than failing.
func CurrencyOf(ticker string) string {
	if i := strings.LastIndex(ticker, "."); i >= 0 {
		if cur, ok := marketCurrencies[ticker[i:]]; ok {
			return cur
		}
	}
	return defaultCurrency
}

// Rates maps a currency code to its multiplicative conversion factor into
// the reporting currency. The reporting currency itself maps to 1.
type Rates map[string]decimal.Decimal

// NewRate builds a conversion factor for a rate table.
func NewRate(rate float64) decimal.Decimal {
	return decimal.NewFromFloat(rate)
}

// FallbackRates returns a rate table built entirely from the documented
// fallback constants.
func FallbackRates() Rates {
	rates := make(Rates, len(fallbackRates))
	for code, rate := range fallbackRates {
		rates[code] = decimal.NewFromFloat(rate)
	}
	return rates
}

// Convert converts a local-currency price into the reporting currency.
//
// A nil price stands for "price unknown" and propagates as nil. Pence prices
// are divided by 100 before the GBP rate applies; if the table has no GBP
// rate the documented fallback is used. A price already in the reporting
// currency is returned unchanged. A price in a currency the table does not
// cover is passed through unconverted with a logged warning: a degraded but
// non-fatal result.
func Convert(price *Money, rates Rates) *Money {
	if price == nil {
		return nil
	}

	code := price.Currency()
	value := price.value

	if code == PenceCurrency {
		value = value.Div(decimal.NewFromInt(100))
		rate, ok := rates["GBP"]
		if !ok {
			rate = decimal.NewFromFloat(fallbackRates["GBP"])
		}
		converted := M(value.Mul(rate), ReportingCurrency)
		return &converted
	}

	if strings.ToUpper(code) == ReportingCurrency {
		converted := M(value, ReportingCurrency)
		return &converted
	}

	rate, ok := rates[strings.ToUpper(code)]
	if !ok {
		log.Printf("warning: no %s rate for %q, using unconverted value", ReportingCurrency, code)
		passthrough := M(value, ReportingCurrency)
		return &passthrough
	}
	converted := M(value.Mul(rate), ReportingCurrency)
	return &converted
}
