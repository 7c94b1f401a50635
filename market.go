package folio

import (
	"log"
	"sync"
)

// PriceSource supplies the current market price for a ticker, quoted in the
// ticker's local currency. An error means "price unknown for this ticker";
// it never aborts the valuation of other tickers.
type PriceSource interface {
	Price(ticker string) (float64, error)
}

// RateSource supplies the conversion factor from a currency code into the
// reporting currency. An error means the documented fallback constant is
// used instead, so the configured currency set stays fully covered.
type RateSource interface {
	Rate(code string) (float64, error)
}

// FetchPrices queries the source for every ticker concurrently and joins all
// results into a single price table before returning. A failing ticker is
// logged and left out of the table (its valuation degrades to null); it never
// cancels sibling fetches. One attempt per ticker, fail-open.
func FetchPrices(src PriceSource, tickers []string) Prices {
	prices := make(Prices, len(tickers))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, ticker := range tickers {
		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()
			value, err := src.Price(ticker)
			if err != nil {
				log.Printf("warning: no price for %q: %v", ticker, err)
				return
			}
			price := M(value, CurrencyOf(ticker))
			mu.Lock()
			prices[ticker] = price
			mu.Unlock()
		}(ticker)
	}
	wg.Wait()

	return prices
}

// FetchRates queries the source for every currency code concurrently and
// joins all results into a single rate table before returning. A failing
// code is logged and receives its documented fallback constant, never
// omitted.
func FetchRates(src RateSource, codes []string) Rates {
	rates := make(Rates, len(codes))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, code := range codes {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			value, err := src.Rate(code)
			if err != nil {
				log.Printf("warning: no %s rate for %q, using fallback: %v", ReportingCurrency, code, err)
				value = fallbackRates[code]
			}
			mu.Lock()
			rates[code] = newDecimal(value)
			mu.Unlock()
		}(code)
	}
	wg.Wait()

	return rates
}
