package folio

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// Yahoo is a PriceSource and RateSource backed by the Yahoo chart API.
// Responses are cached on disk with a daily expire.
type Yahoo struct {
	client *http.Client
}

// NewYahoo returns a Yahoo market data source.
func NewYahoo() *Yahoo {
	return &Yahoo{client: daily()}
}

const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1d"

// latest fetches the chart document for a symbol and extracts the latest
// regular market price from its metadata.
func (y *Yahoo) latest(symbol string) (float64, error) {
	addr := fmt.Sprintf(yahooChartURL, url.PathEscape(symbol))

	var jobj any
	if err := jwget(y.client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: %q not a float: %v", symbol, path, jval)
	}
	if val <= 0 {
		return 0, fmt.Errorf("invalid price for %q: %v", symbol, val)
	}
	return val, nil
}

// Price returns the latest price for the ticker in its local currency.
func (y *Yahoo) Price(ticker string) (float64, error) {
	return y.latest(ticker)
}

// Rate returns the conversion factor from a currency code into the reporting
// currency, using the <CODE>EUR=X pair of the same chart API.
func (y *Yahoo) Rate(code string) (float64, error) {
	if code == ReportingCurrency {
		return 1, nil
	}
	return y.latest(code + ReportingCurrency + "=X")
}
