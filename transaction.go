package folio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind is a typed string identifying the side of a transaction.
type Kind string

const (
	KindBuy  Kind = "buy"
	KindSell Kind = "sell"
)

// ErrNoTransactions is returned when the transaction store holds no
// transactions at all. It is the single hard error of the pipeline: an empty
// store cannot produce a dashboard, whereas "no open positions" is a valid
// empty result.
var ErrNoTransactions = errors.New("transaction store is empty")

// Transaction is one immutable record of the store.
//
// Amounts come in two currencies: PricePerShare is quoted in the local
// currency of the instrument's market, while EURValue, TotalCosts and
// TotalEUR are already expressed in the reporting currency by the store.
// EURValue excludes transaction costs, TotalEUR includes them.
type Transaction struct {
	Ticker        string
	Name          string
	Kind          Kind
	Quantity      Quantity
	PricePerShare Money // in the instrument's local currency
	LocalCurrency string
	EURValue      Money // pre-cost value in the reporting currency
	TotalCosts    Money // transaction costs in the reporting currency
	TotalEUR      Money // cost-inclusive total in the reporting currency
}

// rawTransaction mirrors the exact external JSON shape of the store. Fields
// are pointers so that absent fields can be told apart from zero values.
type rawTransaction struct {
	YahooTicker   *string          `json:"yahooTicker"`
	Name          *string          `json:"name"`
	Type          *string          `json:"type"`
	Quantity      *decimal.Decimal `json:"quantity"`
	PricePerShare *decimal.Decimal `json:"pricePerShare"`
	LocalCurrency *string          `json:"localCurrency"`
	EurValue      *decimal.Decimal `json:"eurValue"`
	TotalCosts    *decimal.Decimal `json:"totalCosts"` // optional, defaults to 0
	TotalEur      *decimal.Decimal `json:"totalEur"`
}

// validate checks the record for schema completeness and returns the domain
// transaction. Records missing a required field are rejected here rather
// than silently flowing through as zero values.
func (raw rawTransaction) validate() (Transaction, error) {
	var missing []string
	if raw.YahooTicker == nil || *raw.YahooTicker == "" {
		missing = append(missing, "yahooTicker")
	}
	if raw.Name == nil {
		missing = append(missing, "name")
	}
	if raw.Type == nil {
		missing = append(missing, "type")
	}
	if raw.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if raw.PricePerShare == nil {
		missing = append(missing, "pricePerShare")
	}
	if raw.LocalCurrency == nil {
		missing = append(missing, "localCurrency")
	}
	if raw.EurValue == nil {
		missing = append(missing, "eurValue")
	}
	if raw.TotalEur == nil {
		missing = append(missing, "totalEur")
	}
	if len(missing) > 0 {
		return Transaction{}, fmt.Errorf("missing required fields %v", missing)
	}
	if !raw.Quantity.IsPositive() {
		return Transaction{}, fmt.Errorf("quantity must be positive, got %s", raw.Quantity)
	}

	costs := decimal.Zero
	if raw.TotalCosts != nil {
		costs = *raw.TotalCosts
	}

	return Transaction{
		Ticker:        *raw.YahooTicker,
		Name:          *raw.Name,
		Kind:          Kind(*raw.Type),
		Quantity:      Q(*raw.Quantity),
		PricePerShare: M(*raw.PricePerShare, *raw.LocalCurrency),
		LocalCurrency: *raw.LocalCurrency,
		EURValue:      M(*raw.EurValue, ReportingCurrency),
		TotalCosts:    M(costs, ReportingCurrency),
		TotalEUR:      M(*raw.TotalEur, ReportingCurrency),
	}, nil
}

// DecodeTransactions decodes the store document, a single JSON object with a
// "transactions" array, and validates every record. It returns
// ErrNoTransactions when the array is absent or empty.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var doc struct {
		Transactions []rawTransaction `json:"transactions"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode transaction store: %w", err)
	}
	if len(doc.Transactions) == 0 {
		return nil, ErrNoTransactions
	}

	txs := make([]Transaction, 0, len(doc.Transactions))
	for i, raw := range doc.Transactions {
		tx, err := raw.validate()
		if err != nil {
			return nil, fmt.Errorf("transaction #%d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
