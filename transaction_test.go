package folio

import (
	"errors"
	"strings"
	"testing"
)

const storeDoc = `{
  "transactions": [
    {
      "yahooTicker": "ASML.AS",
      "name": "ASML Holding",
      "type": "buy",
      "quantity": 10,
      "pricePerShare": 600.5,
      "localCurrency": "EUR",
      "eurValue": 6005,
      "totalCosts": 4.5,
      "totalEur": 6009.5
    },
    {
      "yahooTicker": "RIO.L",
      "name": "Rio Tinto",
      "type": "sell",
      "quantity": 3,
      "pricePerShare": 5000,
      "localCurrency": "GBp",
      "eurValue": 175.2,
      "totalEur": 173.2
    }
  ]
}`

func TestDecodeTransactions(t *testing.T) {
	txs, err := DecodeTransactions(strings.NewReader(storeDoc))
	if err != nil {
		t.Fatalf("DecodeTransactions() failed: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}

	buy := txs[0]
	if buy.Ticker != "ASML.AS" || buy.Kind != KindBuy {
		t.Errorf("first transaction = %q %q, want ASML.AS buy", buy.Ticker, buy.Kind)
	}
	if !buy.Quantity.Equal(Q(10)) {
		t.Errorf("quantity = %s, want 10", buy.Quantity)
	}
	if !buy.TotalEUR.Equal(M(6009.5, "EUR")) {
		t.Errorf("totalEur = %s, want 6009.50 EUR", buy.TotalEUR)
	}
	if !buy.PricePerShare.Equal(M(600.5, "EUR")) {
		t.Errorf("pricePerShare = %s, want 600.50 in local currency", buy.PricePerShare)
	}

	// totalCosts is optional and defaults to 0
	sell := txs[1]
	if !sell.TotalCosts.IsZero() {
		t.Errorf("absent totalCosts = %s, want 0", sell.TotalCosts)
	}
	if sell.LocalCurrency != "GBp" {
		t.Errorf("localCurrency = %q, want GBp", sell.LocalCurrency)
	}
}

func TestDecodeTransactions_Empty(t *testing.T) {
	for _, doc := range []string{`{}`, `{"transactions": []}`} {
		_, err := DecodeTransactions(strings.NewReader(doc))
		if !errors.Is(err, ErrNoTransactions) {
			t.Errorf("DecodeTransactions(%s) error = %v, want ErrNoTransactions", doc, err)
		}
	}
}

func TestDecodeTransactions_MissingField(t *testing.T) {
	doc := `{"transactions": [{"yahooTicker": "AAA", "type": "buy", "quantity": 1}]}`
	_, err := DecodeTransactions(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected an error for a record missing required fields")
	}
	if !strings.Contains(err.Error(), "transaction #0") {
		t.Errorf("error %q should name the offending record", err)
	}
}

func TestDecodeTransactions_NonPositiveQuantity(t *testing.T) {
	doc := `{"transactions": [{
      "yahooTicker": "AAA", "name": "a", "type": "buy", "quantity": 0,
      "pricePerShare": 1, "localCurrency": "USD", "eurValue": 0, "totalEur": 0}]}`
	if _, err := DecodeTransactions(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for a zero quantity")
	}
}

func TestDecodeTransactions_Malformed(t *testing.T) {
	if _, err := DecodeTransactions(strings.NewReader(`{not json`)); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
