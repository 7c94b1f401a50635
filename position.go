package folio

import (
	"sort"
)

// Lot carries the quantity, price and cost data of a single transaction,
// grouped by buy or sell side within its Position. A lot is owned exclusively
// by the position it belongs to.
type Lot struct {
	Quantity      Quantity
	PricePerShare Money // in the position's local currency
	EURValue      Money // pre-cost value in the reporting currency
	TotalCosts    Money
	TotalEUR      Money // cost-inclusive total in the reporting currency
}

func newLot(tx Transaction) Lot {
	return Lot{
		Quantity:      tx.Quantity,
		PricePerShare: tx.PricePerShare,
		EURValue:      tx.EURValue,
		TotalCosts:    tx.TotalCosts,
		TotalEUR:      tx.TotalEUR,
	}
}

// Position is the folded state of all transactions for one ticker: its buy
// lots, sell lots, and running signed quantity. Name and local currency are
// first-seen and never overwritten by later transactions.
type Position struct {
	Ticker        string
	Name          string
	LocalCurrency string
	Buys          []Lot
	Sells         []Lot
	Quantity      Quantity // sum of buy quantities minus sum of sell quantities
}

// apply folds one transaction into the position. Kinds other than buy and
// sell mutate nothing: the store tolerates them as a defined no-op.
func (p *Position) apply(tx Transaction) {
	switch tx.Kind {
	case KindBuy:
		p.Buys = append(p.Buys, newLot(tx))
		p.Quantity = p.Quantity.Add(tx.Quantity)
	case KindSell:
		p.Sells = append(p.Sells, newLot(tx))
		p.Quantity = p.Quantity.Sub(tx.Quantity)
	}
}

// AvgBuyPrice returns the weighted-average buy price in the reporting
// currency, cost-inclusive: the sum of cost-inclusive totals over the sum of
// bought quantities. Zero when there are no buy lots.
func (p *Position) AvgBuyPrice() Money {
	total := M(0, ReportingCurrency)
	qty := Q(0)
	for _, lot := range p.Buys {
		total = total.Add(lot.TotalEUR)
		qty = qty.Add(lot.Quantity)
	}
	if qty.IsZero() {
		return M(0, ReportingCurrency)
	}
	return total.Div(qty)
}

// AvgSellPrice returns the weighted-average sell price in the reporting
// currency, computed on gross (pre-cost) proceeds. Zero when there are no
// sell lots.
func (p *Position) AvgSellPrice() Money {
	total := M(0, ReportingCurrency)
	qty := Q(0)
	for _, lot := range p.Sells {
		total = total.Add(lot.EURValue)
		qty = qty.Add(lot.Quantity)
	}
	if qty.IsZero() {
		return M(0, ReportingCurrency)
	}
	return total.Div(qty)
}

// QuantitySold returns the total quantity across sell lots.
func (p *Position) QuantitySold() Quantity {
	qty := Q(0)
	for _, lot := range p.Sells {
		qty = qty.Add(lot.Quantity)
	}
	return qty
}

// TotalCosts returns the transaction costs across both buy and sell lots.
func (p *Position) TotalCosts() Money {
	total := M(0, ReportingCurrency)
	for _, lot := range p.Buys {
		total = total.Add(lot.TotalCosts)
	}
	for _, lot := range p.Sells {
		total = total.Add(lot.TotalCosts)
	}
	return total
}

// sellCosts returns the transaction costs of the sell lots only.
func (p *Position) sellCosts() Money {
	total := M(0, ReportingCurrency)
	for _, lot := range p.Sells {
		total = total.Add(lot.TotalCosts)
	}
	return total
}

// Book holds the positions resulting from folding a transaction sequence,
// keyed by ticker.
type Book map[string]*Position

// Aggregate folds the transaction sequence, in order, into a Book. The first
// transaction referencing a ticker creates its position; every later one
// mutates it. Order matters only for lot ordering within a position, the
// aggregate totals are commutative sums.
func Aggregate(txs []Transaction) Book {
	book := make(Book)
	for _, tx := range txs {
		pos, ok := book[tx.Ticker]
		if !ok {
			pos = &Position{
				Ticker:        tx.Ticker,
				Name:          tx.Name,
				LocalCurrency: tx.LocalCurrency,
			}
			book[tx.Ticker] = pos
		}
		pos.apply(tx)
	}
	return book
}

// Tickers returns all tickers of the book, sorted.
func (b Book) Tickers() []string {
	tickers := make([]string, 0, len(b))
	for ticker := range b {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}

// Open returns the open positions (running quantity > 0), sorted by ticker.
func (b Book) Open() []*Position {
	var open []*Position
	for _, ticker := range b.Tickers() {
		if pos := b[ticker]; pos.Quantity.IsPositive() {
			open = append(open, pos)
		}
	}
	return open
}

// Closed returns the closed positions (running quantity <= 0 with at least
// one sell lot), sorted by ticker. A position with zero quantity and no sell
// lots is neither open nor closed and appears in neither set.
func (b Book) Closed() []*Position {
	var closed []*Position
	for _, ticker := range b.Tickers() {
		pos := b[ticker]
		if !pos.Quantity.IsPositive() && len(pos.Sells) > 0 {
			closed = append(closed, pos)
		}
	}
	return closed
}
