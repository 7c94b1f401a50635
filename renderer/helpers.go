package renderer

import (
	"github.com/etnz/folio"
)

// notAvailable is the cell rendered for metrics the engine could not
// compute, typically because a price or rate was unknown.
const notAvailable = "n/a"

func moneyCell(m *folio.Money) string {
	if m == nil {
		return notAvailable
	}
	return m.String()
}

func signedMoneyCell(m *folio.Money) string {
	if m == nil {
		return notAvailable
	}
	return m.SignedString()
}

func percentCell(p *folio.Percent) string {
	if p == nil {
		return notAvailable
	}
	return p.String()
}

func signedPercentCell(p *folio.Percent) string {
	if p == nil {
		return notAvailable
	}
	return p.SignedString()
}
