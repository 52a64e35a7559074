package catalog

import "github.com/shopspring/decimal"

// FinancePatch is the partial update written by the finance editor. The
// stored profit percentage is always cleared alongside it.
type FinancePatch struct {
	FipeValue      *decimal.Decimal
	Commission     *decimal.Decimal
	ReturnToSeller *decimal.Decimal
	Profit         decimal.Decimal
}

// ApplyTo copies the patch onto car, clearing ProfitPercent
func (p FinancePatch) ApplyTo(car *Car) {
	profit := p.Profit
	car.FipeValue = p.FipeValue
	car.Commission = p.Commission
	car.ReturnToSeller = p.ReturnToSeller
	car.Profit = &profit
	car.ProfitPercent = nil
}
