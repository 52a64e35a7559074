package finance

import (
	"github.com/shopspring/decimal"
)

// ComputeProfit is the single profit formula shared by the editor preview,
// the editor save and the dashboard rollup:
//
//	profit = commission + extraChargedTotal - extraExpensesTotal - adSpendTotal
func ComputeProfit(commission decimal.Decimal, s CarSummary) decimal.Decimal {
	return commission.
		Add(s.ExtraChargedTotal).
		Sub(s.ExtraExpensesTotal).
		Sub(s.AdSpendTotal)
}

// ResolveCommission picks the edited commission when given, then the stored
// one, then zero.
func ResolveCommission(edited, stored *decimal.Decimal) decimal.Decimal {
	switch {
	case edited != nil:
		return *edited
	case stored != nil:
		return *stored
	default:
		return decimal.Zero
	}
}
