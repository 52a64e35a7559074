package report

import (
	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/finance"
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the full set of records a period rollup is computed from
type Snapshot struct {
	Cars         []catalog.Car
	Publications []marketing.Publication
	Expenses     []finance.Expense
	Sales        []finance.Sale
	Platforms    []marketing.Platform
}

// Dashboard holds the period KPIs. JSON keys keep the names the back-office
// front end already reads.
type Dashboard struct {
	CurrentStock          int             `json:"estoque_atual"`
	EntriesInPeriod       int             `json:"entradas_periodo"`
	SoldInPeriod          int             `json:"vendidos_periodo"`
	RevenueInPeriod       decimal.Decimal `json:"faturamento_periodo"`
	ProfitInPeriod        decimal.Decimal `json:"lucro_periodo"`
	AdSpendInPeriod       decimal.Decimal `json:"anuncios_periodo"`
	ExtraExpensesInPeriod decimal.Decimal `json:"gastos_extras_periodo"`
	ExtraChargedInPeriod  decimal.Decimal `json:"ganhos_extras_periodo"`
	ExtraResult           decimal.Decimal `json:"resultado_extra"`
	EstimatedStockProfit  decimal.Decimal `json:"lucro_estimado_estoque"`
}

// BuildDashboard computes the period rollup.
//
// Sale profit uses the sale's own commission when positive, else the car's,
// minus the car's all-time costs. Sales whose car is missing still count
// towards revenue and contribute their commission alone.
func BuildDashboard(r DateRange, s Snapshot) Dashboard {
	platforms := marketing.NewPlatformIndex(s.Platforms)
	summaries := finance.SummarizeAll(s.Publications, s.Expenses, platforms)
	summaryOf := func(carID uuid.UUID) finance.CarSummary {
		if sum, ok := summaries[carID]; ok {
			return sum
		}
		return finance.EmptySummary(carID)
	}

	cars := make(map[uuid.UUID]*catalog.Car, len(s.Cars))
	for i := range s.Cars {
		cars[s.Cars[i].ID] = &s.Cars[i]
	}

	out := Dashboard{
		RevenueInPeriod:       decimal.Zero,
		ProfitInPeriod:        decimal.Zero,
		AdSpendInPeriod:       decimal.Zero,
		ExtraExpensesInPeriod: decimal.Zero,
		ExtraChargedInPeriod:  decimal.Zero,
		EstimatedStockProfit:  decimal.Zero,
	}

	for i := range s.Cars {
		car := &s.Cars[i]
		if car.InStock() {
			out.CurrentStock++
			profit := finance.ComputeProfit(car.CommissionOrZero(), summaryOf(car.ID))
			out.EstimatedStockProfit = out.EstimatedStockProfit.Add(profit)
		}
		if r.Contains(car.EntryDate()) {
			out.EntriesInPeriod++
		}
	}

	for i := range s.Sales {
		sale := &s.Sales[i]
		if !r.Contains(sale.EffectiveDate()) {
			continue
		}
		out.SoldInPeriod++
		out.RevenueInPeriod = out.RevenueInPeriod.Add(sale.SalePrice)

		base, ok := sale.CommissionOverride()
		if !ok {
			if car, found := cars[sale.CarID]; found {
				base = car.CommissionOrZero()
			}
		}
		out.ProfitInPeriod = out.ProfitInPeriod.Add(finance.ComputeProfit(base, summaryOf(sale.CarID)))
	}

	for i := range s.Publications {
		if r.Contains(s.Publications[i].EffectiveDate()) {
			out.AdSpendInPeriod = out.AdSpendInPeriod.Add(s.Publications[i].Spent)
		}
	}

	for i := range s.Expenses {
		e := &s.Expenses[i]
		if !r.Contains(e.EffectiveDate()) {
			continue
		}
		out.ExtraExpensesInPeriod = out.ExtraExpensesInPeriod.Add(e.Amount)
		out.ExtraChargedInPeriod = out.ExtraChargedInPeriod.Add(e.Charged())
	}

	out.ExtraResult = out.ExtraChargedInPeriod.
		Sub(out.ExtraExpensesInPeriod).
		Sub(out.AdSpendInPeriod)

	return out
}
