package printing

import (
	"time"

	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// MaxInstallments is the longest financing term offered
const MaxInstallments = 72

// QuoteInput holds the negotiation terms typed by the salesperson
type QuoteInput struct {
	CustomerName  string
	CustomerPhone string
	DownPayment   decimal.Decimal
	Installments  int
	// MonthlyRate is the financing rate in percent per month (1.99 = 1.99%)
	MonthlyRate decimal.Decimal
	ValidDays   int
	Notes       string
}

// Quote is a computed price proposal for one car
type Quote struct {
	CustomerName     string
	CustomerPhone    string
	Price            valueobject.Money
	DownPayment      valueobject.Money
	Financed         valueobject.Money
	Installments     int
	MonthlyRate      decimal.Decimal
	InstallmentValue valueobject.Money
	TotalCost        valueobject.Money
	IssuedAt         time.Time
	ValidUntil       time.Time
	Notes            string
}

// NewQuote computes installment value with the price-table (PMT) formula.
// A zero rate splits the financed amount evenly.
func NewQuote(price decimal.Decimal, in QuoteInput, now time.Time) (*Quote, error) {
	if !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUOTE", "Car has no asking price")
	}
	if in.DownPayment.IsNegative() || in.DownPayment.GreaterThan(price) {
		return nil, shared.NewDomainError("INVALID_QUOTE", "Down payment must be between zero and the car price")
	}
	if in.MonthlyRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUOTE", "Rate cannot be negative")
	}
	financed := price.Sub(in.DownPayment)
	n := in.Installments
	if financed.IsPositive() && (n < 1 || n > MaxInstallments) {
		return nil, shared.NewDomainError("INVALID_QUOTE", "Installments must be between 1 and 72")
	}
	if financed.IsZero() {
		n = 0
	}
	validDays := in.ValidDays
	if validDays <= 0 {
		validDays = 7
	}

	q := &Quote{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Price:         valueobject.BRLOf(price),
		DownPayment:   valueobject.BRLOf(in.DownPayment),
		Financed:      valueobject.BRLOf(financed),
		Installments:  n,
		MonthlyRate:   in.MonthlyRate,
		IssuedAt:      now,
		ValidUntil:    now.AddDate(0, 0, validDays),
		Notes:         in.Notes,
	}

	if n == 0 {
		q.InstallmentValue = valueobject.BRLOf(decimal.Zero)
		q.TotalCost = q.Price
		return q, nil
	}

	installment, err := installmentValue(q.Financed, in.MonthlyRate, n)
	if err != nil {
		return nil, err
	}
	q.InstallmentValue = installment

	paid := installment.Amount().Mul(decimal.NewFromInt(int64(n)))
	q.TotalCost, err = q.DownPayment.Add(valueobject.BRLOf(paid))
	if err != nil {
		return nil, err
	}
	return q, nil
}

func installmentValue(financed valueobject.Money, ratePercent decimal.Decimal, n int) (valueobject.Money, error) {
	if ratePercent.IsZero() {
		return financed.DivInstallments(n)
	}

	i := ratePercent.Div(decimal.NewFromInt(100))
	factor := decimal.NewFromInt(1)
	onePlusI := factor.Add(i)
	for k := 0; k < n; k++ {
		factor = factor.Mul(onePlusI)
	}
	// PMT = P * i * (1+i)^n / ((1+i)^n - 1)
	pmt := financed.Amount().Mul(i).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1))).Round(2)
	return valueobject.BRLOf(pmt), nil
}
