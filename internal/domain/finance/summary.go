package finance

import (
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlatformTypeResolver maps a publication's platform to its type. Unknown or
// nil platforms resolve to marketing.PlatformOther.
type PlatformTypeResolver interface {
	TypeOf(platformID *uuid.UUID) marketing.PlatformType
}

// CarSummary is the all-time cost picture of one car
type CarSummary struct {
	CarID              uuid.UUID       `json:"car_id"`
	AdSpendTotal       decimal.Decimal `json:"ad_spend_total"`
	AdCount            int             `json:"ad_count"`
	SocialCount        int             `json:"social_count"`
	ExtraExpensesTotal decimal.Decimal `json:"extra_expenses_total"`
	ExtraChargedTotal  decimal.Decimal `json:"extra_charged_total"`
}

// Summarize aggregates the publications and expenses that belong to carID.
// Records of other cars are ignored, so callers may pass whole collections.
// Marketplace spend counts as ad cost; every other publication only bumps the
// social count. The result does not depend on input order.
func Summarize(carID uuid.UUID, publications []marketing.Publication, expenses []Expense, platforms PlatformTypeResolver) CarSummary {
	s := CarSummary{
		CarID:              carID,
		AdSpendTotal:       decimal.Zero,
		ExtraExpensesTotal: decimal.Zero,
		ExtraChargedTotal:  decimal.Zero,
	}

	for i := range publications {
		p := &publications[i]
		if p.CarID != carID {
			continue
		}
		if platforms.TypeOf(p.PlatformID).IsMarketplace() {
			s.AdSpendTotal = s.AdSpendTotal.Add(p.Spent)
			s.AdCount++
		} else {
			s.SocialCount++
		}
	}

	for i := range expenses {
		e := &expenses[i]
		if e.CarID != carID {
			continue
		}
		s.ExtraExpensesTotal = s.ExtraExpensesTotal.Add(e.Amount)
		s.ExtraChargedTotal = s.ExtraChargedTotal.Add(e.Charged())
	}

	return s
}

// SummarizeAll builds a summary per car id in a single pass over the inputs
func SummarizeAll(publications []marketing.Publication, expenses []Expense, platforms PlatformTypeResolver) map[uuid.UUID]CarSummary {
	out := make(map[uuid.UUID]CarSummary)
	get := func(id uuid.UUID) CarSummary {
		if s, ok := out[id]; ok {
			return s
		}
		return CarSummary{CarID: id, AdSpendTotal: decimal.Zero, ExtraExpensesTotal: decimal.Zero, ExtraChargedTotal: decimal.Zero}
	}

	for i := range publications {
		p := &publications[i]
		s := get(p.CarID)
		if platforms.TypeOf(p.PlatformID).IsMarketplace() {
			s.AdSpendTotal = s.AdSpendTotal.Add(p.Spent)
			s.AdCount++
		} else {
			s.SocialCount++
		}
		out[p.CarID] = s
	}
	for i := range expenses {
		e := &expenses[i]
		s := get(e.CarID)
		s.ExtraExpensesTotal = s.ExtraExpensesTotal.Add(e.Amount)
		s.ExtraChargedTotal = s.ExtraChargedTotal.Add(e.Charged())
		out[e.CarID] = s
	}
	return out
}

// EmptySummary is the summary of a car with no publications or expenses
func EmptySummary(carID uuid.UUID) CarSummary {
	return Summarize(carID, nil, nil, marketing.PlatformIndex{})
}
