package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/autenticco/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

var monthAbbrev = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// MonthBucket aggregates the sales of one calendar month
type MonthBucket struct {
	Key   string          `json:"key"`   // YYYY-MM
	Label string          `json:"label"` // e.g. "jan/2024"
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// MonthKey formats t as YYYY-MM
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthLabel formats t as a short pt-BR month label
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s/%d", monthAbbrev[t.Month()-1], t.Year())
}

// MonthlySales returns one bucket per calendar month touched by r, empty
// months included, in ascending order. Sales outside r are ignored.
func MonthlySales(r DateRange, sales []finance.Sale) []MonthBucket {
	loc := r.Location()
	buckets := make(map[string]*MonthBucket)
	var ordered []*MonthBucket

	first := time.Date(r.Start.Year(), r.Start.Month(), 1, 0, 0, 0, 0, loc)
	last := time.Date(r.End.Year(), r.End.Month(), 1, 0, 0, 0, 0, loc)
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		b := &MonthBucket{Key: MonthKey(m), Label: MonthLabel(m), Total: decimal.Zero}
		buckets[b.Key] = b
		ordered = append(ordered, b)
	}

	for i := range sales {
		at := sales[i].EffectiveDate()
		if !r.Contains(at) {
			continue
		}
		b, ok := buckets[MonthKey(at.In(loc))]
		if !ok {
			continue
		}
		b.Count++
		b.Total = b.Total.Add(sales[i].SalePrice)
	}

	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Key < ordered[j].Key })
	out := make([]MonthBucket, len(ordered))
	for i, b := range ordered {
		out[i] = *b
	}
	return out
}

// CategoryTotal is the spend of one expense category inside a period
type CategoryTotal struct {
	Category finance.ExpenseCategory `json:"category"`
	Label    string                  `json:"label"`
	Count    int                     `json:"count"`
	Total    decimal.Decimal         `json:"total"`
}

// ExpensesByCategory groups in-range expenses by category, largest total first
func ExpensesByCategory(r DateRange, expenses []finance.Expense) []CategoryTotal {
	totals := make(map[finance.ExpenseCategory]*CategoryTotal)
	for i := range expenses {
		e := &expenses[i]
		if !r.Contains(e.EffectiveDate()) {
			continue
		}
		ct, ok := totals[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category, Label: e.Category.DisplayName(), Total: decimal.Zero}
			totals[e.Category] = ct
		}
		ct.Count++
		ct.Total = ct.Total.Add(e.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for _, ct := range totals {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
