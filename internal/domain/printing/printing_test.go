package printing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryChecklist(t *testing.T) {
	groups := DeliveryChecklist()
	require.NotEmpty(t, groups)
	for _, g := range groups {
		assert.NotEmpty(t, g.Title)
		assert.NotEmpty(t, g.Items, g.Title)
	}
}

func TestNewQuote(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	price := decimal.NewFromInt(60000)

	t.Run("zero rate splits evenly", func(t *testing.T) {
		q, err := NewQuote(price, QuoteInput{DownPayment: decimal.NewFromInt(24000), Installments: 36}, now)
		require.NoError(t, err)

		assert.Equal(t, "BRL 36000.00", q.Financed.String())
		assert.Equal(t, "BRL 1000.00", q.InstallmentValue.String())
		assert.Equal(t, "BRL 60000.00", q.TotalCost.String())
		assert.Equal(t, now.AddDate(0, 0, 7), q.ValidUntil)
	})

	t.Run("price table with interest", func(t *testing.T) {
		q, err := NewQuote(decimal.NewFromInt(10000), QuoteInput{
			Installments: 12,
			MonthlyRate:  decimal.NewFromInt(1),
			ValidDays:    3,
		}, now)
		require.NoError(t, err)

		// 10000 at 1% a.m. over 12 months
		assert.Equal(t, "888.49", q.InstallmentValue.Amount().StringFixed(2))
		assert.True(t, q.TotalCost.Amount().GreaterThan(decimal.NewFromInt(10000)))
		assert.Equal(t, now.AddDate(0, 0, 3), q.ValidUntil)
	})

	t.Run("cash purchase", func(t *testing.T) {
		q, err := NewQuote(price, QuoteInput{DownPayment: price}, now)
		require.NoError(t, err)
		assert.Zero(t, q.Installments)
		assert.True(t, q.InstallmentValue.Amount().IsZero())
		assert.Equal(t, q.Price, q.TotalCost)
	})

	t.Run("invalid terms", func(t *testing.T) {
		_, err := NewQuote(decimal.Zero, QuoteInput{}, now)
		assert.Error(t, err)
		_, err = NewQuote(price, QuoteInput{DownPayment: decimal.NewFromInt(70000)}, now)
		assert.Error(t, err)
		_, err = NewQuote(price, QuoteInput{Installments: 0}, now)
		assert.Error(t, err)
		_, err = NewQuote(price, QuoteInput{Installments: 100}, now)
		assert.Error(t, err)
		_, err = NewQuote(price, QuoteInput{Installments: 12, MonthlyRate: decimal.NewFromInt(-1)}, now)
		assert.Error(t, err)
	})
}
