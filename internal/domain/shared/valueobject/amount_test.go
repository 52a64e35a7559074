package valueobject

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	d := decimal.NewFromInt(7)
	s := "12.5"

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "0"},
		{"float", 150.25, "150.25"},
		{"NaN", math.NaN(), "0"},
		{"positive infinity", math.Inf(1), "0"},
		{"int", 3, "3"},
		{"int64", int64(-4), "-4"},
		{"decimal", d, "7"},
		{"decimal pointer", &d, "7"},
		{"nil decimal pointer", (*decimal.Decimal)(nil), "0"},
		{"numeric string", "300", "300"},
		{"string pointer", &s, "12.5"},
		{"pt-BR string", "R$ 1.234,56", "1234.56"},
		{"garbage", "abc", "0"},
		{"empty string", "  ", "0"},
		{"json number", json.Number("99.9"), "99.9"},
		{"bool", true, "0"},
		{"invalid null decimal", decimal.NullDecimal{}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Coerce(tt.in).String())
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var payload struct {
		A Amount  `json:"a"`
		B Amount  `json:"b"`
		C Amount  `json:"c"`
		D Amount  `json:"d"`
		E *Amount `json:"e"`
	}

	err := json.Unmarshal([]byte(`{"a": 100.5, "b": "200", "c": "not a number", "d": null, "e": null}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, "100.5", payload.A.String())
	assert.Equal(t, "200", payload.B.String())
	assert.True(t, payload.C.IsZero())
	assert.True(t, payload.D.IsZero())
	assert.Nil(t, payload.E)
	assert.Nil(t, payload.E.Ptr())
}

func TestAmount_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Amount `json:"a"`
	}{A: NewAmount(decimal.RequireFromString("10.50"))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 10.5}`, string(out))
}

func TestMoney(t *testing.T) {
	t.Run("add and sub", func(t *testing.T) {
		a := BRLOf(decimal.NewFromInt(100))
		b := BRLOf(decimal.NewFromInt(30))

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(130)))

		diff, err := b.Sub(a)
		require.NoError(t, err)
		assert.True(t, diff.IsNegative())
	})

	t.Run("currency mismatch", func(t *testing.T) {
		usd, err := NewMoney(decimal.NewFromInt(1), "USD")
		require.NoError(t, err)

		_, err = BRLOf(decimal.NewFromInt(1)).Add(usd)
		assert.ErrorIs(t, err, ErrCurrencyMismatch)
	})

	t.Run("installments", func(t *testing.T) {
		m, err := BRLOf(decimal.NewFromInt(1000)).DivInstallments(3)
		require.NoError(t, err)
		assert.Equal(t, "BRL 333.33", m.String())

		_, err = BRLOf(decimal.NewFromInt(1000)).DivInstallments(0)
		assert.Error(t, err)
	})

	t.Run("empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.Zero, "")
		assert.Error(t, err)
	})
}
