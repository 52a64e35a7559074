package printing

import (
	"testing"
	"time"

	"github.com/autenticco/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"integer", decimal.NewFromInt(85000), "R$ 85.000,00"},
		{"cents", decimal.RequireFromString("1234.5"), "R$ 1.234,50"},
		{"money value", valueobject.BRLOf(decimal.NewFromInt(999)), "R$ 999,00"},
		{"negative", decimal.NewFromInt(-1500), "-R$ 1.500,00"},
		{"nil pointer", (*decimal.Decimal)(nil), "R$ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatMoney(tt.input))
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "123.456", formatNumber(123456))
	assert.Equal(t, "1,99%", formatPercent(decimal.RequireFromString("1.99")))
	assert.Equal(t, "15/01/2024", formatDate(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
	assert.Empty(t, formatDate((*time.Time)(nil)))
	assert.Equal(t, "-", defaultString("-", "  "))
	assert.Equal(t, "Prata", defaultString("-", "Prata"))
	assert.Equal(t, "Automático", titleCase("automático"))
}

type testCar struct {
	Title           string
	Version         string
	Year            int
	ManufactureYear int
	Color           string
	Plate           string
	Mileage         int
	Fuel            string
	Transmission    string
}

func TestTemplateEngine_Render(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	car := testCar{
		Title: "Toyota Corolla 2022", Version: "XEi", Year: 2022, ManufactureYear: 2021,
		Color: "Prata", Plate: "abc1d23", Mileage: 35000, Fuel: "flex", Transmission: "automático",
	}

	t.Run("checklist", func(t *testing.T) {
		html, err := engine.Render(TemplateChecklist, map[string]any{
			"Car": car,
			"Groups": []struct {
				Title string
				Items []string
			}{{Title: "Exterior", Items: []string{"Pintura e lataria", "Faróis"}}},
			"IssuedAt": time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		assert.Contains(t, html, "Checklist de entrega")
		assert.Contains(t, html, "Toyota Corolla 2022 XEi")
		assert.Contains(t, html, "2021/2022")
		assert.Contains(t, html, "ABC1D23")
		assert.Contains(t, html, "35.000 km")
		assert.Contains(t, html, "Pintura e lataria")
		assert.Contains(t, html, "02/03/2024")
	})

	t.Run("quote escapes customer text and keeps data uri", func(t *testing.T) {
		html, err := engine.Render(TemplateQuote, map[string]any{
			"Car": car,
			"Quote": map[string]any{
				"CustomerName":     "<b>Maria</b>",
				"CustomerPhone":    "",
				"Price":            decimal.NewFromInt(100000),
				"DownPayment":      decimal.NewFromInt(40000),
				"Financed":         decimal.NewFromInt(60000),
				"MonthlyRate":      decimal.RequireFromString("1.5"),
				"Installments":     48,
				"InstallmentValue": decimal.RequireFromString("1762.4"),
				"TotalCost":        decimal.RequireFromString("124595.2"),
				"Notes":            "",
				"IssuedAt":         time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				"ValidUntil":       time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
			},
			"QRCode":    "data:image/png;base64,iVBORw0KGgo=",
			"PublicURL": "https://autenticco.com.br/carros/toyota-corolla",
		})
		require.NoError(t, err)

		assert.Contains(t, html, "&lt;b&gt;Maria&lt;/b&gt;")
		assert.Contains(t, html, "R$ 100.000,00")
		assert.Contains(t, html, "48x de R$ 1.762,40")
		assert.Contains(t, html, "1,50% a.m.")
		assert.Contains(t, html, `src="data:image/png;base64,iVBORw0KGgo="`)
		assert.Contains(t, html, "09/03/2024")
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := engine.Render("missing.html", nil)
		var renderErr *RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, ErrCodeTemplateNotFound, renderErr.Code)
	})
}

func TestTemplateEngine_GetFuncMap(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	funcs := engine.GetFuncMap()
	assert.Contains(t, funcs, "formatMoney")
	delete(funcs, "formatMoney")
	assert.Contains(t, engine.GetFuncMap(), "formatMoney")
}
