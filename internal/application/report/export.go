package report

import (
	"context"
	"fmt"
	"io"

	"github.com/autenticco/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Resumo"
	monthlySheet = "Vendas por mês"
)

// ExportContentType is the MIME type of the dashboard workbook
const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportFileName names the workbook for the given period
func ExportFileName(p PeriodResponse) string {
	return fmt.Sprintf("dashboard_%s_%s.xlsx", p.StartDate, p.EndDate)
}

// ExportDashboard writes the period dashboard and monthly sales as an XLSX
// workbook to w
func (s *ReportService) ExportDashboard(ctx context.Context, q PeriodQuery, w io.Writer) (*PeriodResponse, error) {
	dash, err := s.GetDashboard(ctx, q)
	if err != nil {
		return nil, err
	}
	monthly, err := s.GetMonthlySales(ctx, q)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(monthlySheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	if err := writeSummary(f, bold, dash); err != nil {
		return nil, err
	}
	if err := writeMonthly(f, bold, monthly.Months); err != nil {
		return nil, err
	}

	if _, err := f.WriteTo(w); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return &dash.Period, nil
}

func writeSummary(f *excelize.File, headerStyle int, dash *DashboardResponse) error {
	d := dash.Dashboard
	rows := [][]any{
		{"Período", fmt.Sprintf("%s a %s", dash.Period.StartDate, dash.Period.EndDate)},
		{"Estoque atual", d.CurrentStock},
		{"Entradas no período", d.EntriesInPeriod},
		{"Vendidos no período", d.SoldInPeriod},
		{"Faturamento", money(d.RevenueInPeriod)},
		{"Lucro", money(d.ProfitInPeriod)},
		{"Anúncios", money(d.AdSpendInPeriod)},
		{"Gastos extras", money(d.ExtraExpensesInPeriod)},
		{"Ganhos extras", money(d.ExtraChargedInPeriod)},
		{"Resultado extra", money(d.ExtraResult)},
		{"Lucro estimado do estoque", money(d.EstimatedStockProfit)},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", len(rows)), headerStyle); err != nil {
		return fmt.Errorf("style summary: %w", err)
	}

	if len(dash.Expenses) > 0 {
		start := len(rows) + 2
		header, _ := excelize.CoordinatesToCellName(1, start)
		if err := f.SetSheetRow(summarySheet, header, &[]any{"Categoria", "Lançamentos", "Total"}); err != nil {
			return fmt.Errorf("write expense header: %w", err)
		}
		for i, ct := range dash.Expenses {
			cell, _ := excelize.CoordinatesToCellName(1, start+i+1)
			if err := f.SetSheetRow(summarySheet, cell, &[]any{ct.Label, ct.Count, money(ct.Total)}); err != nil {
				return fmt.Errorf("write expense row: %w", err)
			}
		}
		end, _ := excelize.CoordinatesToCellName(3, start)
		if err := f.SetCellStyle(summarySheet, header, end, headerStyle); err != nil {
			return fmt.Errorf("style expenses: %w", err)
		}
	}
	return f.SetColWidth(summarySheet, "A", "A", 28)
}

func writeMonthly(f *excelize.File, headerStyle int, months []report.MonthBucket) error {
	if err := f.SetSheetRow(monthlySheet, "A1", &[]any{"Mês", "Vendas", "Total"}); err != nil {
		return fmt.Errorf("write monthly header: %w", err)
	}
	for i, m := range months {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(monthlySheet, cell, &[]any{m.Label, m.Count, money(m.Total)}); err != nil {
			return fmt.Errorf("write monthly row: %w", err)
		}
	}
	return f.SetCellStyle(monthlySheet, "A1", "C1", headerStyle)
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
