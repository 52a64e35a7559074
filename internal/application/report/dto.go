package report

import (
	"time"

	"github.com/autenticco/backend/internal/domain/report"
)

// PeriodQuery selects the reporting period. Both dates are YYYY-MM-DD and
// inclusive; when both are empty the current month is used.
type PeriodQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// PeriodResponse echoes the resolved period
type PeriodResponse struct {
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

func toPeriodResponse(r report.DateRange) PeriodResponse {
	return PeriodResponse{
		StartDate: r.Start.Format(report.DateLayout),
		EndDate:   r.End.Format(report.DateLayout),
		Start:     r.Start,
		End:       r.End,
	}
}

// DashboardResponse is the dashboard payload. Warnings name the collections
// that could not be read and were treated as empty.
type DashboardResponse struct {
	Period    PeriodResponse         `json:"period"`
	Dashboard report.Dashboard       `json:"dashboard"`
	Expenses  []report.CategoryTotal `json:"gastos_por_categoria"`
	Warnings  []string               `json:"warnings,omitempty"`
}

// MonthlySalesResponse is the monthly sales chart
type MonthlySalesResponse struct {
	Period   PeriodResponse       `json:"period"`
	Months   []report.MonthBucket `json:"months"`
	Warnings []string             `json:"warnings,omitempty"`
}
