package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	reportapp "github.com/autenticco/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportUseCases builds the dashboard figures
type ReportUseCases interface {
	GetDashboard(ctx context.Context, q reportapp.PeriodQuery) (*reportapp.DashboardResponse, error)
	GetMonthlySales(ctx context.Context, q reportapp.PeriodQuery) (*reportapp.MonthlySalesResponse, error)
	ExportDashboard(ctx context.Context, q reportapp.PeriodQuery, w io.Writer) (*reportapp.PeriodResponse, error)
}

// ReportHandler serves the dashboard and its spreadsheet export
type ReportHandler struct {
	BaseHandler
	reportService ReportUseCases
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService ReportUseCases) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard godoc
// @Summary      Dashboard
// @Description  Stock, sales, profit and cost figures for a period, plus expenses by category
// @Tags         reports
// @Produce      json
// @Param        start_date query string false "Period start (YYYY-MM-DD), defaults to the first day of the current month" format(date)
// @Param        end_date query string false "Period end (YYYY-MM-DD), inclusive, defaults to today" format(date)
// @Success      200 {object} dto.Response{data=reportapp.DashboardResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	var q reportapp.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.reportService.GetDashboard(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithWarnings(c, resp, resp.Warnings)
}

// MonthlySales godoc
// @Summary      Monthly sales
// @Description  Sales count and revenue per calendar month of the period, empty months included
// @Tags         reports
// @Produce      json
// @Param        start_date query string false "Period start (YYYY-MM-DD), defaults to the first day of the current month" format(date)
// @Param        end_date query string false "Period end (YYYY-MM-DD), inclusive, defaults to today" format(date)
// @Success      200 {object} dto.Response{data=reportapp.MonthlySalesResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/monthly-sales [get]
func (h *ReportHandler) MonthlySales(c *gin.Context) {
	var q reportapp.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.reportService.GetMonthlySales(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithWarnings(c, resp, resp.Warnings)
}

// Export godoc
// @Summary      Export dashboard
// @Description  Download the dashboard of a period as an xlsx workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start_date query string false "Period start (YYYY-MM-DD), defaults to the first day of the current month" format(date)
// @Param        end_date query string false "Period end (YYYY-MM-DD), inclusive, defaults to today" format(date)
// @Success      200 {file} file
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/dashboard/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	var q reportapp.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindError(c, err)
		return
	}

	// buffered so a failure still answers with the JSON envelope
	var buf bytes.Buffer
	period, err := h.reportService.ExportDashboard(c.Request.Context(), q, &buf)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, reportapp.ExportFileName(*period)))
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}
