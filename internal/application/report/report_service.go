package report

import (
	"context"
	"time"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/finance"
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/autenticco/backend/internal/domain/report"
	"github.com/autenticco/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ReportService computes the back-office dashboard
type ReportService struct {
	carRepo         catalog.CarRepository
	publicationRepo marketing.PublicationRepository
	expenseRepo     finance.ExpenseRepository
	saleRepo        finance.SaleRepository
	platformRepo    marketing.PlatformRepository
	loc             *time.Location
	now             func() time.Time
}

// NewReportService creates a new ReportService. loc is the business time zone
// that day boundaries are computed in.
func NewReportService(
	carRepo catalog.CarRepository,
	publicationRepo marketing.PublicationRepository,
	expenseRepo finance.ExpenseRepository,
	saleRepo finance.SaleRepository,
	platformRepo marketing.PlatformRepository,
	loc *time.Location,
) *ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &ReportService{
		carRepo:         carRepo,
		publicationRepo: publicationRepo,
		expenseRepo:     expenseRepo,
		saleRepo:        saleRepo,
		platformRepo:    platformRepo,
		loc:             loc,
		now:             time.Now,
	}
}

// resolvePeriod parses the query or defaults to the current month
func (s *ReportService) resolvePeriod(q PeriodQuery) (report.DateRange, error) {
	if q.StartDate == "" && q.EndDate == "" {
		return report.CurrentMonth(s.now(), s.loc), nil
	}
	return report.ParseDateRange(q.StartDate, q.EndDate, s.loc)
}

// loadSnapshot reads every collection the rollup needs. A failed read is
// logged, treated as empty and reported as a warning.
func (s *ReportService) loadSnapshot(ctx context.Context) (report.Snapshot, []string) {
	var (
		snap     report.Snapshot
		warnings []string
		err      error
	)
	warn := func(what string, err error) {
		logger.L(ctx).Warn("Report read degraded to empty", zap.String("collection", what), zap.Error(err))
		warnings = append(warnings, what+" unavailable")
	}

	if snap.Cars, err = s.carRepo.ListAll(ctx); err != nil {
		snap.Cars = nil
		warn("cars", err)
	}
	if snap.Publications, err = s.publicationRepo.ListAll(ctx); err != nil {
		snap.Publications = nil
		warn("publications", err)
	}
	if snap.Expenses, err = s.expenseRepo.ListAll(ctx); err != nil {
		snap.Expenses = nil
		warn("expenses", err)
	}
	if snap.Sales, err = s.saleRepo.ListAll(ctx); err != nil {
		snap.Sales = nil
		warn("sales", err)
	}
	if snap.Platforms, err = s.platformRepo.ListAll(ctx); err != nil {
		snap.Platforms = nil
		warn("platforms", err)
	}
	return snap, warnings
}

// GetDashboard computes the KPIs of the period
func (s *ReportService) GetDashboard(ctx context.Context, q PeriodQuery) (*DashboardResponse, error) {
	r, err := s.resolvePeriod(q)
	if err != nil {
		return nil, err
	}
	snap, warnings := s.loadSnapshot(ctx)
	return &DashboardResponse{
		Period:    toPeriodResponse(r),
		Dashboard: report.BuildDashboard(r, snap),
		Expenses:  report.ExpensesByCategory(r, snap.Expenses),
		Warnings:  warnings,
	}, nil
}

// GetMonthlySales buckets the sales of the period by calendar month
func (s *ReportService) GetMonthlySales(ctx context.Context, q PeriodQuery) (*MonthlySalesResponse, error) {
	r, err := s.resolvePeriod(q)
	if err != nil {
		return nil, err
	}
	resp := &MonthlySalesResponse{Period: toPeriodResponse(r)}
	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		logger.L(ctx).Warn("Report read degraded to empty", zap.String("collection", "sales"), zap.Error(err))
		resp.Warnings = []string{"sales unavailable"}
		sales = nil
	}
	resp.Months = report.MonthlySales(r, sales)
	return resp, nil
}
