package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/finance"
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type MockCarRepository struct {
	mock.Mock
	catalog.CarRepository
}

func (m *MockCarRepository) ListAll(ctx context.Context) ([]catalog.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Car), args.Error(1)
}

type MockPublicationRepository struct {
	mock.Mock
	marketing.PublicationRepository
}

func (m *MockPublicationRepository) ListAll(ctx context.Context, carIDs ...uuid.UUID) ([]marketing.Publication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketing.Publication), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
	finance.ExpenseRepository
}

func (m *MockExpenseRepository) ListAll(ctx context.Context, carIDs ...uuid.UUID) ([]finance.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

type MockSaleRepository struct {
	mock.Mock
	finance.SaleRepository
}

func (m *MockSaleRepository) ListAll(ctx context.Context) ([]finance.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Sale), args.Error(1)
}

type MockPlatformRepository struct {
	mock.Mock
	marketing.PlatformRepository
}

func (m *MockPlatformRepository) ListAll(ctx context.Context) ([]marketing.Platform, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketing.Platform), args.Error(1)
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func dp(v int64) *decimal.Decimal {
	x := decimal.NewFromInt(v)
	return &x
}

type reportFixture struct {
	cars      *MockCarRepository
	pubs      *MockPublicationRepository
	exps      *MockExpenseRepository
	sales     *MockSaleRepository
	platforms *MockPlatformRepository
	loc       *time.Location
}

// newReportFixture has one car in stock carrying 3000 commission and 1000 of
// costs, and one car sold on 2024-01-15 for 100000 with a 4000 commission.
func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	webmotors, err := marketing.NewPlatform("Webmotors", marketing.PlatformMarketplace)
	require.NoError(t, err)

	inStockID, soldID := uuid.New(), uuid.New()
	soldAt := time.Date(2024, 1, 15, 14, 0, 0, 0, loc)
	published := time.Date(2024, 1, 5, 10, 0, 0, 0, loc)
	incurred := time.Date(2024, 1, 8, 10, 0, 0, 0, loc)

	cars := []catalog.Car{
		{Brand: "Fiat", Model: "Argo", Year: 2022, Price: d(75000), Commission: dp(3000)},
		{Brand: "VW", Model: "Nivus", Year: 2023, Price: d(110000), IsSold: true, SoldAt: &soldAt},
	}
	cars[0].ID, cars[1].ID = inStockID, soldID

	f := &reportFixture{
		cars:      new(MockCarRepository),
		pubs:      new(MockPublicationRepository),
		exps:      new(MockExpenseRepository),
		sales:     new(MockSaleRepository),
		platforms: new(MockPlatformRepository),
		loc:       loc,
	}
	f.cars.On("ListAll", mock.Anything).Return(cars, nil)
	f.pubs.On("ListAll", mock.Anything).Return([]marketing.Publication{
		{CarID: inStockID, PlatformID: &webmotors.ID, Spent: d(600), PublishedAt: &published},
	}, nil)
	f.exps.On("ListAll", mock.Anything).Return([]finance.Expense{
		{CarID: inStockID, Category: finance.ExpenseTires, Amount: d(400), IncurredAt: &incurred},
	}, nil)
	f.sales.On("ListAll", mock.Anything).Return([]finance.Sale{
		{CarID: soldID, SalePrice: d(100000), SaleDate: &soldAt, Commission: dp(4000)},
	}, nil)
	f.platforms.On("ListAll", mock.Anything).Return([]marketing.Platform{*webmotors}, nil)
	return f
}

func (f *reportFixture) service() *ReportService {
	return NewReportService(f.cars, f.pubs, f.exps, f.sales, f.platforms, f.loc)
}

func january() PeriodQuery {
	return PeriodQuery{StartDate: "2024-01-01", EndDate: "2024-01-31"}
}

func TestReportService_GetDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("computes period kpis", func(t *testing.T) {
		f := newReportFixture(t)

		resp, err := f.service().GetDashboard(ctx, january())

		require.NoError(t, err)
		dash := resp.Dashboard
		assert.Equal(t, 1, dash.CurrentStock)
		assert.Equal(t, 1, dash.SoldInPeriod)
		assert.True(t, dash.RevenueInPeriod.Equal(d(100000)), "revenue %s", dash.RevenueInPeriod)
		assert.True(t, dash.ProfitInPeriod.Equal(d(4000)), "profit %s", dash.ProfitInPeriod)
		assert.True(t, dash.AdSpendInPeriod.Equal(d(600)))
		assert.True(t, dash.ExtraExpensesInPeriod.Equal(d(400)))
		assert.True(t, dash.EstimatedStockProfit.Equal(d(2000)), "stock %s", dash.EstimatedStockProfit)
		assert.Equal(t, "2024-01-01", resp.Period.StartDate)
		assert.Equal(t, "2024-01-31", resp.Period.EndDate)
		require.Len(t, resp.Expenses, 1)
		assert.Equal(t, "Pneus", resp.Expenses[0].Label)
		assert.Empty(t, resp.Warnings)
	})

	t.Run("failed read becomes warning", func(t *testing.T) {
		f := newReportFixture(t)
		f.sales.ExpectedCalls = nil
		f.sales.On("ListAll", mock.Anything).Return(nil, errors.New("connection refused"))

		resp, err := f.service().GetDashboard(ctx, january())

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Dashboard.SoldInPeriod)
		assert.True(t, resp.Dashboard.RevenueInPeriod.IsZero())
		assert.Equal(t, 1, resp.Dashboard.CurrentStock)
		assert.Equal(t, []string{"sales unavailable"}, resp.Warnings)
	})

	t.Run("defaults to current month", func(t *testing.T) {
		f := newReportFixture(t)
		svc := f.service()
		svc.now = func() time.Time { return time.Date(2024, 2, 20, 12, 0, 0, 0, f.loc) }

		resp, err := svc.GetDashboard(ctx, PeriodQuery{})

		require.NoError(t, err)
		assert.Equal(t, "2024-02-01", resp.Period.StartDate)
		assert.Equal(t, "2024-02-20", resp.Period.EndDate)
		assert.Equal(t, 0, resp.Dashboard.SoldInPeriod)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		f := newReportFixture(t)
		_, err := f.service().GetDashboard(ctx, PeriodQuery{StartDate: "2024-02-01", EndDate: "2024-01-01"})
		assert.Error(t, err)
	})
}

func TestReportService_GetMonthlySales(t *testing.T) {
	f := newReportFixture(t)

	resp, err := f.service().GetMonthlySales(context.Background(), PeriodQuery{StartDate: "2023-12-10", EndDate: "2024-02-05"})

	require.NoError(t, err)
	require.Len(t, resp.Months, 3)
	assert.Equal(t, "dez/2023", resp.Months[0].Label)
	assert.Equal(t, 0, resp.Months[0].Count)
	assert.Equal(t, "jan/2024", resp.Months[1].Label)
	assert.Equal(t, 1, resp.Months[1].Count)
	assert.True(t, resp.Months[1].Total.Equal(d(100000)))
	assert.Equal(t, "fev/2024", resp.Months[2].Label)
}

func TestReportService_ExportDashboard(t *testing.T) {
	f := newReportFixture(t)
	var buf bytes.Buffer

	period, err := f.service().ExportDashboard(context.Background(), january(), &buf)
	require.NoError(t, err)
	assert.Equal(t, "dashboard_2024-01-01_2024-01-31.xlsx", ExportFileName(*period))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Resumo", "Vendas por mês"}, wb.GetSheetList())

	stock, err := wb.GetCellValue("Resumo", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", stock)

	revenue, err := wb.GetCellValue("Resumo", "B5")
	require.NoError(t, err)
	assert.Equal(t, "100000", revenue)

	label, err := wb.GetCellValue("Vendas por mês", "A2")
	require.NoError(t, err)
	assert.Equal(t, "jan/2024", label)
}
