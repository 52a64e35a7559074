package handler

import (
	"context"
	"io"

	catalogapp "github.com/autenticco/backend/internal/application/catalog"
	financeapp "github.com/autenticco/backend/internal/application/finance"
	identityapp "github.com/autenticco/backend/internal/application/identity"
	marketingapp "github.com/autenticco/backend/internal/application/marketing"
	printingapp "github.com/autenticco/backend/internal/application/printing"
	reportapp "github.com/autenticco/backend/internal/application/report"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCarService is a mock implementation of CarUseCases
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) carResult(args mock.Arguments) (*catalogapp.CarResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.CarResponse), args.Error(1)
}

func (m *MockCarService) Create(ctx context.Context, req catalogapp.CarRequest) (*catalogapp.CarResponse, error) {
	return m.carResult(m.Called(ctx, req))
}

func (m *MockCarService) Update(ctx context.Context, id uuid.UUID, req catalogapp.CarRequest) (*catalogapp.CarResponse, error) {
	return m.carResult(m.Called(ctx, id, req))
}

func (m *MockCarService) GetByID(ctx context.Context, id uuid.UUID) (*catalogapp.CarResponse, error) {
	return m.carResult(m.Called(ctx, id))
}

func (m *MockCarService) GetPublicBySlug(ctx context.Context, slug string) (*catalogapp.PublicCarResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.PublicCarResponse), args.Error(1)
}

func (m *MockCarService) List(ctx context.Context, filter catalogapp.CarListFilter) ([]catalogapp.CarResponse, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]catalogapp.CarResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockCarService) ListPublic(ctx context.Context, query catalogapp.PublicCarQuery) (*catalogapp.PublicCarListResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.PublicCarListResponse), args.Error(1)
}

func (m *MockCarService) MarkSold(ctx context.Context, id uuid.UUID, req catalogapp.MarkSoldRequest) (*catalogapp.CarResponse, error) {
	return m.carResult(m.Called(ctx, id, req))
}

func (m *MockCarService) MarkDelivered(ctx context.Context, id uuid.UUID, req catalogapp.MarkDeliveredRequest) (*catalogapp.CarResponse, error) {
	return m.carResult(m.Called(ctx, id, req))
}

func (m *MockCarService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*catalogapp.CarResponse, error) {
	return m.carResult(m.Called(ctx, id, available))
}

func (m *MockCarService) UploadImage(ctx context.Context, id uuid.UUID, upload catalogapp.ImageUpload) (*catalogapp.CarResponse, error) {
	return m.carResult(m.Called(ctx, id, upload))
}

// MockFinanceService is a mock implementation of FinanceUseCases
type MockFinanceService struct {
	mock.Mock
}

func (m *MockFinanceService) GetCarFinance(ctx context.Context, carID uuid.UUID) (*financeapp.CarFinanceResponse, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeapp.CarFinanceResponse), args.Error(1)
}

func (m *MockFinanceService) PreviewProfit(ctx context.Context, carID uuid.UUID, req financeapp.PreviewProfitRequest) (*financeapp.ProfitPreviewResponse, error) {
	args := m.Called(ctx, carID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeapp.ProfitPreviewResponse), args.Error(1)
}

func (m *MockFinanceService) SaveFinance(ctx context.Context, carID uuid.UUID, req financeapp.SaveFinanceRequest) (*financeapp.CarFinanceResponse, error) {
	args := m.Called(ctx, carID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeapp.CarFinanceResponse), args.Error(1)
}

// MockSaleService is a mock implementation of SaleUseCases
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) List(ctx context.Context, filter financeapp.SaleListFilter) (*shared.Paginated[financeapp.SaleResponse], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[financeapp.SaleResponse]), args.Error(1)
}

func (m *MockSaleService) RegisterSale(ctx context.Context, req financeapp.RegisterSaleRequest) (*financeapp.SaleResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeapp.SaleResponse), args.Error(1)
}

// MockReportService is a mock implementation of ReportUseCases
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GetDashboard(ctx context.Context, q reportapp.PeriodQuery) (*reportapp.DashboardResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reportapp.DashboardResponse), args.Error(1)
}

func (m *MockReportService) GetMonthlySales(ctx context.Context, q reportapp.PeriodQuery) (*reportapp.MonthlySalesResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reportapp.MonthlySalesResponse), args.Error(1)
}

func (m *MockReportService) ExportDashboard(ctx context.Context, q reportapp.PeriodQuery, w io.Writer) (*reportapp.PeriodResponse, error) {
	args := m.Called(ctx, q, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reportapp.PeriodResponse), args.Error(1)
}

// MockPrintService is a mock implementation of PrintUseCases
type MockPrintService struct {
	mock.Mock
}

func (m *MockPrintService) RenderChecklist(ctx context.Context, carID uuid.UUID, format string) (*printingapp.Document, error) {
	args := m.Called(ctx, carID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*printingapp.Document), args.Error(1)
}

func (m *MockPrintService) RenderQuote(ctx context.Context, carID uuid.UUID, req printingapp.QuoteRequest) (*printingapp.Document, error) {
	args := m.Called(ctx, carID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*printingapp.Document), args.Error(1)
}

// MockAuthService is a mock implementation of AuthUseCases
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req identityapp.LoginRequest) (*identityapp.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityapp.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, req identityapp.RefreshRequest) (*identityapp.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityapp.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, access *auth.Claims, req identityapp.LogoutRequest) error {
	return m.Called(ctx, access, req).Error(0)
}

func (m *MockAuthService) Me(ctx context.Context, userID uuid.UUID) (*identityapp.CurrentUserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityapp.CurrentUserResponse), args.Error(1)
}

// MockLeadService is a mock implementation of LeadUseCases
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) Submit(ctx context.Context, req marketingapp.SubmitLeadRequest) (*marketingapp.LeadResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketingapp.LeadResponse), args.Error(1)
}

func (m *MockLeadService) List(ctx context.Context, filter marketingapp.LeadListFilter) ([]marketingapp.LeadResponse, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]marketingapp.LeadResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadService) UpdateStatus(ctx context.Context, id uuid.UUID, req marketingapp.UpdateLeadStatusRequest) (*marketingapp.LeadResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketingapp.LeadResponse), args.Error(1)
}

// MockUserService is a mock implementation of UserUseCases
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) userResult(args mock.Arguments) (*identityapp.UserResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityapp.UserResponse), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]identityapp.UserResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identityapp.UserResponse), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, req identityapp.CreateUserRequest) (*identityapp.UserResponse, error) {
	return m.userResult(m.Called(ctx, req))
}

func (m *MockUserService) SetRole(ctx context.Context, id uuid.UUID, req identityapp.SetRoleRequest) (*identityapp.UserResponse, error) {
	return m.userResult(m.Called(ctx, id, req))
}

func (m *MockUserService) Activate(ctx context.Context, id uuid.UUID) (*identityapp.UserResponse, error) {
	return m.userResult(m.Called(ctx, id))
}

func (m *MockUserService) Deactivate(ctx context.Context, actorID, id uuid.UUID) (*identityapp.UserResponse, error) {
	return m.userResult(m.Called(ctx, actorID, id))
}

var (
	_ CarUseCases     = (*MockCarService)(nil)
	_ FinanceUseCases = (*MockFinanceService)(nil)
	_ SaleUseCases    = (*MockSaleService)(nil)
	_ ReportUseCases  = (*MockReportService)(nil)
	_ PrintUseCases   = (*MockPrintService)(nil)
	_ AuthUseCases    = (*MockAuthService)(nil)
	_ LeadUseCases    = (*MockLeadService)(nil)
	_ UserUseCases    = (*MockUserService)(nil)
)
