package finance

import (
	"context"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/finance"
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCarRepository answers the lookups and writes used by finance services
type MockCarRepository struct {
	mock.Mock
	catalog.CarRepository
}

func (m *MockCarRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Car), args.Error(1)
}

func (m *MockCarRepository) Save(ctx context.Context, car *catalog.Car) error {
	return m.Called(ctx, car).Error(0)
}

func (m *MockCarRepository) UpdateFinance(ctx context.Context, id uuid.UUID, patch catalog.FinancePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

type MockPlatformRepository struct {
	mock.Mock
	marketing.PlatformRepository
}

func (m *MockPlatformRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Platform, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketing.Platform), args.Error(1)
}

func (m *MockPlatformRepository) ListAll(ctx context.Context) ([]marketing.Platform, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketing.Platform), args.Error(1)
}

type MockPublicationRepository struct {
	mock.Mock
}

func (m *MockPublicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Publication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketing.Publication), args.Error(1)
}

func (m *MockPublicationRepository) ListAll(ctx context.Context, carIDs ...uuid.UUID) ([]marketing.Publication, error) {
	args := m.Called(ctx, carIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketing.Publication), args.Error(1)
}

func (m *MockPublicationRepository) Save(ctx context.Context, publication *marketing.Publication) error {
	return m.Called(ctx, publication).Error(0)
}

func (m *MockPublicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPublicationRepository) CountByPlatform(ctx context.Context, platformID uuid.UUID) (int64, error) {
	args := m.Called(ctx, platformID)
	return args.Get(0).(int64), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListAll(ctx context.Context, carIDs ...uuid.UUID) ([]finance.Expense, error) {
	args := m.Called(ctx, carIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByCar(ctx context.Context, carID uuid.UUID) (*finance.Sale, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAll(ctx context.Context, filter finance.SaleFilter) ([]finance.Sale, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]finance.Sale), args.Get(1).(int64), args.Error(2)
}

func (m *MockSaleRepository) ListAll(ctx context.Context) ([]finance.Sale, error) {
	args := m.Called(ctx)
	return args.Get(0).([]finance.Sale), args.Error(1)
}

func (m *MockSaleRepository) Save(ctx context.Context, sale *finance.Sale) error {
	return m.Called(ctx, sale).Error(0)
}
