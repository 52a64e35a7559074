package catalog

import (
	"context"

	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockStatus narrows admin listings
type StockStatus string

const (
	StockAll       StockStatus = ""
	StockInStock   StockStatus = "in_stock"
	StockSold      StockStatus = "sold"
	StockHidden    StockStatus = "hidden"
	StockDelivered StockStatus = "delivered"
)

// CarFilter is the admin listing filter
type CarFilter struct {
	shared.Filter
	Status StockStatus
	Brand  string
}

// CarRepository persists cars
type CarRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Car, error)
	FindBySlug(ctx context.Context, slug string) (*Car, error)
	FindAll(ctx context.Context, filter CarFilter) ([]Car, int64, error)
	// ListAll returns every car, sold or not, for aggregation
	ListAll(ctx context.Context) ([]Car, error)
	// ListInStock returns unsold cars not marked unavailable
	ListInStock(ctx context.Context) ([]Car, error)
	Save(ctx context.Context, car *Car) error
	// UpdateFinance writes the finance fields and clears profit_percent
	UpdateFinance(ctx context.Context, id uuid.UUID, patch FinancePatch) error
}
