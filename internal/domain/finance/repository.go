package finance

import (
	"context"
	"time"

	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ExpenseRepository persists expenses
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	// ListAll returns every expense; carIDs narrows the result when given
	ListAll(ctx context.Context, carIDs ...uuid.UUID) ([]Expense, error)
	Save(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SaleFilter narrows sale listings
type SaleFilter struct {
	shared.Filter
	From       *time.Time
	To         *time.Time
	PlatformID *uuid.UUID
	CarID      *uuid.UUID
}

// SaleRepository persists sales
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindByCar(ctx context.Context, carID uuid.UUID) (*Sale, error)
	FindAll(ctx context.Context, filter SaleFilter) ([]Sale, int64, error)
	ListAll(ctx context.Context) ([]Sale, error)
	Save(ctx context.Context, sale *Sale) error
}
