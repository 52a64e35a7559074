package finance

import (
	"context"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/finance"
)

// TransactionScope runs a sale registration atomically. The car flag and the
// sale row are committed or rolled back together.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories are the repositories bound to one transaction
type TransactionalRepositories interface {
	CarRepo() catalog.CarRepository
	SaleRepo() finance.SaleRepository
}

// NoOpTransactionScope runs fn directly against the given repositories
type NoOpTransactionScope struct {
	carRepo  catalog.CarRepository
	saleRepo finance.SaleRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope
func NewNoOpTransactionScope(carRepo catalog.CarRepository, saleRepo finance.SaleRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{carRepo: carRepo, saleRepo: saleRepo}
}

// Execute runs fn without a transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// CarRepo returns the car repository
func (s *NoOpTransactionScope) CarRepo() catalog.CarRepository { return s.carRepo }

// SaleRepo returns the sale repository
func (s *NoOpTransactionScope) SaleRepo() finance.SaleRepository { return s.saleRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
