package persistence

import (
	"context"

	appfinance "github.com/autenticco/backend/internal/application/finance"
	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/finance"
	"gorm.io/gorm"
)

// GormSaleTransactionScope implements the sale TransactionScope with a GORM transaction
type GormSaleTransactionScope struct {
	db *gorm.DB
}

// NewGormSaleTransactionScope creates a new GormSaleTransactionScope
func NewGormSaleTransactionScope(db *gorm.DB) *GormSaleTransactionScope {
	return &GormSaleTransactionScope{db: db}
}

// Execute runs fn inside a transaction; an error from fn rolls it back
func (s *GormSaleTransactionScope) Execute(ctx context.Context, fn func(repos appfinance.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSaleRepositories{tx: tx})
	})
}

type gormSaleRepositories struct {
	tx *gorm.DB
}

func (r *gormSaleRepositories) CarRepo() catalog.CarRepository {
	return NewGormCarRepository(r.tx)
}

func (r *gormSaleRepositories) SaleRepo() finance.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

var _ appfinance.TransactionScope = (*GormSaleTransactionScope)(nil)
