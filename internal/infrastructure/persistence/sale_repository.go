package persistence

import (
	"context"
	"errors"

	"github.com/autenticco/backend/internal/domain/finance"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Sale, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByCar finds the sale of a car
func (r *GormSaleRepository) FindByCar(ctx context.Context, carID uuid.UUID) (*finance.Sale, error) {
	return r.findOne(ctx, "car_id = ?", carID)
}

func (r *GormSaleRepository) findOne(ctx context.Context, cond string, arg any) (*finance.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).First(&model, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page of sales and the total match count.
// From/To compare against sale_date, falling back to created_at.
func (r *GormSaleRepository) FindAll(ctx context.Context, filter finance.SaleFilter) ([]finance.Sale, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SaleModel{})
	if filter.From != nil {
		query = query.Where("COALESCE(sale_date, created_at) >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("COALESCE(sale_date, created_at) <= ?", *filter.To)
	}
	if filter.PlatformID != nil {
		query = query.Where("platform_id = ?", *filter.PlatformID)
	}
	if filter.CarID != nil {
		query = query.Where("car_id = ?", *filter.CarID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.SaleModel
	query = paginate(query, filter.Page, filter.PageSize).
		Order(orderClause(filter.OrderBy, filter.OrderDir, SaleSortFields, "created_at"))
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return salesToDomain(rows), total, nil
}

// ListAll returns every sale
func (r *GormSaleRepository) ListAll(ctx context.Context) ([]finance.Sale, error) {
	var rows []models.SaleModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return salesToDomain(rows), nil
}

// Save creates or updates a sale
func (r *GormSaleRepository) Save(ctx context.Context, sale *finance.Sale) error {
	return r.db.WithContext(ctx).Save(models.SaleModelFromDomain(sale)).Error
}

func salesToDomain(rows []models.SaleModel) []finance.Sale {
	sales := make([]finance.Sale, len(rows))
	for i := range rows {
		sales[i] = *rows[i].ToDomain()
	}
	return sales
}
