package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCarRepository implements CarRepository using GORM
type GormCarRepository struct {
	db *gorm.DB
}

// NewGormCarRepository creates a new GormCarRepository
func NewGormCarRepository(db *gorm.DB) *GormCarRepository {
	return &GormCarRepository{db: db}
}

// FindByID finds a car by its ID
func (r *GormCarRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Car, error) {
	var model models.CarModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlug finds a car by its public slug
func (r *GormCarRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Car, error) {
	var model models.CarModel
	if err := r.db.WithContext(ctx).First(&model, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page of cars matching the filter and the total match count
func (r *GormCarRepository) FindAll(ctx context.Context, filter catalog.CarFilter) ([]catalog.Car, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CarModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.CarModel
	query = paginate(query, filter.Page, filter.PageSize).
		Order(orderClause(filter.OrderBy, filter.OrderDir, CarSortFields, "created_at"))
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return carsToDomain(rows), total, nil
}

// ListAll returns every car
func (r *GormCarRepository) ListAll(ctx context.Context) ([]catalog.Car, error) {
	var rows []models.CarModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return carsToDomain(rows), nil
}

// ListInStock returns unsold cars that are not hidden
func (r *GormCarRepository) ListInStock(ctx context.Context) ([]catalog.Car, error) {
	var rows []models.CarModel
	err := r.db.WithContext(ctx).
		Where("is_sold = ?", false).
		Where("is_available IS NULL OR is_available = ?", true).
		Order("is_featured DESC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return carsToDomain(rows), nil
}

// Save creates or updates a car
func (r *GormCarRepository) Save(ctx context.Context, car *catalog.Car) error {
	return r.db.WithContext(ctx).Save(models.CarModelFromDomain(car)).Error
}

// UpdateFinance writes only the finance columns of a car. profit_percent is
// always cleared.
func (r *GormCarRepository) UpdateFinance(ctx context.Context, id uuid.UUID, patch catalog.FinancePatch) error {
	result := r.db.WithContext(ctx).
		Model(&models.CarModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"fipe_value":       patch.FipeValue,
			"commission":       patch.Commission,
			"return_to_seller": patch.ReturnToSeller,
			"profit":           patch.Profit,
			"profit_percent":   nil,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCarRepository) applyFilter(query *gorm.DB, filter catalog.CarFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(brand) LIKE ? OR LOWER(model) LIKE ? OR LOWER(version) LIKE ? OR LOWER(plate) LIKE ?",
			pattern, pattern, pattern, pattern)
	}
	if filter.Brand != "" {
		query = query.Where("LOWER(brand) = ?", strings.ToLower(filter.Brand))
	}

	switch filter.Status {
	case catalog.StockInStock:
		query = query.Where("is_sold = ?", false).Where("is_available IS NULL OR is_available = ?", true)
	case catalog.StockSold:
		query = query.Where("is_sold = ?", true)
	case catalog.StockHidden:
		query = query.Where("is_sold = ? AND is_available = ?", false, false)
	case catalog.StockDelivered:
		query = query.Where("delivered_at IS NOT NULL")
	}

	return query
}

func carsToDomain(rows []models.CarModel) []catalog.Car {
	cars := make([]catalog.Car, len(rows))
	for i := range rows {
		cars[i] = *rows[i].ToDomain()
	}
	return cars
}
