package persistence

import (
	"context"
	"errors"

	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPlatformRepository implements PlatformRepository using GORM
type GormPlatformRepository struct {
	db *gorm.DB
}

// NewGormPlatformRepository creates a new GormPlatformRepository
func NewGormPlatformRepository(db *gorm.DB) *GormPlatformRepository {
	return &GormPlatformRepository{db: db}
}

// FindByID finds a platform by its ID
func (r *GormPlatformRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Platform, error) {
	var model models.PlatformModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListAll returns every platform ordered by name
func (r *GormPlatformRepository) ListAll(ctx context.Context) ([]marketing.Platform, error) {
	var rows []models.PlatformModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	platforms := make([]marketing.Platform, len(rows))
	for i := range rows {
		platforms[i] = *rows[i].ToDomain()
	}
	return platforms, nil
}

// Save creates or updates a platform
func (r *GormPlatformRepository) Save(ctx context.Context, platform *marketing.Platform) error {
	return r.db.WithContext(ctx).Save(models.PlatformModelFromDomain(platform)).Error
}

// Delete removes a platform
func (r *GormPlatformRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PlatformModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
