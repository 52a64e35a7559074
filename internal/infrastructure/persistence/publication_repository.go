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

// GormPublicationRepository implements PublicationRepository using GORM
type GormPublicationRepository struct {
	db *gorm.DB
}

// NewGormPublicationRepository creates a new GormPublicationRepository
func NewGormPublicationRepository(db *gorm.DB) *GormPublicationRepository {
	return &GormPublicationRepository{db: db}
}

// FindByID finds a publication by its ID
func (r *GormPublicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Publication, error) {
	var model models.PublicationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListAll returns publications, optionally narrowed to the given cars
func (r *GormPublicationRepository) ListAll(ctx context.Context, carIDs ...uuid.UUID) ([]marketing.Publication, error) {
	query := r.db.WithContext(ctx).Model(&models.PublicationModel{})
	if len(carIDs) > 0 {
		query = query.Where("car_id IN ?", carIDs)
	}

	var rows []models.PublicationModel
	if err := query.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	pubs := make([]marketing.Publication, len(rows))
	for i := range rows {
		pubs[i] = *rows[i].ToDomain()
	}
	return pubs, nil
}

// Save creates or updates a publication
func (r *GormPublicationRepository) Save(ctx context.Context, publication *marketing.Publication) error {
	return r.db.WithContext(ctx).Save(models.PublicationModelFromDomain(publication)).Error
}

// Delete removes a publication
func (r *GormPublicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PublicationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByPlatform counts publications that reference a platform
func (r *GormPublicationRepository) CountByPlatform(ctx context.Context, platformID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PublicationModel{}).
		Where("platform_id = ?", platformID).
		Count(&count).Error
	return count, err
}
