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

// GormLeadRepository implements LeadRepository using GORM
type GormLeadRepository struct {
	db *gorm.DB
}

// NewGormLeadRepository creates a new GormLeadRepository
func NewGormLeadRepository(db *gorm.DB) *GormLeadRepository {
	return &GormLeadRepository{db: db}
}

// FindByID finds a lead by its ID
func (r *GormLeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Lead, error) {
	var model models.LeadModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page of leads and the total match count
func (r *GormLeadRepository) FindAll(ctx context.Context, filter marketing.LeadFilter) ([]marketing.Lead, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.LeadModel{})
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?", pattern, pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Source != "" {
		query = query.Where("source = ?", string(filter.Source))
	}
	if filter.CarID != nil {
		query = query.Where("car_id = ?", *filter.CarID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.LeadModel
	query = paginate(query, filter.Page, filter.PageSize).
		Order(orderClause(filter.OrderBy, filter.OrderDir, LeadSortFields, "created_at"))
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	leads := make([]marketing.Lead, len(rows))
	for i := range rows {
		leads[i] = *rows[i].ToDomain()
	}
	return leads, total, nil
}

// Save creates or updates a lead
func (r *GormLeadRepository) Save(ctx context.Context, lead *marketing.Lead) error {
	return r.db.WithContext(ctx).Save(models.LeadModelFromDomain(lead)).Error
}
