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

// GormTestimonialRepository implements TestimonialRepository using GORM
type GormTestimonialRepository struct {
	db *gorm.DB
}

// NewGormTestimonialRepository creates a new GormTestimonialRepository
func NewGormTestimonialRepository(db *gorm.DB) *GormTestimonialRepository {
	return &GormTestimonialRepository{db: db}
}

// FindByID finds a testimonial by its ID
func (r *GormTestimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Testimonial, error) {
	var model models.TestimonialModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListAll returns testimonials newest first
func (r *GormTestimonialRepository) ListAll(ctx context.Context, publishedOnly bool) ([]marketing.Testimonial, error) {
	query := r.db.WithContext(ctx).Model(&models.TestimonialModel{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var rows []models.TestimonialModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]marketing.Testimonial, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates a testimonial
func (r *GormTestimonialRepository) Save(ctx context.Context, testimonial *marketing.Testimonial) error {
	return r.db.WithContext(ctx).Save(models.TestimonialModelFromDomain(testimonial)).Error
}

// Delete removes a testimonial
func (r *GormTestimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TestimonialModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
