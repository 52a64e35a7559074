package marketing

import (
	"time"

	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/google/uuid"
)

// PlatformRequest creates or updates a platform
// @Description Advertising platform
type PlatformRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=80" example:"Webmotors"`
	Type     string `json:"type" binding:"omitempty,max=20" example:"marketplace"`
	IsActive *bool  `json:"is_active" example:"true"`
}

// PlatformResponse represents a platform in API responses
type PlatformResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ToPlatformResponse converts a domain Platform
func ToPlatformResponse(p *marketing.Platform) PlatformResponse {
	return PlatformResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      string(p.Type),
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}

// SubmitLeadRequest is the public contact form
// @Description Storefront contact form
type SubmitLeadRequest struct {
	Name    string     `json:"name" binding:"required,min=2,max=120" example:"Carlos Lima"`
	Phone   string     `json:"phone" binding:"required,min=8,max=30" example:"11912345678"`
	Email   string     `json:"email" binding:"omitempty,email,max=200" example:"carlos@example.com"`
	Message string     `json:"message" binding:"max=2000" example:"Aceita troca?"`
	CarID   *uuid.UUID `json:"car_id"`
	Source  string     `json:"source" binding:"omitempty,oneof=contact car_interest financing trade_in sell_your_car whatsapp" example:"car_interest"`
}

// UpdateLeadStatusRequest moves a lead through the funnel
type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=contacted converted lost"`
	Notes  string `json:"notes" binding:"max=2000"`
}

// LeadListFilter is the admin inbox query
type LeadListFilter struct {
	Search   string     `form:"search"`
	Status   string     `form:"status" binding:"omitempty,oneof=new contacted converted lost"`
	Source   string     `form:"source"`
	CarID    *uuid.UUID `form:"-"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// LeadResponse represents a lead in API responses
type LeadResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Message   string     `json:"message"`
	CarID     *uuid.UUID `json:"car_id"`
	Source    string     `json:"source"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToLeadResponse converts a domain Lead
func ToLeadResponse(l *marketing.Lead) LeadResponse {
	return LeadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Phone:     l.Phone,
		Email:     l.Email,
		Message:   l.Message,
		CarID:     l.CarID,
		Source:    string(l.Source),
		Status:    string(l.Status),
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// SubmitTestimonialRequest is the public review form
// @Description Customer review
type SubmitTestimonialRequest struct {
	CustomerName string `json:"customer_name" binding:"required,min=2,max=120" example:"Ana Paula"`
	City         string `json:"city" binding:"max=80" example:"Campinas"`
	CarLabel     string `json:"car_label" binding:"max=120" example:"Honda Civic 2020"`
	Text         string `json:"text" binding:"required,min=5,max=2000" example:"Atendimento excelente, recomendo!"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
}

// TestimonialResponse represents a testimonial in API responses
type TestimonialResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	City         string    `json:"city"`
	CarLabel     string    `json:"car_label"`
	Text         string    `json:"text"`
	Rating       int       `json:"rating"`
	PhotoURL     string    `json:"photo_url"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToTestimonialResponse converts a domain Testimonial
func ToTestimonialResponse(t *marketing.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:           t.ID,
		CustomerName: t.CustomerName,
		City:         t.City,
		CarLabel:     t.CarLabel,
		Text:         t.Text,
		Rating:       t.Rating,
		PhotoURL:     t.PhotoURL,
		IsPublished:  t.IsPublished,
		CreatedAt:    t.CreatedAt,
	}
}
