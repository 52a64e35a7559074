package marketing

import (
	"strings"

	"github.com/autenticco/backend/internal/domain/shared"
)

// Testimonial is a customer review shown on the storefront once published
type Testimonial struct {
	shared.BaseEntity
	CustomerName string
	City         string
	CarLabel     string
	Text         string
	Rating       int
	PhotoURL     string
	IsPublished  bool
}

// NewTestimonial creates an unpublished testimonial
func NewTestimonial(name, city, carLabel, text string, rating int) (*Testimonial, error) {
	name = strings.TrimSpace(name)
	text = strings.TrimSpace(text)
	if name == "" || text == "" {
		return nil, shared.NewDomainError("INVALID_TESTIMONIAL", "Name and text are required")
	}
	if rating < 1 || rating > 5 {
		return nil, shared.NewDomainError("INVALID_TESTIMONIAL", "Rating must be between 1 and 5")
	}
	return &Testimonial{
		BaseEntity:   shared.NewBaseEntity(),
		CustomerName: name,
		City:         strings.TrimSpace(city),
		CarLabel:     strings.TrimSpace(carLabel),
		Text:         text,
		Rating:       rating,
	}, nil
}

// Publish makes it visible on the storefront
func (t *Testimonial) Publish() {
	t.IsPublished = true
	t.Touch()
}

// Unpublish hides it
func (t *Testimonial) Unpublish() {
	t.IsPublished = false
	t.Touch()
}
