package marketing

import (
	"context"

	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PlatformRepository persists platforms
type PlatformRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Platform, error)
	ListAll(ctx context.Context) ([]Platform, error)
	Save(ctx context.Context, platform *Platform) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PublicationRepository persists publications
type PublicationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Publication, error)
	// ListAll returns every publication; carIDs narrows the result when given
	ListAll(ctx context.Context, carIDs ...uuid.UUID) ([]Publication, error)
	Save(ctx context.Context, publication *Publication) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByPlatform(ctx context.Context, platformID uuid.UUID) (int64, error)
}

// LeadFilter narrows the admin lead inbox
type LeadFilter struct {
	shared.Filter
	Status LeadStatus
	Source LeadSource
	CarID  *uuid.UUID
}

// LeadRepository persists leads
type LeadRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Lead, error)
	FindAll(ctx context.Context, filter LeadFilter) ([]Lead, int64, error)
	Save(ctx context.Context, lead *Lead) error
}

// TestimonialRepository persists testimonials
type TestimonialRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Testimonial, error)
	ListAll(ctx context.Context, publishedOnly bool) ([]Testimonial, error)
	Save(ctx context.Context, testimonial *Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
}
