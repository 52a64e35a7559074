package marketing

import (
	"time"

	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PublicationStatus of an ad
type PublicationStatus string

const (
	PublicationActive  PublicationStatus = "active"
	PublicationPaused  PublicationStatus = "paused"
	PublicationExpired PublicationStatus = "expired"
)

// IsValid checks the status value
func (s PublicationStatus) IsValid() bool {
	switch s {
	case PublicationActive, PublicationPaused, PublicationExpired:
		return true
	}
	return false
}

// Publication is one advertisement of a car on a platform
type Publication struct {
	shared.BaseEntity
	CarID       uuid.UUID
	PlatformID  *uuid.UUID
	Spent       decimal.Decimal
	Status      PublicationStatus
	URL         string
	PublishedAt *time.Time
	Notes       string
}

// NewPublication creates an active publication
func NewPublication(carID uuid.UUID, platformID *uuid.UUID, spent decimal.Decimal, publishedAt *time.Time) (*Publication, error) {
	if carID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PUBLICATION", "Car is required")
	}
	if spent.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Spend cannot be negative")
	}
	return &Publication{
		BaseEntity:  shared.NewBaseEntity(),
		CarID:       carID,
		PlatformID:  platformID,
		Spent:       spent,
		Status:      PublicationActive,
		PublishedAt: publishedAt,
	}, nil
}

// EffectiveDate is published_at, falling back to created_at
func (p *Publication) EffectiveDate() *time.Time {
	if p.PublishedAt != nil {
		return p.PublishedAt
	}
	if p.CreatedAt.IsZero() {
		return nil
	}
	t := p.CreatedAt
	return &t
}
