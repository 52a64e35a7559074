package models

import (
	"time"

	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlatformModel is the persistence model for advertising platforms
type PlatformModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(80);not null"`
	PlatformType string `gorm:"type:varchar(20);not null;default:'other'"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PlatformModel) TableName() string {
	return "platforms"
}

// ToDomain converts to a domain Platform. Unknown stored types read as other.
func (m *PlatformModel) ToDomain() *marketing.Platform {
	return &marketing.Platform{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Type:       marketing.ParsePlatformType(m.PlatformType),
		IsActive:   m.IsActive,
	}
}

// PlatformModelFromDomain creates a persistence model from a domain Platform
func PlatformModelFromDomain(p *marketing.Platform) *PlatformModel {
	m := &PlatformModel{
		Name:         p.Name,
		PlatformType: string(p.Type),
		IsActive:     p.IsActive,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// PublicationModel is the persistence model for car publications (ads)
type PublicationModel struct {
	BaseModel
	CarID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	PlatformID  *uuid.UUID      `gorm:"type:uuid;index"`
	Spent       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Status      string          `gorm:"type:varchar(20);not null;default:'active'"`
	URL         string          `gorm:"type:varchar(500)"`
	PublishedAt *time.Time      `gorm:"index"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PublicationModel) TableName() string {
	return "publications"
}

// ToDomain converts to a domain Publication
func (m *PublicationModel) ToDomain() *marketing.Publication {
	return &marketing.Publication{
		BaseEntity:  m.BaseModel.ToDomain(),
		CarID:       m.CarID,
		PlatformID:  m.PlatformID,
		Spent:       m.Spent,
		Status:      marketing.PublicationStatus(m.Status),
		URL:         m.URL,
		PublishedAt: m.PublishedAt,
		Notes:       m.Notes,
	}
}

// PublicationModelFromDomain creates a persistence model from a domain Publication
func PublicationModelFromDomain(p *marketing.Publication) *PublicationModel {
	m := &PublicationModel{
		CarID:       p.CarID,
		PlatformID:  p.PlatformID,
		Spent:       p.Spent,
		Status:      string(p.Status),
		URL:         p.URL,
		PublishedAt: p.PublishedAt,
		Notes:       p.Notes,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// LeadModel is the persistence model for storefront leads
type LeadModel struct {
	BaseModel
	Name    string     `gorm:"type:varchar(120);not null"`
	Phone   string     `gorm:"type:varchar(20);not null"`
	Email   string     `gorm:"type:varchar(200)"`
	Message string     `gorm:"type:text"`
	CarID   *uuid.UUID `gorm:"type:uuid;index"`
	Source  string     `gorm:"type:varchar(30);not null"`
	Status  string     `gorm:"type:varchar(20);not null;index"`
	Notes   string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (LeadModel) TableName() string {
	return "leads"
}

// ToDomain converts to a domain Lead
func (m *LeadModel) ToDomain() *marketing.Lead {
	return &marketing.Lead{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Phone:      m.Phone,
		Email:      m.Email,
		Message:    m.Message,
		CarID:      m.CarID,
		Source:     marketing.LeadSource(m.Source),
		Status:     marketing.LeadStatus(m.Status),
		Notes:      m.Notes,
	}
}

// LeadModelFromDomain creates a persistence model from a domain Lead
func LeadModelFromDomain(l *marketing.Lead) *LeadModel {
	m := &LeadModel{
		Name:    l.Name,
		Phone:   l.Phone,
		Email:   l.Email,
		Message: l.Message,
		CarID:   l.CarID,
		Source:  string(l.Source),
		Status:  string(l.Status),
		Notes:   l.Notes,
	}
	m.FromDomainBaseEntity(l.BaseEntity)
	return m
}

// TestimonialModel is the persistence model for customer testimonials
type TestimonialModel struct {
	BaseModel
	CustomerName string `gorm:"type:varchar(120);not null"`
	City         string `gorm:"type:varchar(80)"`
	CarLabel     string `gorm:"type:varchar(120)"`
	Text         string `gorm:"type:text;not null"`
	Rating       int    `gorm:"not null"`
	PhotoURL     string `gorm:"type:varchar(500)"`
	IsPublished  bool   `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (TestimonialModel) TableName() string {
	return "testimonials"
}

// ToDomain converts to a domain Testimonial
func (m *TestimonialModel) ToDomain() *marketing.Testimonial {
	return &marketing.Testimonial{
		BaseEntity:   m.BaseModel.ToDomain(),
		CustomerName: m.CustomerName,
		City:         m.City,
		CarLabel:     m.CarLabel,
		Text:         m.Text,
		Rating:       m.Rating,
		PhotoURL:     m.PhotoURL,
		IsPublished:  m.IsPublished,
	}
}

// TestimonialModelFromDomain creates a persistence model from a domain Testimonial
func TestimonialModelFromDomain(t *marketing.Testimonial) *TestimonialModel {
	m := &TestimonialModel{
		CustomerName: t.CustomerName,
		City:         t.City,
		CarLabel:     t.CarLabel,
		Text:         t.Text,
		Rating:       t.Rating,
		PhotoURL:     t.PhotoURL,
		IsPublished:  t.IsPublished,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}
