package models

import (
	"time"

	"github.com/autenticco/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseModel is the persistence model for per-car expenses
type ExpenseModel struct {
	BaseModel
	CarID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	Category     string              `gorm:"type:varchar(30);not null;default:'other'"`
	Description  string              `gorm:"type:varchar(500)"`
	Amount       decimal.Decimal     `gorm:"type:decimal(14,2);not null;default:0"`
	ChargedValue decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	IncurredAt   *time.Time          `gorm:"index"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts to a domain Expense
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		BaseEntity:   m.BaseModel.ToDomain(),
		CarID:        m.CarID,
		Category:     finance.ExpenseCategory(m.Category),
		Description:  m.Description,
		Amount:       m.Amount,
		ChargedValue: decimalPtr(m.ChargedValue),
		IncurredAt:   m.IncurredAt,
	}
}

// ExpenseModelFromDomain creates a persistence model from a domain Expense
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{
		CarID:        e.CarID,
		Category:     string(e.Category),
		Description:  e.Description,
		Amount:       e.Amount,
		ChargedValue: nullDecimal(e.ChargedValue),
		IncurredAt:   e.IncurredAt,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}

// SaleModel is the persistence model for car sales
type SaleModel struct {
	BaseModel
	CarID         uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex"`
	SalePrice     decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	SaleDate      *time.Time          `gorm:"index"`
	Commission    decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	PlatformID    *uuid.UUID          `gorm:"type:uuid;index"`
	BuyerName     string              `gorm:"type:varchar(120)"`
	BuyerPhone    string              `gorm:"type:varchar(20)"`
	PaymentMethod string              `gorm:"type:varchar(20);not null;default:'cash'"`
	Notes         string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts to a domain Sale
func (m *SaleModel) ToDomain() *finance.Sale {
	return &finance.Sale{
		BaseEntity:    m.BaseModel.ToDomain(),
		CarID:         m.CarID,
		SalePrice:     m.SalePrice,
		SaleDate:      m.SaleDate,
		Commission:    decimalPtr(m.Commission),
		PlatformID:    m.PlatformID,
		BuyerName:     m.BuyerName,
		BuyerPhone:    m.BuyerPhone,
		PaymentMethod: finance.PaymentMethod(m.PaymentMethod),
		Notes:         m.Notes,
	}
}

// SaleModelFromDomain creates a persistence model from a domain Sale
func SaleModelFromDomain(s *finance.Sale) *SaleModel {
	m := &SaleModel{
		CarID:         s.CarID,
		SalePrice:     s.SalePrice,
		SaleDate:      s.SaleDate,
		Commission:    nullDecimal(s.Commission),
		PlatformID:    s.PlatformID,
		BuyerName:     s.BuyerName,
		BuyerPhone:    s.BuyerPhone,
		PaymentMethod: string(s.PaymentMethod),
		Notes:         s.Notes,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}
