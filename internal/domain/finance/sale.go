package finance

import (
	"strings"
	"time"

	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod of a sale
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "cash"
	PaymentFinancing PaymentMethod = "financing"
	PaymentTradeIn   PaymentMethod = "trade_in"
	PaymentMixed     PaymentMethod = "mixed"
)

// IsValid checks the payment method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentFinancing, PaymentTradeIn, PaymentMixed:
		return true
	}
	return false
}

// Sale records the sale of a car
type Sale struct {
	shared.BaseEntity
	CarID         uuid.UUID
	SalePrice     decimal.Decimal
	SaleDate      *time.Time
	Commission    *decimal.Decimal
	PlatformID    *uuid.UUID
	BuyerName     string
	BuyerPhone    string
	PaymentMethod PaymentMethod
	Notes         string
}

// SaleInput is the payload to register a sale
type SaleInput struct {
	CarID         uuid.UUID
	SalePrice     decimal.Decimal
	SaleDate      *time.Time
	Commission    *decimal.Decimal
	PlatformID    *uuid.UUID
	BuyerName     string
	BuyerPhone    string
	PaymentMethod PaymentMethod
	Notes         string
}

// NewSale validates and creates a sale
func NewSale(in SaleInput) (*Sale, error) {
	if in.CarID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SALE", "Car is required")
	}
	if !in.SalePrice.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Sale price must be positive")
	}
	if in.Commission != nil && in.Commission.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Commission cannot be negative")
	}
	method := in.PaymentMethod
	if method == "" {
		method = PaymentCash
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_SALE", "Unknown payment method")
	}
	return &Sale{
		BaseEntity:    shared.NewBaseEntity(),
		CarID:         in.CarID,
		SalePrice:     in.SalePrice,
		SaleDate:      in.SaleDate,
		Commission:    in.Commission,
		PlatformID:    in.PlatformID,
		BuyerName:     strings.TrimSpace(in.BuyerName),
		BuyerPhone:    strings.TrimSpace(in.BuyerPhone),
		PaymentMethod: method,
		Notes:         in.Notes,
	}, nil
}

// EffectiveDate is sale_date, falling back to created_at
func (s *Sale) EffectiveDate() *time.Time {
	if s.SaleDate != nil {
		return s.SaleDate
	}
	if s.CreatedAt.IsZero() {
		return nil
	}
	t := s.CreatedAt
	return &t
}

// CommissionOverride returns the sale's commission when it is positive
func (s *Sale) CommissionOverride() (decimal.Decimal, bool) {
	if s.Commission == nil || !s.Commission.IsPositive() {
		return decimal.Zero, false
	}
	return *s.Commission, true
}
