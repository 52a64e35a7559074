package finance

import (
	"time"

	"github.com/autenticco/backend/internal/domain/finance"
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/autenticco/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePublicationRequest registers an ad for a car
// @Description Ad placed for a car
type CreatePublicationRequest struct {
	CarID       uuid.UUID          `json:"car_id" binding:"required"`
	PlatformID  *uuid.UUID         `json:"platform_id"`
	Spent       valueobject.Amount `json:"spent" example:"500"`
	Status      string             `json:"status" binding:"omitempty,oneof=active paused expired" example:"active"`
	URL         string             `json:"url" binding:"omitempty,url,max=500" example:"https://www.webmotors.com.br/comprar/jeep/compass/123"`
	PublishedAt *time.Time         `json:"published_at"`
	Notes       string             `json:"notes" binding:"max=2000"`
}

// PublicationResponse represents a publication in API responses
type PublicationResponse struct {
	ID          uuid.UUID       `json:"id"`
	CarID       uuid.UUID       `json:"car_id"`
	PlatformID  *uuid.UUID      `json:"platform_id"`
	Spent       decimal.Decimal `json:"spent"`
	Status      string          `json:"status"`
	URL         string          `json:"url"`
	PublishedAt *time.Time      `json:"published_at"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToPublicationResponse converts a domain Publication
func ToPublicationResponse(p *marketing.Publication) PublicationResponse {
	return PublicationResponse{
		ID:          p.ID,
		CarID:       p.CarID,
		PlatformID:  p.PlatformID,
		Spent:       p.Spent,
		Status:      string(p.Status),
		URL:         p.URL,
		PublishedAt: p.PublishedAt,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
}

// CreateExpenseRequest registers a cost for a car
// @Description Cost charged to a car
type CreateExpenseRequest struct {
	CarID        uuid.UUID           `json:"car_id" binding:"required"`
	Category     string              `json:"category" binding:"omitempty,oneof=mechanical bodywork detailing documentation tires transport inspection other" example:"mechanical"`
	Description  string              `json:"description" binding:"max=500" example:"Troca de pastilhas"`
	Amount       valueobject.Amount  `json:"amount" example:"800"`
	ChargedValue *valueobject.Amount `json:"charged_value" example:"300"`
	IncurredAt   *time.Time          `json:"incurred_at"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID           uuid.UUID        `json:"id"`
	CarID        uuid.UUID        `json:"car_id"`
	Category     string           `json:"category"`
	CategoryName string           `json:"category_name"`
	Description  string           `json:"description"`
	Amount       decimal.Decimal  `json:"amount"`
	ChargedValue *decimal.Decimal `json:"charged_value"`
	IncurredAt   *time.Time       `json:"incurred_at"`
	CreatedAt    time.Time        `json:"created_at"`
}

// ToExpenseResponse converts a domain Expense
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		CarID:        e.CarID,
		Category:     string(e.Category),
		CategoryName: e.Category.DisplayName(),
		Description:  e.Description,
		Amount:       e.Amount,
		ChargedValue: e.ChargedValue,
		IncurredAt:   e.IncurredAt,
		CreatedAt:    e.CreatedAt,
	}
}

// RegisterSaleRequest records the sale of a car
// @Description Sale of a car
type RegisterSaleRequest struct {
	CarID         uuid.UUID           `json:"car_id" binding:"required"`
	SalePrice     valueobject.Amount  `json:"sale_price" example:"148500"`
	SaleDate      *time.Time          `json:"sale_date"`
	Commission    *valueobject.Amount `json:"commission" example:"3000"`
	PlatformID    *uuid.UUID          `json:"platform_id"`
	BuyerName     string              `json:"buyer_name" binding:"max=120" example:"Maria Souza"`
	BuyerPhone    string              `json:"buyer_phone" binding:"max=20" example:"11987654321"`
	PaymentMethod string              `json:"payment_method" binding:"omitempty,oneof=cash financing trade_in mixed" example:"financing"`
	Notes         string              `json:"notes" binding:"max=2000"`
}

// SaleListFilter narrows the sale listing. Dates are YYYY-MM-DD, both or neither.
type SaleListFilter struct {
	StartDate  string     `form:"start_date"`
	EndDate    string     `form:"end_date"`
	PlatformID *uuid.UUID `form:"-"`
	CarID      *uuid.UUID `form:"-"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID            uuid.UUID        `json:"id"`
	CarID         uuid.UUID        `json:"car_id"`
	SalePrice     decimal.Decimal  `json:"sale_price"`
	SaleDate      *time.Time       `json:"sale_date"`
	Commission    *decimal.Decimal `json:"commission"`
	PlatformID    *uuid.UUID       `json:"platform_id"`
	BuyerName     string           `json:"buyer_name"`
	BuyerPhone    string           `json:"buyer_phone"`
	PaymentMethod string           `json:"payment_method"`
	Notes         string           `json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ToSaleResponse converts a domain Sale
func ToSaleResponse(s *finance.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		CarID:         s.CarID,
		SalePrice:     s.SalePrice,
		SaleDate:      s.SaleDate,
		Commission:    s.Commission,
		PlatformID:    s.PlatformID,
		BuyerName:     s.BuyerName,
		BuyerPhone:    s.BuyerPhone,
		PaymentMethod: string(s.PaymentMethod),
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}

// PreviewProfitRequest carries the commission being edited. A nil commission
// falls back to the stored one.
type PreviewProfitRequest struct {
	Commission *valueobject.Amount `json:"commission"`
}

// SaveFinanceRequest is the finance editor form. Omitted or null fields keep
// their stored value.
// @Description Finance editor form
type SaveFinanceRequest struct {
	FipeValue      *valueobject.Amount `json:"fipe_value" example:"152000"`
	Commission     *valueobject.Amount `json:"commission" example:"3000"`
	ReturnToSeller *valueobject.Amount `json:"return_to_seller" example:"140000"`
}

// ProfitPreviewResponse is the live profit shown while editing
type ProfitPreviewResponse struct {
	CarID      uuid.UUID          `json:"car_id"`
	Commission decimal.Decimal    `json:"commission"`
	Summary    finance.CarSummary `json:"summary"`
	Profit     decimal.Decimal    `json:"profit"`
	Warnings   []string           `json:"warnings,omitempty"`
}

// CarFinanceResponse is the finance editor view of a car
type CarFinanceResponse struct {
	CarID          uuid.UUID             `json:"car_id"`
	Title          string                `json:"title"`
	Price          decimal.Decimal       `json:"price"`
	FipeValue      *decimal.Decimal      `json:"fipe_value"`
	Commission     *decimal.Decimal      `json:"commission"`
	ReturnToSeller *decimal.Decimal      `json:"return_to_seller"`
	Profit         *decimal.Decimal      `json:"profit"`
	ProfitPercent  *decimal.Decimal      `json:"profit_percent"`
	Summary        finance.CarSummary    `json:"summary"`
	PreviewProfit  decimal.Decimal       `json:"preview_profit"`
	Publications   []PublicationResponse `json:"publications"`
	Expenses       []ExpenseResponse     `json:"expenses"`
	Sale           *SaleResponse         `json:"sale"`
	Warnings       []string              `json:"warnings,omitempty"`
}
