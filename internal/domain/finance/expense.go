package finance

import (
	"strings"
	"time"

	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory groups per-car costs
type ExpenseCategory string

const (
	ExpenseMechanical    ExpenseCategory = "mechanical"
	ExpenseBodywork      ExpenseCategory = "bodywork"
	ExpenseDetailing     ExpenseCategory = "detailing"
	ExpenseDocumentation ExpenseCategory = "documentation"
	ExpenseTires         ExpenseCategory = "tires"
	ExpenseTransport     ExpenseCategory = "transport"
	ExpenseInspection    ExpenseCategory = "inspection"
	ExpenseOther         ExpenseCategory = "other"
)

// IsValid checks the category value
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseMechanical, ExpenseBodywork, ExpenseDetailing, ExpenseDocumentation,
		ExpenseTires, ExpenseTransport, ExpenseInspection, ExpenseOther:
		return true
	}
	return false
}

// DisplayName returns the pt-BR label
func (c ExpenseCategory) DisplayName() string {
	switch c {
	case ExpenseMechanical:
		return "Mecânica"
	case ExpenseBodywork:
		return "Funilaria e pintura"
	case ExpenseDetailing:
		return "Estética"
	case ExpenseDocumentation:
		return "Documentação"
	case ExpenseTires:
		return "Pneus"
	case ExpenseTransport:
		return "Transporte"
	case ExpenseInspection:
		return "Vistoria"
	default:
		return "Outros"
	}
}

// Expense is a cost incurred on a car. ChargedValue is what the dealership
// passed on to the buyer or seller for it, when anything.
type Expense struct {
	shared.BaseEntity
	CarID        uuid.UUID
	Category     ExpenseCategory
	Description  string
	Amount       decimal.Decimal
	ChargedValue *decimal.Decimal
	IncurredAt   *time.Time
}

// ExpenseInput is the payload to register an expense
type ExpenseInput struct {
	CarID        uuid.UUID
	Category     ExpenseCategory
	Description  string
	Amount       decimal.Decimal
	ChargedValue *decimal.Decimal
	IncurredAt   *time.Time
}

// NewExpense validates and creates an expense
func NewExpense(in ExpenseInput) (*Expense, error) {
	if in.CarID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EXPENSE", "Car is required")
	}
	if in.Amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
	}
	category := in.Category
	if category == "" {
		category = ExpenseOther
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_EXPENSE", "Unknown expense category")
	}
	return &Expense{
		BaseEntity:   shared.NewBaseEntity(),
		CarID:        in.CarID,
		Category:     category,
		Description:  strings.TrimSpace(in.Description),
		Amount:       in.Amount,
		ChargedValue: in.ChargedValue,
		IncurredAt:   in.IncurredAt,
	}, nil
}

// Charged returns the charged value when positive, otherwise zero
func (e *Expense) Charged() decimal.Decimal {
	if e.ChargedValue == nil || !e.ChargedValue.IsPositive() {
		return decimal.Zero
	}
	return *e.ChargedValue
}

// EffectiveDate is incurred_at, falling back to created_at
func (e *Expense) EffectiveDate() *time.Time {
	if e.IncurredAt != nil {
		return e.IncurredAt
	}
	if e.CreatedAt.IsZero() {
		return nil
	}
	t := e.CreatedAt
	return &t
}
