package finance

import (
	"context"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/finance"
	"github.com/google/uuid"
)

// ExpenseService manages per-car costs
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
	carRepo     catalog.CarRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository, carRepo catalog.CarRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, carRepo: carRepo}
}

// List returns expenses, narrowed to carIDs when given
func (s *ExpenseService) List(ctx context.Context, carIDs ...uuid.UUID) ([]ExpenseResponse, error) {
	exps, err := s.expenseRepo.ListAll(ctx, carIDs...)
	if err != nil {
		return nil, err
	}
	out := make([]ExpenseResponse, len(exps))
	for i := range exps {
		out[i] = ToExpenseResponse(&exps[i])
	}
	return out, nil
}

// Create registers an expense for an existing car
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	if _, err := s.carRepo.FindByID(ctx, req.CarID); err != nil {
		return nil, invalidReference(err, "INVALID_CAR", "Car does not exist")
	}
	exp, err := finance.NewExpense(finance.ExpenseInput{
		CarID:        req.CarID,
		Category:     finance.ExpenseCategory(req.Category),
		Description:  req.Description,
		Amount:       req.Amount.Decimal,
		ChargedValue: req.ChargedValue.Ptr(),
		IncurredAt:   req.IncurredAt,
	})
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, exp); err != nil {
		return nil, err
	}
	resp := ToExpenseResponse(exp)
	return &resp, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.expenseRepo.Delete(ctx, id)
}
