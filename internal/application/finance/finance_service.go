package finance

import (
	"context"
	"errors"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/finance"
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/infrastructure/logger"
	"github.com/autenticco/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FinanceService backs the per-car finance editor
type FinanceService struct {
	carRepo         catalog.CarRepository
	platformRepo    marketing.PlatformRepository
	publicationRepo marketing.PublicationRepository
	expenseRepo     finance.ExpenseRepository
	saleRepo        finance.SaleRepository
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(
	carRepo catalog.CarRepository,
	platformRepo marketing.PlatformRepository,
	publicationRepo marketing.PublicationRepository,
	expenseRepo finance.ExpenseRepository,
	saleRepo finance.SaleRepository,
) *FinanceService {
	return &FinanceService{
		carRepo:         carRepo,
		platformRepo:    platformRepo,
		publicationRepo: publicationRepo,
		expenseRepo:     expenseRepo,
		saleRepo:        saleRepo,
	}
}

// carInputs are the records that feed one car's summary
type carInputs struct {
	publications []marketing.Publication
	expenses     []finance.Expense
	platforms    marketing.PlatformIndex
	warnings     []string
}

func (in carInputs) summary(carID uuid.UUID) finance.CarSummary {
	return finance.Summarize(carID, in.publications, in.expenses, in.platforms)
}

// loadInputs reads the car's publications, expenses and the platform table.
// In lenient mode a failed read becomes an empty collection plus a warning;
// otherwise the first error is returned.
func (s *FinanceService) loadInputs(ctx context.Context, carID uuid.UUID, lenient bool) (carInputs, error) {
	var in carInputs
	degrade := func(what string, err error) error {
		if !lenient {
			return err
		}
		logger.L(ctx).Warn("Finance read degraded to empty", zap.String("collection", what), zap.Error(err))
		in.warnings = append(in.warnings, what+" unavailable")
		return nil
	}

	platforms, err := s.platformRepo.ListAll(ctx)
	if err != nil {
		if err := degrade("platforms", err); err != nil {
			return in, err
		}
	}
	in.platforms = marketing.NewPlatformIndex(platforms)

	in.publications, err = s.publicationRepo.ListAll(ctx, carID)
	if err != nil {
		if err := degrade("publications", err); err != nil {
			return in, err
		}
		in.publications = nil
	}

	in.expenses, err = s.expenseRepo.ListAll(ctx, carID)
	if err != nil {
		if err := degrade("expenses", err); err != nil {
			return in, err
		}
		in.expenses = nil
	}
	return in, nil
}

// GetCarFinance returns the finance editor view of a car
func (s *FinanceService) GetCarFinance(ctx context.Context, carID uuid.UUID) (*CarFinanceResponse, error) {
	car, err := s.carRepo.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	in, err := s.loadInputs(ctx, carID, true)
	if err != nil {
		return nil, err
	}

	summary := in.summary(carID)
	resp := &CarFinanceResponse{
		CarID:          car.ID,
		Title:          car.Title(),
		Price:          car.Price,
		FipeValue:      car.FipeValue,
		Commission:     car.Commission,
		ReturnToSeller: car.ReturnToSeller,
		Profit:         car.Profit,
		ProfitPercent:  car.ProfitPercent,
		Summary:        summary,
		PreviewProfit:  finance.ComputeProfit(car.CommissionOrZero(), summary),
		Publications:   make([]PublicationResponse, len(in.publications)),
		Expenses:       make([]ExpenseResponse, len(in.expenses)),
		Warnings:       in.warnings,
	}
	for i := range in.publications {
		resp.Publications[i] = ToPublicationResponse(&in.publications[i])
	}
	for i := range in.expenses {
		resp.Expenses[i] = ToExpenseResponse(&in.expenses[i])
	}

	sale, err := s.saleRepo.FindByCar(ctx, carID)
	switch {
	case err == nil:
		saleResp := ToSaleResponse(sale)
		resp.Sale = &saleResp
	case errors.Is(err, shared.ErrNotFound):
	default:
		logger.L(ctx).Warn("Sale read degraded to empty", zap.Error(err))
		resp.Warnings = append(resp.Warnings, "sale unavailable")
	}
	return resp, nil
}

// PreviewProfit computes the profit for an edited commission without saving
func (s *FinanceService) PreviewProfit(ctx context.Context, carID uuid.UUID, req PreviewProfitRequest) (*ProfitPreviewResponse, error) {
	car, err := s.carRepo.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	in, err := s.loadInputs(ctx, carID, true)
	if err != nil {
		return nil, err
	}

	commission := finance.ResolveCommission(req.Commission.Ptr(), car.Commission)
	summary := in.summary(carID)
	return &ProfitPreviewResponse{
		CarID:      carID,
		Commission: commission,
		Summary:    summary,
		Profit:     finance.ComputeProfit(commission, summary),
		Warnings:   in.warnings,
	}, nil
}

// SaveFinance recomputes the profit with the same formula as the preview and
// persists the finance fields. profit_percent is always cleared. When the
// store fails the error is returned and nothing is reported as saved.
func (s *FinanceService) SaveFinance(ctx context.Context, carID uuid.UUID, req SaveFinanceRequest) (_ *CarFinanceResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "finance", "save",
		telemetry.WithAttribute(telemetry.SpanAttrCarID, carID.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	car, err := s.carRepo.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	// a profit built on a partial read would be persisted, so reads are strict here
	in, err := s.loadInputs(ctx, carID, false)
	if err != nil {
		return nil, err
	}

	patch := catalog.FinancePatch{
		FipeValue:      keepOrReplace(req.FipeValue.Ptr(), car.FipeValue),
		Commission:     keepOrReplace(req.Commission.Ptr(), car.Commission),
		ReturnToSeller: keepOrReplace(req.ReturnToSeller.Ptr(), car.ReturnToSeller),
	}
	summary := in.summary(carID)
	patch.Profit = finance.ComputeProfit(finance.ResolveCommission(req.Commission.Ptr(), car.Commission), summary)

	if err := s.carRepo.UpdateFinance(ctx, carID, patch); err != nil {
		logger.L(ctx).Error("Finance save failed", zap.String("car_id", carID.String()), zap.Error(err))
		return nil, err
	}

	patch.ApplyTo(car)
	return &CarFinanceResponse{
		CarID:          car.ID,
		Title:          car.Title(),
		Price:          car.Price,
		FipeValue:      car.FipeValue,
		Commission:     car.Commission,
		ReturnToSeller: car.ReturnToSeller,
		Profit:         car.Profit,
		ProfitPercent:  car.ProfitPercent,
		Summary:        summary,
		PreviewProfit:  patch.Profit,
		Publications:   []PublicationResponse{},
		Expenses:       []ExpenseResponse{},
	}, nil
}

func keepOrReplace[T any](edited, stored *T) *T {
	if edited != nil {
		return edited
	}
	return stored
}
