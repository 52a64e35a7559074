package finance

import (
	"context"
	"errors"
	"time"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/finance"
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/autenticco/backend/internal/domain/report"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/infrastructure/logger"
	"github.com/autenticco/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// SaleService registers and lists sales
type SaleService struct {
	saleRepo     finance.SaleRepository
	platformRepo marketing.PlatformRepository
	scope        TransactionScope
	loc          *time.Location
	now          func() time.Time
}

// NewSaleService creates a new SaleService. loc is the business time zone
// used to interpret date filters.
func NewSaleService(
	saleRepo finance.SaleRepository,
	platformRepo marketing.PlatformRepository,
	scope TransactionScope,
	loc *time.Location,
) *SaleService {
	if loc == nil {
		loc = time.Local
	}
	return &SaleService{
		saleRepo:     saleRepo,
		platformRepo: platformRepo,
		scope:        scope,
		loc:          loc,
		now:          time.Now,
	}
}

// List returns a page of sales
func (s *SaleService) List(ctx context.Context, f SaleListFilter) (*shared.Paginated[SaleResponse], error) {
	filter := finance.SaleFilter{
		Filter:     shared.DefaultFilter(),
		PlatformID: f.PlatformID,
		CarID:      f.CarID,
	}
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		filter.OrderBy = f.OrderBy
	}
	if f.OrderDir != "" {
		filter.OrderDir = f.OrderDir
	}
	if f.StartDate != "" || f.EndDate != "" {
		r, err := report.ParseDateRange(f.StartDate, f.EndDate, s.loc)
		if err != nil {
			return nil, err
		}
		filter.From = &r.Start
		filter.To = &r.End
	}

	sales, total, err := s.saleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]SaleResponse, len(sales))
	for i := range sales {
		items[i] = ToSaleResponse(&sales[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// RegisterSale records a sale and flags the car as sold in one transaction
func (s *SaleService) RegisterSale(ctx context.Context, req RegisterSaleRequest) (_ *SaleResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "sale", "register",
		telemetry.WithAttribute(telemetry.SpanAttrCarID, req.CarID.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if req.PlatformID != nil {
		if _, err := s.platformRepo.FindByID(ctx, *req.PlatformID); err != nil {
			return nil, invalidReference(err, "INVALID_PLATFORM", "Platform does not exist")
		}
	}

	sale, err := finance.NewSale(finance.SaleInput{
		CarID:         req.CarID,
		SalePrice:     req.SalePrice.Decimal,
		SaleDate:      req.SaleDate,
		Commission:    req.Commission.Ptr(),
		PlatformID:    req.PlatformID,
		BuyerName:     req.BuyerName,
		BuyerPhone:    req.BuyerPhone,
		PaymentMethod: finance.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, err
	}

	soldAt := s.now()
	if req.SaleDate != nil {
		soldAt = *req.SaleDate
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		car, err := repos.CarRepo().FindByID(ctx, req.CarID)
		if err != nil {
			return invalidReference(err, "INVALID_CAR", "Car does not exist")
		}
		if car.IsSold {
			return recordManualSale(ctx, repos, car, sale)
		}
		if err := car.MarkSold(soldAt); err != nil {
			return err
		}
		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}
		return repos.CarRepo().Save(ctx, car)
	})
	if err != nil {
		return nil, err
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrSaleID, sale.ID.String(),
		telemetry.SpanAttrAmount, sale.SalePrice.String(),
	)
	if sale.PlatformID != nil {
		telemetry.SetAttributes(span, telemetry.SpanAttrPlatformID, sale.PlatformID.String())
	}
	logger.L(ctx).Info("Sale registered",
		zap.String("sale_id", sale.ID.String()),
		zap.String("car_id", sale.CarID.String()),
		zap.String("sale_price", sale.SalePrice.String()),
	)
	resp := ToSaleResponse(sale)
	return &resp, nil
}

// recordManualSale attaches the first sale to a car that was marked sold by
// hand. The car keeps its sold_at, which also dates the sale when none is given.
func recordManualSale(ctx context.Context, repos TransactionalRepositories, car *catalog.Car, sale *finance.Sale) error {
	_, err := repos.SaleRepo().FindByCar(ctx, car.ID)
	switch {
	case err == nil:
		return shared.NewDomainError("CAR_ALREADY_SOLD", "Car is already sold")
	case !errors.Is(err, shared.ErrNotFound):
		return err
	}
	if sale.SaleDate == nil && car.SoldAt != nil {
		soldAt := *car.SoldAt
		sale.SaleDate = &soldAt
	}
	return repos.SaleRepo().Save(ctx, sale)
}
