package marketing

import (
	"context"
	"errors"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LeadNotification is what the sales team is told about a new lead
type LeadNotification struct {
	Lead     *marketing.Lead
	CarTitle string
	CarSlug  string
}

// LeadNotifier pushes new leads to the sales team
type LeadNotifier interface {
	NotifyNewLead(ctx context.Context, n LeadNotification) error
}

// NoopNotifier discards notifications
type NoopNotifier struct{}

// NotifyNewLead implements LeadNotifier
func (NoopNotifier) NotifyNewLead(context.Context, LeadNotification) error { return nil }

// LeadService handles storefront leads
type LeadService struct {
	leadRepo marketing.LeadRepository
	carRepo  catalog.CarRepository
	notifier LeadNotifier
}

// NewLeadService creates a new LeadService. A nil notifier disables notifications.
func NewLeadService(leadRepo marketing.LeadRepository, carRepo catalog.CarRepository, notifier LeadNotifier) *LeadService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &LeadService{
		leadRepo: leadRepo,
		carRepo:  carRepo,
		notifier: notifier,
	}
}

// Submit records a lead from the public site and notifies the sales team.
// Notification failures are logged only.
func (s *LeadService) Submit(ctx context.Context, req SubmitLeadRequest) (*LeadResponse, error) {
	note := LeadNotification{}
	if req.CarID != nil {
		car, err := s.carRepo.FindByID(ctx, *req.CarID)
		switch {
		case err == nil:
			note.CarTitle = car.Title()
			note.CarSlug = car.Slug
		case errors.Is(err, shared.ErrNotFound):
			return nil, shared.NewDomainError("INVALID_CAR", "Car not found")
		default:
			return nil, err
		}
	}

	lead, err := marketing.NewLead(marketing.LeadInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
		CarID:   req.CarID,
		Source:  marketing.LeadSource(req.Source),
	})
	if err != nil {
		return nil, err
	}
	if err := s.leadRepo.Save(ctx, lead); err != nil {
		return nil, err
	}

	note.Lead = lead
	if err := s.notifier.NotifyNewLead(ctx, note); err != nil {
		logger.L(ctx).Warn("Lead notification failed",
			zap.String("lead_id", lead.ID.String()),
			zap.Error(err),
		)
	}

	resp := ToLeadResponse(lead)
	return &resp, nil
}

// List returns one page of the lead inbox
func (s *LeadService) List(ctx context.Context, filter LeadListFilter) ([]LeadResponse, int64, error) {
	domainFilter := marketing.LeadFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
			Search:   filter.Search,
		},
		Status: marketing.LeadStatus(filter.Status),
		Source: marketing.LeadSource(filter.Source),
		CarID:  filter.CarID,
	}
	if domainFilter.Page == 0 {
		domainFilter.Page = 1
	}
	if domainFilter.PageSize == 0 {
		domainFilter.PageSize = shared.DefaultFilter().PageSize
	}

	leads, total, err := s.leadRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]LeadResponse, len(leads))
	for i := range leads {
		out[i] = ToLeadResponse(&leads[i])
	}
	return out, total, nil
}

// UpdateStatus moves a lead through new, contacted, converted or lost
func (s *LeadService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateLeadStatusRequest) (*LeadResponse, error) {
	lead, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lead.TransitionTo(marketing.LeadStatus(req.Status), req.Notes); err != nil {
		return nil, err
	}
	if err := s.leadRepo.Save(ctx, lead); err != nil {
		return nil, err
	}
	resp := ToLeadResponse(lead)
	return &resp, nil
}
