package marketing

import (
	"strings"
	"unicode"

	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LeadSource tells which storefront form produced the lead
type LeadSource string

const (
	LeadSourceContact   LeadSource = "contact"
	LeadSourceCar       LeadSource = "car_interest"
	LeadSourceFinancing LeadSource = "financing"
	LeadSourceTradeIn   LeadSource = "trade_in"
	LeadSourceSellCar   LeadSource = "sell_your_car"
	LeadSourceWhatsApp  LeadSource = "whatsapp"
)

// IsValid checks the source value
func (s LeadSource) IsValid() bool {
	switch s {
	case LeadSourceContact, LeadSourceCar, LeadSourceFinancing, LeadSourceTradeIn, LeadSourceSellCar, LeadSourceWhatsApp:
		return true
	}
	return false
}

// LeadStatus follows new -> contacted -> converted | lost
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

// IsValid checks the status value
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadConverted, LeadLost:
		return true
	}
	return false
}

// IsFinal reports whether no further transition is allowed
func (s LeadStatus) IsFinal() bool {
	return s == LeadConverted || s == LeadLost
}

// Lead is a prospective buyer (or seller) contact captured by the storefront
type Lead struct {
	shared.BaseEntity
	Name    string
	Phone   string
	Email   string
	Message string
	CarID   *uuid.UUID
	Source  LeadSource
	Status  LeadStatus
	Notes   string
}

// LeadInput is the public contact form payload
type LeadInput struct {
	Name    string
	Phone   string
	Email   string
	Message string
	CarID   *uuid.UUID
	Source  LeadSource
}

// NewLead validates and creates a lead in the new state
func NewLead(in LeadInput) (*Lead, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_LEAD", "Name is required")
	}
	phone := NormalizePhone(in.Phone)
	if len(phone) < 10 || len(phone) > 13 {
		return nil, shared.NewDomainError("INVALID_LEAD", "A valid phone number with area code is required")
	}
	source := in.Source
	if source == "" {
		source = LeadSourceContact
		if in.CarID != nil {
			source = LeadSourceCar
		}
	}
	if !source.IsValid() {
		return nil, shared.NewDomainError("INVALID_LEAD", "Unknown lead source")
	}
	return &Lead{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Phone:      phone,
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Message:    strings.TrimSpace(in.Message),
		CarID:      in.CarID,
		Source:     source,
		Status:     LeadNew,
	}, nil
}

// TransitionTo moves the lead forward. Converted and lost leads are final.
func (l *Lead) TransitionTo(status LeadStatus, notes string) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown lead status")
	}
	if l.Status.IsFinal() {
		return shared.NewDomainError("INVALID_STATE", "Lead is already closed")
	}
	if status == LeadNew {
		return shared.NewDomainError("INVALID_STATE", "Lead cannot return to new")
	}
	l.Status = status
	if notes != "" {
		l.Notes = notes
	}
	l.Touch()
	return nil
}

// NormalizePhone keeps digits only
func NormalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
