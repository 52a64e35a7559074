package finance

import (
	"context"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PublicationService manages the ads placed for each car
type PublicationService struct {
	publicationRepo marketing.PublicationRepository
	platformRepo    marketing.PlatformRepository
	carRepo         catalog.CarRepository
}

// NewPublicationService creates a new PublicationService
func NewPublicationService(
	publicationRepo marketing.PublicationRepository,
	platformRepo marketing.PlatformRepository,
	carRepo catalog.CarRepository,
) *PublicationService {
	return &PublicationService{
		publicationRepo: publicationRepo,
		platformRepo:    platformRepo,
		carRepo:         carRepo,
	}
}

// List returns publications, narrowed to carIDs when given
func (s *PublicationService) List(ctx context.Context, carIDs ...uuid.UUID) ([]PublicationResponse, error) {
	pubs, err := s.publicationRepo.ListAll(ctx, carIDs...)
	if err != nil {
		return nil, err
	}
	out := make([]PublicationResponse, len(pubs))
	for i := range pubs {
		out[i] = ToPublicationResponse(&pubs[i])
	}
	return out, nil
}

// Create registers a publication. The car must exist; the platform, when
// given, must exist at creation time.
func (s *PublicationService) Create(ctx context.Context, req CreatePublicationRequest) (*PublicationResponse, error) {
	if _, err := s.carRepo.FindByID(ctx, req.CarID); err != nil {
		return nil, invalidReference(err, "INVALID_CAR", "Car does not exist")
	}
	if req.PlatformID != nil {
		if _, err := s.platformRepo.FindByID(ctx, *req.PlatformID); err != nil {
			return nil, invalidReference(err, "INVALID_PLATFORM", "Platform does not exist")
		}
	}

	pub, err := marketing.NewPublication(req.CarID, req.PlatformID, req.Spent.Decimal, req.PublishedAt)
	if err != nil {
		return nil, err
	}
	if req.Status != "" {
		pub.Status = marketing.PublicationStatus(req.Status)
	}
	pub.URL = req.URL
	pub.Notes = req.Notes

	if err := s.publicationRepo.Save(ctx, pub); err != nil {
		return nil, err
	}
	resp := ToPublicationResponse(pub)
	return &resp, nil
}

// Delete removes a publication
func (s *PublicationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.publicationRepo.Delete(ctx, id)
}

// invalidReference turns a not-found lookup of a referenced record into a
// validation error. Other errors pass through.
func invalidReference(err error, code, message string) error {
	if err == nil {
		return nil
	}
	if de, ok := shared.AsDomainError(err); ok && de.Code == shared.ErrNotFound.Code {
		return shared.NewDomainError(code, message)
	}
	return err
}
