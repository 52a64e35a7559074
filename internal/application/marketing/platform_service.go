package marketing

import (
	"context"

	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PlatformService manages advertising platforms
type PlatformService struct {
	platformRepo    marketing.PlatformRepository
	publicationRepo marketing.PublicationRepository
}

// NewPlatformService creates a new PlatformService
func NewPlatformService(platformRepo marketing.PlatformRepository, publicationRepo marketing.PublicationRepository) *PlatformService {
	return &PlatformService{
		platformRepo:    platformRepo,
		publicationRepo: publicationRepo,
	}
}

// List returns all platforms
func (s *PlatformService) List(ctx context.Context) ([]PlatformResponse, error) {
	platforms, err := s.platformRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PlatformResponse, len(platforms))
	for i := range platforms {
		out[i] = ToPlatformResponse(&platforms[i])
	}
	return out, nil
}

// Create adds a platform
func (s *PlatformService) Create(ctx context.Context, req PlatformRequest) (*PlatformResponse, error) {
	platform, err := marketing.NewPlatform(req.Name, marketing.PlatformType(req.Type))
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		platform.IsActive = *req.IsActive
	}
	if err := s.platformRepo.Save(ctx, platform); err != nil {
		return nil, err
	}
	resp := ToPlatformResponse(platform)
	return &resp, nil
}

// Update renames or reclassifies a platform
func (s *PlatformService) Update(ctx context.Context, id uuid.UUID, req PlatformRequest) (*PlatformResponse, error) {
	platform, err := s.platformRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := platform.Rename(req.Name, marketing.PlatformType(req.Type)); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		platform.IsActive = *req.IsActive
	}
	if err := s.platformRepo.Save(ctx, platform); err != nil {
		return nil, err
	}
	resp := ToPlatformResponse(platform)
	return &resp, nil
}

// Delete removes a platform that no publication references
func (s *PlatformService) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.publicationRepo.CountByPlatform(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("PLATFORM_IN_USE", "Platform has publications; deactivate it instead")
	}
	return s.platformRepo.Delete(ctx, id)
}
