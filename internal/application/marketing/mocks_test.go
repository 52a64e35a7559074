package marketing

import (
	"context"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockPlatformRepository struct {
	mock.Mock
}

func (m *MockPlatformRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Platform, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketing.Platform), args.Error(1)
}

func (m *MockPlatformRepository) ListAll(ctx context.Context) ([]marketing.Platform, error) {
	args := m.Called(ctx)
	return args.Get(0).([]marketing.Platform), args.Error(1)
}

func (m *MockPlatformRepository) Save(ctx context.Context, platform *marketing.Platform) error {
	return m.Called(ctx, platform).Error(0)
}

func (m *MockPlatformRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockPublicationRepository struct {
	mock.Mock
}

func (m *MockPublicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Publication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketing.Publication), args.Error(1)
}

func (m *MockPublicationRepository) ListAll(ctx context.Context, carIDs ...uuid.UUID) ([]marketing.Publication, error) {
	args := m.Called(ctx, carIDs)
	return args.Get(0).([]marketing.Publication), args.Error(1)
}

func (m *MockPublicationRepository) Save(ctx context.Context, publication *marketing.Publication) error {
	return m.Called(ctx, publication).Error(0)
}

func (m *MockPublicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPublicationRepository) CountByPlatform(ctx context.Context, platformID uuid.UUID) (int64, error) {
	args := m.Called(ctx, platformID)
	return args.Get(0).(int64), args.Error(1)
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketing.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context, filter marketing.LeadFilter) ([]marketing.Lead, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]marketing.Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadRepository) Save(ctx context.Context, lead *marketing.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketing.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) ListAll(ctx context.Context, publishedOnly bool) ([]marketing.Testimonial, error) {
	args := m.Called(ctx, publishedOnly)
	return args.Get(0).([]marketing.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) Save(ctx context.Context, t *marketing.Testimonial) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTestimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCarRepository only answers FindByID; the other methods are unused here
type MockCarRepository struct {
	mock.Mock
	catalog.CarRepository
}

func (m *MockCarRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Car), args.Error(1)
}

type MockLeadNotifier struct {
	mock.Mock
}

func (m *MockLeadNotifier) NotifyNewLead(ctx context.Context, n LeadNotification) error {
	return m.Called(ctx, n).Error(0)
}
