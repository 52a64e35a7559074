package marketing

import (
	"context"

	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/google/uuid"
)

// TestimonialService handles customer testimonials
type TestimonialService struct {
	repo marketing.TestimonialRepository
}

// NewTestimonialService creates a new TestimonialService
func NewTestimonialService(repo marketing.TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

// ListPublished returns testimonials visible on the storefront
func (s *TestimonialService) ListPublished(ctx context.Context) ([]TestimonialResponse, error) {
	return s.list(ctx, true)
}

// ListAll returns every testimonial for moderation
func (s *TestimonialService) ListAll(ctx context.Context) ([]TestimonialResponse, error) {
	return s.list(ctx, false)
}

func (s *TestimonialService) list(ctx context.Context, publishedOnly bool) ([]TestimonialResponse, error) {
	items, err := s.repo.ListAll(ctx, publishedOnly)
	if err != nil {
		return nil, err
	}
	out := make([]TestimonialResponse, len(items))
	for i := range items {
		out[i] = ToTestimonialResponse(&items[i])
	}
	return out, nil
}

// Submit stores a testimonial awaiting moderation
func (s *TestimonialService) Submit(ctx context.Context, req SubmitTestimonialRequest) (*TestimonialResponse, error) {
	t, err := marketing.NewTestimonial(req.CustomerName, req.City, req.CarLabel, req.Text, req.Rating)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	resp := ToTestimonialResponse(t)
	return &resp, nil
}

// Publish makes a testimonial visible
func (s *TestimonialService) Publish(ctx context.Context, id uuid.UUID) (*TestimonialResponse, error) {
	return s.setPublished(ctx, id, true)
}

// Unpublish hides a testimonial
func (s *TestimonialService) Unpublish(ctx context.Context, id uuid.UUID) (*TestimonialResponse, error) {
	return s.setPublished(ctx, id, false)
}

func (s *TestimonialService) setPublished(ctx context.Context, id uuid.UUID, published bool) (*TestimonialResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if published {
		t.Publish()
	} else {
		t.Unpublish()
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	resp := ToTestimonialResponse(t)
	return &resp, nil
}

// Delete removes a testimonial
func (s *TestimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
