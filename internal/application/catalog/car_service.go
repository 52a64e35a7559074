package catalog

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AllowedImageTypes maps accepted photo content types to file extensions
var AllowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// DefaultMaxImageSize caps photo uploads when no limit is configured
const DefaultMaxImageSize int64 = 10 << 20

// ImageStorage stores car photos and returns their public URL.
// Implemented by the S3 adapter in infrastructure/storage.
type ImageStorage interface {
	PutObject(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// ImageUpload is one photo file received from the admin
type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// CarService handles the car catalogue
type CarService struct {
	carRepo      catalog.CarRepository
	storage      ImageStorage
	maxImageSize int64
	now          func() time.Time
}

// NewCarService creates a new CarService. storage may be nil when uploads are disabled.
func NewCarService(carRepo catalog.CarRepository, storage ImageStorage, maxImageSize int64) *CarService {
	if maxImageSize <= 0 {
		maxImageSize = DefaultMaxImageSize
	}
	return &CarService{
		carRepo:      carRepo,
		storage:      storage,
		maxImageSize: maxImageSize,
		now:          time.Now,
	}
}

// Create registers a new car in stock
func (s *CarService) Create(ctx context.Context, req CarRequest) (*CarResponse, error) {
	car, err := catalog.NewCar(req.toInput())
	if err != nil {
		return nil, err
	}
	if err := s.carRepo.Save(ctx, car); err != nil {
		return nil, err
	}
	resp := ToCarResponse(car)
	return &resp, nil
}

// Update replaces the descriptive attributes of a car
func (s *CarService) Update(ctx context.Context, id uuid.UUID, req CarRequest) (*CarResponse, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := car.Update(req.toInput()); err != nil {
		return nil, err
	}
	if err := s.carRepo.Save(ctx, car); err != nil {
		return nil, err
	}
	resp := ToCarResponse(car)
	return &resp, nil
}

// GetByID returns the admin view of a car
func (s *CarService) GetByID(ctx context.Context, id uuid.UUID) (*CarResponse, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCarResponse(car)
	return &resp, nil
}

// GetPublicBySlug returns a storefront car. Sold or hidden cars are not found.
func (s *CarService) GetPublicBySlug(ctx context.Context, slug string) (*PublicCarResponse, error) {
	car, err := s.carRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !car.InStock() {
		return nil, shared.ErrNotFound
	}
	resp := ToPublicCarResponse(car)
	return &resp, nil
}

// List returns one page of the admin listing
func (s *CarService) List(ctx context.Context, filter CarListFilter) ([]CarResponse, int64, error) {
	domainFilter := catalog.CarFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
			Search:   filter.Search,
		},
		Status: catalog.StockStatus(filter.Status),
		Brand:  filter.Brand,
	}
	if domainFilter.Page == 0 {
		domainFilter.Page = 1
	}
	if domainFilter.PageSize == 0 {
		domainFilter.PageSize = shared.DefaultFilter().PageSize
	}

	cars, total, err := s.carRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]CarResponse, len(cars))
	for i := range cars {
		out[i] = ToCarResponse(&cars[i])
	}
	return out, total, nil
}

// ListPublic filters the available fleet in memory
func (s *CarService) ListPublic(ctx context.Context, query PublicCarQuery) (*PublicCarListResponse, error) {
	cars, err := s.carRepo.ListInStock(ctx)
	if err != nil {
		return nil, err
	}

	matched := query.toFilter().Apply(cars)
	resp := &PublicCarListResponse{
		Cars:   make([]PublicCarResponse, len(matched)),
		Brands: catalog.Brands(cars),
		Total:  len(matched),
	}
	if resp.Brands == nil {
		resp.Brands = []string{}
	}
	for i := range matched {
		resp.Cars[i] = ToPublicCarResponse(&matched[i])
	}
	return resp, nil
}

// MarkSold flags a car as sold outside of a registered sale
func (s *CarService) MarkSold(ctx context.Context, id uuid.UUID, req MarkSoldRequest) (*CarResponse, error) {
	at := s.now()
	if req.SoldAt != nil {
		at = *req.SoldAt
	}
	return s.mutate(ctx, id, func(car *catalog.Car) error { return car.MarkSold(at) })
}

// MarkDelivered records that the buyer took the car
func (s *CarService) MarkDelivered(ctx context.Context, id uuid.UUID, req MarkDeliveredRequest) (*CarResponse, error) {
	at := s.now()
	if req.DeliveredAt != nil {
		at = *req.DeliveredAt
	}
	return s.mutate(ctx, id, func(car *catalog.Car) error { return car.MarkDelivered(at) })
}

// SetAvailability shows or hides a car in the storefront
func (s *CarService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*CarResponse, error) {
	return s.mutate(ctx, id, func(car *catalog.Car) error { return car.SetAvailability(available) })
}

// UploadImage stores a photo and appends its URL to the car
func (s *CarService) UploadImage(ctx context.Context, id uuid.UUID, upload ImageUpload) (*CarResponse, error) {
	if s.storage == nil {
		return nil, shared.NewDomainError("UNAVAILABLE", "Image storage is not configured")
	}
	contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
	ext, ok := AllowedImageTypes[contentType]
	if !ok {
		return nil, shared.NewDomainError("INVALID_FILE_TYPE", "Only JPEG, PNG and WebP images are accepted")
	}
	if upload.Size <= 0 || upload.Size > s.maxImageSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", fmt.Sprintf("Images must be between 1 byte and %d bytes", s.maxImageSize))
	}

	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fileExt := strings.ToLower(filepath.Ext(upload.FileName)); fileExt == ".jpeg" {
		ext = fileExt
	}
	key := fmt.Sprintf("cars/%s/%s%s", car.ID, uuid.New(), ext)
	url, err := s.storage.PutObject(ctx, key, contentType, upload.Body, upload.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	car.AddImage(url)
	if err := s.carRepo.Save(ctx, car); err != nil {
		return nil, err
	}
	resp := ToCarResponse(car)
	return &resp, nil
}

func (s *CarService) mutate(ctx context.Context, id uuid.UUID, fn func(*catalog.Car) error) (*CarResponse, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(car); err != nil {
		return nil, err
	}
	if err := s.carRepo.Save(ctx, car); err != nil {
		return nil, err
	}
	resp := ToCarResponse(car)
	return &resp, nil
}
