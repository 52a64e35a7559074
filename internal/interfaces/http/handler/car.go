package handler

import (
	"context"
	"errors"
	"net/http"

	catalogapp "github.com/autenticco/backend/internal/application/catalog"
	"github.com/autenticco/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CarUseCases is the stock management surface used by CarHandler
type CarUseCases interface {
	Create(ctx context.Context, req catalogapp.CarRequest) (*catalogapp.CarResponse, error)
	Update(ctx context.Context, id uuid.UUID, req catalogapp.CarRequest) (*catalogapp.CarResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*catalogapp.CarResponse, error)
	GetPublicBySlug(ctx context.Context, slug string) (*catalogapp.PublicCarResponse, error)
	List(ctx context.Context, filter catalogapp.CarListFilter) ([]catalogapp.CarResponse, int64, error)
	ListPublic(ctx context.Context, query catalogapp.PublicCarQuery) (*catalogapp.PublicCarListResponse, error)
	MarkSold(ctx context.Context, id uuid.UUID, req catalogapp.MarkSoldRequest) (*catalogapp.CarResponse, error)
	MarkDelivered(ctx context.Context, id uuid.UUID, req catalogapp.MarkDeliveredRequest) (*catalogapp.CarResponse, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*catalogapp.CarResponse, error)
	UploadImage(ctx context.Context, id uuid.UUID, upload catalogapp.ImageUpload) (*catalogapp.CarResponse, error)
}

// CarHandler serves the stock in the back office and the storefront
type CarHandler struct {
	BaseHandler
	carService CarUseCases
}

// NewCarHandler creates a new CarHandler
func NewCarHandler(carService CarUseCases) *CarHandler {
	return &CarHandler{carService: carService}
}

// List godoc
// @Summary      List cars
// @Description  Paginated stock listing for the back office
// @Tags         cars
// @Produce      json
// @Param        search query string false "Search brand, model, version or plate"
// @Param        status query string false "Stock status" Enums(in_stock, sold, hidden, delivered)
// @Param        brand query string false "Brand"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field"
// @Param        order_dir query string false "Order direction" Enums(asc, desc)
// @Success      200 {object} dto.Response{data=[]catalogapp.CarResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars [get]
func (h *CarHandler) List(c *gin.Context) {
	var filter catalogapp.CarListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	cars, total, err := h.carService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := pageOrDefault(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, cars, total, page, pageSize)
}

// Get godoc
// @Summary      Get car
// @Description  Admin view of a car including its finance fields
// @Tags         cars
// @Produce      json
// @Param        id path string true "Car ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.CarResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars/{id} [get]
func (h *CarHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	car, err := h.carService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, car)
}

// Create godoc
// @Summary      Create car
// @Description  Add a car to the stock. The slug is derived from brand, model, version and year.
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CarRequest true "Car attributes"
// @Success      201 {object} dto.Response{data=catalogapp.CarResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	var req catalogapp.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	car, err := h.carService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, car)
}

// Update godoc
// @Summary      Update car
// @Description  Replace the descriptive attributes of a car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        id path string true "Car ID" format(uuid)
// @Param        request body catalogapp.CarRequest true "Car attributes"
// @Success      200 {object} dto.Response{data=catalogapp.CarResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars/{id} [put]
func (h *CarHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req catalogapp.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	car, err := h.carService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, car)
}

// MarkSold godoc
// @Summary      Mark car as sold
// @Description  Flag a car as sold without registering a sale. sold_at defaults to now and the body is optional.
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        id path string true "Car ID" format(uuid)
// @Param        request body catalogapp.MarkSoldRequest false "Sale date"
// @Success      200 {object} dto.Response{data=catalogapp.CarResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars/{id}/sold [post]
func (h *CarHandler) MarkSold(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req catalogapp.MarkSoldRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}
	car, err := h.carService.MarkSold(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, car)
}

// MarkDelivered godoc
// @Summary      Mark car as delivered
// @Description  Record the hand-over of a sold car. delivered_at defaults to now and the body is optional.
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        id path string true "Car ID" format(uuid)
// @Param        request body catalogapp.MarkDeliveredRequest false "Delivery date"
// @Success      200 {object} dto.Response{data=catalogapp.CarResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars/{id}/delivered [post]
func (h *CarHandler) MarkDelivered(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req catalogapp.MarkDeliveredRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}
	car, err := h.carService.MarkDelivered(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, car)
}

// SetAvailability godoc
// @Summary      Set storefront visibility
// @Description  Show or hide a car on the storefront
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        id path string true "Car ID" format(uuid)
// @Param        request body catalogapp.AvailabilityRequest true "Visibility"
// @Success      200 {object} dto.Response{data=catalogapp.CarResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars/{id}/availability [patch]
func (h *CarHandler) SetAvailability(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req catalogapp.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	car, err := h.carService.SetAvailability(c.Request.Context(), id, *req.Available)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, car)
}

// UploadImage godoc
// @Summary      Upload car photo
// @Description  Store a JPEG, PNG or WebP photo and append it to the car gallery
// @Tags         cars
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Car ID" format(uuid)
// @Param        file formData file true "Photo"
// @Success      201 {object} dto.Response{data=catalogapp.CarResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      503 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars/{id}/images [post]
func (h *CarHandler) UploadImage(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Upload exceeds the size limit")
			return
		}
		h.BadRequest(c, "Missing image file")
		return
	}
	file, err := fh.Open()
	if err != nil {
		h.BadRequest(c, "Unreadable image file")
		return
	}
	defer file.Close()

	car, err := h.carService.UploadImage(c.Request.Context(), id, catalogapp.ImageUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        file,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, car)
}

// ListPublic godoc
// @Summary      Storefront listing
// @Description  Available cars with storefront filters and the brand facet. Finance fields are never exposed.
// @Tags         public
// @Produce      json
// @Param        q query string false "Search text"
// @Param        brand query string false "Brand"
// @Param        body_type query string false "Body type" Enums(hatch, sedan, suv, pickup, minivan, coupe, convertible, wagon)
// @Param        fuel query string false "Fuel" Enums(flex, gasoline, ethanol, diesel, hybrid, electric)
// @Param        transmission query string false "Transmission" Enums(manual, automatic, cvt, automated)
// @Param        min_price query string false "Minimum price, plain or formatted as R$ 50.000,00"
// @Param        max_price query string false "Maximum price, plain or formatted as R$ 50.000,00"
// @Param        min_year query int false "Minimum model year"
// @Param        max_year query int false "Maximum model year"
// @Param        max_mileage query int false "Maximum mileage"
// @Param        featured query boolean false "Featured cars only"
// @Param        sort query string false "Sort order" Enums(recent, price_asc, price_desc, year_desc, mileage_asc) default(recent)
// @Success      200 {object} dto.Response{data=catalogapp.PublicCarListResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /public/cars [get]
func (h *CarHandler) ListPublic(c *gin.Context) {
	var query catalogapp.PublicCarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.carService.ListPublic(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetPublic godoc
// @Summary      Storefront car page
// @Description  Look up an available car by slug
// @Tags         public
// @Produce      json
// @Param        slug path string true "Car slug"
// @Success      200 {object} dto.Response{data=catalogapp.PublicCarResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /public/cars/{slug} [get]
func (h *CarHandler) GetPublic(c *gin.Context) {
	car, err := h.carService.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, car)
}
