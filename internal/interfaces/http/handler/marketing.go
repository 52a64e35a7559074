package handler

import (
	"context"

	marketingapp "github.com/autenticco/backend/internal/application/marketing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlatformUseCases manages the advertising platforms
type PlatformUseCases interface {
	List(ctx context.Context) ([]marketingapp.PlatformResponse, error)
	Create(ctx context.Context, req marketingapp.PlatformRequest) (*marketingapp.PlatformResponse, error)
	Update(ctx context.Context, id uuid.UUID, req marketingapp.PlatformRequest) (*marketingapp.PlatformResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LeadUseCases receives storefront contacts and manages the inbox
type LeadUseCases interface {
	Submit(ctx context.Context, req marketingapp.SubmitLeadRequest) (*marketingapp.LeadResponse, error)
	List(ctx context.Context, filter marketingapp.LeadListFilter) ([]marketingapp.LeadResponse, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req marketingapp.UpdateLeadStatusRequest) (*marketingapp.LeadResponse, error)
}

// TestimonialUseCases moderates customer reviews
type TestimonialUseCases interface {
	ListPublished(ctx context.Context) ([]marketingapp.TestimonialResponse, error)
	ListAll(ctx context.Context) ([]marketingapp.TestimonialResponse, error)
	Submit(ctx context.Context, req marketingapp.SubmitTestimonialRequest) (*marketingapp.TestimonialResponse, error)
	Publish(ctx context.Context, id uuid.UUID) (*marketingapp.TestimonialResponse, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*marketingapp.TestimonialResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MarketingHandler serves platforms, leads and testimonials
type MarketingHandler struct {
	BaseHandler
	platformService    PlatformUseCases
	leadService        LeadUseCases
	testimonialService TestimonialUseCases
}

// NewMarketingHandler creates a new MarketingHandler
func NewMarketingHandler(platforms PlatformUseCases, leads LeadUseCases, testimonials TestimonialUseCases) *MarketingHandler {
	return &MarketingHandler{
		platformService:    platforms,
		leadService:        leads,
		testimonialService: testimonials,
	}
}

// ListPlatforms godoc
// @Summary      List platforms
// @Description  Advertising platforms
// @Tags         platforms
// @Produce      json
// @Success      200 {object} dto.Response{data=[]marketingapp.PlatformResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /platforms [get]
func (h *MarketingHandler) ListPlatforms(c *gin.Context) {
	items, err := h.platformService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// CreatePlatform godoc
// @Summary      Create platform
// @Description  Only marketplace spend counts as ad cost; other types count as social posts.
// @Tags         platforms
// @Accept       json
// @Produce      json
// @Param        request body marketingapp.PlatformRequest true "Platform"
// @Success      201 {object} dto.Response{data=marketingapp.PlatformResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /platforms [post]
func (h *MarketingHandler) CreatePlatform(c *gin.Context) {
	var req marketingapp.PlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.platformService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdatePlatform godoc
// @Summary      Update platform
// @Description  Rename, retype or toggle a platform
// @Tags         platforms
// @Accept       json
// @Produce      json
// @Param        id path string true "Platform ID" format(uuid)
// @Param        request body marketingapp.PlatformRequest true "Platform"
// @Success      200 {object} dto.Response{data=marketingapp.PlatformResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /platforms/{id} [put]
func (h *MarketingHandler) UpdatePlatform(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req marketingapp.PlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.platformService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeletePlatform godoc
// @Summary      Delete platform
// @Description  Platforms referenced by publications cannot be deleted
// @Tags         platforms
// @Produce      json
// @Param        id path string true "Platform ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /platforms/{id} [delete]
func (h *MarketingHandler) DeletePlatform(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	if err := h.platformService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// SubmitLead godoc
// @Summary      Submit lead
// @Description  Storefront contact form. Submissions are rate limited per client IP.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        request body marketingapp.SubmitLeadRequest true "Contact"
// @Success      201 {object} dto.Response{data=marketingapp.LeadResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      429 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /public/leads [post]
func (h *MarketingHandler) SubmitLead(c *gin.Context) {
	var req marketingapp.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.leadService.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListLeads godoc
// @Summary      List leads
// @Description  Paginated lead inbox
// @Tags         leads
// @Produce      json
// @Param        search query string false "Search name, phone or email"
// @Param        status query string false "Lead status" Enums(new, contacted, converted, lost)
// @Param        source query string false "Lead source"
// @Param        car_id query string false "Only records of this car" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field"
// @Param        order_dir query string false "Order direction" Enums(asc, desc)
// @Success      200 {object} dto.Response{data=[]marketingapp.LeadResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /leads [get]
func (h *MarketingHandler) ListLeads(c *gin.Context) {
	var filter marketingapp.LeadListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	var ok bool
	if filter.CarID, ok = h.queryUUID(c, "car_id"); !ok {
		return
	}

	leads, total, err := h.leadService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := pageOrDefault(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, leads, total, page, pageSize)
}

// UpdateLeadStatus godoc
// @Summary      Update lead status
// @Description  Move a lead through the inbox workflow
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id path string true "Lead ID" format(uuid)
// @Param        request body marketingapp.UpdateLeadStatusRequest true "Status"
// @Success      200 {object} dto.Response{data=marketingapp.LeadResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /leads/{id}/status [patch]
func (h *MarketingHandler) UpdateLeadStatus(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req marketingapp.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.leadService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListPublishedTestimonials godoc
// @Summary      Published testimonials
// @Description  Reviews approved for the storefront
// @Tags         public
// @Produce      json
// @Success      200 {object} dto.Response{data=[]marketingapp.TestimonialResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /public/testimonials [get]
func (h *MarketingHandler) ListPublishedTestimonials(c *gin.Context) {
	items, err := h.testimonialService.ListPublished(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// SubmitTestimonial godoc
// @Summary      Submit testimonial
// @Description  Public review form. Submissions wait for moderation.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        request body marketingapp.SubmitTestimonialRequest true "Review"
// @Success      201 {object} dto.Response{data=marketingapp.TestimonialResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      429 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /public/testimonials [post]
func (h *MarketingHandler) SubmitTestimonial(c *gin.Context) {
	var req marketingapp.SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.testimonialService.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListTestimonials godoc
// @Summary      List testimonials
// @Description  All reviews, published or not
// @Tags         testimonials
// @Produce      json
// @Success      200 {object} dto.Response{data=[]marketingapp.TestimonialResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /testimonials [get]
func (h *MarketingHandler) ListTestimonials(c *gin.Context) {
	items, err := h.testimonialService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// PublishTestimonial godoc
// @Summary      Publish testimonial
// @Description  Show a review on the storefront
// @Tags         testimonials
// @Produce      json
// @Param        id path string true "Testimonial ID" format(uuid)
// @Success      200 {object} dto.Response{data=marketingapp.TestimonialResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /testimonials/{id}/publish [post]
func (h *MarketingHandler) PublishTestimonial(c *gin.Context) {
	h.moderate(c, h.testimonialService.Publish)
}

// UnpublishTestimonial godoc
// @Summary      Unpublish testimonial
// @Description  Hide a review from the storefront
// @Tags         testimonials
// @Produce      json
// @Param        id path string true "Testimonial ID" format(uuid)
// @Success      200 {object} dto.Response{data=marketingapp.TestimonialResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /testimonials/{id}/unpublish [post]
func (h *MarketingHandler) UnpublishTestimonial(c *gin.Context) {
	h.moderate(c, h.testimonialService.Unpublish)
}

func (h *MarketingHandler) moderate(c *gin.Context, fn func(context.Context, uuid.UUID) (*marketingapp.TestimonialResponse, error)) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	resp, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteTestimonial godoc
// @Summary      Delete testimonial
// @Description  Remove a review
// @Tags         testimonials
// @Produce      json
// @Param        id path string true "Testimonial ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /testimonials/{id} [delete]
func (h *MarketingHandler) DeleteTestimonial(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	if err := h.testimonialService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
