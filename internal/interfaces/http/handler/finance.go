package handler

import (
	"context"

	financeapp "github.com/autenticco/backend/internal/application/finance"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FinanceUseCases covers the per-car finance editor
type FinanceUseCases interface {
	GetCarFinance(ctx context.Context, carID uuid.UUID) (*financeapp.CarFinanceResponse, error)
	PreviewProfit(ctx context.Context, carID uuid.UUID, req financeapp.PreviewProfitRequest) (*financeapp.ProfitPreviewResponse, error)
	SaveFinance(ctx context.Context, carID uuid.UUID, req financeapp.SaveFinanceRequest) (*financeapp.CarFinanceResponse, error)
}

// PublicationUseCases manages the ads placed for each car
type PublicationUseCases interface {
	List(ctx context.Context, carIDs ...uuid.UUID) ([]financeapp.PublicationResponse, error)
	Create(ctx context.Context, req financeapp.CreatePublicationRequest) (*financeapp.PublicationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseUseCases manages the costs charged to each car
type ExpenseUseCases interface {
	List(ctx context.Context, carIDs ...uuid.UUID) ([]financeapp.ExpenseResponse, error)
	Create(ctx context.Context, req financeapp.CreateExpenseRequest) (*financeapp.ExpenseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SaleUseCases lists and registers sales
type SaleUseCases interface {
	List(ctx context.Context, filter financeapp.SaleListFilter) (*shared.Paginated[financeapp.SaleResponse], error)
	RegisterSale(ctx context.Context, req financeapp.RegisterSaleRequest) (*financeapp.SaleResponse, error)
}

// FinanceHandler serves car finance, publications, expenses and sales
type FinanceHandler struct {
	BaseHandler
	financeService     FinanceUseCases
	publicationService PublicationUseCases
	expenseService     ExpenseUseCases
	saleService        SaleUseCases
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(
	financeService FinanceUseCases,
	publicationService PublicationUseCases,
	expenseService ExpenseUseCases,
	saleService SaleUseCases,
) *FinanceHandler {
	return &FinanceHandler{
		financeService:     financeService,
		publicationService: publicationService,
		expenseService:     expenseService,
		saleService:        saleService,
	}
}

// GetCarFinance godoc
// @Summary      Car finance
// @Description  Finance editor view: stored figures, computed summary, publications, expenses and the sale. Collections that could not be read are listed in meta.warnings.
// @Tags         finance
// @Produce      json
// @Param        id path string true "Car ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.CarFinanceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars/{id}/finance [get]
func (h *FinanceHandler) GetCarFinance(c *gin.Context) {
	carID, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.financeService.GetCarFinance(c.Request.Context(), carID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithWarnings(c, resp, resp.Warnings)
}

// PreviewProfit godoc
// @Summary      Preview profit
// @Description  Compute the profit for a candidate commission without saving. The body is optional; the stored commission is used when omitted.
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path string true "Car ID" format(uuid)
// @Param        request body financeapp.PreviewProfitRequest false "Candidate commission"
// @Success      200 {object} dto.Response{data=financeapp.ProfitPreviewResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars/{id}/finance/preview [post]
func (h *FinanceHandler) PreviewProfit(c *gin.Context) {
	carID, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req financeapp.PreviewProfitRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}
	resp, err := h.financeService.PreviewProfit(c.Request.Context(), carID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithWarnings(c, resp, resp.Warnings)
}

// SaveFinance godoc
// @Summary      Save car finance
// @Description  Store FIPE value, commission and seller return, then recompute profit and profit percent. Omitted fields keep their stored value.
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path string true "Car ID" format(uuid)
// @Param        request body financeapp.SaveFinanceRequest true "Finance figures"
// @Success      200 {object} dto.Response{data=financeapp.CarFinanceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars/{id}/finance [put]
func (h *FinanceHandler) SaveFinance(c *gin.Context) {
	carID, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req financeapp.SaveFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.financeService.SaveFinance(c.Request.Context(), carID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListPublications godoc
// @Summary      List publications
// @Description  Ads placed for the cars, optionally for one car
// @Tags         publications
// @Produce      json
// @Param        car_id query string false "Only records of this car" format(uuid)
// @Success      200 {object} dto.Response{data=[]financeapp.PublicationResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /publications [get]
func (h *FinanceHandler) ListPublications(c *gin.Context) {
	carIDs, ok := h.carIDFilter(c)
	if !ok {
		return
	}
	items, err := h.publicationService.List(c.Request.Context(), carIDs...)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// CreatePublication godoc
// @Summary      Create publication
// @Description  Register an ad for a car
// @Tags         publications
// @Accept       json
// @Produce      json
// @Param        request body financeapp.CreatePublicationRequest true "Publication"
// @Success      201 {object} dto.Response{data=financeapp.PublicationResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /publications [post]
func (h *FinanceHandler) CreatePublication(c *gin.Context) {
	var req financeapp.CreatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.publicationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// DeletePublication godoc
// @Summary      Delete publication
// @Description  Remove an ad
// @Tags         publications
// @Produce      json
// @Param        id path string true "Publication ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /publications/{id} [delete]
func (h *FinanceHandler) DeletePublication(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	if err := h.publicationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListExpenses godoc
// @Summary      List expenses
// @Description  Costs charged to the cars, optionally for one car
// @Tags         expenses
// @Produce      json
// @Param        car_id query string false "Only records of this car" format(uuid)
// @Success      200 {object} dto.Response{data=[]financeapp.ExpenseResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /expenses [get]
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	carIDs, ok := h.carIDFilter(c)
	if !ok {
		return
	}
	items, err := h.expenseService.List(c.Request.Context(), carIDs...)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// CreateExpense godoc
// @Summary      Create expense
// @Description  Register a cost for a car. charged_value is the part passed on to the buyer.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body financeapp.CreateExpenseRequest true "Expense"
// @Success      201 {object} dto.Response{data=financeapp.ExpenseResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /expenses [post]
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req financeapp.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.expenseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// DeleteExpense godoc
// @Summary      Delete expense
// @Description  Remove an expense
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Expense ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /expenses/{id} [delete]
func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListSales godoc
// @Summary      List sales
// @Description  Paginated sales, filtered by sale date, platform or car
// @Tags         sales
// @Produce      json
// @Param        start_date query string false "Period start (YYYY-MM-DD), defaults to the first day of the current month" format(date)
// @Param        end_date query string false "Period end (YYYY-MM-DD), inclusive, defaults to today" format(date)
// @Param        platform_id query string false "Platform" format(uuid)
// @Param        car_id query string false "Only records of this car" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field"
// @Param        order_dir query string false "Order direction" Enums(asc, desc)
// @Success      200 {object} dto.Response{data=[]financeapp.SaleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /sales [get]
func (h *FinanceHandler) ListSales(c *gin.Context) {
	var filter financeapp.SaleListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	var ok bool
	if filter.PlatformID, ok = h.queryUUID(c, "platform_id"); !ok {
		return
	}
	if filter.CarID, ok = h.queryUUID(c, "car_id"); !ok {
		return
	}

	page, err := h.saleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// RegisterSale godoc
// @Summary      Register sale
// @Description  Record the sale of a car and mark it sold in one transaction. A car already marked sold by hand accepts its first sale.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        request body financeapp.RegisterSaleRequest true "Sale"
// @Success      201 {object} dto.Response{data=financeapp.SaleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /sales [post]
func (h *FinanceHandler) RegisterSale(c *gin.Context) {
	var req financeapp.RegisterSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.saleService.RegisterSale(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *FinanceHandler) carIDFilter(c *gin.Context) ([]uuid.UUID, bool) {
	id, ok := h.queryUUID(c, "car_id")
	if !ok || id == nil {
		return nil, ok
	}
	return []uuid.UUID{*id}, true
}
