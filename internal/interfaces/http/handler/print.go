package handler

import (
	"context"
	"fmt"
	"net/http"

	printingapp "github.com/autenticco/backend/internal/application/printing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PrintUseCases renders the printable documents of a car
type PrintUseCases interface {
	RenderChecklist(ctx context.Context, carID uuid.UUID, format string) (*printingapp.Document, error)
	RenderQuote(ctx context.Context, carID uuid.UUID, req printingapp.QuoteRequest) (*printingapp.Document, error)
}

// PrintHandler serves the checklist and the price quote
type PrintHandler struct {
	BaseHandler
	printService PrintUseCases
}

// NewPrintHandler creates a new PrintHandler
func NewPrintHandler(printService PrintUseCases) *PrintHandler {
	return &PrintHandler{printService: printService}
}

// Checklist godoc
// @Summary      Print checklist
// @Description  Render the preparation checklist of a car as HTML or PDF
// @Tags         print
// @Produce      text/html,application/pdf
// @Param        id path string true "Car ID" format(uuid)
// @Param        format query string false "Output format" Enums(html, pdf) default(html)
// @Success      200 {file} file
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      503 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars/{id}/print/checklist [get]
func (h *PrintHandler) Checklist(c *gin.Context) {
	carID, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var q printingapp.FormatQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindError(c, err)
		return
	}
	doc, err := h.printService.RenderChecklist(c.Request.Context(), carID, q.Format)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.document(c, doc)
}

// Quote godoc
// @Summary      Print quote
// @Description  Render a price quote with optional financing simulation as HTML or PDF
// @Tags         print
// @Accept       json
// @Produce      text/html,application/pdf
// @Param        id path string true "Car ID" format(uuid)
// @Param        request body printingapp.QuoteRequest true "Quote terms"
// @Success      200 {file} file
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      503 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /cars/{id}/print/quote [post]
func (h *PrintHandler) Quote(c *gin.Context) {
	carID, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req printingapp.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	doc, err := h.printService.RenderQuote(c.Request.Context(), carID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.document(c, doc)
}

func (h *PrintHandler) document(c *gin.Context, doc *printingapp.Document) {
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, doc.FileName))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
