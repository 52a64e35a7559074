package printing

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/printing"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/infrastructure/logger"
	infra "github.com/autenticco/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypePDF  = "application/pdf"

	qrCodeSize = 256
)

// ErrPDFUnavailable is returned when a PDF is requested but no renderer is configured
var ErrPDFUnavailable = shared.NewDomainError("PDF_UNAVAILABLE", "PDF rendering is not enabled")

// PrintService renders the checklist and quote documents for a car
type PrintService struct {
	carRepo     catalog.CarRepository
	engine      *infra.TemplateEngine
	pdfRenderer infra.PDFRenderer
	siteURL     string
	loc         *time.Location
	now         func() time.Time
}

// NewPrintService creates a PrintService. pdfRenderer may be nil, in which case
// only HTML output is available.
func NewPrintService(
	carRepo catalog.CarRepository,
	engine *infra.TemplateEngine,
	pdfRenderer infra.PDFRenderer,
	siteURL string,
	loc *time.Location,
) *PrintService {
	if loc == nil {
		loc = time.UTC
	}
	return &PrintService{
		carRepo:     carRepo,
		engine:      engine,
		pdfRenderer: pdfRenderer,
		siteURL:     strings.TrimRight(siteURL, "/"),
		loc:         loc,
		now:         time.Now,
	}
}

// PDFEnabled reports whether PDF output can be produced
func (s *PrintService) PDFEnabled() bool {
	return s.pdfRenderer != nil
}

// RenderChecklist renders the delivery checklist of a car
func (s *PrintService) RenderChecklist(ctx context.Context, carID uuid.UUID, format string) (*Document, error) {
	car, err := s.carRepo.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	view := checklistView{
		Car:      toCarView(car),
		Groups:   printing.DeliveryChecklist(),
		IssuedAt: s.now().In(s.loc),
	}
	return s.render(ctx, infra.TemplateChecklist, "Checklist de entrega", "checklist-"+car.Slug, format, view)
}

// RenderQuote computes and renders a price quote. Sold cars cannot be quoted.
func (s *PrintService) RenderQuote(ctx context.Context, carID uuid.UUID, req QuoteRequest) (*Document, error) {
	car, err := s.carRepo.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car.IsSold {
		return nil, shared.NewDomainError("CAR_ALREADY_SOLD", "Car has already been sold")
	}

	quote, err := printing.NewQuote(car.Price, req.toInput(), s.now().In(s.loc))
	if err != nil {
		return nil, err
	}

	view := quoteView{
		Car:   toCarView(car),
		Quote: quote,
	}
	if link := s.publicCarURL(car.Slug); link != "" {
		qr, err := qrDataURI(link)
		if err != nil {
			// the quote is still useful without the code
			logger.L(ctx).Warn("QR code generation failed", zap.String("url", link), zap.Error(err))
		} else {
			view.QRCode = qr
			view.PublicURL = link
		}
	}

	return s.render(ctx, infra.TemplateQuote, "Orçamento", "orcamento-"+car.Slug, req.Format, view)
}

func (s *PrintService) render(ctx context.Context, name, title, baseName, format string, data any) (*Document, error) {
	if format == FormatPDF && s.pdfRenderer == nil {
		return nil, ErrPDFUnavailable
	}

	html, err := s.engine.Render(name, data)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	if format != FormatPDF {
		return &Document{
			ContentType: contentTypeHTML,
			FileName:    baseName + ".html",
			Body:        []byte(html),
		}, nil
	}

	result, err := s.pdfRenderer.Render(ctx, &infra.RenderRequest{HTML: html, Title: title})
	if err != nil {
		logger.L(ctx).Error("PDF rendering failed", zap.String("template", name), zap.Error(err))
		return nil, fmt.Errorf("render %s as pdf: %w", name, err)
	}
	return &Document{
		ContentType: contentTypePDF,
		FileName:    baseName + ".pdf",
		Body:        result.PDFData,
	}, nil
}

// publicCarURL is the storefront page of a car, empty when no site is configured
func (s *PrintService) publicCarURL(slug string) string {
	if s.siteURL == "" || slug == "" {
		return ""
	}
	return s.siteURL + "/carros/" + slug
}

func qrDataURI(link string) (string, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, qrCodeSize)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
