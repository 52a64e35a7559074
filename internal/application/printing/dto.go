package printing

import (
	"strings"
	"time"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/printing"
	"github.com/autenticco/backend/internal/domain/shared/valueobject"
)

// Output formats
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// FormatQuery selects the document output
type FormatQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=html pdf"`
}

// QuoteRequest holds the negotiation terms for a price quote
// @Description Negotiation terms for a price quote
type QuoteRequest struct {
	CustomerName  string             `json:"customer_name" binding:"max=200" example:"Maria Souza"`
	CustomerPhone string             `json:"customer_phone" binding:"max=30" example:"11987654321"`
	DownPayment   valueobject.Amount `json:"down_payment" example:"40000"`
	Installments  int                `json:"installments" binding:"min=0,max=72" example:"48"`
	// MonthlyRate in percent per month
	MonthlyRate valueobject.Amount `json:"monthly_rate" example:"1.49"`
	ValidDays   int                `json:"valid_days" binding:"min=0,max=90" example:"7"`
	Notes       string             `json:"notes" binding:"max=1000"`
	Format      string             `json:"format" binding:"omitempty,oneof=html pdf" example:"pdf"`
}

func (r QuoteRequest) toInput() printing.QuoteInput {
	return printing.QuoteInput{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		DownPayment:   r.DownPayment.Decimal,
		Installments:  r.Installments,
		MonthlyRate:   r.MonthlyRate.Decimal,
		ValidDays:     r.ValidDays,
		Notes:         r.Notes,
	}
}

// Document is a rendered print document
type Document struct {
	ContentType string
	FileName    string
	Body        []byte
}

// carView is the vehicle block shared by every template
type carView struct {
	Title           string
	Version         string
	Year            int
	ManufactureYear int
	Color           string
	Plate           string
	Mileage         int
	Fuel            string
	Transmission    string
}

var transmissionLabels = map[catalog.Transmission]string{
	catalog.TransmissionManual:    "manual",
	catalog.TransmissionAutomatic: "automático",
	catalog.TransmissionCVT:       "CVT",
	catalog.TransmissionAutomated: "automatizado",
}

var fuelLabels = map[catalog.Fuel]string{
	catalog.FuelFlex:     "flex",
	catalog.FuelGasoline: "gasolina",
	catalog.FuelEthanol:  "etanol",
	catalog.FuelDiesel:   "diesel",
	catalog.FuelHybrid:   "híbrido",
	catalog.FuelElectric: "elétrico",
}

func toCarView(c *catalog.Car) carView {
	year := c.ManufactureYear
	if year == 0 {
		year = c.Year
	}
	return carView{
		Title:           strings.TrimSpace(c.Brand + " " + c.Model),
		Version:         c.Version,
		Year:            c.Year,
		ManufactureYear: year,
		Color:           c.Color,
		Plate:           c.Plate,
		Mileage:         c.Mileage,
		Fuel:            labelOr(fuelLabels, c.Fuel),
		Transmission:    labelOr(transmissionLabels, c.Transmission),
	}
}

func labelOr[K ~string](labels map[K]string, k K) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

type checklistView struct {
	Car      carView
	Groups   []printing.ChecklistGroup
	IssuedAt time.Time
}

type quoteView struct {
	Car       carView
	Quote     *printing.Quote
	QRCode    string
	PublicURL string
}
