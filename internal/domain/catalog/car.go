package catalog

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Transmission of a car
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
	TransmissionCVT       Transmission = "cvt"
	TransmissionAutomated Transmission = "automated"
)

// IsValid checks the transmission value
func (t Transmission) IsValid() bool {
	switch t {
	case TransmissionManual, TransmissionAutomatic, TransmissionCVT, TransmissionAutomated:
		return true
	}
	return false
}

// Fuel type of a car
type Fuel string

const (
	FuelFlex     Fuel = "flex"
	FuelGasoline Fuel = "gasoline"
	FuelEthanol  Fuel = "ethanol"
	FuelDiesel   Fuel = "diesel"
	FuelHybrid   Fuel = "hybrid"
	FuelElectric Fuel = "electric"
)

// IsValid checks the fuel value
func (f Fuel) IsValid() bool {
	switch f {
	case FuelFlex, FuelGasoline, FuelEthanol, FuelDiesel, FuelHybrid, FuelElectric:
		return true
	}
	return false
}

// BodyType of a car
type BodyType string

const (
	BodyHatch       BodyType = "hatch"
	BodySedan       BodyType = "sedan"
	BodySUV         BodyType = "suv"
	BodyPickup      BodyType = "pickup"
	BodyMinivan     BodyType = "minivan"
	BodyCoupe       BodyType = "coupe"
	BodyConvertible BodyType = "convertible"
	BodyWagon       BodyType = "wagon"
)

// IsValid checks the body type value
func (b BodyType) IsValid() bool {
	switch b {
	case BodyHatch, BodySedan, BodySUV, BodyPickup, BodyMinivan, BodyCoupe, BodyConvertible, BodyWagon:
		return true
	}
	return false
}

// Car is a vehicle in the dealership's inventory. Cars are never physically
// deleted; they move through availability, sale and delivery instead.
type Car struct {
	shared.BaseEntity
	Slug            string
	Brand           string
	Model           string
	Version         string
	Year            int
	ManufactureYear int
	Price           decimal.Decimal
	Mileage         int
	Color           string
	Plate           string
	Transmission    Transmission
	BodyType        BodyType
	Fuel            Fuel
	Description     string
	Features        []string
	Images          []string
	IsFeatured      bool

	// IsAvailable is tri-state: nil (never set) counts as available.
	IsAvailable  *bool
	IsSold       bool
	SoldAt       *time.Time
	EntryAt      *time.Time
	StockEntryAt *time.Time
	DeliveredAt  *time.Time

	FipeValue      *decimal.Decimal
	Commission     *decimal.Decimal
	ReturnToSeller *decimal.Decimal
	Profit         *decimal.Decimal
	ProfitPercent  *decimal.Decimal
}

// CarInput holds the editable descriptive attributes of a car
type CarInput struct {
	Brand           string
	Model           string
	Version         string
	Year            int
	ManufactureYear int
	Price           decimal.Decimal
	Mileage         int
	Color           string
	Plate           string
	Transmission    Transmission
	BodyType        BodyType
	Fuel            Fuel
	Description     string
	Features        []string
	IsFeatured      bool
	EntryAt         *time.Time
}

// NewCar creates a car that is available for sale
func NewCar(in CarInput) (*Car, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	available := true
	now := time.Now()
	car := &Car{
		BaseEntity:   shared.NewBaseEntity(),
		IsAvailable:  &available,
		StockEntryAt: &now,
	}
	car.apply(in)
	car.Slug = Slugify(fmt.Sprintf("%s %s %d %s", in.Brand, in.Model, in.Year, car.ID.String()[:8]))
	return car, nil
}

// Update replaces the descriptive attributes. The slug is kept stable.
func (c *Car) Update(in CarInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	c.apply(in)
	c.Touch()
	return nil
}

func (c *Car) apply(in CarInput) {
	c.Brand = strings.TrimSpace(in.Brand)
	c.Model = strings.TrimSpace(in.Model)
	c.Version = strings.TrimSpace(in.Version)
	c.Year = in.Year
	c.ManufactureYear = in.ManufactureYear
	if c.ManufactureYear == 0 {
		c.ManufactureYear = in.Year
	}
	c.Price = in.Price
	c.Mileage = in.Mileage
	c.Color = in.Color
	c.Plate = strings.ToUpper(strings.TrimSpace(in.Plate))
	c.Transmission = in.Transmission
	c.BodyType = in.BodyType
	c.Fuel = in.Fuel
	c.Description = in.Description
	c.Features = in.Features
	c.IsFeatured = in.IsFeatured
	if in.EntryAt != nil {
		c.EntryAt = in.EntryAt
	}
}

func (in CarInput) validate() error {
	if strings.TrimSpace(in.Brand) == "" || strings.TrimSpace(in.Model) == "" {
		return shared.NewDomainError("INVALID_CAR", "Brand and model are required")
	}
	if in.Year < 1900 || in.Year > time.Now().Year()+2 {
		return shared.NewDomainError("INVALID_CAR", "Model year is out of range")
	}
	if in.Price.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Price cannot be negative")
	}
	if in.Mileage < 0 {
		return shared.NewDomainError("INVALID_CAR", "Mileage cannot be negative")
	}
	if in.Transmission != "" && !in.Transmission.IsValid() {
		return shared.NewDomainError("INVALID_CAR", "Unknown transmission")
	}
	if in.Fuel != "" && !in.Fuel.IsValid() {
		return shared.NewDomainError("INVALID_CAR", "Unknown fuel type")
	}
	if in.BodyType != "" && !in.BodyType.IsValid() {
		return shared.NewDomainError("INVALID_CAR", "Unknown body type")
	}
	return nil
}

// InStock reports whether the car counts as current stock: not sold and not
// explicitly marked unavailable.
func (c *Car) InStock() bool {
	if c.IsSold {
		return false
	}
	return c.IsAvailable == nil || *c.IsAvailable
}

// EntryDate is the date the car entered stock, falling back from entry_at to
// stock_entry_at to created_at. Nil when none is known.
func (c *Car) EntryDate() *time.Time {
	switch {
	case c.EntryAt != nil:
		return c.EntryAt
	case c.StockEntryAt != nil:
		return c.StockEntryAt
	case !c.CreatedAt.IsZero():
		t := c.CreatedAt
		return &t
	}
	return nil
}

// CommissionOrZero returns the persisted commission, or zero
func (c *Car) CommissionOrZero() decimal.Decimal {
	if c.Commission == nil {
		return decimal.Zero
	}
	return *c.Commission
}

// Title is "Brand Model Version Year"
func (c *Car) Title() string {
	parts := []string{c.Brand, c.Model}
	if c.Version != "" {
		parts = append(parts, c.Version)
	}
	return fmt.Sprintf("%s %d", strings.Join(parts, " "), c.Year)
}

// MarkSold flags the car as sold at the given instant
func (c *Car) MarkSold(at time.Time) error {
	if c.IsSold {
		return shared.NewDomainError("CAR_ALREADY_SOLD", "Car is already sold")
	}
	unavailable := false
	c.IsSold = true
	c.IsAvailable = &unavailable
	c.SoldAt = &at
	c.Touch()
	return nil
}

// MarkDelivered records the hand-over to the buyer
func (c *Car) MarkDelivered(at time.Time) error {
	if !c.IsSold {
		return shared.NewDomainError("CAR_NOT_SOLD", "Only sold cars can be delivered")
	}
	if c.SoldAt != nil && at.Before(*c.SoldAt) {
		return shared.NewDomainError("INVALID_DATE", "Delivery cannot precede the sale")
	}
	c.DeliveredAt = &at
	c.Touch()
	return nil
}

// SetAvailability toggles the storefront visibility of an unsold car
func (c *Car) SetAvailability(available bool) error {
	if c.IsSold && available {
		return shared.NewDomainError("CAR_ALREADY_SOLD", "A sold car cannot be made available")
	}
	c.IsAvailable = &available
	c.Touch()
	return nil
}

// AddImage appends an image URL
func (c *Car) AddImage(url string) {
	c.Images = append(c.Images, url)
	c.Touch()
}

var slugTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify lower-cases s, strips accents and joins words with hyphens
func Slugify(s string) string {
	ascii, _, err := transform.String(slugTransformer, s)
	if err != nil {
		ascii = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(ascii) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
