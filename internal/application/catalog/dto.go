package catalog

import (
	"time"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarRequest carries the descriptive attributes for create and update
// @Description Car attributes for create and update
type CarRequest struct {
	Brand           string             `json:"brand" binding:"required,min=1,max=60" example:"Jeep"`
	Model           string             `json:"model" binding:"required,min=1,max=80" example:"Compass"`
	Version         string             `json:"version" binding:"max=120" example:"Longitude 1.3 T270"`
	Year            int                `json:"year" binding:"required,min=1900" example:"2022"`
	ManufactureYear int                `json:"manufacture_year" binding:"omitempty,min=1900" example:"2021"`
	Price           valueobject.Amount `json:"price" example:"149900"`
	Mileage         int                `json:"mileage" binding:"min=0" example:"38000"`
	Color           string             `json:"color" binding:"max=40" example:"Branco"`
	Plate           string             `json:"plate" binding:"max=10" example:"ABC1D23"`
	Transmission    string             `json:"transmission" binding:"omitempty,oneof=manual automatic cvt automated" example:"automatic"`
	BodyType        string             `json:"body_type" binding:"omitempty,oneof=hatch sedan suv pickup minivan coupe convertible wagon" example:"suv"`
	Fuel            string             `json:"fuel" binding:"omitempty,oneof=flex gasoline ethanol diesel hybrid electric" example:"flex"`
	Description     string             `json:"description" binding:"max=5000"`
	Features        []string           `json:"features" binding:"max=60,dive,max=80"`
	IsFeatured      bool               `json:"is_featured" example:"true"`
	EntryAt         *time.Time         `json:"entry_at"`
}

func (r CarRequest) toInput() catalog.CarInput {
	return catalog.CarInput{
		Brand:           r.Brand,
		Model:           r.Model,
		Version:         r.Version,
		Year:            r.Year,
		ManufactureYear: r.ManufactureYear,
		Price:           r.Price.Decimal,
		Mileage:         r.Mileage,
		Color:           r.Color,
		Plate:           r.Plate,
		Transmission:    catalog.Transmission(r.Transmission),
		BodyType:        catalog.BodyType(r.BodyType),
		Fuel:            catalog.Fuel(r.Fuel),
		Description:     r.Description,
		Features:        r.Features,
		IsFeatured:      r.IsFeatured,
		EntryAt:         r.EntryAt,
	}
}

// MarkSoldRequest marks a car as sold. SoldAt defaults to now.
type MarkSoldRequest struct {
	SoldAt *time.Time `json:"sold_at"`
}

// MarkDeliveredRequest records the hand-over. DeliveredAt defaults to now.
type MarkDeliveredRequest struct {
	DeliveredAt *time.Time `json:"delivered_at"`
}

// AvailabilityRequest toggles storefront visibility
type AvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// CarListFilter is the admin listing query
type CarListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=in_stock sold hidden delivered"`
	Brand    string `form:"brand"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// PublicCarQuery is the storefront listing query
type PublicCarQuery struct {
	Search       string `form:"q"`
	Brand        string `form:"brand"`
	BodyType     string `form:"body_type"`
	Fuel         string `form:"fuel"`
	Transmission string `form:"transmission"`
	MinPrice     string `form:"min_price"`
	MaxPrice     string `form:"max_price"`
	MinYear      int    `form:"min_year"`
	MaxYear      int    `form:"max_year"`
	MaxMileage   int    `form:"max_mileage"`
	Featured     bool   `form:"featured"`
	Sort         string `form:"sort" binding:"omitempty,oneof=recent price_asc price_desc year_desc mileage_asc"`
}

func (q PublicCarQuery) toFilter() catalog.PublicFilter {
	f := catalog.PublicFilter{
		Search:       q.Search,
		Brand:        q.Brand,
		BodyType:     catalog.BodyType(q.BodyType),
		Fuel:         catalog.Fuel(q.Fuel),
		Transmission: catalog.Transmission(q.Transmission),
		MinYear:      q.MinYear,
		MaxYear:      q.MaxYear,
		MaxMileage:   q.MaxMileage,
		FeaturedOnly: q.Featured,
		Sort:         catalog.SortOrder(q.Sort),
	}
	// price bounds accept "R$ 50.000,00" as typed in the storefront
	if q.MinPrice != "" {
		minPrice := valueobject.ParseAmount(q.MinPrice)
		f.MinPrice = &minPrice
	}
	if q.MaxPrice != "" {
		maxPrice := valueobject.ParseAmount(q.MaxPrice)
		f.MaxPrice = &maxPrice
	}
	return f
}

// PublicCarResponse is what the storefront sees. Finance fields are omitted.
// @Description Car as shown on the storefront
type PublicCarResponse struct {
	ID              uuid.UUID       `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Slug            string          `json:"slug" example:"jeep-compass-longitude-2022-a1b2c3"`
	Title           string          `json:"title" example:"Jeep Compass Longitude 1.3 T270 2022"`
	Brand           string          `json:"brand"`
	Model           string          `json:"model"`
	Version         string          `json:"version"`
	Year            int             `json:"year"`
	ManufactureYear int             `json:"manufacture_year"`
	Price           decimal.Decimal `json:"price" example:"149900"`
	Mileage         int             `json:"mileage" example:"38000"`
	Color           string          `json:"color"`
	Transmission    string          `json:"transmission"`
	BodyType        string          `json:"body_type"`
	Fuel            string          `json:"fuel"`
	Description     string          `json:"description"`
	Features        []string        `json:"features"`
	Images          []string        `json:"images"`
	IsFeatured      bool            `json:"is_featured"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PublicCarListResponse is the storefront listing plus the brand facet
type PublicCarListResponse struct {
	Cars   []PublicCarResponse `json:"cars"`
	Brands []string            `json:"brands"`
	Total  int                 `json:"total"`
}

// CarResponse is the admin view of a car
type CarResponse struct {
	PublicCarResponse
	Plate          string           `json:"plate"`
	IsAvailable    bool             `json:"is_available"`
	IsSold         bool             `json:"is_sold"`
	InStock        bool             `json:"in_stock"`
	SoldAt         *time.Time       `json:"sold_at"`
	EntryAt        *time.Time       `json:"entry_at"`
	StockEntryAt   *time.Time       `json:"stock_entry_at"`
	DeliveredAt    *time.Time       `json:"delivered_at"`
	FipeValue      *decimal.Decimal `json:"fipe_value"`
	Commission     *decimal.Decimal `json:"commission"`
	ReturnToSeller *decimal.Decimal `json:"return_to_seller"`
	Profit         *decimal.Decimal `json:"profit"`
	ProfitPercent  *decimal.Decimal `json:"profit_percent"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ToPublicCarResponse maps a car to its storefront representation
func ToPublicCarResponse(c *catalog.Car) PublicCarResponse {
	features := c.Features
	if features == nil {
		features = []string{}
	}
	images := c.Images
	if images == nil {
		images = []string{}
	}
	return PublicCarResponse{
		ID:              c.ID,
		Slug:            c.Slug,
		Title:           c.Title(),
		Brand:           c.Brand,
		Model:           c.Model,
		Version:         c.Version,
		Year:            c.Year,
		ManufactureYear: c.ManufactureYear,
		Price:           c.Price,
		Mileage:         c.Mileage,
		Color:           c.Color,
		Transmission:    string(c.Transmission),
		BodyType:        string(c.BodyType),
		Fuel:            string(c.Fuel),
		Description:     c.Description,
		Features:        features,
		Images:          images,
		IsFeatured:      c.IsFeatured,
		CreatedAt:       c.CreatedAt,
	}
}

// ToCarResponse maps a car to the admin representation
func ToCarResponse(c *catalog.Car) CarResponse {
	return CarResponse{
		PublicCarResponse: ToPublicCarResponse(c),
		Plate:             c.Plate,
		IsAvailable:       c.IsAvailable == nil || *c.IsAvailable,
		IsSold:            c.IsSold,
		InStock:           c.InStock(),
		SoldAt:            c.SoldAt,
		EntryAt:           c.EntryAt,
		StockEntryAt:      c.StockEntryAt,
		DeliveredAt:       c.DeliveredAt,
		FipeValue:         c.FipeValue,
		Commission:        c.Commission,
		ReturnToSeller:    c.ReturnToSeller,
		Profit:            c.Profit,
		ProfitPercent:     c.ProfitPercent,
		UpdatedAt:         c.UpdatedAt,
	}
}
