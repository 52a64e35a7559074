package models

import (
	"time"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CarModel is the persistence model for the Car entity
type CarModel struct {
	BaseModel
	Slug            string                      `gorm:"type:varchar(160);not null;uniqueIndex"`
	Brand           string                      `gorm:"type:varchar(60);not null;index"`
	Model           string                      `gorm:"type:varchar(80);not null"`
	Version         string                      `gorm:"type:varchar(120)"`
	Year            int                         `gorm:"not null"`
	ManufactureYear int                         `gorm:"not null"`
	Price           decimal.Decimal             `gorm:"type:decimal(14,2);not null"`
	Mileage         int                         `gorm:"not null;default:0"`
	Color           string                      `gorm:"type:varchar(40)"`
	Plate           string                      `gorm:"type:varchar(10)"`
	Transmission    string                      `gorm:"type:varchar(20)"`
	BodyType        string                      `gorm:"type:varchar(20)"`
	Fuel            string                      `gorm:"type:varchar(20)"`
	Description     string                      `gorm:"type:text"`
	Features        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Images          datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	IsFeatured      bool                        `gorm:"not null;default:false"`
	IsAvailable     *bool
	IsSold          bool `gorm:"not null;default:false;index"`
	SoldAt          *time.Time
	EntryAt         *time.Time
	StockEntryAt    *time.Time
	DeliveredAt     *time.Time
	FipeValue       decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	Commission      decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	ReturnToSeller  decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	Profit          decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	ProfitPercent   decimal.NullDecimal `gorm:"type:decimal(7,2)"`
}

// TableName returns the table name for GORM
func (CarModel) TableName() string {
	return "cars"
}

// ToDomain converts the persistence model to a domain Car entity
func (m *CarModel) ToDomain() *catalog.Car {
	return &catalog.Car{
		BaseEntity:      m.BaseModel.ToDomain(),
		Slug:            m.Slug,
		Brand:           m.Brand,
		Model:           m.Model,
		Version:         m.Version,
		Year:            m.Year,
		ManufactureYear: m.ManufactureYear,
		Price:           m.Price,
		Mileage:         m.Mileage,
		Color:           m.Color,
		Plate:           m.Plate,
		Transmission:    catalog.Transmission(m.Transmission),
		BodyType:        catalog.BodyType(m.BodyType),
		Fuel:            catalog.Fuel(m.Fuel),
		Description:     m.Description,
		Features:        []string(m.Features),
		Images:          []string(m.Images),
		IsFeatured:      m.IsFeatured,
		IsAvailable:     m.IsAvailable,
		IsSold:          m.IsSold,
		SoldAt:          m.SoldAt,
		EntryAt:         m.EntryAt,
		StockEntryAt:    m.StockEntryAt,
		DeliveredAt:     m.DeliveredAt,
		FipeValue:       decimalPtr(m.FipeValue),
		Commission:      decimalPtr(m.Commission),
		ReturnToSeller:  decimalPtr(m.ReturnToSeller),
		Profit:          decimalPtr(m.Profit),
		ProfitPercent:   decimalPtr(m.ProfitPercent),
	}
}

// CarModelFromDomain creates a persistence model from a domain Car entity
func CarModelFromDomain(c *catalog.Car) *CarModel {
	m := &CarModel{
		Slug:            c.Slug,
		Brand:           c.Brand,
		Model:           c.Model,
		Version:         c.Version,
		Year:            c.Year,
		ManufactureYear: c.ManufactureYear,
		Price:           c.Price,
		Mileage:         c.Mileage,
		Color:           c.Color,
		Plate:           c.Plate,
		Transmission:    string(c.Transmission),
		BodyType:        string(c.BodyType),
		Fuel:            string(c.Fuel),
		Description:     c.Description,
		Features:        datatypes.JSONSlice[string](c.Features),
		Images:          datatypes.JSONSlice[string](c.Images),
		IsFeatured:      c.IsFeatured,
		IsAvailable:     c.IsAvailable,
		IsSold:          c.IsSold,
		SoldAt:          c.SoldAt,
		EntryAt:         c.EntryAt,
		StockEntryAt:    c.StockEntryAt,
		DeliveredAt:     c.DeliveredAt,
		FipeValue:       nullDecimal(c.FipeValue),
		Commission:      nullDecimal(c.Commission),
		ReturnToSeller:  nullDecimal(c.ReturnToSeller),
		Profit:          nullDecimal(c.Profit),
		ProfitPercent:   nullDecimal(c.ProfitPercent),
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}
