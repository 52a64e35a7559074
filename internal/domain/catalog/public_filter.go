package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SortOrder of the public catalogue
type SortOrder string

const (
	SortRecent    SortOrder = "recent"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortYearDesc  SortOrder = "year_desc"
	SortMileage   SortOrder = "mileage_asc"
)

// PublicFilter narrows the storefront listing. Zero values match everything.
type PublicFilter struct {
	Search       string
	Brand        string
	BodyType     BodyType
	Fuel         Fuel
	Transmission Transmission
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	MinYear      int
	MaxYear      int
	MaxMileage   int
	FeaturedOnly bool
	Sort         SortOrder
}

// Matches reports whether car passes every criterion of the filter
func (f PublicFilter) Matches(car *Car) bool {
	if !car.InStock() {
		return false
	}
	if f.FeaturedOnly && !car.IsFeatured {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(car.Brand, f.Brand) {
		return false
	}
	if f.BodyType != "" && car.BodyType != f.BodyType {
		return false
	}
	if f.Fuel != "" && car.Fuel != f.Fuel {
		return false
	}
	if f.Transmission != "" && car.Transmission != f.Transmission {
		return false
	}
	if f.MinPrice != nil && car.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && car.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.MinYear > 0 && car.Year < f.MinYear {
		return false
	}
	if f.MaxYear > 0 && car.Year > f.MaxYear {
		return false
	}
	if f.MaxMileage > 0 && car.Mileage > f.MaxMileage {
		return false
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		haystack := Slugify(strings.Join([]string{car.Brand, car.Model, car.Version, car.Color}, " "))
		for _, term := range strings.Split(Slugify(q), "-") {
			if !strings.Contains(haystack, term) {
				return false
			}
		}
	}
	return true
}

// Apply filters and sorts cars, returning a new slice
func (f PublicFilter) Apply(cars []Car) []Car {
	out := make([]Car, 0, len(cars))
	for i := range cars {
		if f.Matches(&cars[i]) {
			out = append(out, cars[i])
		}
	}

	var less func(a, b *Car) bool
	switch f.Sort {
	case SortPriceAsc:
		less = func(a, b *Car) bool { return a.Price.LessThan(b.Price) }
	case SortPriceDesc:
		less = func(a, b *Car) bool { return a.Price.GreaterThan(b.Price) }
	case SortYearDesc:
		less = func(a, b *Car) bool { return a.Year > b.Year }
	case SortMileage:
		less = func(a, b *Car) bool { return a.Mileage < b.Mileage }
	default:
		// featured first, then newest entries
		less = func(a, b *Car) bool {
			if a.IsFeatured != b.IsFeatured {
				return a.IsFeatured
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}

// Brands lists the distinct brands of in-stock cars, alphabetically
func Brands(cars []Car) []string {
	seen := make(map[string]struct{})
	var brands []string
	for i := range cars {
		if !cars[i].InStock() {
			continue
		}
		key := strings.ToLower(cars[i].Brand)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		brands = append(brands, cars[i].Brand)
	}
	sort.Strings(brands)
	return brands
}
