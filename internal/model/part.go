package model

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryEngine       Category = "Engine"
	CategoryTransmission Category = "Transmission"
	CategorySuspension   Category = "Suspension"
	CategoryBrakes       Category = "Brakes"
	CategoryElectrical   Category = "Electrical"
	CategoryInterior     Category = "Interior"
	CategoryExterior     Category = "Exterior"
	CategoryHVAC         Category = "HVAC"
)

var Categories = []Category{
	CategoryEngine,
	CategoryTransmission,
	CategorySuspension,
	CategoryBrakes,
	CategoryElectrical,
	CategoryInterior,
	CategoryExterior,
	CategoryHVAC,
}

type Part struct {
	// Catalog identifier, "part-<n>".
	ID string
	// Display name, prefixed with the manufacturer.
	Name string
	// Marketing description of the part.
	Description string
	// Unit price in dollars.
	Price float64
	// Category of the part.
	Category Category
	// Vehicles the part fits, e.g. "Toyota Camry (2012-2015)".
	Compatibility []string
	// Manufacturer name.
	Manufacturer string
	// Units currently available.
	Stock int
	// Relative URL of the product image.
	ImageURL string
	// Average review score between 0 and 5.
	Rating float64
	// Number of reviews behind Rating.
	Reviews int
	// Stock keeping unit, "<CAT>-<MFR>-<nnnnn>".
	SKU string
}

// Clone returns a deep copy so callers never share catalog memory.
func (p *Part) Clone() *Part {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Compatibility = append([]string(nil), p.Compatibility...)
	return &cp
}

// PartSummary is the slice of a part embedded into cart responses.
type PartSummary struct {
	ID       string
	Name     string
	Price    float64
	Category Category
}

func (p *Part) Summary() *PartSummary {
	if p == nil {
		return nil
	}
	return &PartSummary{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
	}
}

type PriceRange struct {
	Min float64
	Max float64
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

type PartsFilter struct {
	Query         string
	Categories    []Category
	Manufacturers []string
	PriceRange    *PriceRange
	Compatibility string
	InStockOnly   bool
}

func (f PartsFilter) Empty() bool {
	return f.Query == "" &&
		len(f.Categories) == 0 &&
		len(f.Manufacturers) == 0 &&
		f.PriceRange == nil &&
		f.Compatibility == "" &&
		!f.InStockOnly
}

type SortOption string

const (
	SortRelevance  SortOption = "relevance"
	SortPriceAsc   SortOption = "price-asc"
	SortPriceDesc  SortOption = "price-desc"
	SortNameAsc    SortOption = "name-asc"
	SortRatingDesc SortOption = "rating-desc"
)

// ParseSortOption maps the wire value to a SortOption. Empty means relevance.
func ParseSortOption(s string) (SortOption, error) {
	switch opt := SortOption(strings.TrimSpace(s)); opt {
	case "":
		return SortRelevance, nil
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortNameAsc, SortRatingDesc:
		return opt, nil
	default:
		return "", fmt.Errorf("%w: unknown sort option %q", ErrInvalidArgument, s)
	}
}

// Facets describes the values a storefront sidebar can offer for filtering.
type Facets struct {
	Categories    []Category
	Manufacturers []string
	MinPrice      float64
	MaxPrice      float64
	InStock       int
	OutOfStock    int
}
