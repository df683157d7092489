package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
)

// Filter returns the parts matching every criterion of f, ordered by sortBy.
// The input slice is never reordered; relevance keeps catalog order.
func Filter(parts []*model.Part, f model.PartsFilter, sortBy model.SortOption) []*model.Part {
	query := strings.ToLower(f.Query)
	compat := strings.ToLower(f.Compatibility)

	match := func(p *model.Part, _ int) bool {
		return p != nil && matchPart(p, f, query, compat)
	}
	if f.Empty() {
		match = func(p *model.Part, _ int) bool { return p != nil }
	}

	out := lo.Filter(parts, match)

	sortParts(out, sortBy)
	return out
}

func matchPart(p *model.Part, f model.PartsFilter, query, compat string) bool {
	if query != "" && !matchQuery(p, query) {
		return false
	}

	if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
		return false
	}

	if len(f.Manufacturers) > 0 && !slices.Contains(f.Manufacturers, p.Manufacturer) {
		return false
	}

	if f.PriceRange != nil && !f.PriceRange.Contains(p.Price) {
		return false
	}

	if compat != "" && !lo.SomeBy(p.Compatibility, func(vehicle string) bool {
		return strings.Contains(strings.ToLower(vehicle), compat)
	}) {
		return false
	}

	if f.InStockOnly && p.Stock <= 0 {
		return false
	}

	return true
}

// query is expected lower-cased.
func matchQuery(p *model.Part, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(string(p.Category)), query) ||
		strings.Contains(strings.ToLower(p.SKU), query)
}

func sortParts(parts []*model.Part, sortBy model.SortOption) {
	switch sortBy {
	case model.SortPriceAsc:
		slices.SortStableFunc(parts, func(a, b *model.Part) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case model.SortPriceDesc:
		slices.SortStableFunc(parts, func(a, b *model.Part) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case model.SortNameAsc:
		slices.SortStableFunc(parts, func(a, b *model.Part) int {
			return strings.Compare(a.Name, b.Name)
		})
	case model.SortRatingDesc:
		slices.SortStableFunc(parts, func(a, b *model.Part) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	default:
	}
}

// Facets summarises the catalog for the filter sidebar. Categories and
// manufacturers keep first-seen order.
func Facets(parts []*model.Part) *model.Facets {
	out := &model.Facets{
		Categories:    make([]model.Category, 0),
		Manufacturers: make([]string, 0),
	}
	if len(parts) == 0 {
		return out
	}

	out.Categories = lo.Uniq(lo.Map(parts, func(p *model.Part, _ int) model.Category { return p.Category }))
	out.Manufacturers = lo.Uniq(lo.Map(parts, func(p *model.Part, _ int) string { return p.Manufacturer }))

	prices := lo.Map(parts, func(p *model.Part, _ int) float64 { return p.Price })
	out.MinPrice = lo.Min(prices)
	out.MaxPrice = lo.Max(prices)

	out.InStock = lo.CountBy(parts, func(p *model.Part) bool { return p.Stock > 0 })
	out.OutOfStock = len(parts) - out.InStock

	return out
}
