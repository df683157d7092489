package converter

import (
	"github.com/samber/lo"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	storefrontv1 "github.com/sm107-uiuc/sparemate-hub/shared/pkg/api/storefront/v1"
)

func PartSummaryToAPI(p *model.PartSummary) *storefrontv1.PartSummary {
	if p == nil {
		return nil
	}
	return &storefrontv1.PartSummary{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: string(p.Category),
	}
}

func CartItemsToAPI(items []model.CartItemView) []storefrontv1.CartItem {
	return lo.Map(items, func(it model.CartItemView, _ int) storefrontv1.CartItem {
		return storefrontv1.CartItem{
			PartID:   it.PartID,
			Quantity: it.Quantity,
			Part:     PartSummaryToAPI(it.Part),
		}
	})
}

func PartToAPI(p *model.Part) storefrontv1.Part {
	return storefrontv1.Part{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      string(p.Category),
		Compatibility: p.Compatibility,
		Manufacturer:  p.Manufacturer,
		Stock:         p.Stock,
		ImageURL:      p.ImageURL,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		SKU:           p.SKU,
	}
}

func PartsToAPI(parts []*model.Part) []storefrontv1.Part {
	return lo.Map(parts, func(p *model.Part, _ int) storefrontv1.Part { return PartToAPI(p) })
}

func FacetsToAPI(f *model.Facets) storefrontv1.Facets {
	return storefrontv1.Facets{
		Categories:    lo.Map(f.Categories, func(c model.Category, _ int) string { return string(c) }),
		Manufacturers: f.Manufacturers,
		MinPrice:      f.MinPrice,
		MaxPrice:      f.MaxPrice,
		InStock:       f.InStock,
		OutOfStock:    f.OutOfStock,
	}
}

func OrderToAPI(o *model.Order) storefrontv1.Order {
	return storefrontv1.Order{
		ID:     o.ID,
		Date:   o.Date,
		Status: string(o.Status),
		Items: lo.Map(o.Items, func(it model.OrderItem, _ int) storefrontv1.OrderItem {
			return storefrontv1.OrderItem{PartID: it.PartID, Quantity: it.Quantity, Price: it.Price}
		}),
		Total:             o.Total,
		TrackingNumber:    o.TrackingNumber,
		EstimatedDelivery: o.EstimatedDelivery,
		Steps: lo.Map(o.Status.Steps(), func(s model.OrderStep, _ int) storefrontv1.OrderStep {
			return storefrontv1.OrderStep{Label: s.Label, Completed: s.Completed}
		}),
	}
}

func OrdersToAPI(orders []*model.Order) []storefrontv1.Order {
	return lo.Map(orders, func(o *model.Order, _ int) storefrontv1.Order { return OrderToAPI(o) })
}

func CheckoutSummaryToAPI(s *model.CheckoutSummary) storefrontv1.CheckoutSummary {
	return storefrontv1.CheckoutSummary{
		Items:    CartItemsToAPI(s.Items),
		Subtotal: s.Subtotal,
		Shipping: s.Shipping,
		Tax:      s.Tax,
		Total:    s.Total,
	}
}

func UserToAPI(u *model.User) storefrontv1.User {
	return storefrontv1.User{ID: u.ID, Name: u.Name, Email: u.Email, APIKey: u.APIKey}
}

func CartItemsFromAPI(items []storefrontv1.CartItem) []model.CartItemView {
	return lo.Map(items, func(it storefrontv1.CartItem, _ int) model.CartItemView {
		view := model.CartItemView{PartID: it.PartID, Quantity: it.Quantity}
		if it.Part != nil {
			view.Part = &model.PartSummary{
				ID:       it.Part.ID,
				Name:     it.Part.Name,
				Price:    it.Part.Price,
				Category: model.Category(it.Part.Category),
			}
		}
		return view
	})
}

func PartFromAPI(p storefrontv1.Part) *model.Part {
	return &model.Part{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      model.Category(p.Category),
		Compatibility: p.Compatibility,
		Manufacturer:  p.Manufacturer,
		Stock:         p.Stock,
		ImageURL:      p.ImageURL,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		SKU:           p.SKU,
	}
}

func PartsFromAPI(parts []storefrontv1.Part) []*model.Part {
	return lo.Map(parts, func(p storefrontv1.Part, _ int) *model.Part { return PartFromAPI(p) })
}

func OrderFromAPI(o storefrontv1.Order) *model.Order {
	return &model.Order{
		ID:     o.ID,
		Date:   o.Date,
		Status: model.OrderStatus(o.Status),
		Items: lo.Map(o.Items, func(it storefrontv1.OrderItem, _ int) model.OrderItem {
			return model.OrderItem{PartID: it.PartID, Quantity: it.Quantity, Price: it.Price}
		}),
		Total:             o.Total,
		TrackingNumber:    o.TrackingNumber,
		EstimatedDelivery: o.EstimatedDelivery,
	}
}

func CheckoutSummaryFromAPI(s storefrontv1.CheckoutSummary) *model.CheckoutSummary {
	return &model.CheckoutSummary{
		Items:    CartItemsFromAPI(s.Items),
		Subtotal: s.Subtotal,
		Shipping: s.Shipping,
		Tax:      s.Tax,
		Total:    s.Total,
	}
}

func UserFromAPI(u storefrontv1.User) *model.User {
	return &model.User{ID: u.ID, Name: u.Name, Email: u.Email, APIKey: u.APIKey}
}
