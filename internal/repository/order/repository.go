package repository

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
)

// repository serves a fixed set of orders. Lookups ignore id case.
type repository struct {
	orders []*model.Order
	byID   map[string]*model.Order
}

func NewOrderRepository(orders []*model.Order) *repository {
	r := &repository{
		orders: orders,
		byID:   make(map[string]*model.Order, len(orders)),
	}
	for _, o := range orders {
		r.byID[strings.ToLower(o.ID)] = o
	}

	return r
}

func (r *repository) OrderByID(_ context.Context, id string) (*model.Order, error) {
	o, ok := r.byID[strings.ToLower(id)]
	if !ok {
		return nil, model.ErrOrderNotFound
	}

	return clone(o), nil
}

func (r *repository) List(_ context.Context) ([]*model.Order, error) {
	return lo.Map(r.orders, func(o *model.Order, _ int) *model.Order { return clone(o) }), nil
}

func clone(o *model.Order) *model.Order {
	c := *o
	c.Items = slices.Clone(o.Items)
	if o.TrackingNumber != nil {
		c.TrackingNumber = lo.ToPtr(*o.TrackingNumber)
	}
	if o.EstimatedDelivery != nil {
		c.EstimatedDelivery = lo.ToPtr(*o.EstimatedDelivery)
	}
	return &c
}

// SampleOrders is the order history every storefront starts with.
func SampleOrders() []*model.Order {
	return []*model.Order{
		{
			ID:     "ORD-12345",
			Date:   time.Date(2023, 6, 10, 14, 23, 10, 0, time.UTC),
			Status: model.OrderStatusDelivered,
			Items: []model.OrderItem{
				{PartID: "part-12", Quantity: 2, Price: 129.99},
				{PartID: "part-35", Quantity: 1, Price: 79.50},
			},
			Total:             339.48,
			TrackingNumber:    lo.ToPtr("TRK-987654321"),
			EstimatedDelivery: lo.ToPtr(time.Date(2023, 6, 14, 0, 0, 0, 0, time.UTC)),
		},
		{
			ID:     "ORD-12346",
			Date:   time.Date(2023, 6, 18, 9, 45, 22, 0, time.UTC),
			Status: model.OrderStatusShipped,
			Items: []model.OrderItem{
				{PartID: "part-8", Quantity: 1, Price: 249.99},
			},
			Total:             249.99,
			TrackingNumber:    lo.ToPtr("TRK-123456789"),
			EstimatedDelivery: lo.ToPtr(time.Date(2023, 6, 22, 0, 0, 0, 0, time.UTC)),
		},
		{
			ID:     "ORD-12347",
			Date:   time.Date(2023, 6, 20, 16, 12, 5, 0, time.UTC),
			Status: model.OrderStatusProcessing,
			Items: []model.OrderItem{
				{PartID: "part-42", Quantity: 4, Price: 34.50},
				{PartID: "part-17", Quantity: 1, Price: 129.99},
				{PartID: "part-53", Quantity: 2, Price: 45.75},
			},
			Total: 290.49,
		},
	}
}
