package model

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

type OrderItem struct {
	PartID   string
	Quantity int
	// Unit price at the time the order was placed.
	Price float64
}

type Order struct {
	ID                string
	Date              time.Time
	Status            OrderStatus
	Items             []OrderItem
	Total             float64
	TrackingNumber    *string
	EstimatedDelivery *time.Time
}

type OrderStep struct {
	Label     string
	Completed bool
}

// Steps is the progress track shown for an order. A cancelled order has
// only the initial step followed by Cancelled.
func (s OrderStatus) Steps() []OrderStep {
	if s == OrderStatusCancelled {
		return []OrderStep{
			{Label: "Ordered", Completed: true},
			{Label: "Cancelled", Completed: true},
		}
	}

	return []OrderStep{
		{Label: "Ordered", Completed: true},
		{Label: "Processing", Completed: s == OrderStatusShipped || s == OrderStatusDelivered},
		{Label: "Shipped", Completed: s == OrderStatusDelivered},
		{Label: "Delivered", Completed: s == OrderStatusDelivered},
	}
}
