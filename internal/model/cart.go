package model

type CartLine struct {
	PartID   string
	Quantity int
}

// CartItemView is a cart line joined with catalog data. Part is nil when the
// line points at a part the catalog no longer knows.
type CartItemView struct {
	PartID   string
	Quantity int
	Part     *PartSummary
}

type CheckoutSummary struct {
	Items    []CartItemView
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

type CheckoutCompleted struct {
	EventID   string
	UserID    string
	ItemCount int
	Total     float64
}
