// Package storefrontv1 holds the JSON wire types of the storefront API.
package storefrontv1

import "time"

const (
	HeaderAPIKey        = "X-API-Key"
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

type PartSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type CartItem struct {
	PartID   string       `json:"partId"`
	Quantity int          `json:"quantity"`
	Part     *PartSummary `json:"part"`
}

type Part struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Category      string   `json:"category"`
	Compatibility []string `json:"compatibility"`
	Manufacturer  string   `json:"manufacturer"`
	Stock         int      `json:"stock"`
	ImageURL      string   `json:"imageUrl"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	SKU           string   `json:"sku"`
}

type Facets struct {
	Categories    []string `json:"categories"`
	Manufacturers []string `json:"manufacturers"`
	MinPrice      float64  `json:"minPrice"`
	MaxPrice      float64  `json:"maxPrice"`
	InStock       int      `json:"inStock"`
	OutOfStock    int      `json:"outOfStock"`
}

type OrderItem struct {
	PartID   string  `json:"partId"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderStep struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

type Order struct {
	ID                string      `json:"id"`
	Date              time.Time   `json:"date"`
	Status            string      `json:"status"`
	Items             []OrderItem `json:"items"`
	Total             float64     `json:"total"`
	TrackingNumber    *string     `json:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time  `json:"estimatedDelivery,omitempty"`
	Steps             []OrderStep `json:"steps"`
}

type CheckoutSummary struct {
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Shipping float64    `json:"shipping"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
}

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	APIKey string `json:"apiKey"`
}

type AddToCartRequest struct {
	PartID   string `json:"partId"`
	Quantity int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CartResponse struct {
	Success bool       `json:"success"`
	Cart    []CartItem `json:"cart"`
}

type PartsResponse struct {
	Success bool   `json:"success"`
	Parts   []Part `json:"parts"`
}

type PartResponse struct {
	Success bool `json:"success"`
	Part    Part `json:"part"`
}

type FacetsResponse struct {
	Success bool   `json:"success"`
	Facets  Facets `json:"facets"`
}

type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}

type OrderResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

type CheckoutResponse struct {
	Success bool            `json:"success"`
	Summary CheckoutSummary `json:"summary"`
}

type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code"`
}
