package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
)

type PartService interface {
	Part(ctx context.Context, partID string) (*model.Part, error)
	ListParts(ctx context.Context, filter model.PartsFilter, sortBy model.SortOption) ([]*model.Part, error)
	Facets(ctx context.Context) (*model.Facets, error)
}

type CartService interface {
	Details(ctx context.Context, userID string) ([]model.CartItemView, error)
	AddItem(ctx context.Context, userID, partID string, quantity int) ([]model.CartLine, error)
	RemoveItem(ctx context.Context, userID, partID string) ([]model.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, partID string, quantity int) ([]model.CartLine, error)
	View(ctx context.Context, lines []model.CartLine) []model.CartItemView
}

type OrderService interface {
	OrderByID(ctx context.Context, orderID string) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
	Checkout(ctx context.Context, userID string) (*model.CheckoutSummary, error)
}

type AuthService interface {
	Signup(ctx context.Context, params model.SignupParams) (*model.User, error)
	Login(ctx context.Context, params model.LoginParams) (*model.User, error)
	Logout(ctx context.Context, apiKey string) error
	Authenticate(ctx context.Context, apiKey string) (*model.User, error)
}

type handler struct {
	parts  PartService
	carts  CartService
	orders OrderService
	auth   AuthService
	delay  time.Duration
}

func NewHandler(
	parts PartService,
	carts CartService,
	orders OrderService,
	auth AuthService,
	delay time.Duration,
) *handler {
	return &handler{
		parts:  parts,
		carts:  carts,
		orders: orders,
		auth:   auth,
		delay:  delay,
	}
}

// Register mounts the /api and /auth trees. Every /api request is delayed
// and authenticated before routing, so unknown paths without a key are 401.
func (h *handler) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Use(Delay(h.delay), Authenticate(h.auth))
		r.NotFound(h.notFound)
		r.MethodNotAllowed(h.notFound)

		r.Get("/cart", h.getCart)
		r.Post("/cart", h.addToCart)
		r.Delete("/cart/{partId}", h.removeFromCart)
		r.Put("/cart/{partId}", h.updateQuantity)
		r.Post("/checkout", h.checkout)

		r.Get("/parts", h.listParts)
		r.Get("/parts/facets", h.facets)
		r.Get("/parts/{partId}", h.part)

		r.Get("/orders", h.listOrders)
		r.Get("/orders/{orderId}", h.order)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
		r.With(Authenticate(h.auth)).Post("/logout", h.logout)
	})
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, model.ErrEndpointNotFound)
}
