package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sm107-uiuc/sparemate-hub/internal/converter"
	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	storefrontv1 "github.com/sm107-uiuc/sparemate-hub/shared/pkg/api/storefront/v1"
)

func (h *handler) getCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.carts.Details(r.Context(), userFrom(r.Context()).ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.respondCart(w, r, items)
}

func (h *handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req storefrontv1.AddToCartRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if req.PartID == "" {
		respondError(w, r, errors.Join(model.ErrValidation, errors.New("partId is required")))
		return
	}
	if req.Quantity < 1 {
		respondError(w, r, errors.Join(model.ErrValidation, errors.New("quantity must be a positive integer")))
		return
	}

	part, err := h.parts.Part(r.Context(), req.PartID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	lines, err := h.carts.AddItem(r.Context(), userFrom(r.Context()).ID, part.ID, req.Quantity)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.respondCart(w, r, h.carts.View(r.Context(), lines))
}

func (h *handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	lines, err := h.carts.RemoveItem(r.Context(), userFrom(r.Context()).ID, chi.URLParam(r, "partId"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.respondCart(w, r, h.carts.View(r.Context(), lines))
}

func (h *handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req storefrontv1.UpdateQuantityRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.Quantity == nil {
		respondError(w, r, errors.Join(model.ErrValidation, errors.New("quantity is required")))
		return
	}

	lines, err := h.carts.UpdateQuantity(r.Context(), userFrom(r.Context()).ID, chi.URLParam(r, "partId"), *req.Quantity)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.respondCart(w, r, h.carts.View(r.Context(), lines))
}

func (h *handler) checkout(w http.ResponseWriter, r *http.Request) {
	summary, err := h.orders.Checkout(r.Context(), userFrom(r.Context()).ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, storefrontv1.CheckoutResponse{
		Success: true,
		Summary: converter.CheckoutSummaryToAPI(summary),
	})
}

func (h *handler) respondCart(w http.ResponseWriter, r *http.Request, items []model.CartItemView) {
	respondJSON(w, r, http.StatusOK, storefrontv1.CartResponse{
		Success: true,
		Cart:    converter.CartItemsToAPI(items),
	})
}
