package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sm107-uiuc/sparemate-hub/internal/converter"
	storefrontv1 "github.com/sm107-uiuc/sparemate-hub/shared/pkg/api/storefront/v1"
)

func (h *handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, storefrontv1.OrdersResponse{
		Success: true,
		Orders:  converter.OrdersToAPI(orders),
	})
}

func (h *handler) order(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.OrderByID(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, storefrontv1.OrderResponse{
		Success: true,
		Order:   converter.OrderToAPI(order),
	})
}
