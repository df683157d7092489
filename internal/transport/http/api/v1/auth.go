package http

import (
	"net/http"

	"github.com/sm107-uiuc/sparemate-hub/internal/converter"
	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	storefrontv1 "github.com/sm107-uiuc/sparemate-hub/shared/pkg/api/storefront/v1"
)

func (h *handler) signup(w http.ResponseWriter, r *http.Request) {
	var req storefrontv1.SignupRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.auth.Signup(r.Context(), model.SignupParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, storefrontv1.UserResponse{
		Success: true,
		User:    converter.UserToAPI(user),
	})
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req storefrontv1.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.auth.Login(r.Context(), model.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, storefrontv1.UserResponse{
		Success: true,
		User:    converter.UserToAPI(user),
	})
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), userFrom(r.Context()).APIKey); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, storefrontv1.SuccessResponse{Success: true})
}
