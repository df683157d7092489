package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
	storefrontv1 "github.com/sm107-uiuc/sparemate-hub/shared/pkg/api/storefront/v1"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := mapError(err)

	log := logger.With(
		logger.String("path", r.URL.Path),
		logger.Int("status", status),
		logger.ErrorF(err),
	)
	if status >= http.StatusInternalServerError {
		log.Error(r.Context(), "request failed")
	} else {
		log.Debug(r.Context(), "request rejected")
	}

	respondJSON(w, r, status, storefrontv1.ErrorResponse{
		Success: false,
		Error:   msg,
		Code:    status,
	})
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrMissingCredential):
		return http.StatusUnauthorized, "API Key is required"
	case errors.Is(err, model.ErrInvalidCredential):
		return http.StatusUnauthorized, "Invalid API key"
	case errors.Is(err, model.ErrPartNotFound):
		return http.StatusNotFound, "Part not found"
	case errors.Is(err, model.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, model.ErrCartItemNotFound):
		return http.StatusNotFound, "Item is not in the cart"
	case errors.Is(err, model.ErrEndpointNotFound):
		return http.StatusNotFound, "Endpoint not found"
	case errors.Is(err, model.ErrUserExists):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrInvalidArgument):
		return http.StatusBadRequest, detail(err)
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Request timed out"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// detail keeps the most specific line of a joined error.
func detail(err error) string {
	msg := err.Error()
	if i := strings.LastIndexByte(msg, '\n'); i >= 0 {
		msg = msg[i+1:]
	}
	return msg
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Join(model.ErrValidation, errors.New("invalid JSON body"))
	}
	return nil
}
