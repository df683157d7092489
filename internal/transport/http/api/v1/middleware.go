package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
	storefrontv1 "github.com/sm107-uiuc/sparemate-hub/shared/pkg/api/storefront/v1"
)

type userCtxKey struct{}

type Authenticator interface {
	Authenticate(ctx context.Context, apiKey string) (*model.User, error)
}

// Delay holds every request for d before passing it on. A request whose
// context ends first is dropped without a response.
func Delay(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if d > 0 {
				t := time.NewTimer(d)
				select {
				case <-r.Context().Done():
					t.Stop()
					logger.Debug(r.Context(), "request abandoned during api delay", logger.String("path", r.URL.Path))
					return
				case <-t.C:
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Authenticate resolves the request credential to a user and stores it in
// the request context.
func Authenticate(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.Authenticate(r.Context(), Credential(r))
			if err != nil {
				respondError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey{}, user)
			ctx = logger.ContextWith(ctx, logger.String("user_id", user.ID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Credential returns the API key from X-API-Key, falling back to a bearer
// token in Authorization.
func Credential(r *http.Request) string {
	if key := strings.TrimSpace(r.Header.Get(storefrontv1.HeaderAPIKey)); key != "" {
		return key
	}

	auth := r.Header.Get(storefrontv1.HeaderAuthorization)
	if len(auth) > len(storefrontv1.BearerPrefix) &&
		strings.EqualFold(auth[:len(storefrontv1.BearerPrefix)], storefrontv1.BearerPrefix) {
		return strings.TrimSpace(auth[len(storefrontv1.BearerPrefix):])
	}

	return ""
}

func userFrom(ctx context.Context) *model.User {
	u, _ := ctx.Value(userCtxKey{}).(*model.User)
	return u
}
