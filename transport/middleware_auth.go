package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/digital-store/application/user"
	"github.com/muhammadheryan/digital-store/constant"
	utilsContext "github.com/muhammadheryan/digital-store/utils/context"
	"github.com/muhammadheryan/digital-store/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// Public endpoints are served without a token, but a valid token on them still
// identifies the caller (guest checkout vs signed-in checkout).
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			public := isPublicPath(r.Method, r.URL.Path)

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") || strings.HasPrefix(r.URL.Path, "/internal/") {
				if public {
					next.ServeHTTP(w, r)
					return
				}
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			actor, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") || path == "/webhook/payment" {
		return true
	}
	switch path {
	case "/api/v1/auth/login", "/api/v1/auth/register", "/api/v1/checkout/intent":
		return true
	}
	// catalog reads
	if method == http.MethodGet {
		if path == "/api/v1/categories" || path == "/api/v1/products" {
			return true
		}
		if rest, ok := strings.CutPrefix(path, "/api/v1/products/"); ok && rest != "" && !strings.Contains(rest, "/") {
			return true
		}
	}

	return false
}
