package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/nthanfp/vhiweb-assignment/internal/modules/user"
	"github.com/nthanfp/vhiweb-assignment/internal/web"
)

type contextKey string

const userKey contextKey = "user"

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext retrieves the authenticated user set by Middleware.
func UserFromContext(ctx context.Context) *user.User {
	u, _ := ctx.Value(userKey).(*user.User)
	return u
}

// BearerToken extracts the token from an Authorization header, or "".
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// Middleware authenticates the bearer token and stores the resolved user in
// the request context. Downstream handlers pass that user into services
// explicitly.
func Middleware(svc Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				web.Fail(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}

			u, err := svc.Authenticate(r.Context(), token)
			if err != nil {
				web.Fail(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}
