package chi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/logger"
)

// exemptPaths are routes that bypass authentication (health, metrics).
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// BearerAuthMiddleware resolves the caller from a Bearer token and stores
// the actor in the request context. Requests without an Authorization
// header proceed anonymously; an unknown token is rejected. With no tokens
// configured every request is anonymous.
func BearerAuthMiddleware(actors map[string]domain.Actor) func(http.Handler) http.Handler {
	valid := make(map[string]domain.Actor, len(actors))
	for token, a := range actors {
		if token != "" && a.UserID != "" {
			valid[token] = a
		}
	}

	return func(next http.Handler) http.Handler {
		if len(valid) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				next.ServeHTTP(w, r)
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(auth, bearerPrefix) {
				writeError(w, http.StatusUnauthorized,
					CodeUnauthenticated, "authorization header must use Bearer scheme")
				return
			}

			a, ok := valid[auth[len(bearerPrefix):]]
			if !ok {
				writeError(w, http.StatusUnauthorized, CodeUnauthenticated, "invalid token")
				return
			}

			ctx := domain.ContextWithActor(r.Context(), a)
			ctx = logger.With(ctx, zap.String("user_id", a.UserID), zap.String("role", string(a.Role)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
