package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/eduhire/placement-be/internal/auth"
	"github.com/eduhire/placement-be/internal/http/respond"
	"github.com/eduhire/placement-be/internal/models"
)

// RequireAuth extracts and verifies the bearer token and attaches the
// resulting Principal to the request context. The wire response never
// distinguishes expired from tampered from malformed; the log does.
func RequireAuth(tokens *auth.TokenManager, log *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respond.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				respond.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			principal, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					log.WithField("path", r.URL.Path).Debug("rejected expired token")
				} else {
					log.WithField("path", r.URL.Path).Debug("rejected invalid token")
				}
				respond.Error(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireRoles gates a route group to the given role set. RequireAuth must
// run earlier in the chain; a missing Principal is an authentication failure,
// a wrong role is a 403.
func RequireRoles(roles ...models.Role) mux.MiddlewareFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := auth.PrincipalFrom(r.Context())
			if !ok {
				respond.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if _, ok := allowed[principal.Role]; !ok {
				respond.Error(w, http.StatusForbidden, "Forbidden: insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
