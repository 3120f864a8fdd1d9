package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/auth"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/models"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/storage"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/utils"
)

type contextKey struct{}

var userKey contextKey

// UserFromContext returns the authenticated user attached by
// AuthMiddleware. Handlers behind the middleware can rely on the user
// being fully loaded and current for this request.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// WithUser attaches a user to the context. Exposed for handler tests.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// AuthMiddleware verifies the session cookie and loads the caller's
// full user record into the request context. Requests with a missing,
// invalid or expired token are rejected as unauthenticated.
func AuthMiddleware(next http.HandlerFunc, issuer *auth.TokenIssuer, users storage.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.SessionCookieName)
		if err != nil || cookie.Value == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "session cookie required")
			return
		}

		claims, err := issuer.Verify(cookie.Value)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "invalid or expired token")
			return
		}

		user, err := users.FindByUsername(r.Context(), claims.Username)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "account no longer exists")
				return
			}
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	}
}
