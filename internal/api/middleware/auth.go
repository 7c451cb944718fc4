package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/BennoAlif/cats-social/internal/api/shared"
	"github.com/BennoAlif/cats-social/internal/service/auth"
)

// AuthMiddleware provides bearer-token authentication for routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates tokens from the Authorization header and adds
// the embedded identity to the request context for authorized requests.
// An expired token is reported identically to an invalid one.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Unauthorized", auth.ErrMissingToken)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		identity, err := m.tokenService.Validate(r.Context(), parts[1])
		if err != nil {
			switch err {
			case auth.ErrExpiredToken, auth.ErrInvalidToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.IdentityContextKey, *identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the authenticated identity from the request context.
// Returns the identity and a boolean indicating if it was found.
func GetIdentity(r *http.Request) (auth.Identity, bool) {
	identity, ok := r.Context().Value(shared.IdentityContextKey).(auth.Identity)
	return identity, ok
}
