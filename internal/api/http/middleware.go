package http

import (
	"context"
	"net/http"
	"strings"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// AuthMiddleware validates bearer tokens and gates routes by role. Role
// checks here are the enforcement point; any decoding the dashboard does
// client-side is advisory only.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate requires a valid access token and injects its claims into
// the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractBearer(r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "authorization token is not provided")
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// RequireRoles wraps a handler so only callers holding at least one of the
// given roles get through.
func RequireRoles(next http.HandlerFunc, roles ...domain.UserRole) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "authorization token is not provided")
			return
		}
		for _, role := range roles {
			for _, have := range claims.Roles {
				if have == string(role) {
					next(w, r)
					return
				}
			}
		}
		respondError(w, http.StatusForbidden, "insufficient role")
	}
}

// RequireAdmin gates mutating endpoints.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return RequireRoles(next, domain.UserRoleAdmin)
}

// RequireAdminAccess gates read endpoints open to admins and moderators.
func RequireAdminAccess(next http.HandlerFunc) http.HandlerFunc {
	return RequireRoles(next, domain.UserRoleAdmin, domain.UserRoleModerator)
}

// ClaimsFromContext returns the authenticated claims, if any.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.UserClaims)
	return claims, ok
}

func extractBearer(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:], true
	}
	return "", false
}
