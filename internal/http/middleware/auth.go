package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"boleteria/internal/auth"
)

type contextKey string

const claimsKey contextKey = "session_claims"

func ClaimsFromContext(ctx context.Context) (*auth.SessionClaims, bool) {
	val, ok := ctx.Value(claimsKey).(*auth.SessionClaims)
	return val, ok
}

// AuthMiddleware verifies the console session token and stashes the claims
// in the request context. Operators without console access are rejected here,
// before any role-specific check runs.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, http.StatusUnauthorized, "missing Authorization")
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				writeAuthError(w, http.StatusUnauthorized, "invalid Authorization")
				return
			}
			claims, err := auth.ParseSessionToken(secret, parts[1])
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			if !claims.Role.CanAccessConsole() {
				writeAuthError(w, http.StatusForbidden, "console access denied")
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission gates a route group on a single permission from the role
// table. Must run after AuthMiddleware.
func RequirePermission(perm auth.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "missing session")
				return
			}
			if !claims.Role.HasPermission(perm) {
				writeAuthError(w, http.StatusForbidden, "permission denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
