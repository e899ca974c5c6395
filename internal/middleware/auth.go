package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/barangayan/brgyems/internal/utils"
)

type contextKey string

const UserContextKey contextKey = "user"

// Auth verifies the Bearer session token and stores its claims on the request context
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authorization header required")
				return
			}

			// Bearer token
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w, "Invalid authorization header format")
				return
			}

			claims, err := utils.ValidateToken(strings.TrimSpace(parts[1]), secret)
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the session of the signed-in user, if any
func ClaimsFromContext(ctx context.Context) (*utils.SessionClaims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*utils.SessionClaims)
	return claims, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
