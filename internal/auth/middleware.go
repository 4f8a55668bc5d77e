package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// contextKey keeps the claims key private to this package.
type contextKey string

// UserClaimsKey is the context key for user claims.
const UserClaimsKey = contextKey("userClaims")

// ClaimsFromContext retrieves the authenticated user's claims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(*Claims)
	return claims, ok
}

// Middleware protects routes: it pulls the session token from the
// Authorization header or the session cookie, validates it, and passes
// the claims down via the request context.
func Middleware(issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenStr string

			// 1. Try to get the token from the Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, "Bearer ")
				if len(parts) == 2 {
					tokenStr = parts[1]
				}
			}

			// 2. If not in header, fall back to the cookie
			if tokenStr == "" {
				cookie, err := r.Cookie(SessionCookieName)
				if err != nil {
					unauthorized(w, "missing auth token")
					return
				}
				tokenStr = cookie.Value
			}

			if tokenStr == "" || tokenStr == LoggedOutValue {
				unauthorized(w, "missing auth token")
				return
			}

			claims, err := issuer.Validate(tokenStr)
			if err != nil {
				unauthorized(w, "invalid auth token")
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"status": "fail", "message": message})
}
