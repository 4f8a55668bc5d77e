package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopcore/shopcore-be/internal/apperror"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "jwt"

// LoggedOutValue is the sentinel written over the session cookie on
// logout and password change.
const LoggedOutValue = "loggedout"

// logoutCookieTTL is how long the sentinel cookie lives. The client is
// expected to stop sending the old token on its own; there is no
// server-side revocation.
const logoutCookieTTL = 10 * time.Second

// Claims defines the JWT claims structure.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenIssuer signs time-bound identity tokens and manages the session
// cookie. The signing secret and expirations are injected at
// construction rather than read from the environment ad hoc.
type TokenIssuer struct {
	secret        []byte
	tokenTTL      time.Duration
	cookieTTL     time.Duration
	secureCookies bool
}

// NewTokenIssuer creates a TokenIssuer.
func NewTokenIssuer(secret string, tokenTTL, cookieTTL time.Duration, secureCookies bool) *TokenIssuer {
	return &TokenIssuer{
		secret:        []byte(secret),
		tokenTTL:      tokenTTL,
		cookieTTL:     cookieTTL,
		secureCookies: secureCookies,
	}
}

// Issue creates a signed token embedding the user's ID.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	if len(t.secret) == 0 {
		return "", apperror.Token(errors.New("signing secret is not configured"))
	}

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", apperror.Token(err)
	}
	return signed, nil
}

// Validate parses and validates a token string.
func (t *TokenIssuer) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// SetCookie attaches the session cookie to the response, expiring
// together with the configured cookie lifetime.
func (t *TokenIssuer) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(t.cookieTTL),
		HttpOnly: true,
		Secure:   t.secureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}

// ClearCookie overwrites the session cookie with the logged-out
// sentinel and a near-immediate expiry.
func (t *TokenIssuer) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    LoggedOutValue,
		Expires:  time.Now().Add(logoutCookieTTL),
		HttpOnly: true,
		Secure:   t.secureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}
