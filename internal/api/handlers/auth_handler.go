package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/shopcore/shopcore-be/internal/apperror"
	"github.com/shopcore/shopcore-be/internal/auth"
	"github.com/shopcore/shopcore-be/internal/services"
)

// AuthHandler handles HTTP requests for signup, login, logout and
// password changes.
type AuthHandler struct {
	service services.AuthServiceProvider
	issuer  *auth.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthServiceProvider, issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{service: service, issuer: issuer}
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, apperror.Validation("invalid request body"))
		return
	}

	if err := payload.Validate(); err != nil {
		respondError(w, apperror.Validation(err.Error()))
		return
	}
	payload.Normalize()

	user, token, err := h.service.Signup(services.SignupInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     payload.Role,
		Status:   payload.Status,
	})
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Signup failed")
		respondError(w, err)
		return
	}

	h.issuer.SetCookie(w, token)
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"token":  token,
		"data":   user,
	})
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, apperror.Validation("invalid request body"))
		return
	}

	user, token, err := h.service.Login(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed authentication attempt")
		respondError(w, err)
		return
	}

	h.issuer.SetCookie(w, token)
	// 201 on login matches the existing API contract; clients depend on it.
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"token":  token,
		"data":   user,
	})
}

// Logout overwrites the session cookie with the logged-out sentinel.
// It succeeds unconditionally.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.issuer.ClearCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// ChangePassword verifies the acting user's current password and
// replaces it, then forces a re-login by clearing the session cookie.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		respondError(w, apperror.New(apperror.KindToken, http.StatusInternalServerError, "could not retrieve user from token"))
		return
	}

	var payload ChangePasswordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, apperror.Validation("invalid request body"))
		return
	}

	if err := h.service.ChangePassword(claims.UserID, payload.Password, payload.NewPassword); err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Msg("Failed to change password")
		respondError(w, err)
		return
	}

	h.issuer.ClearCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "password is changed, please login with new password",
	})
}
