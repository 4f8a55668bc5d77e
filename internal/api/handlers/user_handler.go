package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/shopcore/shopcore-be/internal/apperror"
	"github.com/shopcore/shopcore-be/internal/services"
)

// UserHandler handles HTTP requests for administrative user updates.
type UserHandler struct {
	service services.AuthServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.AuthServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// Update applies permitted field updates (name, email, role, status) to
// the user identified in the URL.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload UpdateUserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, apperror.Validation("invalid request body"))
		return
	}

	if err := payload.Validate(); err != nil {
		respondError(w, apperror.Validation(err.Error()))
		return
	}

	user, err := h.service.UpdateUser(id, services.UserUpdate{
		Name:   payload.Name,
		Email:  payload.Email,
		Role:   payload.Role,
		Status: payload.Status,
	})
	if err != nil {
		log.Warn().Err(err).Str("user_id", id).Msg("Failed to update user")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "user updated successfully",
		"data":    user,
	})
}
