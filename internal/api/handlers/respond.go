package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/shopcore/shopcore-be/internal/apperror"
)

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondError serializes an operational error into the {status,
// message} envelope. Anything else is unexpected: log it and answer
// with a generic 500 so internals never leak to the client.
func respondError(w http.ResponseWriter, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		respondJSON(w, appErr.Code, map[string]string{
			"status":  appErr.Status(),
			"message": appErr.Message,
		})
		return
	}

	log.Error().Err(err).Msg("Unexpected error")
	respondJSON(w, http.StatusInternalServerError, map[string]string{
		"status":  "error",
		"message": "something went very wrong",
	})
}
