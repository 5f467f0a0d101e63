package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/quickpick/storefront/pkg/errors"
)

// sessionTokenHeader carries the opaque token whose session blob holds the
// user's identity. Identity is re-resolved from the store on every request;
// handlers never cache it.
const sessionTokenHeader = "X-Session-Token"

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps application error types to HTTP status codes.
func respondWithAppError(w http.ResponseWriter, err error, fallback string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
			return
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
			return
		case apperrors.ErrorTypeExternal:
			respondWithError(w, http.StatusBadGateway, appErr.Message)
			return
		}
	}
	respondWithError(w, http.StatusInternalServerError, fallback)
}
