package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/quickpick/storefront/internal/domain/entities"
)

const defaultInteractionLimit = 50

// InteractionRecorder records and lists interaction events.
type InteractionRecorder interface {
	Record(ctx context.Context, sess *entities.UserSession, productID string, action entities.InteractionAction) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*entities.InteractionEvent, error)
}

// InteractionHandler handles interaction ingestion.
type InteractionHandler struct {
	service InteractionRecorder
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(service InteractionRecorder) *InteractionHandler {
	return &InteractionHandler{service: service}
}

type interactionRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Action    string `json:"action"`
	// Accepted for wire compatibility; the stored value is always derived
	// from the action.
	CTR int `json:"ctr"`
}

// RecordInteraction handles POST /api/user-interactions
//
// A request without a user_id is acknowledged but not recorded: missing
// identity means the action is anonymous, not invalid.
func (h *InteractionHandler) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	var payload interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.UserID = strings.TrimSpace(payload.UserID)
	if payload.UserID == "" {
		respondWithJSON(w, http.StatusAccepted, map[string]string{
			"message": "anonymous interaction ignored",
		})
		return
	}

	if payload.ProductID == "" {
		respondWithError(w, http.StatusBadRequest, "product_id is required")
		return
	}
	action := entities.InteractionAction(payload.Action)
	if !action.Valid() {
		respondWithError(w, http.StatusBadRequest, "invalid action: "+payload.Action)
		return
	}

	sess := &entities.UserSession{UserID: payload.UserID}
	if err := h.service.Record(r.Context(), sess, payload.ProductID, action); err != nil {
		respondWithAppError(w, err, "failed to record interaction")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "interaction recorded",
	})
}

// ListUserInteractions handles GET /api/users/{id}/interactions
func (h *InteractionHandler) ListUserInteractions(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "user ID is required")
		return
	}

	limit := defaultInteractionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = parsed
	}

	events, err := h.service.ListByUser(r.Context(), userID, limit)
	if err != nil {
		respondWithAppError(w, err, "failed to list interactions")
		return
	}
	if events == nil {
		events = []*entities.InteractionEvent{}
	}
	respondWithJSON(w, http.StatusOK, events)
}
