package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/quickpick/storefront/internal/domain/entities"
)

const defaultZeroResultLimit = 20

// HistoryRecorder records submitted queries and serves history analytics.
type HistoryRecorder interface {
	RecordSync(ctx context.Context, sess *entities.UserSession, rawQuery string, resultCount int) (bool, error)
	GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchHistoryEntry, error)
}

// SearchHistoryHandler handles search history ingestion and analytics.
type SearchHistoryHandler struct {
	service HistoryRecorder
}

// NewSearchHistoryHandler creates a new search history handler
func NewSearchHistoryHandler(service HistoryRecorder) *SearchHistoryHandler {
	return &SearchHistoryHandler{service: service}
}

type searchHistoryRequest struct {
	UserID      string `json:"user_id"`
	SearchQuery string `json:"search_query"`
	ResultCount int    `json:"result_count"`
}

// RecordSearchHistory handles POST /api/search-history
//
// Requests without an identity or with a blank query are acknowledged but
// not recorded, mirroring the recording rules applied at submission time.
func (h *SearchHistoryHandler) RecordSearchHistory(w http.ResponseWriter, r *http.Request) {
	var payload searchHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	var sess *entities.UserSession
	if userID := strings.TrimSpace(payload.UserID); userID != "" {
		sess = &entities.UserSession{UserID: userID}
	}

	recorded, err := h.service.RecordSync(r.Context(), sess, payload.SearchQuery, payload.ResultCount)
	if err != nil {
		respondWithAppError(w, err, "failed to record search history")
		return
	}
	if !recorded {
		respondWithJSON(w, http.StatusAccepted, map[string]string{
			"message": "search history ignored",
		})
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "search history recorded",
	})
}

// GetZeroResultQueries handles GET /api/analytics/zero-result-queries
func (h *SearchHistoryHandler) GetZeroResultQueries(w http.ResponseWriter, r *http.Request) {
	limit := defaultZeroResultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = parsed
	}

	entries, err := h.service.GetZeroResultQueries(r.Context(), limit)
	if err != nil {
		respondWithAppError(w, err, "failed to fetch zero-result queries")
		return
	}
	if entries == nil {
		entries = []*entities.SearchHistoryEntry{}
	}
	respondWithJSON(w, http.StatusOK, entries)
}
