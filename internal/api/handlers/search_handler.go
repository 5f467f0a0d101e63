package handlers

import (
	"context"
	"net/http"

	"github.com/quickpick/storefront/internal/domain/entities"
)

// SearchSubmitter runs a full search submission with its side effects.
type SearchSubmitter interface {
	Submit(ctx context.Context, sess *entities.UserSession, rawQuery string) (*entities.MatchResult, []string)
}

// TypingSuggester produces typing-time suggestions from the static
// vocabulary.
type TypingSuggester interface {
	ForTyping(partial string) []string
}

// SessionResolver resolves the identity behind a session token. A nil result
// means anonymous.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) *entities.UserSession
}

// SearchHandler serves search submissions and typing-time suggestions.
type SearchHandler struct {
	search   SearchSubmitter
	suggest  TypingSuggester
	sessions SessionResolver
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search SearchSubmitter, suggest TypingSuggester, sessions SessionResolver) *SearchHandler {
	return &SearchHandler{
		search:   search,
		suggest:  suggest,
		sessions: sessions,
	}
}

type searchResponse struct {
	Query       string              `json:"query"`
	Direct      []*entities.Product `json:"direct_matches"`
	Related     []*entities.Product `json:"related_matches"`
	Suggestions []string            `json:"suggestions"`
	Total       int                 `json:"total"`
}

// Search handles GET /api/search?q=...
//
// The submission is processed even when the session is anonymous; only the
// recording side effects are suppressed in that case.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	rawQuery := r.URL.Query().Get("q")
	sess := h.sessions.Resolve(r.Context(), r.Header.Get(sessionTokenHeader))

	result, suggestions := h.search.Submit(r.Context(), sess, rawQuery)
	if suggestions == nil {
		suggestions = []string{}
	}

	respondWithJSON(w, http.StatusOK, searchResponse{
		Query:       result.Query,
		Direct:      result.Direct,
		Related:     result.Related,
		Suggestions: suggestions,
		Total:       len(result.Combined()),
	})
}

// Suggest handles GET /api/suggest?q=...
func (h *SearchHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	suggestions := h.suggest.ForTyping(r.URL.Query().Get("q"))
	if suggestions == nil {
		suggestions = []string{}
	}
	respondWithJSON(w, http.StatusOK, map[string][]string{
		"suggestions": suggestions,
	})
}
