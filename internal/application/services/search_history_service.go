package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/quickpick/storefront/internal/domain/entities"
	"github.com/quickpick/storefront/internal/domain/repositories"
)

// SearchHistoryService records submitted queries. A query is recorded only
// when it is non-blank after trimming and the session carries an identity;
// typing and abandoned input never reach history.
type SearchHistoryService struct {
	repo repositories.SearchHistoryRepository
}

// NewSearchHistoryService creates a new search history service
func NewSearchHistoryService(repo repositories.SearchHistoryRepository) *SearchHistoryService {
	return &SearchHistoryService{repo: repo}
}

// Record logs a submitted query without blocking the caller. Anonymous
// sessions and blank queries are silent no-ops. The stored query is the
// trimmed submission, not the normalized form used for matching.
func (s *SearchHistoryService) Record(sess *entities.UserSession, rawQuery string, resultCount int) {
	trimmed := strings.TrimSpace(rawQuery)
	if sess.Anonymous() || trimmed == "" {
		return
	}

	entry := &entities.SearchHistoryEntry{
		UserID:      sess.UserID,
		SearchQuery: trimmed,
		ResultCount: resultCount,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := s.repo.LogEntry(ctx, entry); err != nil {
			log.Warn().Err(err).
				Str("user_id", entry.UserID).
				Str("search_query", entry.SearchQuery).
				Msg("failed to record search history")
		}
	}()
}

// RecordSync logs a submitted query and reports the outcome. Used by the
// ingestion endpoint, where the caller expects an acknowledgement. The same
// no-op rules apply.
func (s *SearchHistoryService) RecordSync(ctx context.Context, sess *entities.UserSession, rawQuery string, resultCount int) (bool, error) {
	trimmed := strings.TrimSpace(rawQuery)
	if sess.Anonymous() || trimmed == "" {
		return false, nil
	}

	entry := &entities.SearchHistoryEntry{
		UserID:      sess.UserID,
		SearchQuery: trimmed,
		ResultCount: resultCount,
	}
	if err := s.repo.LogEntry(ctx, entry); err != nil {
		return false, err
	}
	return true, nil
}

// GetZeroResultQueries returns recent submissions that matched nothing.
func (s *SearchHistoryService) GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchHistoryEntry, error) {
	return s.repo.GetZeroResultQueries(ctx, limit)
}
