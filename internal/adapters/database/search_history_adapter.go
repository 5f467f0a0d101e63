package database

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/quickpick/storefront/internal/domain/entities"
	"github.com/quickpick/storefront/internal/domain/repositories"
	"github.com/quickpick/storefront/internal/infrastructure/clients/postgres"
	apperrors "github.com/quickpick/storefront/pkg/errors"
)

// SearchHistoryAdapter implements search history persistence in Postgres.
type SearchHistoryAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSearchHistoryAdapter creates a new search history adapter.
func NewSearchHistoryAdapter(client *postgres.Client) repositories.SearchHistoryRepository {
	return &SearchHistoryAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// LogEntry persists a submitted query. The timestamp is assigned here, at
// the receiving side, not by the submitting client.
func (a *SearchHistoryAdapter) LogEntry(ctx context.Context, entry *entities.SearchHistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	record := goqu.Record{
		"id":           entry.ID,
		"user_id":      entry.UserID,
		"search_query": entry.SearchQuery,
		"result_count": entry.ResultCount,
		"created_at":   entry.CreatedAt,
	}

	query, args, err := a.db.Insert("search_history").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build search history insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to log search history entry", err)
	}

	return nil
}

// GetZeroResultQueries retrieves recent submissions that matched nothing.
func (a *SearchHistoryAdapter) GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchHistoryEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	query, args, err := a.db.From("search_history").
		Select("id", "user_id", "search_query", "result_count", "created_at").
		Where(goqu.Ex{"result_count": 0}).
		Order(goqu.I("created_at").Desc()).
		Limit(uint(limit)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build zero result query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get zero result queries", err)
	}
	defer rows.Close()

	var entries []*entities.SearchHistoryEntry
	for rows.Next() {
		e := &entities.SearchHistoryEntry{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.SearchQuery, &e.ResultCount, &e.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan search history entry", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
