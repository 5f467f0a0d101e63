package repositories

import (
	"context"

	"github.com/quickpick/storefront/internal/domain/entities"
)

// SearchHistoryRepository defines the interface for search history
// persistence.
type SearchHistoryRepository interface {
	// LogEntry persists a submitted query
	LogEntry(ctx context.Context, entry *entities.SearchHistoryEntry) error

	// GetZeroResultQueries retrieves recent submissions that matched nothing
	GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchHistoryEntry, error)
}
