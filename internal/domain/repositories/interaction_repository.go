package repositories

import (
	"context"

	"github.com/quickpick/storefront/internal/domain/entities"
)

// InteractionRepository defines the interface for interaction event
// persistence.
type InteractionRepository interface {
	// LogEvent persists a single interaction event
	LogEvent(ctx context.Context, event *entities.InteractionEvent) error

	// ListByUser retrieves recent events for a user, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*entities.InteractionEvent, error)
}
