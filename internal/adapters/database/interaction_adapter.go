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

// InteractionAdapter implements interaction event persistence in Postgres.
type InteractionAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewInteractionAdapter creates a new interaction adapter.
func NewInteractionAdapter(client *postgres.Client) repositories.InteractionRepository {
	return &InteractionAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// LogEvent persists a single interaction event.
func (a *InteractionAdapter) LogEvent(ctx context.Context, event *entities.InteractionEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	record := goqu.Record{
		"id":         event.ID,
		"user_id":    event.UserID,
		"product_id": event.ProductID,
		"action":     string(event.Action),
		"ctr":        event.CTR,
		"created_at": event.CreatedAt,
	}

	query, args, err := a.db.Insert("user_interactions").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build interaction insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to log interaction event", err)
	}

	return nil
}

// ListByUser retrieves recent events for a user, newest first.
func (a *InteractionAdapter) ListByUser(ctx context.Context, userID string, limit int) ([]*entities.InteractionEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	query, args, err := a.db.From("user_interactions").
		Select("id", "user_id", "product_id", "action", "ctr", "created_at").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc()).
		Limit(uint(limit)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build interaction list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list interaction events", err)
	}
	defer rows.Close()

	var events []*entities.InteractionEvent
	for rows.Next() {
		e := &entities.InteractionEvent{}
		var action string
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProductID, &action, &e.CTR, &e.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan interaction event", err)
		}
		e.Action = entities.InteractionAction(action)
		events = append(events, e)
	}

	return events, rows.Err()
}
