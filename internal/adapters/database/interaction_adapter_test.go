package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickpick/storefront/internal/adapters/database"
	"github.com/quickpick/storefront/internal/domain/entities"
	"github.com/quickpick/storefront/internal/infrastructure/clients/postgres"
)

func setupMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return postgres.NewClientFromDB(mockDB), mock
}

func TestInteractionAdapter_LogEvent(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := database.NewInteractionAdapter(client)

	event := &entities.InteractionEvent{
		UserID:    "user-1",
		ProductID: "prod-1",
		Action:    entities.ActionClick,
		CTR:       1,
	}

	mock.ExpectExec(`INSERT INTO "user_interactions"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := adapter.LogEvent(context.Background(), event)
	require.NoError(t, err)

	// IDs and timestamps are assigned at persistence time
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionAdapter_LogEvent_DBError(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := database.NewInteractionAdapter(client)

	mock.ExpectExec(`INSERT INTO "user_interactions"`).
		WillReturnError(assert.AnError)

	err := adapter.LogEvent(context.Background(), &entities.InteractionEvent{
		UserID:    "user-1",
		ProductID: "prod-1",
		Action:    entities.ActionImpression,
	})
	assert.Error(t, err)
}

func TestInteractionAdapter_ListByUser(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := database.NewInteractionAdapter(client)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "product_id", "action", "ctr", "created_at"}).
		AddRow("evt-2", "user-1", "prod-2", "click", 1, now).
		AddRow("evt-1", "user-1", "prod-1", "impression", 0, now.Add(-time.Minute))

	mock.ExpectQuery(`SELECT .+ FROM "user_interactions"`).
		WillReturnRows(rows)

	events, err := adapter.ListByUser(context.Background(), "user-1", 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entities.ActionClick, events[0].Action)
	assert.Equal(t, 1, events[0].CTR)
	assert.Equal(t, entities.ActionImpression, events[1].Action)
}
