package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickpick/storefront/internal/domain/entities"
)

func TestHistoryRecord_TrimsQuery(t *testing.T) {
	repo := &mockHistoryRepo{}
	svc := NewSearchHistoryService(repo)
	sess := &entities.UserSession{UserID: "user-1"}

	svc.Record(sess, "  fresh apples  ", 4)

	assert.Eventually(t, func() bool {
		return len(repo.Entries()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "fresh apples", repo.Entries()[0].SearchQuery)
	assert.Equal(t, 4, repo.Entries()[0].ResultCount)
}

func TestHistoryRecord_AnonymousAndBlankAreNoOps(t *testing.T) {
	repo := &mockHistoryRepo{}
	svc := NewSearchHistoryService(repo)

	svc.Record(nil, "apples", 1)
	svc.Record(&entities.UserSession{UserID: "user-1"}, "   ", 0)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, repo.Entries())
}

func TestHistoryRecordSync(t *testing.T) {
	repo := &mockHistoryRepo{}
	svc := NewSearchHistoryService(repo)
	sess := &entities.UserSession{UserID: "user-1"}

	recorded, err := svc.RecordSync(context.Background(), sess, "apples", 2)
	require.NoError(t, err)
	assert.True(t, recorded)
	require.Len(t, repo.Entries(), 1)

	recorded, err = svc.RecordSync(context.Background(), nil, "apples", 2)
	require.NoError(t, err)
	assert.False(t, recorded)

	recorded, err = svc.RecordSync(context.Background(), sess, "  ", 0)
	require.NoError(t, err)
	assert.False(t, recorded)

	assert.Len(t, repo.Entries(), 1)
}
