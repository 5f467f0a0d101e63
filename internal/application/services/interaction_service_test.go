package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickpick/storefront/internal/domain/entities"
	apperrors "github.com/quickpick/storefront/pkg/errors"
)

func TestRecord_ClickCarriesCTROne(t *testing.T) {
	repo := &mockInteractionRepo{}
	svc := NewInteractionService(repo, nil, nil)
	sess := &entities.UserSession{UserID: "user-1"}

	require.NoError(t, svc.Record(context.Background(), sess, "p1", entities.ActionClick))

	events := repo.Events()
	require.Len(t, events, 1)
	assert.Equal(t, entities.ActionClick, events[0].Action)
	assert.Equal(t, 1, events[0].CTR)
}

func TestRecord_NonClickCarriesCTRZero(t *testing.T) {
	repo := &mockInteractionRepo{}
	svc := NewInteractionService(repo, nil, nil)
	sess := &entities.UserSession{UserID: "user-1"}

	require.NoError(t, svc.Record(context.Background(), sess, "p1", entities.ActionImpression))
	require.NoError(t, svc.Record(context.Background(), sess, "p1", entities.ActionAddToCart))

	for _, e := range repo.Events() {
		assert.Equal(t, 0, e.CTR)
	}
}

func TestRecord_AnonymousSessionIsNoOp(t *testing.T) {
	repo := &mockInteractionRepo{}
	svc := NewInteractionService(repo, nil, nil)

	assert.NoError(t, svc.Record(context.Background(), nil, "p1", entities.ActionClick))
	assert.NoError(t, svc.Record(context.Background(), &entities.UserSession{}, "p1", entities.ActionClick))
	assert.Empty(t, repo.Events())
}

func TestRecord_InvalidInput(t *testing.T) {
	repo := &mockInteractionRepo{}
	svc := NewInteractionService(repo, nil, nil)
	sess := &entities.UserSession{UserID: "user-1"}

	err := svc.Record(context.Background(), sess, "", entities.ActionClick)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	err = svc.Record(context.Background(), sess, "p1", entities.InteractionAction("hover"))
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	assert.Empty(t, repo.Events())
}

func TestRecord_PropagatesRepositoryError(t *testing.T) {
	repo := &mockInteractionRepo{err: errors.New("insert failed")}
	svc := NewInteractionService(repo, nil, nil)
	sess := &entities.UserSession{UserID: "user-1"}

	assert.Error(t, svc.Record(context.Background(), sess, "p1", entities.ActionClick))
}

func TestRecordImpressions_OnePerProduct(t *testing.T) {
	repo := &mockInteractionRepo{}
	svc := NewInteractionService(repo, nil, nil)
	sess := &entities.UserSession{UserID: "user-1"}
	products := []*entities.Product{
		product("p1", "Green Apple", "fruit"),
		product("p2", "Red Apple", "fruit"),
		product("p3", "Apple Juice", "beverages"),
	}

	svc.RecordImpressions(sess, products)

	assert.Eventually(t, func() bool {
		return len(repo.Events()) == 3
	}, time.Second, 10*time.Millisecond)

	seen := make(map[string]int)
	for _, e := range repo.Events() {
		assert.Equal(t, entities.ActionImpression, e.Action)
		seen[e.ProductID]++
	}
	assert.Equal(t, map[string]int{"p1": 1, "p2": 1, "p3": 1}, seen)
}

func TestRecordImpressions_AnonymousIsNoOp(t *testing.T) {
	repo := &mockInteractionRepo{}
	svc := NewInteractionService(repo, nil, nil)

	svc.RecordImpressions(nil, testCatalog())

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, repo.Events())
}

func TestRecordImpressions_FailuresDoNotPropagate(t *testing.T) {
	repo := &mockInteractionRepo{err: errors.New("insert failed")}
	svc := NewInteractionService(repo, nil, nil)
	sess := &entities.UserSession{UserID: "user-1"}

	// Must not panic or block; failures are logged and swallowed.
	svc.RecordImpressions(sess, testCatalog())
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, repo.Events())
}
