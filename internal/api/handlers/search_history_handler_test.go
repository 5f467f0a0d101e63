package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickpick/storefront/internal/domain/entities"
)

type stubHistoryRecorder struct {
	recorded  []*entities.SearchHistoryEntry
	recordErr error
	zeroOut   []*entities.SearchHistoryEntry
	zeroErr   error
	gotLimit  int
}

func (s *stubHistoryRecorder) RecordSync(ctx context.Context, sess *entities.UserSession, rawQuery string, resultCount int) (bool, error) {
	if s.recordErr != nil {
		return false, s.recordErr
	}
	trimmed := strings.TrimSpace(rawQuery)
	if sess.Anonymous() || trimmed == "" {
		return false, nil
	}
	s.recorded = append(s.recorded, &entities.SearchHistoryEntry{
		UserID:      sess.UserID,
		SearchQuery: trimmed,
		ResultCount: resultCount,
	})
	return true, nil
}

func (s *stubHistoryRecorder) GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchHistoryEntry, error) {
	s.gotLimit = limit
	return s.zeroOut, s.zeroErr
}

func postHistory(t *testing.T, handler *SearchHistoryHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/search-history", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.RecordSearchHistory(rec, req)
	return rec
}

func TestRecordSearchHistory(t *testing.T) {
	recorder := &stubHistoryRecorder{}
	handler := NewSearchHistoryHandler(recorder)

	rec := postHistory(t, handler, `{"user_id":"user-1","search_query":"fresh apples","result_count":3}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, "fresh apples", recorder.recorded[0].SearchQuery)
	assert.Equal(t, 3, recorder.recorded[0].ResultCount)
}

func TestRecordSearchHistory_AnonymousOrBlankIsIgnored(t *testing.T) {
	recorder := &stubHistoryRecorder{}
	handler := NewSearchHistoryHandler(recorder)

	for _, body := range []string{
		`{"search_query":"apples"}`,
		`{"user_id":"user-1","search_query":"   "}`,
	} {
		rec := postHistory(t, handler, body)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	}
	assert.Empty(t, recorder.recorded)
}

func TestRecordSearchHistory_InvalidPayload(t *testing.T) {
	handler := NewSearchHistoryHandler(&stubHistoryRecorder{})

	rec := postHistory(t, handler, `{"user_id":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetZeroResultQueries(t *testing.T) {
	recorder := &stubHistoryRecorder{
		zeroOut: []*entities.SearchHistoryEntry{
			{ID: "h1", UserID: "user-1", SearchQuery: "durian", ResultCount: 0},
		},
	}
	handler := NewSearchHistoryHandler(recorder)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/zero-result-queries?limit=5", nil)
	rec := httptest.NewRecorder()

	handler.GetZeroResultQueries(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, recorder.gotLimit)
	assert.Contains(t, rec.Body.String(), "durian")
}
